package golay

import "testing"

func twoMonitors() []Monitor {
	return []Monitor{
		{ID: 1, X: 0, Y: 0, Width: 1920, Height: 1080, Scale: 1, Refresh: 60, Primary: true},
		{ID: 2, X: 1920, Y: 0, Width: 1280, Height: 1024, Scale: 1, Refresh: 60},
	}
}

func TestVirtualBounds(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors(twoMonitors())

	if got := registry.VirtualBounds(); got != NewRect(0, 0, 3200, 1080) {
		t.Errorf("VirtualBounds = %+v, want (0,0,3200,1080)", got)
	}
}

func TestVirtualBoundsEmpty(t *testing.T) {
	registry := NewRegistry()
	if got := registry.VirtualBounds(); got != (Rect{}) {
		t.Errorf("VirtualBounds with no monitors = %+v, want zero", got)
	}
}

func TestMonitorRectScaling(t *testing.T) {
	m := Monitor{ID: 1, X: 100, Y: 50, Width: 3840, Height: 2160, Scale: 2}
	if got := m.Rect(); got != NewRect(100, 50, 1920, 1080) {
		t.Errorf("Rect = %+v, want logical pixels", got)
	}

	// Unset scale behaves as 1.
	m.Scale = 0
	if got := m.Rect(); got != NewRect(100, 50, 3840, 2160) {
		t.Errorf("Rect with zero scale = %+v", got)
	}
}

func TestMonitorAt(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors(twoMonitors())

	tests := []struct {
		name     string
		x, y     float64
		expected int
		found    bool
	}{
		{name: "inside first", x: 500, y: 500, expected: 1, found: true},
		{name: "inside second", x: 2500, y: 500, expected: 2, found: true},
		{name: "outside everything", x: 5000, y: 5000, found: false},
		{name: "below the shorter monitor", x: 2500, y: 1050, found: false},
		{name: "shared edge goes to lower id", x: 1920, y: 500, expected: 1, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := registry.MonitorAt(tt.x, tt.y)
			if ok != tt.found {
				t.Fatalf("MonitorAt(%v, %v) found = %v, want %v", tt.x, tt.y, ok, tt.found)
			}
			if ok && id != tt.expected {
				t.Errorf("MonitorAt(%v, %v) = %d, want %d", tt.x, tt.y, id, tt.expected)
			}
		})
	}
}

func TestMonitorAtDeterministic(t *testing.T) {
	registry := NewRegistry()
	// Insertion order reversed; lookup must still prefer the lowest id.
	monitors := twoMonitors()
	registry.SetMonitors([]Monitor{monitors[1], monitors[0]})

	for i := 0; i < 100; i++ {
		id, ok := registry.MonitorAt(1920, 500)
		if !ok || id != 1 {
			t.Fatalf("call %d: MonitorAt = (%d, %v), want (1, true)", i, id, ok)
		}
	}
}

func TestPrimaryNormalization(t *testing.T) {
	registry := NewRegistry()

	// Nobody marked primary: the lowest id is promoted.
	registry.SetMonitors([]Monitor{
		{ID: 3, Width: 800, Height: 600, Scale: 1},
		{ID: 7, Width: 800, Height: 600, Scale: 1},
	})
	if primary, ok := registry.Primary(); !ok || primary.ID != 3 {
		t.Errorf("Primary = %+v, want id 3", primary)
	}

	// Several marked primary: the lowest-id claimant wins.
	registry.SetMonitors([]Monitor{
		{ID: 1, Width: 800, Height: 600, Scale: 1},
		{ID: 2, Width: 800, Height: 600, Scale: 1, Primary: true},
		{ID: 3, Width: 800, Height: 600, Scale: 1, Primary: true},
	})
	if primary, ok := registry.Primary(); !ok || primary.ID != 2 {
		t.Errorf("Primary = %+v, want id 2", primary)
	}

	count := 0
	for _, m := range registry.Monitors() {
		if m.Primary {
			count++
		}
	}
	if count != 1 {
		t.Errorf("primary count = %d, want exactly 1", count)
	}
}

func TestGroups(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors([]Monitor{
		{ID: 1, X: 0, Y: 0, Width: 1920, Height: 1080, Scale: 1},
		{ID: 2, X: 1920, Y: 0, Width: 1920, Height: 1080, Scale: 1},
		{ID: 3, X: 0, Y: 1080, Width: 1920, Height: 1080, Scale: 1},
	})
	registry.SetGroups(map[string][]int{
		"wall": {1, 2},
	})

	bounds, ok := registry.GroupBounds("wall")
	if !ok {
		t.Fatal("GroupBounds(wall) not found")
	}
	if bounds != NewRect(0, 0, 3840, 1080) {
		t.Errorf("GroupBounds(wall) = %+v", bounds)
	}

	if _, ok := registry.GroupBounds("nope"); ok {
		t.Error("GroupBounds returned ok for unknown group")
	}
}

func TestGroupsMembershipIsExclusive(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors([]Monitor{
		{ID: 1, X: 0, Y: 0, Width: 100, Height: 100, Scale: 1},
		{ID: 2, X: 100, Y: 0, Width: 100, Height: 100, Scale: 1},
	})
	// Both groups claim monitor 2; the lexicographically first group keeps it.
	registry.SetGroups(map[string][]int{
		"alpha": {2},
		"beta":  {1, 2},
	})

	alpha, ok := registry.GroupBounds("alpha")
	if !ok || alpha != NewRect(100, 0, 100, 100) {
		t.Errorf("alpha = %+v, ok=%v", alpha, ok)
	}
	beta, ok := registry.GroupBounds("beta")
	if !ok || beta != NewRect(0, 0, 100, 100) {
		t.Errorf("beta = %+v, ok=%v (monitor 2 must stay in alpha)", beta, ok)
	}
}

func TestRootRect(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors(twoMonitors())
	registry.SetGroups(map[string][]int{"pair": {1, 2}})

	tests := []struct {
		name     string
		mode     LayoutMode
		affinity Affinity
		expected Rect
		found    bool
	}{
		{name: "unified covers everything", mode: Unified, expected: NewRect(0, 0, 3200, 1080), found: true},
		{name: "separate picks the monitor", mode: Separate, affinity: Affinity{Monitor: 2}, expected: NewRect(1920, 0, 1280, 1024), found: true},
		{name: "separate unknown monitor", mode: Separate, affinity: Affinity{Monitor: 99}, found: false},
		{name: "mixed picks the group", mode: Mixed, affinity: Affinity{Group: "pair"}, expected: NewRect(0, 0, 3200, 1080), found: true},
		{name: "mixed unknown group and monitor", mode: Mixed, affinity: Affinity{Group: "nope", Monitor: 99}, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := registry.RootRect(tt.mode, tt.affinity)
			if ok != tt.found {
				t.Fatalf("RootRect found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.expected {
				t.Errorf("RootRect = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRootRectMixedSingleton(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors([]Monitor{
		{ID: 1, X: 0, Y: 0, Width: 100, Height: 100, Scale: 1},
		{ID: 2, X: 100, Y: 0, Width: 100, Height: 100, Scale: 1},
	})
	registry.SetGroups(map[string][]int{"solo": {1}})

	// An ungrouped monitor behaves as its own singleton group.
	got, ok := registry.RootRect(Mixed, Affinity{Monitor: 2})
	if !ok || got != NewRect(100, 0, 100, 100) {
		t.Errorf("singleton RootRect = %+v, ok=%v", got, ok)
	}

	// A grouped monitor is not addressable as a singleton.
	if _, ok := registry.RootRect(Mixed, Affinity{Monitor: 1}); ok {
		t.Error("grouped monitor addressable as singleton")
	}
}

func TestRegistryVersioning(t *testing.T) {
	registry := NewRegistry()
	v0 := registry.Version()

	registry.SetMonitors(twoMonitors())
	if registry.Version() <= v0 {
		t.Error("version did not increase on SetMonitors")
	}

	v1 := registry.Version()
	registry.SetGroups(map[string][]int{"pair": {1, 2}})
	if registry.Version() <= v1 {
		t.Error("version did not increase on SetGroups")
	}
}

func TestSetMonitorsKeepsGroups(t *testing.T) {
	registry := NewRegistry()
	registry.SetMonitors(twoMonitors())
	registry.SetGroups(map[string][]int{"pair": {1, 2}})

	// A topology change keeps the grouping but drops vanished members.
	registry.SetMonitors([]Monitor{
		{ID: 1, X: 0, Y: 0, Width: 1920, Height: 1080, Scale: 1},
	})
	bounds, ok := registry.GroupBounds("pair")
	if !ok {
		t.Fatal("group vanished after topology change")
	}
	if bounds != NewRect(0, 0, 1920, 1080) {
		t.Errorf("GroupBounds = %+v, want the surviving member only", bounds)
	}
}
