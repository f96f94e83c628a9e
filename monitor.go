package golay

import (
	"sort"
	"sync"
)

// Monitor describes one physical display as reported by the platform layer.
// Position is in shared virtual-desktop coordinates; Width/Height are the
// native resolution in device pixels, divided by Scale to get logical pixels.
type Monitor struct {
	ID      int     `json:"id"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   float64 `json:"scale"`
	Refresh int     `json:"refresh_rate"`
	Primary bool    `json:"is_primary"`
}

// Rect returns the monitor's rectangle in logical pixels.
func (m Monitor) Rect() Rect {
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}
	return Rect{
		X:      float64(m.X),
		Y:      float64(m.Y),
		Width:  float64(m.Width) / scale,
		Height: float64(m.Height) / scale,
	}
}

// LayoutMode specifies how monitors combine into root coordinate spaces.
type LayoutMode string

const (
	// Unified treats all monitors as one virtual rectangle.
	Unified LayoutMode = "unified"
	// Separate treats each monitor as an independent root space.
	Separate LayoutMode = "separate"
	// Mixed unifies monitors within a group; groups are independent and
	// ungrouped monitors behave as singleton groups.
	Mixed LayoutMode = "mixed"
)

// Affinity selects which monitor or group a root component belongs to.
// Monitor is consulted in Separate mode, Group in Mixed mode (falling back
// to Monitor for ungrouped singletons). Unified needs no affinity.
type Affinity struct {
	Monitor int
	Group   string
}

// topology is one immutable snapshot of the monitor layout. Snapshots are
// replaced wholesale on topology changes and never mutated, so passes can
// keep reading one without holding the registry lock.
type topology struct {
	monitors []Monitor        // sorted by ID
	groups   map[string][]int // group id -> member monitor ids, sorted
	grouped  map[int]string   // monitor id -> owning group
}

// Registry holds the current monitor topology and answers the coordinate
// space questions the engine needs at tree roots.
type Registry struct {
	mu      sync.RWMutex
	topo    topology
	version uint64
}

// NewRegistry creates a registry with no monitors.
func NewRegistry() *Registry {
	return &Registry{topo: topology{
		groups:  map[string][]int{},
		grouped: map[int]string{},
	}}
}

// SetMonitors replaces the topology snapshot, as on a monitor hotplug or
// resolution change, and bumps the version. Group membership is re-checked
// against the new monitor set. The primary flag is normalized so that
// exactly one monitor is primary: if none is marked the lowest id is
// promoted, and if several are marked the lowest-id one of them wins.
func (r *Registry) SetMonitors(monitors []Monitor) {
	sorted := make([]Monitor, len(monitors))
	copy(sorted, monitors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	normalizePrimary(sorted)

	r.mu.Lock()
	groups := r.topo.groups
	r.topo = buildTopology(sorted, groups)
	r.version++
	r.mu.Unlock()
	debugf("monitors: topology replaced (%d monitors)", len(sorted))
}

// SetGroups replaces the Mixed-mode grouping. A monitor may belong to at
// most one group; when several groups claim the same monitor, the group
// with the lexicographically lowest id keeps it. Members unknown to the
// current monitor set are dropped.
func (r *Registry) SetGroups(groups map[string][]int) {
	r.mu.Lock()
	r.topo = buildTopology(r.topo.monitors, groups)
	r.version++
	r.mu.Unlock()
}

func normalizePrimary(sorted []Monitor) {
	primary := -1
	for i := range sorted {
		if sorted[i].Primary && primary < 0 {
			primary = i
		}
		sorted[i].Primary = false
	}
	if primary < 0 && len(sorted) > 0 {
		primary = 0
	}
	if primary >= 0 {
		sorted[primary].Primary = true
	}
}

func buildTopology(sorted []Monitor, groups map[string][]int) topology {
	known := make(map[int]bool, len(sorted))
	for _, m := range sorted {
		known[m.ID] = true
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	topo := topology{
		monitors: sorted,
		groups:   map[string][]int{},
		grouped:  map[int]string{},
	}
	for _, name := range names {
		var members []int
		for _, id := range groups[name] {
			if !known[id] {
				continue
			}
			if _, taken := topo.grouped[id]; taken {
				continue
			}
			topo.grouped[id] = name
			members = append(members, id)
		}
		if len(members) > 0 {
			sort.Ints(members)
			topo.groups[name] = members
		}
	}
	return topo
}

func (r *Registry) snapshot() topology {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.topo
}

// Version returns the topology version. It increases on every SetMonitors
// and SetGroups call; callers use it to skip passes against stale topology.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Monitors returns the current monitors, sorted by id.
func (r *Registry) Monitors() []Monitor {
	topo := r.snapshot()
	out := make([]Monitor, len(topo.monitors))
	copy(out, topo.monitors)
	return out
}

// Monitor returns the monitor with the given id.
func (r *Registry) Monitor(id int) (Monitor, bool) {
	for _, m := range r.snapshot().monitors {
		if m.ID == id {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor, if any monitors exist.
func (r *Registry) Primary() (Monitor, bool) {
	for _, m := range r.snapshot().monitors {
		if m.Primary {
			return m, true
		}
	}
	return Monitor{}, false
}

// VirtualBounds returns the bounding rectangle covering all monitors in
// logical pixels, the root space of Unified mode. Empty if no monitors.
func (r *Registry) VirtualBounds() Rect {
	return unionRects(r.snapshot().monitors, nil)
}

// GroupBounds returns the union rectangle of one Mixed-mode group. ok is
// false for unknown group ids.
func (r *Registry) GroupBounds(group string) (Rect, bool) {
	topo := r.snapshot()
	members, ok := topo.groups[group]
	if !ok {
		return Rect{}, false
	}
	in := make(map[int]bool, len(members))
	for _, id := range members {
		in[id] = true
	}
	return unionRects(topo.monitors, in), true
}

// MonitorAt returns the id of the monitor containing the point, in logical
// coordinates. Containment includes all edges, so a point on a shared edge
// lies in more than one monitor; the lowest id wins, deterministically.
func (r *Registry) MonitorAt(x, y float64) (int, bool) {
	for _, m := range r.snapshot().monitors {
		if m.Rect().Contains(x, y) {
			return m.ID, true
		}
	}
	return 0, false
}

// RootRect returns the root coordinate space for a tree under the given
// placement mode. Unified ignores the affinity; Separate selects the
// monitor from it; Mixed selects the group, treating an ungrouped monitor
// affinity as a singleton group. ok is false when the affinity does not
// match the current topology.
func (r *Registry) RootRect(mode LayoutMode, affinity Affinity) (Rect, bool) {
	switch mode {
	case Unified:
		return r.VirtualBounds(), true
	case Separate:
		m, ok := r.Monitor(affinity.Monitor)
		if !ok {
			return Rect{}, false
		}
		return m.Rect(), true
	case Mixed:
		if rect, ok := r.GroupBounds(affinity.Group); ok {
			return rect, true
		}
		m, ok := r.Monitor(affinity.Monitor)
		if !ok || r.snapshot().grouped[m.ID] != "" {
			return Rect{}, false
		}
		return m.Rect(), true
	default:
		return Rect{}, false
	}
}

func unionRects(monitors []Monitor, include map[int]bool) Rect {
	var bounds Rect
	first := true
	for _, m := range monitors {
		if include != nil && !include[m.ID] {
			continue
		}
		if first {
			bounds = m.Rect()
			first = false
			continue
		}
		bounds = bounds.Union(m.Rect())
	}
	return bounds
}
