package golay

import (
	"errors"
	"testing"
)

func unitp(u Unit) *Unit {
	return &u
}

func TestResolveNode(t *testing.T) {
	parent := NewRect(0, 0, 300, 200)

	tests := []struct {
		name     string
		props    LayoutProps
		parent   Rect
		base     float64
		natural  Size
		expected Rect
	}{
		{
			name: "edge pair derives size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)), Right: unitp(Px(30)),
				Top: unitp(Px(10)), Bottom: unitp(Px(10)),
			},
			parent:   parent,
			expected: NewRect(20, 10, 250, 180),
		},
		{
			name: "edge pair wins over explicit size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)), Right: unitp(Px(30)), Width: unitp(Px(999)),
			},
			parent:   parent,
			expected: NewRect(20, 0, 250, 200),
		},
		{
			name: "leading edge plus explicit size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)), Width: unitp(Px(100)),
				Top: unitp(Px(5)), Height: unitp(Px(50)),
			},
			parent:   parent,
			expected: NewRect(20, 5, 100, 50),
		},
		{
			name: "trailing edge anchors explicit size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Right: unitp(Px(30)), Width: unitp(Px(100)),
				Bottom: unitp(Px(20)), Height: unitp(Px(50)),
			},
			parent:   parent,
			expected: NewRect(170, 130, 100, 50),
		},
		{
			name: "no edges defaults to parent origin",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Width: unitp(Px(100)), Height: unitp(Px(50)),
			},
			parent:   NewRect(50, 40, 300, 200),
			expected: NewRect(50, 40, 100, 50),
		},
		{
			name: "missing size fills from leading edge",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)),
			},
			parent:   parent,
			expected: NewRect(20, 0, 280, 200),
		},
		{
			name: "missing size fills to trailing edge",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Right: unitp(Px(30)),
			},
			parent:   parent,
			expected: NewRect(0, 0, 270, 200),
		},
		{
			name: "fixed mode with nothing set fills parent",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
			},
			parent:   parent,
			expected: parent,
		},
		{
			name: "fill ignores edges and sizes",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFill,
				Left: unitp(Px(20)), Right: unitp(Px(30)),
				Width: unitp(Px(10)), Height: unitp(Px(10)),
			},
			parent:   NewRect(7, 9, 300, 200),
			expected: NewRect(7, 9, 300, 200),
		},
		{
			name: "fit content takes natural size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFitContent,
				Left: unitp(Px(10)), Top: unitp(Px(10)),
			},
			parent:   parent,
			natural:  Size{Width: 120, Height: 36},
			expected: NewRect(10, 10, 120, 36),
		},
		{
			name: "fit content anchors to trailing edge",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFitContent,
				Right: unitp(Px(10)),
			},
			parent:   parent,
			natural:  Size{Width: 120, Height: 36},
			expected: NewRect(170, 0, 120, 36),
		},
		{
			name: "relative units resolve against base and parent",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Pct(10)), Width: unitp(Rb(2)),
				Top: unitp(Rp(0.25)), Height: unitp(Pct(50)),
			},
			parent:   parent,
			base:     16,
			expected: NewRect(30, 50, 32, 100),
		},
		{
			name: "negative offset edge",
			props: LayoutProps{
				Position: PositionRelative, Size: SizeFixed,
				Left: unitp(Px(-20)), Width: unitp(Px(100)),
			},
			parent:   parent,
			expected: NewRect(-20, 0, 100, 200),
		},
		{
			name: "minimum raises derived size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Width: unitp(Px(10)), MinWidth: unitp(Px(50)),
			},
			parent:   parent,
			expected: NewRect(0, 0, 50, 200),
		},
		{
			name: "maximum caps edge pair, leading edge holds",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)), Right: unitp(Px(30)), MaxWidth: unitp(Px(100)),
			},
			parent:   parent,
			expected: NewRect(20, 0, 100, 200),
		},
		{
			name: "minimum grows toward trailing anchor",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Right: unitp(Px(30)), Width: unitp(Px(10)), MinWidth: unitp(Px(50)),
			},
			parent:   parent,
			expected: NewRect(220, 0, 50, 200),
		},
		{
			name: "contradictory constraints favor the minimum",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Width: unitp(Px(60)), MinWidth: unitp(Px(80)), MaxWidth: unitp(Px(40)),
			},
			parent:   parent,
			expected: NewRect(0, 0, 80, 200),
		},
		{
			name: "oversized edges degrade to empty extent",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(200)), Right: unitp(Px(200)),
			},
			parent:   parent,
			expected: NewRect(200, 0, 0, 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.base
			if base == 0 {
				base = DefaultBaseSize
			}
			got, err := ResolveNode(tt.props, tt.parent, base, tt.natural, ResolveOptions{})
			if err != nil {
				t.Fatalf("ResolveNode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ResolveNode = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolveNodeErrors(t *testing.T) {
	parent := NewRect(0, 0, 300, 200)

	tests := []struct {
		name     string
		props    LayoutProps
		opts     ResolveOptions
		expected error
	}{
		{
			name: "negative minimum wins and fails",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Width: unitp(Px(100)), MinWidth: unitp(Px(-50)), MaxWidth: unitp(Px(-100)),
			},
			expected: ErrNegativeExtent,
		},
		{
			name: "negative maximum without minimum fails",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Height: unitp(Px(100)), MaxHeight: unitp(Px(-10)),
			},
			expected: ErrNegativeExtent,
		},
		{
			name: "strict mode rejects edges plus size",
			props: LayoutProps{
				Position: PositionAbsolute, Size: SizeFixed,
				Left: unitp(Px(20)), Right: unitp(Px(30)), Width: unitp(Px(100)),
			},
			opts:     ResolveOptions{StrictEdgeSize: true},
			expected: ErrConflictingAxis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveNode(tt.props, parent, DefaultBaseSize, Size{}, tt.opts)
			if !errors.Is(err, tt.expected) {
				t.Errorf("ResolveNode error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestResolveNodeDeterministic(t *testing.T) {
	props := LayoutProps{
		Position: PositionAbsolute, Size: SizeFixed,
		Left: unitp(Pct(10)), Right: unitp(Px(30)),
		Top: unitp(Rb(1)), Height: unitp(Rp(0.5)),
		MinHeight: unitp(Px(20)),
	}
	parent := NewRect(13, 17, 301.5, 207.25)

	first, err := ResolveNode(props, parent, 16, Size{}, ResolveOptions{})
	if err != nil {
		t.Fatalf("ResolveNode failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ResolveNode(props, parent, 16, Size{}, ResolveOptions{})
		if err != nil {
			t.Fatalf("ResolveNode failed on repeat: %v", err)
		}
		if again != first {
			t.Fatalf("resolution not deterministic: %+v vs %+v", again, first)
		}
	}
}
