package golay

import (
	"fmt"
	"math"
)

// ResolveOptions tunes resolution policy.
type ResolveOptions struct {
	// StrictEdgeSize makes supplying both opposing edges and an explicit size
	// on the same axis a per-node error. By default the edge pair wins and
	// the explicit size is ignored.
	StrictEdgeSize bool
}

// ResolveNode computes a component's absolute rect from its layout spec, its
// parent's already-resolved rect and the theme base size. natural is the
// externally measured content size, consulted only in fit-content mode.
//
// The two axes resolve independently. A failed axis fails the whole node;
// callers substitute a zero-size rect (see Engine.ResolveTree).
func ResolveNode(props LayoutProps, parent Rect, base float64, natural Size, opts ResolveOptions) (Rect, error) {
	x, w, err := resolveAxis(props.horizontal(), props.Size, parent.X, parent.Width, base, natural.Width, opts)
	if err != nil {
		return Rect{}, fmt.Errorf("horizontal: %w", err)
	}
	y, h, err := resolveAxis(props.vertical(), props.Size, parent.Y, parent.Height, base, natural.Height, opts)
	if err != nil {
		return Rect{}, fmt.Errorf("vertical: %w", err)
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// resolveAxis turns one axis of a layout spec into an absolute offset and
// extent. origin/extent describe the parent's content box on this axis.
//
// Derivation order: fill mode short-circuits; otherwise an edge pair derives
// the size (beating an explicit size unit), then an explicit size, then the
// remaining parent space. Constraints are applied after derivation, and the
// position is computed last so the anchored edge keeps its resolved value
// while the opposite edge absorbs the clamping delta.
func resolveAxis(ax axisSpec, mode SizeMode, origin, extent, base, natural float64, opts ResolveOptions) (pos, size float64, err error) {
	if mode == SizeFill {
		size, err = clampExtent(extent, ax.min, ax.max, base, extent)
		return origin, size, err
	}

	var lead, trail float64
	hasLead := ax.lead != nil
	hasTrail := ax.trail != nil
	if hasLead {
		lead = ax.lead.Resolve(base, extent)
	}
	if hasTrail {
		trail = ax.trail.Resolve(base, extent)
	}

	// anchorTrail marks the trailing edge (right/bottom) as the one that must
	// keep its resolved value. The leading edge always wins when both are
	// explicit.
	anchorTrail := false

	switch {
	case mode == SizeFitContent:
		size = natural
		anchorTrail = hasTrail && !hasLead
	case hasLead && hasTrail:
		if ax.size != nil && opts.StrictEdgeSize {
			return 0, 0, ErrConflictingAxis
		}
		size = extent - lead - trail
	case ax.size != nil:
		size = ax.size.Resolve(base, extent)
		anchorTrail = hasTrail
	case hasLead:
		// No explicit size: occupy the rest of the parent.
		size = extent - lead
	case hasTrail:
		size = extent - trail
		anchorTrail = true
	default:
		size = extent
	}

	size, err = clampExtent(size, ax.min, ax.max, base, extent)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case anchorTrail:
		pos = origin + extent - trail - size
	case hasLead:
		pos = origin + lead
	default:
		pos = origin
	}
	return pos, size, nil
}

// clampExtent applies min/max constraints to a derived size. With no explicit
// minimum the floor is 0, so a contradictory but sign-valid spec degrades to
// an empty extent instead of erroring. An explicit minimum wins over a lower
// maximum; an explicit maximum below zero beats the implicit floor, which is
// how a malformed spec reaches ErrNegativeExtent.
func clampExtent(size float64, minU, maxU *Unit, base, extent float64) (float64, error) {
	lo := 0.0
	hi := math.Inf(1)
	if minU != nil {
		lo = minU.Resolve(base, extent)
	}
	if maxU != nil {
		hi = maxU.Resolve(base, extent)
	}

	var s float64
	switch {
	case lo <= hi:
		s = min(max(size, lo), hi)
	case minU != nil:
		s = lo
	default:
		s = hi
	}

	if s < 0 {
		return 0, fmt.Errorf("%w: %g after clamping", ErrNegativeExtent, s)
	}
	return s, nil
}
