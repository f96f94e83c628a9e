// Package golay resolves declarative, unit-based layout rules into absolute
// pixel rectangles, aware of a theme's base size, each component's parent
// context and the physical monitor topology.
package golay

import "sync"

// ComponentID identifies one component by id or name.
type ComponentID string

// ParentFunc looks up a node's parent. ok is false for root nodes, which
// resolve against the pass's root rect.
type ParentFunc func(id ComponentID) (parent ComponentID, ok bool)

// NaturalSizeFunc supplies the externally measured natural size used by
// fit-content components. ok is false when nothing measured the node; the
// natural size is then zero. The callback must not depend on other nodes'
// resolved rects.
type NaturalSizeFunc func(id ComponentID) (Size, bool)

// DefaultBaseSize is used when the theme does not supply a base size.
const DefaultBaseSize = 16.0

// EngineOptions configures an Engine.
type EngineOptions struct {
	BaseSize    float64         // theme base scalar; 0 = DefaultBaseSize
	NaturalSize NaturalSizeFunc // fit-content measurement hook; nil = all zero
	Resolve     ResolveOptions
}

// Engine owns the component-id to props table and runs resolution
// passes over externally supplied component trees.
//
// The props table is read-mostly: passes snapshot it under a read lock, theme
// reloads replace it wholesale under the write lock and bump the version.
// A pass started before a reload completes against the old snapshot; callers
// compare Version before and after a pass to decide whether to re-run it.
type Engine struct {
	mu      sync.RWMutex
	props   map[ComponentID]LayoutProps
	base    float64
	version uint64

	natural NaturalSizeFunc
	opts    ResolveOptions
}

// NewEngine creates an engine with an empty props table.
func NewEngine(opts EngineOptions) *Engine {
	base := opts.BaseSize
	if base <= 0 {
		base = DefaultBaseSize
	}
	return &Engine{
		props:   map[ComponentID]LayoutProps{},
		base:    base,
		natural: opts.NaturalSize,
		opts:    opts.Resolve,
	}
}

// SetProps replaces the whole props table, as on a theme reload. The map is
// owned by the engine afterwards and must not be mutated by the caller.
func (e *Engine) SetProps(table map[ComponentID]LayoutProps) {
	if table == nil {
		table = map[ComponentID]LayoutProps{}
	}
	e.mu.Lock()
	e.props = table
	e.version++
	e.mu.Unlock()
	debugf("engine: props table replaced (%d entries)", len(table))
}

// SetBaseSize replaces the theme base size.
func (e *Engine) SetBaseSize(base float64) {
	if base <= 0 {
		base = DefaultBaseSize
	}
	e.mu.Lock()
	e.base = base
	e.version++
	e.mu.Unlock()
}

// Props returns the props for one component and whether the table has an
// entry for it.
func (e *Engine) Props(id ComponentID) (LayoutProps, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.props[id]
	return p, ok
}

// BaseSize returns the current theme base size.
func (e *Engine) BaseSize() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.base
}

// Version returns the props table version. It increases on every SetProps and
// SetBaseSize call.
func (e *Engine) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version
}

// PassResult is the output of one resolution pass.
type PassResult struct {
	// Rects maps every visited component to its resolved rect. Failed nodes
	// carry a zero-size rect at their parent's origin.
	Rects map[ComponentID]Rect

	// Errors collects the per-node failures of the pass, in visit order.
	Errors []NodeError

	// Version is the props table version the pass resolved against.
	Version uint64
}

// ResolveTree runs one resolution pass. order must list nodes parent before
// child; parent looks up each node's parent id; root is the coordinate space
// for parentless nodes, normally obtained from Registry.RootRect.
//
// A per-node failure does not abort the pass: the offending node degrades to
// a zero-size rect at its parent's origin and the error is collected. A node
// whose parent has not been resolved when it is visited (malformed order or
// a cycle) fails with ErrUnresolvedParent and degrades the same way, at the
// root origin.
func (e *Engine) ResolveTree(order []ComponentID, parent ParentFunc, root Rect) PassResult {
	e.mu.RLock()
	props := e.props
	base := e.base
	version := e.version
	e.mu.RUnlock()

	result := PassResult{
		Rects:   make(map[ComponentID]Rect, len(order)),
		Version: version,
	}

	for _, id := range order {
		parentRect := root
		if pid, ok := parent(id); ok {
			resolved, done := result.Rects[pid]
			if !done {
				result.Errors = append(result.Errors, NodeError{ID: id, Err: ErrUnresolvedParent})
				result.Rects[id] = Rect{X: root.X, Y: root.Y}
				continue
			}
			parentRect = resolved
		}

		p, ok := props[id]
		if !ok {
			p = DefaultProps()
		}

		var natural Size
		if p.Size == SizeFitContent && e.natural != nil {
			natural, _ = e.natural(id)
		}

		rect, err := ResolveNode(p, parentRect, base, natural, e.opts)
		if err != nil {
			result.Errors = append(result.Errors, NodeError{ID: id, Err: err})
			rect = Rect{X: parentRect.X, Y: parentRect.Y}
		}
		result.Rects[id] = rect
	}

	debugf("engine: pass v%d resolved %d nodes, %d errors", version, len(result.Rects), len(result.Errors))
	return result
}
