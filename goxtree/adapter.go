// Package goxtree adapts gox component trees to the inputs the golay engine
// expects: a parent-before-child traversal order, a parent lookup and
// per-node text content for fit-content measurement.
package goxtree

import (
	"strconv"

	"github.com/germtb/golay"
	"github.com/germtb/gox"
)

// Tree is a flattened view of a gox VNode tree.
type Tree struct {
	// Order lists component ids parent before child, ready for
	// Engine.ResolveTree.
	Order []golay.ComponentID

	parents map[golay.ComponentID]golay.ComponentID
	texts   map[golay.ComponentID]string
}

// Flatten expands functional components and walks the tree depth-first.
// A node takes its id from its "id" prop; nodes without one (and nodes whose
// id was already taken) get a positional id like "0.2.1". Fragments
// contribute their children but no node of their own, and text nodes fold
// into their parent's text content instead of becoming components.
func Flatten(root gox.VNode) *Tree {
	t := &Tree{
		parents: map[golay.ComponentID]golay.ComponentID{},
		texts:   map[golay.ComponentID]string{},
	}
	t.walk(expand(root), "", false, "0")
	return t
}

// Parent looks up a node's parent id. ok is false for the root. Pass it to
// Engine.ResolveTree as the parent lookup.
func (t *Tree) Parent(id golay.ComponentID) (golay.ComponentID, bool) {
	parent, ok := t.parents[id]
	return parent, ok
}

// Text returns the text content collected under a node.
func (t *Tree) Text(id golay.ComponentID) (string, bool) {
	text, ok := t.texts[id]
	return text, ok
}

// NaturalSize builds an engine fit-content hook that measures each node's
// collected text content.
func (t *Tree) NaturalSize(m golay.TextMeasurer) golay.NaturalSizeFunc {
	return golay.NaturalSizeFromText(t.texts, m)
}

func (t *Tree) walk(node gox.VNode, parent golay.ComponentID, hasParent bool, path string) {
	if isFragment(node) {
		for i, child := range node.Children {
			t.walk(child, parent, hasParent, path+"."+strconv.Itoa(i))
		}
		return
	}
	if isText(node) {
		return
	}

	id := t.claimID(node, path)
	t.Order = append(t.Order, id)
	if hasParent {
		t.parents[id] = parent
	}
	if text := collectText(node); text != "" {
		t.texts[id] = text
	}

	for i, child := range node.Children {
		t.walk(child, id, true, path+"."+strconv.Itoa(i))
	}
}

// claimID prefers the node's "id" prop, falling back to the positional path
// when absent or already taken by an earlier node.
func (t *Tree) claimID(node gox.VNode, path string) golay.ComponentID {
	if s, ok := node.Props["id"].(string); ok && s != "" {
		id := golay.ComponentID(s)
		if !t.seen(id) {
			return id
		}
	}
	return golay.ComponentID(path)
}

func (t *Tree) seen(id golay.ComponentID) bool {
	if _, ok := t.parents[id]; ok {
		return true
	}
	for _, existing := range t.Order {
		if existing == id {
			return true
		}
	}
	return false
}

// expand recursively renders functional components into intrinsic nodes.
func expand(v gox.VNode) gox.VNode {
	if _, ok := v.Type.(string); ok {
		if len(v.Children) == 0 {
			return v
		}
		children := make([]gox.VNode, len(v.Children))
		for i, child := range v.Children {
			children[i] = expand(child)
		}
		return gox.VNode{Type: v.Type, Props: v.Props, Children: children}
	}

	if comp, ok := v.Type.(gox.Component); ok {
		props := gox.Props{}
		for k, val := range v.Props {
			props[k] = val
		}
		props["children"] = v.Children
		return expand(comp(props))
	}

	return v
}

func isText(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && s == gox.TextNodeType
}

func isFragment(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && (s == "fragment" || s == gox.FragmentNodeType)
}

// collectText gathers the text content of a node's direct and fragment-
// nested text children. Text under a nested component belongs to that
// component, not this one.
func collectText(v gox.VNode) string {
	out := ""
	for _, child := range v.Children {
		if isText(child) {
			out += textContent(child)
			continue
		}
		if isFragment(child) {
			out += collectText(child)
		}
	}
	return out
}

func textContent(v gox.VNode) string {
	if content, ok := v.Props["content"].(string); ok {
		return content
	}
	if text, ok := v.Props["text"].(string); ok {
		return text
	}
	return ""
}
