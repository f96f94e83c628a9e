package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/germtb/golay"
)

// topologyFile is the JSON shape of --monitors.
type topologyFile struct {
	Monitors []golay.Monitor  `json:"monitors"`
	Groups   map[string][]int `json:"groups,omitempty"`
}

// treeFile is the JSON shape of --tree: nodes listed parent before child.
type treeFile struct {
	Nodes []treeNode `json:"nodes"`
}

type treeNode struct {
	ID     golay.ComponentID `json:"id"`
	Parent golay.ComponentID `json:"parent,omitempty"`
	Text   string            `json:"text,omitempty"`
}

// session bundles everything one resolution run needs.
type session struct {
	engine   *golay.Engine
	registry *golay.Registry
	order    []golay.ComponentID
	parents  map[golay.ComponentID]golay.ComponentID
	mode     golay.LayoutMode
	affinity golay.Affinity
	warnings []golay.ThemeWarning
}

func loadSession() (*session, error) {
	if treePath == "" {
		return nil, fmt.Errorf("--tree is required")
	}

	var tree treeFile
	if err := readJSON(treePath, &tree); err != nil {
		return nil, err
	}
	if len(tree.Nodes) == 0 {
		return nil, fmt.Errorf("%s: tree has no nodes", treePath)
	}

	mode := golay.LayoutMode(modeFlag)
	switch mode {
	case golay.Unified, golay.Separate, golay.Mixed:
	default:
		return nil, fmt.Errorf("unknown mode %q", modeFlag)
	}

	s := &session{
		registry: golay.NewRegistry(),
		mode:     mode,
		affinity: golay.Affinity{Monitor: monitorFlag, Group: groupFlag},
		parents:  map[golay.ComponentID]golay.ComponentID{},
	}

	texts := map[golay.ComponentID]string{}
	for _, node := range tree.Nodes {
		s.order = append(s.order, node.ID)
		if node.Parent != "" {
			s.parents[node.ID] = node.Parent
		}
		if node.Text != "" {
			texts[node.ID] = node.Text
		}
	}

	s.engine = golay.NewEngine(golay.EngineOptions{
		NaturalSize: golay.NaturalSizeFromText(texts, golay.TextMeasurer{}),
		Resolve:     golay.ResolveOptions{StrictEdgeSize: strictFlag},
	})

	if themePath != "" {
		theme, table, warnings, err := golay.LoadThemeFile(themePath)
		if err != nil {
			return nil, err
		}
		s.engine.SetBaseSize(theme.BaseSize)
		s.engine.SetProps(table)
		s.warnings = warnings
	}

	if monitorsPath != "" {
		var topo topologyFile
		if err := readJSON(monitorsPath, &topo); err != nil {
			return nil, err
		}
		s.registry.SetMonitors(topo.Monitors)
		if topo.Groups != nil {
			s.registry.SetGroups(topo.Groups)
		}
	} else {
		// No topology given: a plain 1080p desktop.
		s.registry.SetMonitors([]golay.Monitor{
			{ID: 1, Width: 1920, Height: 1080, Scale: 1, Refresh: 60, Primary: true},
		})
	}

	return s, nil
}

func (s *session) rootRect() (golay.Rect, error) {
	rect, ok := s.registry.RootRect(s.mode, s.affinity)
	if !ok {
		return golay.Rect{}, fmt.Errorf("no root rect for mode %s (monitor %d, group %q)", s.mode, s.affinity.Monitor, s.affinity.Group)
	}
	return rect, nil
}

func (s *session) resolve() golay.PassResult {
	rect, err := s.rootRect()
	if err != nil {
		// Resolve against an empty space; every node degrades visibly.
		rect = golay.Rect{}
	}
	return s.engine.ResolveTree(s.order, func(id golay.ComponentID) (golay.ComponentID, bool) {
		parent, ok := s.parents[id]
		return parent, ok
	}, rect)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
