package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/germtb/golay"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type jsonResult struct {
	Root     golay.Rect                       `json:"root"`
	Version  uint64                           `json:"version"`
	Rects    map[golay.ComponentID]golay.Rect `json:"rects"`
	Errors   []string                         `json:"errors,omitempty"`
	Warnings []string                         `json:"warnings,omitempty"`
}

func printResult(w io.Writer, s *session, result golay.PassResult) error {
	root, err := s.rootRect()
	if err != nil {
		fmt.Fprintln(w, errStyle.Render(err.Error()))
	}

	if jsonOut {
		out := jsonResult{
			Root:    root,
			Version: result.Version,
			Rects:   result.Rects,
		}
		for _, nodeErr := range result.Errors {
			out.Errors = append(out.Errors, nodeErr.Error())
		}
		for _, warning := range s.warnings {
			out.Warnings = append(out.Warnings, warning.String())
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, warning := range s.warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+warning.String()))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(
		"pass v%d  root %s  mode %s", result.Version, formatRect(root), s.mode)))

	failed := map[golay.ComponentID]error{}
	for _, nodeErr := range result.Errors {
		failed[nodeErr.ID] = nodeErr.Err
	}

	for _, id := range s.order {
		rect, ok := result.Rects[id]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s %s", idStyle.Render(string(id)), formatRect(rect))
		if parent, ok := s.parents[id]; ok {
			line += dimStyle.Render(" < " + string(parent))
		}
		if nodeErr, ok := failed[id]; ok {
			line += " " + errStyle.Render(nodeErr.Error())
		}
		fmt.Fprintln(w, line)
	}

	if previewOut {
		fmt.Fprintln(w)
		fmt.Fprint(w, preview(s, result, root))
	}
	return nil
}

func formatRect(r golay.Rect) string {
	return fmt.Sprintf("(%g, %g) %gx%g", r.X, r.Y, r.Width, r.Height)
}

// preview renders the resolved rects as nested ASCII boxes, scaled to fit a
// fixed character grid.
const (
	previewCols = 78
	previewRows = 24
)

func preview(s *session, result golay.PassResult, root golay.Rect) string {
	if root.Empty() {
		return dimStyle.Render("(empty root, nothing to preview)\n")
	}

	scaleX := float64(previewCols) / root.Width
	scaleY := float64(previewRows) / root.Height

	grid := make([][]rune, previewRows+1)
	for y := range grid {
		grid[y] = make([]rune, previewCols+1)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Paint parents before children so children draw on top.
	ids := make([]golay.ComponentID, 0, len(result.Rects))
	ids = append(ids, s.order...)
	sort.SliceStable(ids, func(i, j int) bool { return depth(s, ids[i]) < depth(s, ids[j]) })

	for _, id := range ids {
		rect, ok := result.Rects[id]
		if !ok || rect.Empty() {
			continue
		}
		x0 := int((rect.X - root.X) * scaleX)
		y0 := int((rect.Y - root.Y) * scaleY)
		x1 := int((rect.Right() - root.X) * scaleX)
		y1 := int((rect.Bottom() - root.Y) * scaleY)
		drawBox(grid, x0, y0, x1, y1, string(id))
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func depth(s *session, id golay.ComponentID) int {
	d := 0
	for {
		parent, ok := s.parents[id]
		if !ok {
			return d
		}
		id = parent
		d++
	}
}

func drawBox(grid [][]rune, x0, y0, x1, y1 int, label string) {
	x0 = clamp(x0, 0, previewCols)
	x1 = clamp(x1, 0, previewCols)
	y0 = clamp(y0, 0, previewRows)
	y1 = clamp(y1, 0, previewRows)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for x := x0; x <= x1; x++ {
		grid[y0][x] = '─'
		grid[y1][x] = '─'
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = '│'
		grid[y][x1] = '│'
	}
	grid[y0][x0] = '┌'
	grid[y0][x1] = '┐'
	grid[y1][x0] = '└'
	grid[y1][x1] = '┘'

	for i, r := range label {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		grid[y0][x] = r
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
