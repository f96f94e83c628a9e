package golay

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Text measurement for fit-content components. Content measurement is the
// caller's business in general; this file provides the common case, sizing a
// block of text by terminal cells or glyph advances.

// StringWidth returns the display width of a string in cells, grapheme-aware
// so CJK and emoji sequences count correctly.
func StringWidth(s string) int {
	width := 0
	g := graphemes.FromString(s)
	for g.Next() {
		width += graphemeWidth(g.Value())
	}
	return width
}

func graphemeWidth(g string) int {
	w := runewidth.StringWidth(g)
	// A ZWJ sequence renders as one glyph; don't count each component.
	if w > 2 && strings.ContainsRune(g, '‍') {
		return 2
	}
	return w
}

// WrapText wraps text to fit within maxWidth display cells. Existing
// newlines are preserved. Breaks happen at the last space in the window,
// falling back to a hard break when the only space sits in the first half
// of the window; hard breaks never split a grapheme.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if StringWidth(line) <= maxWidth {
			out = append(out, line)
			continue
		}

		remaining := line
		for StringWidth(remaining) > maxWidth {
			breakAt := wrapPoint(remaining, maxWidth)
			out = append(out, strings.TrimRight(remaining[:breakAt], " "))
			remaining = strings.TrimLeft(remaining[breakAt:], " ")
		}
		if remaining != "" {
			out = append(out, remaining)
		}
	}
	return out
}

// wrapPoint returns the byte offset to break line at so the prefix fits in
// maxWidth cells.
func wrapPoint(line string, maxWidth int) int {
	width := 0
	offset := 0
	lastSpace := -1
	widthAtSpace := 0

	g := graphemes.FromString(line)
	for g.Next() {
		gv := g.Value()
		gw := graphemeWidth(gv)
		if width+gw > maxWidth && offset > 0 {
			if lastSpace > 0 && widthAtSpace >= maxWidth/2 {
				return lastSpace
			}
			return offset
		}
		if gv == " " {
			lastSpace = offset
			widthAtSpace = width
		}
		offset += len(gv)
		width += gw
	}
	return offset
}

// TextMeasurer converts text content into a pixel natural size, for use as
// an Engine's fit-content hook.
type TextMeasurer struct {
	CellWidth  float64 // pixel advance of one cell; 0 = 8
	LineHeight float64 // pixel height of one line; 0 = 2 * CellWidth
	WrapWidth  float64 // wrap limit in pixels; 0 = never wrap
}

// Measure returns the natural pixel size of a block of text.
func (m TextMeasurer) Measure(text string) Size {
	cellWidth := m.CellWidth
	if cellWidth <= 0 {
		cellWidth = 8
	}
	lineHeight := m.LineHeight
	if lineHeight <= 0 {
		lineHeight = 2 * cellWidth
	}

	var lines []string
	if m.WrapWidth > 0 {
		lines = WrapText(text, int(m.WrapWidth/cellWidth))
	} else {
		lines = strings.Split(text, "\n")
	}

	maxWidth := 0
	for _, line := range lines {
		if w := StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return Size{
		Width:  float64(maxWidth) * cellWidth,
		Height: float64(len(lines)) * lineHeight,
	}
}

// NaturalSizeFromText builds an engine natural-size hook over a table of
// per-component text content.
func NaturalSizeFromText(texts map[ComponentID]string, m TextMeasurer) NaturalSizeFunc {
	return func(id ComponentID) (Size, bool) {
		text, ok := texts[id]
		if !ok {
			return Size{}, false
		}
		return m.Measure(text), true
	}
}
