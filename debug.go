package golay

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// Debug logging for resolution passes. Off by default; enabled by setting
// GOLAY_DEBUG in the environment or by calling SetDebugOutput.

var (
	debugMu  sync.Mutex
	debugOut io.Writer
)

func init() {
	if os.Getenv("GOLAY_DEBUG") != "" {
		debugOut = os.Stderr
	}
}

// SetDebugOutput directs debug logging to w. Passing nil disables it.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	debugOut = w
	debugMu.Unlock()
}

func debugf(format string, args ...any) {
	debugMu.Lock()
	w := debugOut
	debugMu.Unlock()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "golay: "+format+"\n", args...)
}

// DebugPass prints a pass result to stdout for debugging.
func DebugPass(result PassResult) {
	FprintPass(os.Stdout, result)
}

// SprintPass returns a pass result as a string for debugging.
func SprintPass(result PassResult) string {
	var sb strings.Builder
	FprintPass(&sb, result)
	return sb.String()
}

// FprintPass writes a pass result to the given writer, one component per
// line, sorted by id so output is stable.
func FprintPass(w io.Writer, result PassResult) {
	ids := make([]ComponentID, 0, len(result.Rects))
	for id := range result.Rects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	failed := make(map[ComponentID]error, len(result.Errors))
	for _, e := range result.Errors {
		failed[e.ID] = e.Err
	}

	fmt.Fprintf(w, "pass v%d (%d nodes, %d errors)\n", result.Version, len(ids), len(result.Errors))
	for _, id := range ids {
		r := result.Rects[id]
		line := fmt.Sprintf("  %s x=%g y=%g w=%g h=%g", id, r.X, r.Y, r.Width, r.Height)
		if err, ok := failed[id]; ok {
			line += fmt.Sprintf(" error(%v)", err)
		}
		fmt.Fprintln(w, line)
	}
}
