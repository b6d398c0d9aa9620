package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"

	"lifespan-ca/internal/ui"
)

// Reporter prints run progress as status lines, coloured when enabled.
type Reporter struct {
	w   io.Writer
	au  aurora.Aurora
	sim string
}

// NewReporter writes to w. Colours are emitted only when color is true.
func NewReporter(w io.Writer, sim string, color bool) *Reporter {
	return &Reporter{w: w, au: aurora.NewAurora(color), sim: sim}
}

// Started announces the run.
func (r *Reporter) Started(seed int64) {
	fmt.Fprintf(r.w, "%s simulation started, seed %v\n", r.au.Bold(r.sim), r.au.Cyan(seed))
}

// Report prints one status. It can be passed directly to Runner.Run.
func (r *Reporter) Report(st Status) {
	if !st.Done() {
		fmt.Fprintf(r.w, "%s %s\n", r.au.Colorize("running", aurora.CyanFg), ui.StatusLine(st.Generation, st.Alive))
		return
	}
	fmt.Fprintf(r.w, "%s %s, total running time: %v\n",
		r.reason(st.Reason), ui.StatusLine(st.Generation, st.Alive), st.Elapsed.Round(time.Millisecond))
}

func (r *Reporter) reason(reason StopReason) aurora.Value {
	switch reason {
	case StopExtinct:
		return r.au.Colorize("extinct", aurora.RedFg)
	case StopLimit:
		return r.au.Colorize("finished", aurora.GreenFg)
	default:
		return r.au.Colorize(string(reason), aurora.YellowFg)
	}
}
