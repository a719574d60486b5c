package script

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Output formats for WriteReport.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report is the final state of both views.
type Report struct {
	Pending []model.Item `json:"pending"`
	Done    []model.Item `json:"done"`
	Total   int          `json:"total"`
	Result  Result       `json:"result"`
}

// NewReport snapshots s.
func NewReport(s *store.Store, res Result) Report {
	return Report{
		Pending: s.Pending(),
		Done:    s.Done(),
		Total:   s.Len(),
		Result:  res,
	}
}

// TextOptions control the text rendering of a report.
type TextOptions struct {
	Theme         ui.Theme
	PendingTitle  string
	DoneTitle     string
	ProgressWidth int
}

// WriteReport renders rep to w in the given format.
func WriteReport(w io.Writer, rep Report, format string, opt TextOptions) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	case FormatText, "":
		_, err := fmt.Fprintln(w, TextReport(rep, opt))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// TextReport renders rep as a framed panel with header and progress bar.
func TextReport(rep Report, opt TextOptions) string {
	t := opt.Theme
	d, p := len(rep.Done), len(rep.Pending)

	var lines []string
	lines = append(lines, t.Header("Todos", d, p))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, opt.ProgressWidth)))
	lines = append(lines, "")
	lines = append(lines, t.GroupLines(opt.PendingTitle, rep.Pending, opt.DoneTitle, rep.Done)...)
	return t.Panel(lines)
}
