// Package output renders check results for the terminal and as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"
	"github.com/muesli/termenv"

	"github.com/vertti/devcheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"

	// plain forces the lipgloss styles to render without escape codes.
	plain bool
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI colors for status lines and summary styles.
// Printers created afterwards render plain text.
func DisableColor() {
	green, red, dim, reset = "", "", "", ""
	plain = true
}

// Rule separates the per-check lines from the summary block.
var Rule = strings.Repeat("=", 50)

// Printer writes human-readable check output to w.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

// New creates a Printer. Summary styling is enabled only when w is a
// color-capable terminal.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	applyColorMode(r)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
		ok:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func applyColorMode(r *lipgloss.Renderer) {
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
}

// Header prints the banner shown before the first check.
func (p *Printer) Header(project string) {
	if project == "" {
		_, _ = fmt.Fprintf(p.w, "%s\n\n", p.heading.Render("Checking development environment..."))
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s\n\n", p.heading.Render(fmt.Sprintf("Checking %s development environment...", project)))
}

// PrintResult outputs a check result with colored status. Failed results
// are followed by their remediation hint.
func (p *Printer) PrintResult(r check.Result) {
	if r.OK() {
		_, _ = fmt.Fprintf(p.w, "%s[OK]%s %s\n", green, reset, r.Name)
		p.details("     ", r.Details)
		return
	}

	_, _ = fmt.Fprintf(p.w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	p.details("       ", r.Details)
	if r.Hint != "" {
		_, _ = fmt.Fprintf(p.w, "       %s\n", formatLabel("hint: "+r.Hint))
	}
}

func (p *Printer) details(indent string, details []string) {
	for _, d := range details {
		_, _ = fmt.Fprintf(p.w, "%s%s\n", indent, formatLabel(d))
	}
}

// Summary is the closing block printed after all checks.
type Summary struct {
	Passed    bool
	NextSteps []string // shown when every check passed
	Remedies  []string // one per failed check, in check order
}

// PrintSummary prints the separator rule and the closing block.
func (p *Printer) PrintSummary(s Summary) {
	_, _ = fmt.Fprintf(p.w, "\n%s\n", Rule)

	if s.Passed {
		_, _ = fmt.Fprintln(p.w, p.ok.Render("All checks passed! Your environment is ready."))
		p.bullets("You can now run:", s.NextSteps)
		return
	}

	_, _ = fmt.Fprintln(p.w, p.fail.Render("Some checks failed. Please fix the issues above."))
	p.bullets("Required setup:", s.Remedies)
}

func (p *Printer) bullets(title string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(p.w, "\n%s\n", title)
	for _, item := range items {
		_, _ = fmt.Fprintf(p.w, "  • %s\n", item)
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}

// JSONReport is the machine-readable form of a run.
type JSONReport struct {
	Status string      `json:"status"`
	Checks []JSONCheck `json:"checks"`
}

// JSONCheck is a single check result for JSON output.
type JSONCheck struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Details []string `json:"details,omitempty"`
	Hint    string   `json:"hint,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// WriteJSON encodes results, in order, together with the aggregate status.
func WriteJSON(w io.Writer, results []check.Result, passed bool) error {
	report := JSONReport{
		Status: "fail",
		Checks: make([]JSONCheck, len(results)),
	}
	if passed {
		report.Status = "pass"
	}

	for i, r := range results {
		c := JSONCheck{
			Name:    r.Name,
			Status:  strings.ToLower(string(r.Status)),
			Details: r.Details,
		}
		if !r.OK() {
			c.Hint = r.Hint
			if r.Err != nil {
				c.Error = r.Err.Error()
			}
		}
		report.Checks[i] = c
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
