// Package report renders validation reports as markdown, styled with
// glamour when stdout is a terminal and left plain otherwise.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/pkg/domain"
)

// Markdown renders the report as plain markdown.
func Markdown(icon string, category domain.Category, report *iconlint.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Validation report: `%s` (%s)\n\n", icon, category)

	verdict := "✅ valid"
	if !report.IsValid() {
		verdict = "❌ invalid"
	}
	fmt.Fprintf(&b, "**Verdict:** %s\n", verdict)

	section(&b, "Structure", report.Structure)
	section(&b, "Sizing", report.Sizing)
	section(&b, "Naming", report.Naming)
	return b.String()
}

func section(b *strings.Builder, title string, result *domain.ValidationResult) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	if result.IsValid && len(result.Warnings) == 0 {
		b.WriteString("OK\n")
		return
	}
	for _, e := range result.Errors {
		if e.Node != "" {
			fmt.Fprintf(b, "- **error** (`%s`): %s\n", e.Node, indentContinuations(e.Message))
		} else {
			fmt.Fprintf(b, "- **error**: %s\n", indentContinuations(e.Message))
		}
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(b, "- warning: %s\n", indentContinuations(w.Message))
	}
}

// indentContinuations keeps multi-line messages (the numbered remediation
// checklist) inside their list item.
func indentContinuations(msg string) string {
	return strings.ReplaceAll(msg, "\n", "\n  ")
}

// Verdict renders a one-line colored verdict for terminal output.
func Verdict(valid bool) string {
	p := termenv.ColorProfile()
	if valid {
		return termenv.String("valid ✅").Foreground(p.Color("#22c55e")).String()
	}
	return termenv.String("invalid ❌").Foreground(p.Color("#ef4444")).String()
}

// Render returns the report styled for the current stdout: glamour when
// attached to a terminal, raw markdown when piped.
func Render(icon string, category domain.Category, report *iconlint.Report) string {
	md := Markdown(icon, category, report)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
