package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/report"
)

// Output format names accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// Rendering constants.
const (
	boxWidth        = 62
	boxTitlePadding = 4

	passLabel = "PASS"
	failLabel = "FAIL"
)

// resolveOutputFormat picks the output format: an explicit --output flag
// wins, a piped stdout falls back to json, and a terminal uses the
// configured format.
func resolveOutputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	flagValue, _ := cmd.Flags().GetString("output")

	format := flagValue
	if format == "" {
		if stdout, ok := cmd.OutOrStdout().(*os.File); ok && !isTerminal(stdout) {
			format = formatJSON
		} else {
			format = cfg.Output.Format
		}
	}

	switch format {
	case formatTable, formatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table or json)", format)
	}
}

// emitReport renders a report envelope: indented JSON in json mode, or the
// engine-specific table renderer in table mode.
func emitReport(cmd *cobra.Command, cfg *config.Config, rep report.Report, renderTable func(io.Writer) error) error {
	format, err := resolveOutputFormat(cmd, cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(w, rep)
	}
	return renderTable(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isWriterTerminal reports whether w is backed by a terminal, enabling
// styled output.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// newPrinter returns a locale-aware printer for numeric output
// (thousands separators on ampacities, BTU figures, annual costs).
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(boxWidth)
}

func passStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
}

func failStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
}

func warnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
}

// statusLabel renders PASS/FAIL, colored when styled.
func statusLabel(compliant, styled bool) string {
	if compliant {
		if styled {
			return passStyle().Render(passLabel)
		}
		return passLabel
	}
	if styled {
		return failStyle().Render(failLabel)
	}
	return failLabel
}

// renderSection writes a titled block: a lipgloss box on terminals, a plain
// underlined heading otherwise.
func renderSection(w io.Writer, title, body string) error {
	if isWriterTerminal(w) {
		content := titleStyle().Render(title) + "\n" +
			strings.Repeat("─", boxWidth-boxTitlePadding) + "\n" + body
		_, err := fmt.Fprintln(w, boxStyle().Render(content))
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", title, strings.Repeat("-", len(title)), body)
	return err
}

// renderWarnings writes warning and recommendation lists beneath a result
// section. Empty slices render nothing.
func renderWarnings(w io.Writer, warnings, recommendations []string) error {
	styled := isWriterTerminal(w)
	for _, warning := range warnings {
		line := "! " + warning
		if styled {
			line = warnStyle().Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, rec := range recommendations {
		if _, err := fmt.Fprintln(w, "> "+rec); err != nil {
			return err
		}
	}
	return nil
}
