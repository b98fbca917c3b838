package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/githot/pkg/integrations/github"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconEmpty   = "—"
)

// =============================================================================
// Status Output
// =============================================================================

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Board Tables
// =============================================================================

// repoRows converts repository slots into table rows. A nil slot is an
// empty row so the table keeps its fixed height.
func repoRows(slots []*github.RepoSummary) [][]string {
	rows := make([][]string, len(slots))
	for i, r := range slots {
		if r == nil {
			rows[i] = []string{strconv.Itoa(i + 1), iconEmpty, "", "", ""}
			continue
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.FullName,
			strconv.Itoa(r.Stars),
			orEmpty(r.Language),
			truncate(r.Description, 48),
		}
	}
	return rows
}

// userRows converts user slots into table rows.
func userRows(slots []*github.UserDetail) [][]string {
	rows := make([][]string, len(slots))
	for i, u := range slots {
		if u == nil {
			rows[i] = []string{strconv.Itoa(i + 1), iconEmpty, "", "", ""}
			continue
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			u.Login,
			orEmpty(u.Name),
			strconv.Itoa(u.Followers),
			strconv.Itoa(u.PublicRepos),
		}
	}
	return rows
}

func renderRepoTable(slots []*github.RepoSummary) string {
	return newTable(repoRows(slots), "#", "Repository", "Stars", "Lang", "Description")
}

func renderUserTable(slots []*github.UserDetail) string {
	return newTable(userRows(slots), "#", "Login", "Name", "Followers", "Repos")
}

func newTable(rows [][]string, headers ...string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case rows[row][1] == iconEmpty:
				return StyleDim
			case col == 0:
				return StyleDim
			case col == 2 && headers[2] == "Stars", col == 3 && headers[3] == "Followers":
				return StyleNumber
			}
			return StyleValue
		})
	return t.Render()
}

// orEmpty returns s, or a dash for an empty string.
func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return iconEmpty
	}
	return s
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
