package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - slate and graphite with signal colors
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Slate    = lipgloss.Color("#708090")
	Graphite = lipgloss.Color("#4A5059")
	Chalk    = lipgloss.Color("#ECEFF1")

	Blue   = lipgloss.Color("#4F8EF7") // headers, panels
	Cyan   = lipgloss.Color("#56C7E0") // paths and commands
	Green  = lipgloss.Color("#5BD68D")
	Yellow = lipgloss.Color("#F2C94C")
	Red    = lipgloss.Color("#EB5757")

	Gray     = lipgloss.Color("#A0A8B0")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Chalk)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Code is used for paths and commands
	Code = lipgloss.NewStyle().
		Foreground(Cyan)
)

// ═══════════════════════════════════════════════════════════════════════════════
// HEADERS AND PANELS
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the one-line brand mark
func Logo(version string) string {
	if !IsTTY {
		return "slatekore " + version
	}
	mark := lipgloss.NewStyle().Foreground(Blue).Render("🧠")
	name := lipgloss.NewStyle().Foreground(Blue).Bold(true).Render("Slatekore")
	ver := lipgloss.NewStyle().Foreground(Slate).Render("v" + version)
	return fmt.Sprintf("%s %s %s", mark, name, ver)
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := clampWidth()

	titleStyled := Title.Render(title)
	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft, padRight = 0, 0
	}

	left := lipgloss.NewStyle().Foreground(Graphite).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(Graphite).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// Panel wraps body in a rounded box with an optional title line.
func Panel(title, body string, border lipgloss.Color) string {
	content := body
	if title != "" {
		content = Render(Subtitle, title) + "\n\n" + body
	}
	if !IsTTY {
		return content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return Render(lipgloss.NewStyle().Foreground(Graphite), strings.Repeat("─", width))
}

// PageFooter closes a command's output
func PageFooter() string {
	if !IsTTY {
		return ""
	}
	return Divider(clampWidth())
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINES
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	return fmt.Sprintf("  %s %s", iconStyled, message)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// FailLine creates a failed-check status line
func FailLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  FAIL: %s", message)
	}
	return StatusLine("✗", message, Red)
}

// HintLine renders an indented hint under a status line
func HintLine(message string) string {
	return "    " + Render(Dim, "→ "+message)
}

// Bullet renders one list item
func Bullet(text string, color lipgloss.Color) string {
	if !IsTTY {
		return "  - " + text
	}
	return "  " + lipgloss.NewStyle().Foreground(color).Render("•") + " " + text
}

// ErrorMessage formats a fatal error for stderr
func ErrorMessage(err error) string {
	return Render(Error, "Error:") + " " + err.Error()
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ═══════════════════════════════════════════════════════════════════════════════

var titleCaser = cases.Title(language.English)

// Humanize turns a document name such as "daily-setup" into "Daily Setup"
func Humanize(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func clampWidth() int {
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	return width
}
