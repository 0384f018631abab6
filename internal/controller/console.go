package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/aryanadla/twinTrim/internal/model"
)

// namedColors maps the color names accepted on the command line to ANSI
// palette entries.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// colorByName resolves a user-supplied color: a known name, otherwise the
// value is passed through (hex colors like "#aaaaaa").
func colorByName(name string) lipgloss.Color {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}

	return lipgloss.Color(name)
}

// ConsoleUI renders to a writer using lipgloss colors, a bubbles progress bar
// and a tablewriter summary table.
type ConsoleUI struct {
	out         io.Writer
	interactive bool

	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style

	bar      progress.Model
	barShown bool

	// prompt runs the interactive selection; swapped out in tests.
	prompt func(set m.DuplicateSet) (Selection, error)
}

// ConsoleOption configures a ConsoleUI.
type ConsoleOption func(*ConsoleUI)

// WithInteractive enables the checkbox prompt (TTY runs only).
func WithInteractive(interactive bool) ConsoleOption {
	return func(c *ConsoleUI) {
		c.interactive = interactive
	}
}

// WithLabelColor sets the progress-bar label color.
func WithLabelColor(color string) ConsoleOption {
	return func(c *ConsoleUI) {
		c.label = lipgloss.NewStyle().Foreground(colorByName(color))
	}
}

// WithBarColor sets the progress-bar fill color.
func WithBarColor(color string) ConsoleOption {
	return func(c *ConsoleUI) {
		c.bar = progress.New(
			progress.WithSolidFill(string(colorByName(color))),
			progress.WithWidth(progressBarWidth),
			progress.WithoutPercentage(),
		)
	}
}

// WithColorsDisabled strips all styling (non-TTY output, --no-color).
func WithColorsDisabled() ConsoleOption {
	return func(c *ConsoleUI) {
		plain := lipgloss.NewStyle()
		c.info = plain
		c.success = plain
		c.warning = plain
		c.failure = plain
		c.label = plain
	}
}

const progressBarWidth = 30

// NewConsoleUI constructs the default console renderer. The role colors
// follow the original tool: info blue, success green, warnings yellow,
// errors red.
func NewConsoleUI(out io.Writer, opts ...ConsoleOption) *ConsoleUI {
	c := &ConsoleUI{
		out:     out,
		info:    lipgloss.NewStyle().Foreground(namedColors["blue"]),
		success: lipgloss.NewStyle().Foreground(namedColors["green"]),
		warning: lipgloss.NewStyle().Foreground(namedColors["yellow"]),
		failure: lipgloss.NewStyle().Foreground(namedColors["red"]),
		label:   lipgloss.NewStyle().Foreground(namedColors["yellow"]),
		bar: progress.New(
			progress.WithSolidFill("#aaaaaa"),
			progress.WithWidth(progressBarWidth),
			progress.WithoutPercentage(),
		),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.prompt == nil {
		c.prompt = func(set m.DuplicateSet) (Selection, error) {
			return runPrompt(set, c.out)
		}
	}

	return c
}

// Infof prints an informational line.
func (c *ConsoleUI) Infof(format string, args ...any) {
	c.println(c.info, format, args...)
}

// Successf prints a success line.
func (c *ConsoleUI) Successf(format string, args ...any) {
	c.println(c.success, format, args...)
}

// Warnf prints a warning line.
func (c *ConsoleUI) Warnf(format string, args ...any) {
	c.println(c.warning, format, args...)
}

// Errorf prints an error line.
func (c *ConsoleUI) Errorf(format string, args ...any) {
	c.println(c.failure, format, args...)
}

func (c *ConsoleUI) println(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(c.out, style.Render(fmt.Sprintf(format, args...)))
}

// HashProgress redraws the progress bar in place; the final call ends the
// line.
func (c *ConsoleUI) HashProgress(done, total int) {
	if total == 0 {
		return
	}

	c.barShown = true
	ratio := float64(done) / float64(total)
	fmt.Fprintf(c.out, "\r%s %s %d/%d",
		c.label.Render("Hashing files"), c.bar.ViewAs(ratio), done, total)

	if done >= total {
		fmt.Fprintln(c.out)
	}
}

// ShowSummary renders one table row per duplicate set plus totals.
func (c *ConsoleUI) ShowSummary(report m.DuplicateReport) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Original", "Duplicates", "Wasted Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT,
	})

	var totalDuplicates int
	for _, set := range report.Sets {
		table.Append([]string{
			string(set.Original.Path),
			fmt.Sprintf("%d", len(set.Duplicates)),
			fmt.Sprintf("%d", set.WastedBytes()),
		})

		totalDuplicates += len(set.Duplicates)
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d set(s)", len(report.Sets)),
		fmt.Sprintf("%d", totalDuplicates),
		fmt.Sprintf("%d", report.ReclaimableBytes()),
	})

	table.Render()
}

// ShowPreview lists every duplicate with its size, one line each.
func (c *ConsoleUI) ShowPreview(report m.DuplicateReport) {
	for _, set := range report.Sets {
		for _, dup := range set.Duplicates {
			c.Infof("Duplicate: %s (Size: %d bytes)", dup.Path, dup.Size)
		}
	}
}

// SelectDuplicates runs the interactive prompt for one set. Without a
// terminal nothing is selected, which the workflow reports as a canceled
// deletion.
func (c *ConsoleUI) SelectDuplicates(set m.DuplicateSet) (Selection, error) {
	if !c.interactive {
		return Selection{}, nil
	}

	return c.prompt(set)
}
