package render

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ozelders/tutormatch/internal/config"
)

// Renderer is the display capability handed to the menu. The core never
// sees it; which implementation is active is decided once at startup.
type Renderer interface {
	// Title prints a section heading.
	Title(text string)
	// Line prints one line of plain output.
	Line(text string)
	// Success prints a confirmation line.
	Success(text string)
	// Error prints a failure line.
	Error(text string)
	// Prompt prints text without a trailing newline.
	Prompt(text string)
}

// Select picks a renderer for the configured display mode. In auto mode
// the rich renderer is used only when out is a terminal.
func Select(mode config.DisplayMode, out *os.File) Renderer {
	switch mode {
	case config.DisplayRich:
		return NewANSI(out)
	case config.DisplayPlain:
		return NewPlain(out)
	default:
		if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
			return NewANSI(out)
		}
		return NewPlain(out)
	}
}
