package render

import (
	"fmt"
	"io"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
)

// ANSI writes color-styled text for terminals.
type ANSI struct {
	out io.Writer
}

func NewANSI(out io.Writer) *ANSI {
	return &ANSI{out: out}
}

func (a *ANSI) Title(text string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ansiBold+ansiCyan+text+ansiReset)
}

func (a *ANSI) Line(text string) {
	fmt.Fprintln(a.out, text)
}

func (a *ANSI) Success(text string) {
	fmt.Fprintln(a.out, ansiGreen+"✅ "+text+ansiReset)
}

func (a *ANSI) Error(text string) {
	fmt.Fprintln(a.out, ansiRed+"❌ "+text+ansiReset)
}

func (a *ANSI) Prompt(text string) {
	fmt.Fprint(a.out, ansiBold+text+ansiReset)
}
