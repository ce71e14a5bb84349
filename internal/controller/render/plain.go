package render

import (
	"fmt"
	"io"
)

// Plain writes unstyled text. It is the fallback for non-terminal output.
type Plain struct {
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Title(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, text)
}

func (p *Plain) Line(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *Plain) Success(text string) {
	fmt.Fprintln(p.out, "✅ "+text)
}

func (p *Plain) Error(text string) {
	fmt.Fprintln(p.out, "❌ "+text)
}

func (p *Plain) Prompt(text string) {
	fmt.Fprint(p.out, text)
}
