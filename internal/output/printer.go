package output

import (
	"fmt"
	"io"
	"os"
)

type Class int

const (
	Required Class = iota //requested information, i.e. the path listing
	Error
	Normal //warnings and noteworthy facts
	Verbose
)

// Printer routes output by class: Required goes to the terminal, everything else
// to the diagnosis stream so that the terminal output stays machine-readable.
type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

func NewPrinter(include []Class, allowEscapes bool) (p Printer) {
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   os.Stdout,
		diagnosis:  os.Stderr,
		useEscapes: allowEscapes,
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

// Redirect returns a copy of the printer writing to the given streams, nil keeps the current one.
func (p Printer) Redirect(terminal io.Writer, diagnosis io.Writer) Printer {
	if terminal != nil {
		p.terminal = terminal
	}
	if diagnosis != nil {
		p.diagnosis = diagnosis
	}
	return p
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := p.diagnosis
	if class == Required {
		target = p.terminal
	}
	text := fmt.Sprintf(format, values...)
	if p.useEscapes {
		switch class {
		case Error:
			text = TerminalFormatAsError(text)
		case Verbose:
			text = TerminalFormatAsDim(text)
		}
	}
	fmt.Fprint(target, text)
}
