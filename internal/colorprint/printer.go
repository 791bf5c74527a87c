package colorprint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode controls when escape sequences are emitted.
type Mode string

const (
	// ModeAlways colors every print.
	ModeAlways Mode = "always"
	// ModeNever writes bare text.
	ModeNever Mode = "never"
	// ModeAuto colors only when the writer is a terminal.
	ModeAuto Mode = "auto"
)

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAlways, ModeNever, ModeAuto:
		return m, nil
	default:
		return ModeAlways, fmt.Errorf("unknown color mode %q (want always, never or auto)", s)
	}
}

// Printer writes colored text to a writer.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter resolves mode against the writer and the NO_COLOR environment
// variable. A non-empty NO_COLOR disables color in every mode.
func NewPrinter(out io.Writer, mode Mode) *Printer {
	return &Printer{out: out, color: colorEnabled(out, mode)}
}

func colorEnabled(out io.Writer, mode Mode) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case ModeNever:
		return false
	case ModeAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}

// Colored reports whether prints carry escape sequences.
func (p *Printer) Colored() bool {
	return p.color
}

// Print writes text in the named color followed by the reset sequence.
// An unknown name prints the text unstyled, still followed by reset.
func (p *Printer) Print(text, color string) error {
	if !p.color {
		_, err := io.WriteString(p.out, text)
		return err
	}
	_, err := io.WriteString(p.out, Code(color)+text+Code(Reset))
	return err
}
