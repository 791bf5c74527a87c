// Package colorprint writes text wrapped in ANSI color escape sequences and
// hosts the console color demo.
package colorprint

// Reset is the name of the sequence that restores default attributes.
const Reset = "reset"

var palette = map[string]string{
	"black":   "\033[30m",
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
	Reset:     "\033[0m",
}

// Code returns the escape sequence for a color name, or "" for names outside
// the palette. Lookups are case-sensitive.
func Code(name string) string {
	return palette[name]
}

// Known reports whether name is in the palette.
func Known(name string) bool {
	_, ok := palette[name]
	return ok
}
