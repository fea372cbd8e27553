package output

import (
	"fmt"
	"io"
)

// Formatter prints user-facing CLI messages.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Welcome() {
	fmt.Fprintf(f.w, "Welcome to the Class Notes Generator!\n")
}

func (f *Formatter) Prompt(msg string) {
	fmt.Fprintf(f.w, "%s", msg)
}

func (f *Formatter) Generating() {
	fmt.Fprintf(f.w, "\n🤖 Generating class notes... This may take a moment.\n")
}

func (f *Formatter) Saved(path string) {
	fmt.Fprintf(f.w, "\n✅ Class notes saved as: %s\n", path)
}

func (f *Formatter) LatexHint() {
	fmt.Fprintf(f.w, "You can now compile this file using your preferred LaTeX compiler.\n")
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
