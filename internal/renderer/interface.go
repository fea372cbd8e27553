package renderer

import "github.com/nguyentantai21042004/lecture-notes/internal/models"

// Input carries everything a renderer may need. Markdown renderers read
// Notes, the LaTeX renderer reads Latex.
type Input struct {
	Notes   models.Notes
	Latex   models.LatexNotes
	BaseURL string
}

// Renderer produces the bytes of one output format.
type Renderer interface {
	Format() models.Format
	Render(in Input) ([]byte, error)
}
