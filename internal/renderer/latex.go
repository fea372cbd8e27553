package renderer

import "github.com/nguyentantai21042004/lecture-notes/internal/models"

type latexRenderer struct{}

// NewLatex creates a renderer that emits the model's LaTeX source unchanged.
func NewLatex() Renderer {
	return latexRenderer{}
}

func (latexRenderer) Format() models.Format {
	return models.FormatLatex
}

func (latexRenderer) Render(in Input) ([]byte, error) {
	return []byte(in.Latex.LatexContent), nil
}
