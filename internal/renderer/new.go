package renderer

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

// New returns the renderer for format.
func New(format models.Format) (Renderer, error) {
	switch format {
	case models.FormatHTML:
		return NewHTML(), nil
	case models.FormatLatex:
		return NewLatex(), nil
	case models.FormatDocx:
		return NewDocx(), nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, format)
	}
}
