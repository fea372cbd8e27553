package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/timestamp"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; padding: 20px; max-width: 800px; margin: 0 auto; }
        h1 { color: #2c3e50; }
        h2 { color: #34495e; }
        a { color: #3498db; text-decoration: none; }
        a:hover { text-decoration: underline; }
        .summary { background-color: #ecf0f1; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="summary">
        <h2>Summary</h2>
        <p>{{.Summary}}</p>
    </div>
    <div class="notes-content">
{{.Body}}
    </div>
</body>
</html>
`

var document = template.Must(template.New("notes").Parse(documentTemplate))

type htmlRenderer struct {
	md goldmark.Markdown
}

// NewHTML creates the HTML renderer. Raw HTML in the markdown is kept so
// the timestamp anchors survive conversion.
func NewHTML() Renderer {
	return &htmlRenderer{
		md: goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe())),
	}
}

func (r *htmlRenderer) Format() models.Format {
	return models.FormatHTML
}

func (r *htmlRenderer) Render(in Input) ([]byte, error) {
	body, err := r.Fragment(in.Notes.NotesContent, in.BaseURL)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = document.Execute(&buf, struct {
		Title   string
		Summary string
		Body    template.HTML
	}{
		Title:   in.Notes.Title,
		Summary: in.Notes.Summary,
		Body:    template.HTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("execute html template: %w", err)
	}
	return buf.Bytes(), nil
}

// Fragment links timestamps in markdown and converts it to an HTML fragment.
func (r *htmlRenderer) Fragment(markdown, baseURL string) (string, error) {
	linked := timestamp.Link(markdown, baseURL)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(linked), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
