package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*\+]\s+(.+)$`)
)

type docxRenderer struct{}

// NewDocx creates a renderer producing a styled Word document. Timestamps
// stay as plain bracketed text.
func NewDocx() Renderer {
	return docxRenderer{}
}

func (docxRenderer) Format() models.Format {
	return models.FormatDocx
}

func (docxRenderer) Render(in Input) ([]byte, error) {
	dir, err := os.MkdirTemp("", "notes-docx-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "notes.docx")
	if err := markdownToDocx(in.Notes, path); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	return data, nil
}

// markdownToDocx writes title, summary and the markdown body as styled paragraphs.
func markdownToDocx(notes models.Notes, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if notes.Title != "" {
		addStyledRun(doc.AddParagraph(""), notes.Title, true, 16)
	}
	if notes.Summary != "" {
		addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
		addRichText(doc.AddParagraph(""), notes.Summary)
	}

	for _, line := range strings.Split(notes.NotesContent, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			indent := strings.Repeat("    ", indentLevel(line))
			addRichText(doc.AddParagraph(""), indent+"• "+m[1])
			continue
		}

		// numbered items keep their number
		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

// indentLevel counts nesting from leading spaces, two per level; a tab is one level.
func indentLevel(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 2
		default:
			return n / 2
		}
	}
	return n / 2
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
