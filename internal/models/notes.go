package models

// Notes is the structured result returned by the note generator.
// None of the fields are guaranteed to be non-empty.
type Notes struct {
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	NotesContent string `json:"notes_content"`
}

// LatexNotes is returned when the generator is asked for LaTeX directly.
type LatexNotes struct {
	Summary      string `json:"summary"`
	LatexContent string `json:"latex_content"`
}

// Document is a rendered output ready to be written or returned.
type Document struct {
	Format  Format
	Title   string
	Content []byte
}
