package generator

import (
	"fmt"
	"strings"
)

// descriptors are indexed by attempt; later attempts ask for shorter notes
// so the answer fits within the model's output limit.
var descriptors = [...]string{"detailed", "", "brief"}

// Descriptor returns the verbosity word for an attempt index.
// Out of range indexes are clamped.
func Descriptor(attempt int) string {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(descriptors) {
		attempt = len(descriptors) - 1
	}
	return descriptors[attempt]
}

const notesSystemPrompt = `You are an AI assistant that generates comprehensive class notes from a given transcript.
The notes should be formatted in markdown.
Respond with a JSON object with the string fields "title", "summary" and "notes_content".`

const notesUserPrompt = `Please analyze the following class transcript and generate %s:

%s

Create well-structured notes with the following guidelines:
1. Use a clear hierarchy with headers and subheaders (use # for main headers, ## for subheaders, etc.)
2. Include timestamps for all bullets in your notes (format: [HH:MM:SS] or [MM:SS] or [H:MM:SS])
3. Use bullet points for lists
4. Bold important terms or concepts
5. Include a brief summary at the beginning

Format the notes in markdown so they can be easily converted to HTML.

Make sure NOT to exceed the output limit.`

const latexSystemPrompt = `You are an AI assistant that generates comprehensive class notes in LaTeX format from a given transcript.
Analyze the transcript carefully and extract the most important information.
Respond with a JSON object with the string fields "summary" and "latex_content".`

const latexUserPrompt = `Please analyze the following class transcript and generate %s in LaTeX format:

%s

Create a complete, compilable LaTeX document (from \documentclass to \end{document}).
Include timestamps from the video for major sections and headers in your notes.
Use appropriate LaTeX commands and environments to structure the document.

Make sure NOT to exceed the output limit.`

// SystemPrompt is the system instruction for markdown notes.
func SystemPrompt() string {
	return notesSystemPrompt
}

// UserPrompt builds the user instruction for markdown notes.
func UserPrompt(transcript string, attempt int) string {
	return fmt.Sprintf(notesUserPrompt, notesPhrase(attempt), transcript)
}

// LatexSystemPrompt is the system instruction for LaTeX notes.
func LatexSystemPrompt() string {
	return latexSystemPrompt
}

// LatexUserPrompt builds the user instruction for LaTeX notes.
func LatexUserPrompt(transcript string, attempt int) string {
	return fmt.Sprintf(latexUserPrompt, notesPhrase(attempt), transcript)
}

func notesPhrase(attempt int) string {
	return strings.TrimSpace(Descriptor(attempt) + " notes")
}
