package models

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatHTML  Format = "html"
	FormatLatex Format = "latex"
	FormatDocx  Format = "docx"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name case-insensitively. "tex" is an alias for latex.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "latex", "tex":
		return FormatLatex, nil
	case "docx":
		return FormatDocx, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension, including the dot, for the format.
func (f Format) Extension() string {
	switch f {
	case FormatLatex:
		return ".tex"
	case FormatDocx:
		return ".docx"
	default:
		return ".html"
	}
}
