package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/output"
)

// prompter asks questions on the command's stdin.
type prompter struct {
	in  *bufio.Reader
	out *output.Formatter
}

func newPrompter(in io.Reader, out *output.Formatter) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	p.out.Prompt(question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no input: %w", err)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askTranscriptPath re-prompts until the answer names a readable file.
func (p *prompter) askTranscriptPath() (string, error) {
	for {
		path, err := p.ask("Please enter the name of the text file containing your class transcript: ")
		if err != nil {
			return "", err
		}
		if path == "" {
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				p.out.Error("File not found. Please make sure the file exists and try again.")
			} else {
				p.out.Error(fmt.Sprintf("Error reading the file: %v. Please try again.", err))
			}
			continue
		}
		f.Close()
		return path, nil
	}
}

// askBaseURL re-prompts until a non-empty URL is given.
func (p *prompter) askBaseURL() (string, error) {
	for {
		u, err := p.ask("Please enter the base video URL: ")
		if err != nil {
			return "", err
		}
		if u != "" {
			return u, nil
		}
	}
}
