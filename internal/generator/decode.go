package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errEmptyResponse = errors.New("empty response from model")

// decodeJSON unmarshals a model reply into v. Replies wrapped in a
// markdown code fence are accepted.
func decodeJSON(text string, v interface{}) error {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return errEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decode structured response: %w", err)
	}
	return nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag, e.g. ```json
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
