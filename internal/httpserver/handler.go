package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
)

type generateRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	BaseURL    string `json:"base_url" validate:"required"`
}

type generateResponse struct {
	HTMLContent string `json:"html_content"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// generateNotes handles POST /generate_notes. The body is decoded as JSON
// whatever the Content-Type header says.
func (s *Server) generateNotes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req generateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	if err := s.validate.Struct(req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, strings.Join(formatValidationErrors(err), "; "))
	}

	s.logger.Info(ctx, "Generating notes for a %d byte transcript", len(req.Transcript))

	doc, err := s.pipeline.Run(ctx, pipeline.Request{
		Transcript: req.Transcript,
		BaseURL:    req.BaseURL,
		Format:     models.FormatHTML,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrMissingTranscript) || errors.Is(err, pipeline.ErrMissingBaseURL) {
			return respondWithError(c, fiber.StatusBadRequest, err.Error())
		}
		s.logger.Error(ctx, "Generate notes: %v", err)
		return respondWithError(c, fiber.StatusInternalServerError, "failed to generate notes")
	}

	return c.Status(fiber.StatusOK).JSON(generateResponse{HTMLContent: string(doc.Content)})
}

func respondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(errorResponse{Error: message})
}

// formatValidationErrors turns validator errors into "base_url is required" style messages.
func formatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return msgs
}
