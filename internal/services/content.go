package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/ai"
)

// ContentService exposes the stateless generation endpoints.
type ContentService struct {
	gen ai.Generator
}

func NewContentService(gen ai.Generator) *ContentService { return &ContentService{gen: gen} }

func (s *ContentService) Summarize(ctx context.Context, content string) (string, error) {
	return s.gen.GenerateSummary(ctx, content)
}

func (s *ContentService) ExtractImageText(ctx context.Context, base64Image string) (string, error) {
	return s.gen.ExtractTextFromImage(ctx, base64Image)
}
