package inbound

import (
	"context"
	"generate-persona-audio/domain"
)

// ContentGeneratorPort produces one batch of content items for the
// given persona according to a per-kind spec. The batch never exceeds
// spec.TargetCount but may fall short when the model under-delivers.
type ContentGeneratorPort interface {
	Generate(ctx context.Context, persona domain.Persona, spec domain.ContentSpec) ([]domain.ContentItem, error)
}
