package services

import (
	"context"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/domain"
	"generate-persona-audio/text_utils"
)

type contentGenerator struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

// NewContentGenerator returns the generator shared by all three content
// kinds; the kind-specific behavior lives entirely in the ContentSpec.
func NewContentGenerator(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.ContentGeneratorPort {
	return &contentGenerator{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

func (g *contentGenerator) Generate(ctx context.Context, persona domain.Persona, spec domain.ContentSpec) ([]domain.ContentItem, error) {
	g.logger.InfoWithFields("Generating content batch", map[string]interface{}{
		"kind":   spec.Kind,
		"target": spec.TargetCount,
	})

	items := make([]domain.ContentItem, 0, spec.TargetCount)

	for _, category := range spec.Categories {
		response, err := g.textGenerator.Generate(ctx, outbound.GenerateTextRequest{
			Prompt:    spec.BuildPrompt(persona, category),
			MaxTokens: spec.MaxTokens,
		})
		if err != nil {
			g.logger.ErrorWithFields(err, "Content request failed", map[string]interface{}{
				"kind":     spec.Kind,
				"category": category.Label,
			})
			return nil, &domain.GenerationError{Op: string(spec.Kind) + " generation", Err: err}
		}

		// Each category is parsed strictly from its own response.
		segments := text_utils.SplitSegments(response, SegmentDelimiter, spec.MinSegmentLen)
		if len(segments) < category.Count {
			g.logger.WarnWithFields("Category under-delivered", map[string]interface{}{
				"kind":      spec.Kind,
				"category":  category.Label,
				"requested": category.Count,
				"parsed":    len(segments),
			})
		}
		for _, segment := range segments {
			items = append(items, domain.ContentItem{Text: segment, Ordinal: len(items)})
		}
	}

	if len(items) > spec.TargetCount {
		items = items[:spec.TargetCount]
	}

	g.logger.InfoWithFields("Content batch generated", map[string]interface{}{
		"kind":  spec.Kind,
		"items": len(items),
	})

	return items, nil
}
