package services

import (
	"context"
	"fmt"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/domain"
	"time"

	"github.com/google/uuid"
)

type generationPipeline struct {
	logger           outbound.LoggerPort
	personaGenerator inbound.PersonaGeneratorPort
	contentGenerator inbound.ContentGeneratorPort
	audioSynthesizer inbound.AudioSynthesizerPort
	personaStore     outbound.PersonaStorePort
	specs            []domain.ContentSpec
}

// NewGenerationPipeline wires the full run: one persona, then one batch
// per spec in order, then audio for every item.
func NewGenerationPipeline(logger outbound.LoggerPort, personaGenerator inbound.PersonaGeneratorPort,
	contentGenerator inbound.ContentGeneratorPort, audioSynthesizer inbound.AudioSynthesizerPort,
	personaStore outbound.PersonaStorePort, specs []domain.ContentSpec) inbound.GenerationPipelinePort {
	return &generationPipeline{
		logger:           logger,
		personaGenerator: personaGenerator,
		contentGenerator: contentGenerator,
		audioSynthesizer: audioSynthesizer,
		personaStore:     personaStore,
		specs:            specs,
	}
}

func (p *generationPipeline) Run(ctx context.Context) (*inbound.RunReport, error) {
	start := time.Now()
	runID := uuid.NewString()

	p.logger.InfoWithFields("=== Starting full persona generation ===", map[string]interface{}{
		"run_id": runID,
	})

	persona, err := p.personaGenerator.Create(ctx)
	if err != nil {
		return nil, err
	}

	personaPath, err := p.personaStore.Save(persona)
	if err != nil {
		p.logger.Error(err, "Failed to persist persona record")
		return nil, err
	}
	p.logger.InfoWithFields("Persona saved", map[string]interface{}{"path": personaPath})

	batches := make([][]domain.ContentItem, 0, len(p.specs))
	for _, spec := range p.specs {
		items, err := p.contentGenerator.Generate(ctx, persona, spec)
		if err != nil {
			return nil, err
		}
		batches = append(batches, items)
	}

	p.logger.Info("Starting audio generation")

	report := &inbound.RunReport{
		RunID:       runID,
		PersonaName: persona.Name,
		PersonaPath: personaPath,
	}

	for i, spec := range p.specs {
		batchReport := inbound.BatchReport{
			Kind:  string(spec.Kind),
			Items: len(batches[i]),
		}
		for _, item := range batches[i] {
			filename := fmt.Sprintf("%s_%02d.mp3", spec.FilePrefix, item.Ordinal+1)
			result := p.audioSynthesizer.Synthesize(ctx, inbound.SynthesizeAudioParams{
				Text:     item.Text,
				Filename: filename,
				MaxWords: spec.MaxWords,
			})
			if result.Ok() {
				batchReport.AudioFiles++
			} else {
				batchReport.AudioFailed++
			}
		}
		report.Batches = append(report.Batches, batchReport)
	}

	report.Duration = time.Since(start)

	p.logger.Info("=== Generation finished ===")
	p.logger.InfoWithFields("Run statistics", map[string]interface{}{
		"run_id":      runID,
		"duration":    report.Duration.String(),
		"total_files": report.TotalFiles(),
	})
	for _, batch := range report.Batches {
		p.logger.InfoWithFields("Batch statistics", map[string]interface{}{
			"kind":         batch.Kind,
			"items":        batch.Items,
			"audio_files":  batch.AudioFiles,
			"audio_failed": batch.AudioFailed,
		})
	}

	return report, nil
}
