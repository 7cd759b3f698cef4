package services

import (
	"context"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/text_utils"
)

type audioSynthesizer struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SpeechSynthesizerPort
	store       outbound.AudioStorePort
	voice       string
}

func NewAudioSynthesizer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	store outbound.AudioStorePort, voice string) inbound.AudioSynthesizerPort {
	return &audioSynthesizer{
		logger:      logger,
		synthesizer: synthesizer,
		store:       store,
		voice:       voice,
	}
}

// Synthesize trims the text to the word cap, converts it to speech and
// persists the audio. Failures are returned in the result, not raised,
// so one bad item never aborts the batch.
func (a *audioSynthesizer) Synthesize(ctx context.Context, params inbound.SynthesizeAudioParams) inbound.SynthesisResult {
	limited := text_utils.LimitWords(params.Text, params.MaxWords)

	audio, err := a.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:  limited,
		Voice: a.voice,
	})
	if err != nil {
		a.logger.WarnWithFields("Speech synthesis failed", map[string]interface{}{
			"filename": params.Filename,
			"error":    err.Error(),
		})
		return inbound.SynthesisResult{Filename: params.Filename, Err: err}
	}
	defer func() {
		if closeErr := audio.Close(); closeErr != nil {
			a.logger.Warn("Failed to close audio stream")
		}
	}()

	size, err := a.store.Save(params.Filename, audio)
	if err != nil {
		a.logger.WarnWithFields("Failed to store audio file", map[string]interface{}{
			"filename": params.Filename,
			"error":    err.Error(),
		})
		return inbound.SynthesisResult{Filename: params.Filename, Err: err}
	}

	a.logger.InfoWithFields("Audio created", map[string]interface{}{
		"filename": params.Filename,
		"bytes":    size,
	})

	return inbound.SynthesisResult{Filename: params.Filename, Size: size}
}
