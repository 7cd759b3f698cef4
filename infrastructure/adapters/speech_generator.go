package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/config"
	"io"
	"net/http"
)

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

type speechGenerator struct {
	fetcher   ContentFetcher
	ttsConfig *config.TtsConfig
	pacer     outbound.CallPacer
	logger    outbound.LoggerPort
}

// NewSpeechGenerator returns a SpeechSynthesizerPort backed by an
// OpenAI-style speech endpoint. The response body is handed through as
// a stream so audio is copied to disk without buffering it whole.
func NewSpeechGenerator(fetcher ContentFetcher, ttsConfig *config.TtsConfig, pacer outbound.CallPacer,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechGenerator{
		fetcher:   fetcher,
		ttsConfig: ttsConfig,
		pacer:     pacer,
		logger:    logger,
	}
}

func (s *speechGenerator) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	s.pacer.WaitIfNeeded()

	httpReq, err := s.createRequest(ctx, req.Text, req.Voice)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to construct the HTTP request for speech synthesis", map[string]interface{}{
			"text": req.Text,
		})
		return nil, err
	}

	return s.fetcher.FetchStream(httpReq)
}

func (s *speechGenerator) createRequest(ctx context.Context, text string, voice string) (*http.Request, error) {
	reqBody := speechRequest{
		Model: s.ttsConfig.Model,
		Voice: voice,
		Input: text,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body for the speech API")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.ttsConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": s.ttsConfig.ApiUrl,
		})
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Authorization", "Bearer "+s.ttsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
