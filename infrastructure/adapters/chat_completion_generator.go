package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/config"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"
)

const DoneSignal = "[DONE]"

const systemInstruction = "You are a creative writer who produces realistic and detailed " +
	"stories about fictional people. Pay attention to consistency and psychological credibility."

type chatCompletionRequest struct {
	Stream      bool          `json:"stream"`
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionChunk struct {
	Choices []chatCompletionChoice `json:"choices"`
}

type chatCompletionChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type chatCompletionGenerator struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
	pacer     outbound.CallPacer
}

// NewChatCompletionGenerator returns a TextGeneratorPort backed by a
// chat-completions endpoint. Responses are consumed as a server-sent
// event stream and accumulated into the full response text.
func NewChatCompletionGenerator(gptConfig *config.GptConfig, pacer outbound.CallPacer, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &chatCompletionGenerator{
		logger:    logger,
		gptConfig: gptConfig,
		pacer:     pacer,
	}
}

func (g *chatCompletionGenerator) Generate(ctx context.Context, req outbound.GenerateTextRequest) (string, error) {
	g.pacer.WaitIfNeeded()

	httpReq, err := g.createRequest(ctx, req.Prompt, req.MaxTokens)
	if err != nil {
		g.logger.Error(err, "Failed to create HTTP request for completion stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", httpReq)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to completion stream")
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				g.logger.InfoWithFields("Completion request finished", map[string]interface{}{
					"chars": builder.Len(),
				})
				return builder.String(), nil
			}
			payload, err := g.extractPayload(ev)
			if err != nil {
				return "", err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			if err == io.EOF {
				g.logger.InfoWithFields("Completion stream closed", map[string]interface{}{
					"chars": builder.Len(),
				})
				return builder.String(), nil
			}
			g.logger.Error(err, "Error occurred during completion streaming")
			return "", err
		}
	}
}

func (g *chatCompletionGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunk chatCompletionChunk
	if err := json.Unmarshal([]byte(event.Data()), &chunk); err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunk.Choices) == 0 {
		return "", nil
	}
	return chunk.Choices[0].Delta.Content, nil
}

func (g *chatCompletionGenerator) createRequest(ctx context.Context, prompt string, maxTokens int) (*http.Request, error) {
	promptReq := chatCompletionRequest{
		Stream: true,
		Model:  g.gptConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: g.gptConfig.Temperature,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
