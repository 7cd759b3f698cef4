package outbound

import "context"

type GenerateTextRequest struct {
	Prompt    string
	MaxTokens int
}

// TextGeneratorPort issues one generative request and returns the
// complete free-form response text.
type TextGeneratorPort interface {
	Generate(ctx context.Context, req GenerateTextRequest) (string, error)
}
