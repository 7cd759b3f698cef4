package outbound

import (
	"context"
	"io"
)

type SynthesizeSpeechRequest struct {
	Text  string
	Voice string
}

// SpeechSynthesizerPort converts text to a binary audio stream. The
// caller owns the returned reader and must close it.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (io.ReadCloser, error)
}
