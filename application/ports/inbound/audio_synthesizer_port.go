package inbound

import "context"

// SynthesisResult reports the outcome of a single text-to-audio
// conversion. A failed item carries its error instead of aborting the
// batch.
type SynthesisResult struct {
	Filename string
	Size     int64
	Err      error
}

func (r SynthesisResult) Ok() bool {
	return r.Err == nil
}

type SynthesizeAudioParams struct {
	Text     string
	Filename string
	MaxWords int
}

type AudioSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeAudioParams) SynthesisResult
}
