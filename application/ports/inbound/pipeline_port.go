package inbound

import (
	"context"
	"time"
)

// BatchReport counts one content kind's items and audio conversions.
type BatchReport struct {
	Kind        string
	Items       int
	AudioFiles  int
	AudioFailed int
}

// RunReport summarizes a complete generation run.
type RunReport struct {
	RunID       string
	PersonaName string
	PersonaPath string
	Batches     []BatchReport
	Duration    time.Duration
}

func (r *RunReport) TotalFiles() int {
	total := 1 // persona record
	for _, batch := range r.Batches {
		total += batch.AudioFiles
	}
	return total
}

// GenerationPipelinePort runs the full persona -> content -> audio
// sequence. A persona or batch failure aborts the run; audio failures
// are per-item and reported in the batch counts.
type GenerationPipelinePort interface {
	Run(ctx context.Context) (*RunReport, error)
}
