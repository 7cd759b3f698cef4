package inbound

import (
	"context"
	"generate-persona-audio/domain"
)

// PersonaGeneratorPort creates the persona driving a generation run.
// Any failure here is fatal to the run.
type PersonaGeneratorPort interface {
	Create(ctx context.Context) (domain.Persona, error)
}
