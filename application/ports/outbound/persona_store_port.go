package outbound

import "generate-persona-audio/domain"

// PersonaStorePort persists the persona record for reuse and audit.
// Returns the path the record was written to.
type PersonaStorePort interface {
	Save(persona domain.Persona) (string, error)
}
