package adapters

import (
	"encoding/json"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/domain"
	"os"
	"path/filepath"
)

const personaFileName = "persona.json"

type filePersonaStore struct {
	logger outbound.LoggerPort
	dir    string
}

// NewFilePersonaStore persists personas as pretty-printed JSON under
// dir. Non-ASCII characters are written literally, not escaped.
func NewFilePersonaStore(dir string, logger outbound.LoggerPort) outbound.PersonaStorePort {
	return &filePersonaStore{
		logger: logger,
		dir:    dir,
	}
}

func (s *filePersonaStore) Save(persona domain.Persona) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error(err, "Failed to create output directory")
		return "", err
	}

	path := filepath.Join(s.dir, personaFileName)
	file, err := os.Create(path)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to create persona file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(persona); err != nil {
		_ = file.Close()
		s.logger.Error(err, "Failed to encode persona record")
		return "", err
	}

	if err := file.Close(); err != nil {
		s.logger.Error(err, "Failed to close persona file")
		return "", err
	}

	return path, nil
}
