package adapters

import (
	"fmt"
	"generate-persona-audio/application/ports/outbound"
	"io"
	"os"
	"path/filepath"
)

type audioFileStore struct {
	logger outbound.LoggerPort
	dir    string
}

// NewAudioFileStore streams audio payloads into files under dir,
// creating the directory when absent. A written file must end up
// non-empty or Save reports an error.
func NewAudioFileStore(dir string, logger outbound.LoggerPort) outbound.AudioStorePort {
	return &audioFileStore{
		logger: logger,
		dir:    dir,
	}
}

func (s *audioFileStore) Save(filename string, audio io.Reader) (int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error(err, "Failed to create audio directory")
		return 0, err
	}

	path := filepath.Join(s.dir, filename)
	file, err := os.Create(path)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to create audio file", map[string]interface{}{
			"path": path,
		})
		return 0, err
	}

	written, err := io.Copy(file, audio)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to write audio file", map[string]interface{}{
			"path": path,
		})
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.Size() == 0 {
		return 0, fmt.Errorf("audio file %s was written empty", filename)
	}

	return written, nil
}
