package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultOutputDir       = "output"
	defaultMinCallInterval = time.Second
)

type PipelineConfig struct {
	OutputDir       string
	AudioDir        string
	RunLogPath      string
	MinCallInterval time.Duration
	DryRun          bool
}

func GetPipelineConfig() (*PipelineConfig, error) {
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	minInterval := defaultMinCallInterval
	if raw := os.Getenv("MIN_CALL_INTERVAL_MS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MIN_CALL_INTERVAL_MS")
		}
		minInterval = time.Duration(parsed) * time.Millisecond
	}

	return &PipelineConfig{
		OutputDir:       outputDir,
		AudioDir:        filepath.Join(outputDir, "audio"),
		RunLogPath:      "generation_log.txt",
		MinCallInterval: minInterval,
		DryRun:          os.Getenv("DRY_RUN") == "true",
	}, nil
}
