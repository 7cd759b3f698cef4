package config

import (
	"fmt"
	"os"
)

const defaultVoice = "alloy"

type TtsConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
	Voice  string
}

func GetTtsConfig() (*TtsConfig, error) {
	apiUrl := os.Getenv("TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TTS_API_URL must be set")
	}
	apiKey := os.Getenv("TTS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY must be set")
	}
	model := os.Getenv("TTS_MODEL")
	if model == "" {
		return nil, fmt.Errorf("TTS_MODEL must be set")
	}

	voice := os.Getenv("TTS_VOICE")
	if voice == "" {
		voice = defaultVoice
	}

	return &TtsConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
		Voice:  voice,
	}, nil
}
