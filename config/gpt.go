package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultTemperature = 0.8

type GptConfig struct {
	ApiUrl      string
	ApiKey      string
	Model       string
	Temperature float64
}

func GetGptConfig() (*GptConfig, error) {
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("GPT_API_URL must be set")
	}
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}

	temperature := defaultTemperature
	if raw := os.Getenv("GPT_TEMPERATURE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPT_TEMPERATURE")
		}
		temperature = parsed
	}

	return &GptConfig{
		ApiUrl:      apiUrl,
		ApiKey:      apiKey,
		Model:       model,
		Temperature: temperature,
	}, nil
}
