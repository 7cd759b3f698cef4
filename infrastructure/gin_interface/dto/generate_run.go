package dto

type BatchSummary struct {
	Kind        string `json:"kind"`
	Items       int    `json:"items"`
	AudioFiles  int    `json:"audio_files"`
	AudioFailed int    `json:"audio_failed"`
}

type GenerateRunResponse struct {
	RunID       string         `json:"run_id"`
	PersonaName string         `json:"persona_name"`
	PersonaPath string         `json:"persona_path"`
	Batches     []BatchSummary `json:"batches"`
	TotalFiles  int            `json:"total_files"`
	DurationMs  int64          `json:"duration_ms"`
}
