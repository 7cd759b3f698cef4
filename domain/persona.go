package domain

const (
	MinPersonaAge = 18
	MaxPersonaAge = 80
)

// Persona is the fixed-schema fictional person driving all content
// generation. Created once per run, immutable afterwards.
type Persona struct {
	Name              string            `json:"name"`
	Alias             string            `json:"alias"`
	Age               int               `json:"age"`
	HairColor         string            `json:"hair_color"`
	EyeColor          string            `json:"eye_color"`
	Height            string            `json:"height"`
	Occupation        string            `json:"occupation"`
	Residence         string            `json:"residence"`
	PersonalityTraits []string          `json:"personality_traits"`
	Background        string            `json:"background"`
	Relationships     map[string]string `json:"relationships"`
	Hobbies           []string          `json:"hobbies"`
	Fears             []string          `json:"fears"`
	DreamsAspirations []string          `json:"dreams_aspirations"`
}

// NewPersona builds a Persona from loosely typed fields, as decoded from
// model output. Every field is required; age must lie in
// [MinPersonaAge, MaxPersonaAge].
func NewPersona(fields map[string]any) (Persona, error) {
	var p Persona
	var err error

	if p.Name, err = stringField(fields, "name"); err != nil {
		return Persona{}, err
	}
	if p.Alias, err = stringField(fields, "alias"); err != nil {
		return Persona{}, err
	}
	if p.Age, err = intField(fields, "age"); err != nil {
		return Persona{}, err
	}
	if p.Age < MinPersonaAge || p.Age > MaxPersonaAge {
		return Persona{}, &ValidationError{Field: "age", Reason: "must be between 18 and 80"}
	}
	if p.HairColor, err = stringField(fields, "hair_color"); err != nil {
		return Persona{}, err
	}
	if p.EyeColor, err = stringField(fields, "eye_color"); err != nil {
		return Persona{}, err
	}
	if p.Height, err = stringField(fields, "height"); err != nil {
		return Persona{}, err
	}
	if p.Occupation, err = stringField(fields, "occupation"); err != nil {
		return Persona{}, err
	}
	if p.Residence, err = stringField(fields, "residence"); err != nil {
		return Persona{}, err
	}
	if p.PersonalityTraits, err = stringSliceField(fields, "personality_traits"); err != nil {
		return Persona{}, err
	}
	if p.Background, err = stringField(fields, "background"); err != nil {
		return Persona{}, err
	}
	if p.Relationships, err = stringMapField(fields, "relationships"); err != nil {
		return Persona{}, err
	}
	if p.Hobbies, err = stringSliceField(fields, "hobbies"); err != nil {
		return Persona{}, err
	}
	if p.Fears, err = stringSliceField(fields, "fears"); err != nil {
		return Persona{}, err
	}
	if p.DreamsAspirations, err = stringSliceField(fields, "dreams_aspirations"); err != nil {
		return Persona{}, err
	}

	return p, nil
}

func stringField(fields map[string]any, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &ValidationError{Field: name, Reason: "missing"}
	}
	val, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: name, Reason: "must be a string"}
	}
	if val == "" {
		return "", &ValidationError{Field: name, Reason: "must not be empty"}
	}
	return val, nil
}

func intField(fields map[string]any, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, &ValidationError{Field: name, Reason: "missing"}
	}
	// JSON numbers decode as float64.
	switch val := raw.(type) {
	case float64:
		return int(val), nil
	case int:
		return val, nil
	default:
		return 0, &ValidationError{Field: name, Reason: "must be a number"}
	}
}

func stringSliceField(fields map[string]any, name string) ([]string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &ValidationError{Field: name, Reason: "missing"}
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Field: name, Reason: "must be a list of strings"}
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		val, ok := item.(string)
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "must be a list of strings"}
		}
		result = append(result, val)
	}
	if len(result) == 0 {
		return nil, &ValidationError{Field: name, Reason: "must not be empty"}
	}
	return result, nil
}

func stringMapField(fields map[string]any, name string) (map[string]string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &ValidationError{Field: name, Reason: "missing"}
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{Field: name, Reason: "must be a mapping of strings"}
	}
	result := make(map[string]string, len(entries))
	for key, entry := range entries {
		val, ok := entry.(string)
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "must be a mapping of strings"}
		}
		result[key] = val
	}
	if len(result) == 0 {
		return nil, &ValidationError{Field: name, Reason: "must not be empty"}
	}
	return result, nil
}
