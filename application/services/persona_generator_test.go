package services

import (
	"context"
	"errors"
	"fmt"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/domain"
	"generate-persona-audio/infrastructure/adapters"
	"io"
	"testing"
)

type stubTextGenerator struct {
	responses []string
	err       error
	requests  []outbound.GenerateTextRequest
}

func (s *stubTextGenerator) Generate(_ context.Context, req outbound.GenerateTextRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", fmt.Errorf("stub exhausted after %d requests", len(s.requests))
	}
	response := s.responses[0]
	s.responses = s.responses[1:]
	return response, nil
}

const cannedPersonaResponse = `Sure, here is a persona for you:

{
    "name": "Ines Okafor",
    "alias": "Nes",
    "age": 29,
    "hair_color": "black",
    "eye_color": "dark brown",
    "height": "164cm",
    "occupation": "Paramedic",
    "residence": "Rotterdam, Netherlands",
    "personality_traits": ["calm under pressure", "dry humour", "private"],
    "background": "Raised by her grandmother after her parents emigrated for work. Switched from nursing school to emergency services after a tram accident she witnessed.",
    "relationships": {
        "partner": "Single since last spring",
        "family": "Grandmother Adaeze, younger brother Chidi",
        "friends": "Her shift partner Maarten"
    },
    "hobbies": ["bouldering", "analog synthesizers"],
    "fears": ["failing someone in an emergency", "hospitals as a patient"],
    "dreams_aspirations": ["leading a rescue training program", "visiting Lagos again"]
}

I hope this works for your story.`

func TestPersonaGeneratorCreateFromCannedResponse(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: []string{cannedPersonaResponse}}

	generator := NewPersonaGenerator(logger, stub)

	persona, err := generator.Create(context.Background())
	if err != nil {
		t.Fatal("Failed to create persona:", err)
	}

	if persona.Name != "Ines Okafor" || persona.Alias != "Nes" || persona.Age != 29 {
		t.Fatalf("persona fields do not match the embedded JSON: %+v", persona)
	}
	if persona.Occupation != "Paramedic" || persona.Residence != "Rotterdam, Netherlands" {
		t.Fatalf("persona fields do not match the embedded JSON: %+v", persona)
	}
	if len(persona.PersonalityTraits) != 3 || persona.PersonalityTraits[0] != "calm under pressure" {
		t.Fatalf("traits mismatch: %v", persona.PersonalityTraits)
	}
	if persona.Relationships["family"] != "Grandmother Adaeze, younger brother Chidi" {
		t.Fatalf("relationships mismatch: %v", persona.Relationships)
	}

	if len(stub.requests) != 1 {
		t.Fatalf("expected one generative request, got %d", len(stub.requests))
	}
	if stub.requests[0].MaxTokens != personaMaxTokens {
		t.Fatalf("expected max tokens %d, got %d", personaMaxTokens, stub.requests[0].MaxTokens)
	}
}

func TestPersonaGeneratorWrapsUpstreamFailure(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{err: fmt.Errorf("connection refused")}

	generator := NewPersonaGenerator(logger, stub)

	_, err := generator.Create(context.Background())
	var generationErr *domain.GenerationError
	if !errors.As(err, &generationErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestPersonaGeneratorRejectsResponseWithoutObject(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: []string{"I cannot help with that."}}

	generator := NewPersonaGenerator(logger, stub)

	_, err := generator.Create(context.Background())
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestPersonaGeneratorRejectsOutOfRangeAge(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	response := `{"name":"X","alias":"Y","age":17,"hair_color":"a","eye_color":"b","height":"c","occupation":"d","residence":"e","personality_traits":["f"],"background":"g","relationships":{"h":"i"},"hobbies":["j"],"fears":["k"],"dreams_aspirations":["l"]}`
	stub := &stubTextGenerator{responses: []string{response}}

	generator := NewPersonaGenerator(logger, stub)

	_, err := generator.Create(context.Background())
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
