package domain

import (
	"errors"
	"testing"
)

func validPersonaFields() map[string]any {
	return map[string]any{
		"name":               "Mara Ellison",
		"alias":              "Mars",
		"age":                float64(35),
		"hair_color":         "black",
		"eye_color":          "brown",
		"height":             "171cm",
		"occupation":         "Cartographer",
		"residence":          "Tromsø, Norway",
		"personality_traits": []any{"curious", "stubborn"},
		"background":         "Grew up on a research vessel and never quite settled on land.",
		"relationships": map[string]any{
			"partner": "Elin, a marine biologist",
			"family":  "Estranged father, close to her aunt",
		},
		"hobbies":            []any{"ice climbing", "darkroom photography"},
		"fears":              []any{"open water at night"},
		"dreams_aspirations": []any{"mapping the seabed of the Barents Sea"},
	}
}

func TestNewPersonaValid(t *testing.T) {
	persona, err := NewPersona(validPersonaFields())
	if err != nil {
		t.Fatal("Failed to build persona:", err)
	}
	if persona.Name != "Mara Ellison" || persona.Age != 35 {
		t.Fatalf("unexpected persona: %+v", persona)
	}
	if len(persona.PersonalityTraits) != 2 || persona.Relationships["partner"] == "" {
		t.Fatalf("composite fields not decoded: %+v", persona)
	}
}

func TestNewPersonaAgeBounds(t *testing.T) {
	for _, age := range []float64{18, 80} {
		fields := validPersonaFields()
		fields["age"] = age
		if _, err := NewPersona(fields); err != nil {
			t.Fatalf("age %v should be accepted: %v", age, err)
		}
	}

	for _, age := range []float64{17, 81} {
		fields := validPersonaFields()
		fields["age"] = age
		_, err := NewPersona(fields)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("age %v should be rejected with ValidationError, got %v", age, err)
		}
		if validationErr.Field != "age" {
			t.Fatalf("expected age field in error, got %q", validationErr.Field)
		}
	}
}

func TestNewPersonaMissingField(t *testing.T) {
	fields := validPersonaFields()
	delete(fields, "occupation")

	_, err := NewPersona(fields)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "occupation" {
		t.Fatalf("expected occupation field in error, got %q", validationErr.Field)
	}
}

func TestNewPersonaWrongType(t *testing.T) {
	fields := validPersonaFields()
	fields["hobbies"] = "not a list"

	_, err := NewPersona(fields)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	fields = validPersonaFields()
	fields["age"] = "thirty-five"
	if _, err := NewPersona(fields); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for string age, got %v", err)
	}
}
