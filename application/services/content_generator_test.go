package services

import (
	"context"
	"errors"
	"fmt"
	"generate-persona-audio/domain"
	"generate-persona-audio/infrastructure/adapters"
	"io"
	"strings"
	"testing"
)

func testPersona() domain.Persona {
	return domain.Persona{
		Name:              "Ines Okafor",
		Alias:             "Nes",
		Age:               29,
		HairColor:         "black",
		EyeColor:          "dark brown",
		Height:            "164cm",
		Occupation:        "Paramedic",
		Residence:         "Rotterdam, Netherlands",
		PersonalityTraits: []string{"calm under pressure"},
		Background:        "Raised by her grandmother.",
		Relationships:     map[string]string{"family": "Grandmother Adaeze"},
		Hobbies:           []string{"bouldering"},
		Fears:             []string{"hospitals as a patient"},
		DreamsAspirations: []string{"leading a rescue training program"},
	}
}

func testSpec(target int, categories ...domain.Category) domain.ContentSpec {
	return domain.ContentSpec{
		Kind:          domain.DreamKind,
		FilePrefix:    "dream",
		TargetCount:   target,
		MaxWords:      100,
		MinSegmentLen: 40,
		MaxTokens:     1500,
		Categories:    categories,
		BuildPrompt: func(p domain.Persona, c domain.Category) string {
			return fmt.Sprintf("Create %d items of %s for %s", c.Count, c.Label, p.Name)
		},
	}
}

func longSegment(tag string) string {
	return fmt.Sprintf("%s: a segment comfortably longer than the minimum character threshold for parsing.", tag)
}

func TestContentGeneratorDropsShortSegments(t *testing.T) {
	response := strings.Join([]string{
		longSegment("first"),
		longSegment("second"),
		"too short",
		longSegment("third"),
		longSegment("fourth"),
	}, "\n---\n")

	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: []string{response}}

	generator := NewContentGenerator(logger, stub)

	items, err := generator.Generate(context.Background(), testPersona(), testSpec(10, domain.Category{Label: "Nightmares", Count: 5}))
	if err != nil {
		t.Fatal("Failed to generate batch:", err)
	}

	if len(items) != 4 {
		t.Fatalf("expected 4 surviving items, got %d", len(items))
	}
	for i, tag := range []string{"first", "second", "third", "fourth"} {
		if !strings.HasPrefix(items[i].Text, tag+":") {
			t.Fatalf("order not preserved at %d: %q", i, items[i].Text)
		}
		if items[i].Ordinal != i {
			t.Fatalf("expected ordinal %d, got %d", i, items[i].Ordinal)
		}
	}
}

func TestContentGeneratorTruncatesToTarget(t *testing.T) {
	responses := []string{
		longSegment("a1") + "---" + longSegment("a2"),
		longSegment("b1") + "---" + longSegment("b2"),
	}

	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: responses}

	generator := NewContentGenerator(logger, stub)

	spec := testSpec(3,
		domain.Category{Label: "Nightmares", Count: 2},
		domain.Category{Label: "Wishful dreams", Count: 2})

	items, err := generator.Generate(context.Background(), testPersona(), spec)
	if err != nil {
		t.Fatal("Failed to generate batch:", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected truncation to 3 items, got %d", len(items))
	}
	// Truncation keeps the category-ordered prefix.
	for i, tag := range []string{"a1", "a2", "b1"} {
		if !strings.HasPrefix(items[i].Text, tag+":") {
			t.Fatalf("expected prefix-stable truncation, item %d is %q", i, items[i].Text)
		}
	}
}

func TestContentGeneratorToleratesUnderfill(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: []string{longSegment("only")}}

	generator := NewContentGenerator(logger, stub)

	items, err := generator.Generate(context.Background(), testPersona(), testSpec(10, domain.Category{Label: "Nightmares", Count: 5}))
	if err != nil {
		t.Fatal("under-fill must not be an error:", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the single surviving item, got %d", len(items))
	}
}

func TestContentGeneratorAbortsBatchOnRequestFailure(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{err: fmt.Errorf("upstream timeout")}

	generator := NewContentGenerator(logger, stub)

	_, err := generator.Generate(context.Background(), testPersona(), testSpec(10, domain.Category{Label: "Nightmares", Count: 5}))
	var generationErr *domain.GenerationError
	if !errors.As(err, &generationErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestContentGeneratorEmbedsCategoryAndPersonaInPrompt(t *testing.T) {
	logger := adapters.NewZerologWrapper(io.Discard)
	stub := &stubTextGenerator{responses: []string{longSegment("x")}}

	generator := NewContentGenerator(logger, stub)

	_, err := generator.Generate(context.Background(), testPersona(), testSpec(10, domain.Category{Label: "Nightmares", Count: 5}))
	if err != nil {
		t.Fatal("Failed to generate batch:", err)
	}

	if len(stub.requests) != 1 {
		t.Fatalf("expected one request per category, got %d", len(stub.requests))
	}
	prompt := stub.requests[0].Prompt
	if !strings.Contains(prompt, "Nightmares") || !strings.Contains(prompt, "Ines Okafor") {
		t.Fatalf("prompt missing category or persona: %q", prompt)
	}
	if stub.requests[0].MaxTokens != 1500 {
		t.Fatalf("expected per-category token budget, got %d", stub.requests[0].MaxTokens)
	}
}
