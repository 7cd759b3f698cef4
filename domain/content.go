package domain

import "strings"

type ContentKind string

const (
	LifeCircumstanceKind ContentKind = "life_circumstances"
	DreamKind            ContentKind = "dreams"
	DailyEventKind       ContentKind = "daily_events"
)

// ContentItem is one generated narrative text unit. It carries no
// identity beyond its position in the batch, which drives the audio
// filename.
type ContentItem struct {
	Text    string
	Ordinal int
}

// Category is one thematic slice of a content batch, with the number of
// items requested from the model for it.
type Category struct {
	Label string
	Count int
}

// ContentSpec is the typed per-kind configuration: which categories to
// request, how large the final batch may grow, how long a single item
// may be, and how the prompt embeds the persona.
type ContentSpec struct {
	Kind          ContentKind
	FilePrefix    string
	TargetCount   int
	MaxWords      int
	MinSegmentLen int
	MaxTokens     int
	Categories    []Category
	BuildPrompt   func(p Persona, c Category) string
}

// JoinTraits renders a string slice for prompt interpolation.
func JoinTraits(values []string) string {
	return strings.Join(values, ", ")
}

// JoinRelationships renders the relationship map for prompt
// interpolation, one "label: description" pair per line.
func JoinRelationships(relationships map[string]string) string {
	pairs := make([]string, 0, len(relationships))
	for label, description := range relationships {
		pairs = append(pairs, label+": "+description)
	}
	return strings.Join(pairs, "\n")
}
