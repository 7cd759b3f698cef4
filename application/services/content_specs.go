package services

import (
	"fmt"
	"generate-persona-audio/domain"
)

// SegmentDelimiter separates items inside one model response.
const SegmentDelimiter = "---"

// LifeCircumstancesSpec targets 20 formative life circumstances across
// five life phases, about one minute of audio each.
func LifeCircumstancesSpec() domain.ContentSpec {
	return domain.ContentSpec{
		Kind:          domain.LifeCircumstanceKind,
		FilePrefix:    "life",
		TargetCount:   20,
		MaxWords:      120,
		MinSegmentLen: 50,
		MaxTokens:     1200,
		Categories: []domain.Category{
			{Label: "Childhood and youth", Count: 4},
			{Label: "Education and first working years", Count: 4},
			{Label: "Relationships and family", Count: 4},
			{Label: "Professional development", Count: 4},
			{Label: "Personal crises and turning points", Count: 4},
		},
		BuildPrompt: buildLifeCircumstancePrompt,
	}
}

// DreamsSpec targets 40 dreams across four dream categories, written in
// first person.
func DreamsSpec() domain.ContentSpec {
	return domain.ContentSpec{
		Kind:          domain.DreamKind,
		FilePrefix:    "dream",
		TargetCount:   40,
		MaxWords:      100,
		MinSegmentLen: 40,
		MaxTokens:     1500,
		Categories: []domain.Category{
			{Label: "Nightmares and anxiety dreams", Count: 10},
			{Label: "Wishful and positive dreams", Count: 10},
			{Label: "Symbolic and metaphorical dreams", Count: 10},
			{Label: "Memory dreams rooted in the past", Count: 10},
		},
		BuildPrompt: buildDreamPrompt,
	}
}

// DailyEventsSpec targets 40 everyday experiences across four everyday
// categories, written in first person.
func DailyEventsSpec() domain.ContentSpec {
	return domain.ContentSpec{
		Kind:          domain.DailyEventKind,
		FilePrefix:    "day",
		TargetCount:   40,
		MaxWords:      110,
		MinSegmentLen: 50,
		MaxTokens:     1500,
		Categories: []domain.Category{
			{Label: "Work routine and professional situations", Count: 10},
			{Label: "Family and relationship moments", Count: 10},
			{Label: "Leisure and hobbies", Count: 10},
			{Label: "Chance encounters and small adventures", Count: 10},
		},
		BuildPrompt: buildDailyEventPrompt,
	}
}

func buildLifeCircumstancePrompt(p domain.Persona, c domain.Category) string {
	return fmt.Sprintf(`Create %d detailed life circumstances from the area "%s" for the following person:

Name: %s
Age: %d
Occupation: %s
Residence: %s
Personality: %s
Background: %s

Each life circumstance should:
- Be AT MOST 120 words long (for ~1 minute of audio)
- Contain specific details (names, places, dates)
- Include emotions and psychological aspects
- Fit the overall personality

Format: Number the circumstances from 1 to %d and separate them with "---"`,
		c.Count, c.Label, p.Name, p.Age, p.Occupation, p.Residence,
		domain.JoinTraits(p.PersonalityTraits), p.Background, c.Count)
}

func buildDreamPrompt(p domain.Persona, c domain.Category) string {
	return fmt.Sprintf(`Create %d detailed dreams of the category "%s" for the following person:

Name: %s
Personality: %s
Fears: %s
Dreams/Goals: %s
Relationships:
%s

Each dream should:
- Be AT MOST 100 words long (for ~1 minute of audio)
- Contain dream logic and surreal elements
- Reflect the psyche of the person
- Include emotions and symbolism
- Be written in the first person

Format: Number the dreams from 1 to %d and separate them with "---"`,
		c.Count, c.Label, p.Name, domain.JoinTraits(p.PersonalityTraits),
		domain.JoinTraits(p.Fears), domain.JoinTraits(p.DreamsAspirations),
		domain.JoinRelationships(p.Relationships), c.Count)
}

func buildDailyEventPrompt(p domain.Persona, c domain.Category) string {
	return fmt.Sprintf(`Create %d everyday experiences of the category "%s" for the following person:

Name: %s
Occupation: %s
Residence: %s
Hobbies: %s
Relationships:
%s
Personality: %s

Each experience should:
- Be AT MOST 110 words long (for ~1 minute of audio)
- Depict realistic everyday situations
- Contain emotions and interpersonal interactions
- Include specific details and dialogue
- Be written in the first person

Format: Number the experiences from 1 to %d and separate them with "---"`,
		c.Count, c.Label, p.Name, p.Occupation, p.Residence,
		domain.JoinTraits(p.Hobbies), domain.JoinRelationships(p.Relationships),
		domain.JoinTraits(p.PersonalityTraits), c.Count)
}
