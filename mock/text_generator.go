package mock_generator

import (
	"context"
	"fmt"
	"generate-persona-audio/application/ports/outbound"
	"strings"
)

const cannedPersona = `Here is your persona:
{
    "name": "Clara Winslow",
    "alias": "Cee",
    "age": 34,
    "hair_color": "auburn",
    "eye_color": "green",
    "height": "168cm",
    "occupation": "Botanical illustrator",
    "residence": "Portree, Scotland",
    "personality_traits": ["observant", "wry", "restless"],
    "background": "Clara grew up above her parents' bookshop and traded a museum career for freelance illustration after a burnout at thirty. She now works from a drafty studio overlooking the harbour.",
    "relationships": {
        "partner": "Jonas, a ferry engineer she met sketching at the pier",
        "family": "Only child; her mother still runs the bookshop",
        "friends": "Weekly pub quiz with two old museum colleagues"
    },
    "hobbies": ["sea kayaking", "letterpress printing", "foraging"],
    "fears": ["losing her eyesight", "being ordinary"],
    "dreams_aspirations": ["publishing an illustrated flora of the Hebrides", "a winter in Japan"]
}`

type cannedTextGenerator struct {
	logger outbound.LoggerPort
	calls  int
}

// NewCannedTextGenerator returns a TextGeneratorPort serving canned
// responses so the full pipeline can run without a live model. The
// first call yields a persona object wrapped in prose; every later call
// yields a block of delimiter-separated filler segments.
func NewCannedTextGenerator(logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &cannedTextGenerator{
		logger: logger,
	}
}

func (g *cannedTextGenerator) Generate(_ context.Context, req outbound.GenerateTextRequest) (string, error) {
	g.calls++
	g.logger.DebugWithFields("Serving canned response", map[string]interface{}{
		"call":       g.calls,
		"prompt_len": len(req.Prompt),
	})

	if g.calls == 1 {
		return cannedPersona, nil
	}
	return cannedSegments(10), nil
}

func cannedSegments(count int) string {
	segments := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		segments = append(segments, fmt.Sprintf(
			"%d. On an otherwise unremarkable Tuesday I noticed something small that shifted the whole day, "+
				"and I kept turning it over in my head long after the light had gone.", i))
	}
	return strings.Join(segments, "\n---\n")
}
