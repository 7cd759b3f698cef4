package services

import (
	"context"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/domain"
	"generate-persona-audio/text_utils"
)

const personaMaxTokens = 800

const personaPrompt = `Create a fully developed fictional person. The person should be realistic and believable.

Return the answer in the following JSON format:
{
    "name": "Full name",
    "alias": "Nickname",
    "age": 35,
    "hair_color": "Hair color",
    "eye_color": "Eye color",
    "height": "175cm",
    "occupation": "Occupation",
    "residence": "City, Country",
    "personality_traits": ["Trait1", "Trait2", "Trait3"],
    "background": "Detailed background story in 2-3 sentences",
    "relationships": {
        "partner": "Name and relationship",
        "family": "Family situation and important family members",
        "friends": "Important friendships"
    },
    "hobbies": ["Hobby1", "Hobby2", "Hobby3"],
    "fears": ["Fear1", "Fear2"],
    "dreams_aspirations": ["Dream1", "Goal1", "Aspiration1"]
}

Make sure all elements fit together and form a coherent personality.`

type personaGenerator struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

func NewPersonaGenerator(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.PersonaGeneratorPort {
	return &personaGenerator{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

func (p *personaGenerator) Create(ctx context.Context) (domain.Persona, error) {
	p.logger.Info("Starting persona creation")

	response, err := p.textGenerator.Generate(ctx, outbound.GenerateTextRequest{
		Prompt:    personaPrompt,
		MaxTokens: personaMaxTokens,
	})
	if err != nil {
		p.logger.Error(err, "Persona request failed")
		return domain.Persona{}, &domain.GenerationError{Op: "persona creation", Err: err}
	}

	fields, err := text_utils.ExtractObject(response)
	if err != nil {
		p.logger.Error(err, "Failed to parse persona response")
		return domain.Persona{}, err
	}

	persona, err := domain.NewPersona(fields)
	if err != nil {
		p.logger.Error(err, "Persona failed schema validation")
		return domain.Persona{}, err
	}

	p.logger.InfoWithFields("Persona created", map[string]interface{}{
		"name": persona.Name,
		"age":  persona.Age,
	})

	return persona, nil
}
