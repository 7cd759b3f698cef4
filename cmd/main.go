package main

import (
	"context"
	"flag"
	"fmt"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/application/services"
	"generate-persona-audio/config"
	"generate-persona-audio/domain"
	"generate-persona-audio/infrastructure/adapters"
	"generate-persona-audio/infrastructure/gin_interface/controllers"
	mockgenerator "generate-persona-audio/mock"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	serve := flag.Bool("serve", false, "expose the pipeline over HTTP instead of running one batch")
	flag.Parse()

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	logWriter, logCloser, err := adapters.NewRunLogWriter(pipelineConfig.RunLogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open run log")
	}
	defer func() {
		if err := logCloser.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close run log")
		}
	}()

	logger := adapters.NewZerologWrapper(logWriter)

	pacer := adapters.NewIntervalRateLimiter(pipelineConfig.MinCallInterval)
	fetcher := adapters.NewContentFetcher(logger)

	var textGenerator outbound.TextGeneratorPort
	var speechSynthesizer outbound.SpeechSynthesizerPort
	voice := "alloy"

	if pipelineConfig.DryRun {
		logger.Warn("DRY_RUN is set, serving canned responses instead of calling upstream APIs")
		textGenerator = mockgenerator.NewCannedTextGenerator(logger)
		speechSynthesizer = mockgenerator.NewSilentSpeechSynthesizer(logger)
	} else {
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gpt config")
		}

		ttsConfig, err := config.GetTtsConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get tts config")
		}
		voice = ttsConfig.Voice

		textGenerator = adapters.NewChatCompletionGenerator(gptConfig, pacer, logger)
		speechSynthesizer = adapters.NewSpeechGenerator(fetcher, ttsConfig, pacer, logger)
	}

	personaStore := adapters.NewFilePersonaStore(pipelineConfig.OutputDir, logger)
	audioStore := adapters.NewAudioFileStore(pipelineConfig.AudioDir, logger)

	personaGenerator := services.NewPersonaGenerator(logger, textGenerator)
	contentGenerator := services.NewContentGenerator(logger, textGenerator)
	audioSynthesizer := services.NewAudioSynthesizer(logger, speechSynthesizer, audioStore, voice)

	specs := []domain.ContentSpec{
		services.LifeCircumstancesSpec(),
		services.DreamsSpec(),
		services.DailyEventsSpec(),
	}

	pipeline := services.NewGenerationPipeline(logger, personaGenerator, contentGenerator,
		audioSynthesizer, personaStore, specs)

	if *serve {
		runServer(pipeline, logger)
		return
	}

	if _, err := pipeline.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Generation run failed")
	}
}

func runServer(pipeline inbound.GenerationPipelinePort, logger outbound.LoggerPort) {
	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(4, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	generationController := controllers.NewGenerationController(logger, workerPool, pipeline)
	generationController.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
