package controllers

import (
	"context"
	"generate-persona-audio/application/ports/inbound"
	"generate-persona-audio/application/ports/outbound"
	"generate-persona-audio/infrastructure/gin_interface/dto"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerationController interface {
	GenerateRun(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type generationController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.GenerationPipelinePort
}

func NewGenerationController(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	pipeline inbound.GenerationPipelinePort) GenerationController {
	return &generationController{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
	}
}

type runResult struct {
	report *inbound.RunReport
	err    error
}

// GenerateRun executes one full generation run. The run itself stays
// sequential; the worker pool only keeps it off the request goroutine
// so a dropped client can cancel it.
func (g *generationController) GenerateRun(c *gin.Context) {
	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	resCh := make(chan runResult, 1)
	err := g.workerPool.Submit(func() {
		report, runErr := g.pipeline.Run(newCtx)
		resCh <- runResult{report: report, err: runErr}
	})
	if err != nil {
		g.logger.Error(err, "Failed to submit run to worker pool")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	select {
	case <-c.Request.Context().Done():
		return
	case res := <-resCh:
		if res.err != nil {
			g.logger.Error(res.err, "Generation run failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": res.err.Error()})
			return
		}
		c.JSON(http.StatusOK, toResponse(res.report))
	}
}

func (g *generationController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/generate", g.GenerateRun)
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func toResponse(report *inbound.RunReport) dto.GenerateRunResponse {
	batches := make([]dto.BatchSummary, 0, len(report.Batches))
	for _, batch := range report.Batches {
		batches = append(batches, dto.BatchSummary{
			Kind:        batch.Kind,
			Items:       batch.Items,
			AudioFiles:  batch.AudioFiles,
			AudioFailed: batch.AudioFailed,
		})
	}
	return dto.GenerateRunResponse{
		RunID:       report.RunID,
		PersonaName: report.PersonaName,
		PersonaPath: report.PersonaPath,
		Batches:     batches,
		TotalFiles:  report.TotalFiles(),
		DurationMs:  report.Duration.Milliseconds(),
	}
}
