// Package server exposes the generation pipeline over HTTP. One endpoint
// per asset kind; each request runs the full generate/extract/validate loop
// and persists the result before responding.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lunarforge/assetforge/internal/core/generator"
	"github.com/lunarforge/assetforge/internal/core/model"
	"github.com/lunarforge/assetforge/internal/prompts"
	"github.com/lunarforge/assetforge/internal/store"
)

type Server struct {
	gen     *generator.Generator
	mockGen *generator.Generator
	prompts *prompts.Manager
	files   *store.FileStore
	// graphs is nil when Memgraph is not configured.
	graphs      *store.GraphStore
	temperature float64
	log         zerolog.Logger
}

func New(gen, mockGen *generator.Generator, pm *prompts.Manager, files *store.FileStore, graphs *store.GraphStore, temperature float64, log zerolog.Logger) *Server {
	return &Server{
		gen:         gen,
		mockGen:     mockGen,
		prompts:     pm,
		files:       files,
		graphs:      graphs,
		temperature: temperature,
		log:         log,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())

	r.GET("/healthz", s.Health)
	r.POST("/generate/monster", s.GenerateMonster)
	r.POST("/generate/item", s.GenerateItem)
	r.POST("/generate/dialogue", s.GenerateDialogue)

	return r
}

// requestID tags every request so log lines and responses correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type MonsterRequest struct {
	Region         string   `json:"region"`
	Level          int      `json:"level"`
	Element        string   `json:"element"`
	SpecialRequest string   `json:"special_request"`
	UseMock        bool     `json:"use_mock"`
	Temperature    *float64 `json:"temperature"`
}

func (s *Server) GenerateMonster(c *gin.Context) {
	var req MonsterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	prompt := prompts.MonsterPrompt(prompts.MonsterParams{
		Region:  req.Region,
		Level:   req.Level,
		Element: req.Element,
		Theme:   req.SpecialRequest,
	})
	s.run(c, model.KindMonster, prompt, req.UseMock, req.Temperature)
}

type ItemRequest struct {
	Category       string   `json:"category"`
	Rarity         string   `json:"rarity"`
	Level          int      `json:"level"`
	SpecialRequest string   `json:"special_request"`
	UseMock        bool     `json:"use_mock"`
	Temperature    *float64 `json:"temperature"`
}

func (s *Server) GenerateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	prompt := prompts.ItemPrompt(prompts.ItemParams{
		Category: req.Category,
		Rarity:   req.Rarity,
		Level:    req.Level,
		Theme:    req.SpecialRequest,
	})
	s.run(c, model.KindItem, prompt, req.UseMock, req.Temperature)
}

type DialogueRequest struct {
	NPCName      string   `json:"npc_name"`
	NPCRole      string   `json:"npc_role"`
	Context      string   `json:"context"`
	QuestRelated bool     `json:"quest_related"`
	UseMock      bool     `json:"use_mock"`
	Temperature  *float64 `json:"temperature"`
}

func (s *Server) GenerateDialogue(c *gin.Context) {
	var req DialogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	prompt := prompts.DialoguePrompt(prompts.DialogueParams{
		NPCName:      req.NPCName,
		NPCRole:      req.NPCRole,
		Context:      req.Context,
		QuestRelated: req.QuestRelated,
	})
	s.run(c, model.KindDialogue, prompt, req.UseMock, req.Temperature)
}

// run drives one generation end to end and writes the HTTP response.
func (s *Server) run(c *gin.Context, kind model.Kind, prompt string, useMock bool, temperature *float64) {
	systemPrompt, err := s.prompts.System(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	temp := s.temperature
	if temperature != nil {
		temp = *temperature
	}

	gen := s.gen
	if useMock {
		gen = s.mockGen
	}

	result, err := gen.Generate(c.Request.Context(), generator.Request{
		Kind:         kind,
		Prompt:       prompt,
		SystemPrompt: systemPrompt,
		Temperature:  temp,
	})
	if err != nil {
		if errors.Is(err, generator.ErrAttemptsExhausted) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":    err.Error(),
				"state":    string(generator.StateExhausted),
				"attempts": result.Attempts,
			})
			return
		}
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}

	meta, err := s.files.Save(result.Entity)
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("failed to persist asset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist asset"})
		return
	}

	if kind == model.KindDialogue && s.graphs != nil {
		if tree, ok := result.Entity.(*model.DialogueTree); ok {
			if err := s.graphs.SaveDialogueTree(c.Request.Context(), tree); err != nil {
				// The file copy is the source of truth; a graph mirror
				// failure does not fail the request.
				s.log.Warn().Err(err).Str("dialogue_id", tree.DialogueID).Msg("failed to mirror dialogue graph")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       meta.ID,
		"state":    string(result.State),
		"attempts": result.Attempts,
		"file":     meta.File,
		"entity":   result.Entity,
	})
}
