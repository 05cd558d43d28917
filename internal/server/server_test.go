package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/assetforge/internal/config"
	"github.com/lunarforge/assetforge/internal/core/generator"
	"github.com/lunarforge/assetforge/internal/llm"
	"github.com/lunarforge/assetforge/internal/prompts"
	"github.com/lunarforge/assetforge/internal/store"
)

type downClient struct{}

func (downClient) Generate(context.Context, string, string, float64) (string, error) {
	return "", errors.New("connection refused")
}

func newTestServer(t *testing.T, client generator.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := generator.Config{MaxAttempts: 3}
	gen := generator.New(client, cfg, zerolog.Nop())
	mockGen := generator.New(llm.NewMockClient(), cfg, zerolog.Nop())
	files := store.NewFileStore(t.TempDir(), zerolog.Nop())
	pm := prompts.NewManager(config.PromptTemplates{})

	srv := New(gen, mockGen, pm, files, nil, 0.8, zerolog.Nop())
	return srv.SetupRouter()
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, llm.NewMockClient())
	w := do(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateMonster(t *testing.T) {
	router := newTestServer(t, llm.NewMockClient())

	w := do(t, router, http.MethodPost, "/generate/monster", gin.H{
		"region": "frozen tundra",
		"level":  15,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID       string         `json:"id"`
		State    string         `json:"state"`
		Attempts int            `json:"attempts"`
		File     string         `json:"file"`
		Entity   map[string]any `json:"entity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "SUCCESS", resp.State)
	assert.Equal(t, 1, resp.Attempts)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Snowpeak Troll", resp.Entity["name"])

	_, err := os.Stat(resp.File)
	assert.NoError(t, err)
	_, err = os.Stat(resp.File + ".meta.json")
	assert.NoError(t, err)
}

func TestGenerateDialogueWithMockFlag(t *testing.T) {
	// The live client is down but use_mock routes to the mock generator.
	router := newTestServer(t, downClient{})

	w := do(t, router, http.MethodPost, "/generate/dialogue", gin.H{
		"npc_role": "blacksmith",
		"use_mock": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		State  string         `json:"state"`
		Entity map[string]any `json:"entity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUCCESS", resp.State)
	assert.Equal(t, "Mira", resp.Entity["npc_name"])
}

func TestGenerateExhaustedReturnsBadGateway(t *testing.T) {
	router := newTestServer(t, downClient{})

	w := do(t, router, http.MethodPost, "/generate/item", gin.H{"category": "weapon"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		State    string `json:"state"`
		Attempts int    `json:"attempts"`
		Error    string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXHAUSTED", resp.State)
	assert.Equal(t, 3, resp.Attempts)
	assert.Contains(t, resp.Error, "exhausted")
}

func TestGenerateInvalidBody(t *testing.T) {
	router := newTestServer(t, llm.NewMockClient())

	req := httptest.NewRequest(http.MethodPost, "/generate/monster", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
