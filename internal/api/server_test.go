package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonehamilton/EDH-Companion/internal/api/handlers"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/brackets"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/salt"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/validator"
)

type stubSearcher struct{}

func (stubSearcher) SearchAllNames(ctx context.Context, query string) (map[string]struct{}, error) {
	return map[string]struct{}{"Demonic Tutor": {}}, nil
}

func (stubSearcher) SearchCardURIs(ctx context.Context, query string) (map[string]string, error) {
	return map[string]string{"Time Warp": "https://scryfall.com/card/time-warp"}, nil
}

type stubSaltSource struct{}

func (stubSaltSource) VisitSaltScores(ctx context.Context, visit func(name string, score float64)) (int, error) {
	visit("Winter Orb", 3.12)
	visit("Sol Ring", 1.2)
	return 1, nil
}

func (stubSaltSource) CommanderSalt(ctx context.Context, slug string) (float64, error) {
	return 1.5, nil
}

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()

	saltService := salt.NewService(stubSaltSource{}, filepath.Join(t.TempDir(), "salt_cache.json"))
	loader := brackets.NewLoader(stubSearcher{})
	v := validator.New(saltService, loader, nil)

	return NewServer(
		&Config{Port: 0, APIKey: apiKey},
		&Handlers{
			Validation: handlers.NewValidationHandler(v),
			Salt:       handlers.NewSaltHandler(saltService),
			Brackets:   handlers.NewBracketsHandler(),
			System:     handlers.NewSystemHandler(),
		},
	)
}

func doRequest(t *testing.T, s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestHealthSkipsAuth(t *testing.T) {
	s := newTestServer(t, "secret-key")

	rec := doRequest(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	s := newTestServer(t, "secret-key")

	rec := doRequest(t, s, http.MethodGet, "/api/v1/brackets/info", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/brackets/info", "", map[string]string{
		"Authorization": "Bearer wrong-key",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/brackets/info", "", map[string]string{
		"Authorization": "Bearer secret-key",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateDeckEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	body := `{
		"decklist": ["1x Sol Ring", "1x Ponder", "1x Brainstorm"],
		"commander": "Jace, Wielder of Mysteries"
	}`
	rec := doRequest(t, s, http.MethodPost, "/api/v1/deck/validate", body, map[string]string{
		"Content-Type": "application/json",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validator.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.DeckSummary)
	assert.Equal(t, 3, resp.DeckSummary.TotalCards)
	assert.NotNil(t, resp.BracketValidation)
	assert.NotNil(t, resp.SaltScores)
}

func TestValidateDeckRejectsBadJSON(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/deck/validate", "{not json", map[string]string{
		"Content-Type": "application/json",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContentTypeEnforcement(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/deck/validate", `{"decklist":["1 Sol Ring"]}`, map[string]string{
		"Content-Type": "text/plain",
	})
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	// Parameterized JSON content types pass.
	rec = doRequest(t, s, http.MethodPost, "/api/v1/deck/validate", `{"decklist":["1 Sol Ring"]}`, map[string]string{
		"Content-Type": "application/json; charset=utf-8",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSampleValidationEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodGet, "/api/v1/deck/validate/sample", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "sample_request")
	assert.Contains(t, body, "validation_result")
}

func TestBracketsInfoEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodGet, "/api/v1/brackets/info", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	bracketsInfo, ok := body["brackets"].(map[string]interface{})
	require.True(t, ok, "brackets section missing: %v", body)
	assert.Len(t, bracketsInfo, 5)
}

func TestGameChangersListEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodGet, "/api/v1/brackets/game-changers/list", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	current, ok := body["current_game_changers"].([]interface{})
	require.True(t, ok, "current_game_changers missing: %v", body)
	assert.NotEmpty(t, current)
}

func TestSaltEndpoints(t *testing.T) {
	s := newTestServer(t, "")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/salt/refresh", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/salt/info", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/salt/card/Winter%20Orb", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Winter Orb", body["card_name"])
	assert.Equal(t, 3.12, body["salt_score"])
	assert.Equal(t, true, body["found"])
}
