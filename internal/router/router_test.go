package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/logger"
)

// newMockEngine 按演示模式装配路由，不需要数据库和Redis
func newMockEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "makeoo-api",
			Version:     "1.0.0",
			Mode:        "debug",
			Port:        3001,
			MockMode:    true,
			BodyLimitMB: 10,
			Cors: config.CorsConfig{
				AllowOrigins: []string{"http://localhost:5173"},
			},
		},
		Log:       config.LogConfig{Level: "error", Stdout: true},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
	config.GlobalConfig = cfg
	logger.InitLogger(&cfg.Log)

	return Setup(Options{Config: cfg})
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestMockRecipeList(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/recipes", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	recipes := data["recipes"].([]any)
	assert.Len(t, recipes, 2)

	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pagination["totalItems"])

	first := recipes[0].(map[string]any)
	assert.Contains(t, first, "likesCount")
	assert.Contains(t, first, "estimatedTimeMinutes")
	assert.Contains(t, first, "author")
}

func TestMockRecipeListEchoesPage(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/recipes?page=3&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 3, pagination["currentPage"])
	assert.EqualValues(t, 5, pagination["limit"])
}

func TestRecipeListInvalidDifficulty(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/recipes?difficulty=expert", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	details := body["details"].([]any)
	require.NotEmpty(t, details)
	assert.Equal(t, "difficulty", details[0].(map[string]any)["field"])
}

func TestRecipeListOversizedLimit(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/recipes?limit=999", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMockRecipeDetail(t *testing.T) {
	engine := newMockEngine(t)

	for _, identifier := range []string{"1", "pet-bottle-planter"} {
		w := doRequest(engine, http.MethodGet, "/api/v1/recipes/"+identifier, "")
		require.Equal(t, http.StatusOK, w.Code, "identifier=%s", identifier)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "pet-bottle-planter", data["slug"])
		assert.Len(t, data["steps"].([]any), 4)
	}
}

func TestMockRecipeDetailNotFound(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/recipes/old-clothes-eco-bag", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestMockCategories(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"].([]any), 5)
}

// 演示模式下没有示例数据的接口统一返回503
func TestMockUnavailableEndpoints(t *testing.T) {
	engine := newMockEngine(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/v1/recipes", `{"title":"t"}`},
		{http.MethodPost, "/api/v1/recipes/1/like", ""},
		{http.MethodDelete, "/api/v1/recipes/1/like", ""},
		{http.MethodPost, "/api/v1/recipes/1/comments", `{"content":"不错"}`},
		{http.MethodGet, "/api/v1/tags", ""},
		{http.MethodGet, "/api/v1/users/1", ""},
		{http.MethodGet, "/api/v1/users/1/recipes", ""},
		{http.MethodGet, "/api/v1/categories/1", ""},
	}

	for _, tt := range tests {
		w := doRequest(engine, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s", tt.method, tt.path)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"], "%s %s", tt.method, tt.path)
	}
}

func TestUploadNotImplemented(t *testing.T) {
	engine := newMockEngine(t)

	for _, path := range []string{"/api/v1/upload", "/api/v1/upload/images"} {
		w := doRequest(engine, http.MethodPost, path, "")
		assert.Equal(t, http.StatusNotImplemented, w.Code, path)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	services := body["services"].(map[string]any)
	assert.Equal(t, "mock", services["database"].(map[string]any)["status"])
	assert.Equal(t, "mock", services["cache"].(map[string]any)["status"])

	w = doRequest(engine, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alive", decodeBody(t, w)["status"])

	w = doRequest(engine, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/health/detailed", "")
	require.Equal(t, http.StatusOK, w.Code)
	detailed := decodeBody(t, w)
	assert.Contains(t, detailed, "system")
}

func TestAPIMetadata(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "makeoo-api", body["name"])
	assert.Equal(t, "running", body["status"])
	endpoints := body["endpoints"].(map[string]any)
	assert.Contains(t, endpoints, "v1")
}

func TestNoRouteStructured404(t *testing.T) {
	engine := newMockEngine(t)

	w := doRequest(engine, http.MethodGet, "/api/v2/recipes", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "/api/v2/recipes", errObj["path"])
	assert.Contains(t, errObj, "availableEndpoints")
}

func TestCorsPreflight(t *testing.T) {
	engine := newMockEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsUnknownOrigin(t *testing.T) {
	engine := newMockEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEmptyCommentRejected(t *testing.T) {
	engine := newMockEngine(t)

	// 演示模式下评论接口先于参数校验返回503，这里只确认不会panic
	w := doRequest(engine, http.MethodPost, "/api/v1/recipes/1/comments", `{"content":"   "}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
