package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()
	Success(c, gin.H{"id": "1"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "cached")
	assert.NotContains(t, body, "error")
}

func TestSuccessCached(t *testing.T) {
	c, w := newTestContext()
	SuccessCached(c, gin.H{"id": "1"})

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["cached"])
}

func TestCreated(t *testing.T) {
	c, w := newTestContext()
	Created(c, gin.H{"id": "1"}, "教程创建成功")

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "教程创建成功", body["message"])
}

func TestErrorHidesDetailByDefault(t *testing.T) {
	SetDebugMode(false)
	c, w := newTestContext()
	Error(c, http.StatusInternalServerError, "获取教程失败", errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "获取教程失败", body["error"])
	assert.NotContains(t, body, "details")
}

func TestErrorExposesDetailInDebugMode(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	c, w := newTestContext()
	Error(c, http.StatusInternalServerError, "获取教程失败", errors.New("dial tcp: connection refused"))

	body := decode(t, w)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details["error"], "connection refused")
}

// 校验失败时所有未通过的字段都要出现在details里
func TestValidationErrorListsAllFields(t *testing.T) {
	type form struct {
		Title      string `validate:"required"`
		Difficulty string `validate:"oneof=beginner intermediate advanced"`
	}

	err := validator.New().Struct(form{Difficulty: "expert"})
	require.Error(t, err)

	c, w := newTestContext()
	ValidationError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "参数校验失败", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 2)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		item := d.(map[string]any)
		fields = append(fields, item["field"].(string))
		assert.NotEmpty(t, item["message"])
	}
	assert.Contains(t, fields, "Title")
	assert.Contains(t, fields, "Difficulty")
}

func TestNotImplemented(t *testing.T) {
	c, w := newTestContext()
	NotImplemented(c, "文件上传功能尚未实现")

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "文件上传功能尚未实现", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestNotFound(t *testing.T) {
	c, w := newTestContext()
	NotFound(c, "教程不存在")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "教程不存在", body["error"])
}
