package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-cms/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		perPage  int
		lastPage int
	}{
		{"整除", 24, 1, 12, 2},
		{"有余数向上取整", 25, 1, 12, 3},
		{"空结果至少一页", 0, 1, 12, 1},
		{"单页", 5, 1, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.lastPage, p.LastPage)
			assert.Equal(t, tt.perPage, p.PerPage)
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := testContext()
	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "success", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "errors")
}

func TestCreatedEnvelope(t *testing.T) {
	c, w := testContext()
	Created(c, "Project created successfully", gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Project created successfully", body["message"])
}

func TestPageSuccessEnvelope(t *testing.T) {
	c, w := testContext()
	PageSuccess(c, []string{"a", "b"}, 25, 2, 12)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["items"], 2)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 25, pagination["total"])
	assert.EqualValues(t, 2, pagination["current_page"])
	assert.EqualValues(t, 3, pagination["last_page"])
	assert.EqualValues(t, 12, pagination["per_page"])
}

func TestValidationFailedEnvelope(t *testing.T) {
	c, w := testContext()
	ValidationFailed(c, map[string]string{"email": "The email field is required."})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	fields := body["errors"].(map[string]interface{})
	assert.Equal(t, "The email field is required.", fields["email"])
}

func TestResponderNotFound(t *testing.T) {
	c, w := testContext()
	NewResponder(false).Error(c, errors.ErrProjectNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Project not found", body["message"])
}

func TestResponderValidationError(t *testing.T) {
	c, w := testContext()
	err := errors.NewValidation("Validation failed", map[string]string{"slug": "The slug has already been taken"})
	NewResponder(false).Error(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	fields := body["errors"].(map[string]interface{})
	assert.Equal(t, "The slug has already been taken", fields["slug"])
}

func TestResponderDebugGating(t *testing.T) {
	wrapped := errors.Wrap(errors.CodeDatabaseError, "Failed to query projects", assert.AnError)

	t.Run("debug关闭时不带底层错误", func(t *testing.T) {
		c, w := testContext()
		NewResponder(false).Error(c, wrapped)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.NotContains(t, body, "error")
	})

	t.Run("debug开启时带底层错误", func(t *testing.T) {
		c, w := testContext()
		NewResponder(true).Error(c, wrapped)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, assert.AnError.Error(), body["error"])
	})
}

func TestResponderUnknownError(t *testing.T) {
	c, w := testContext()
	NewResponder(false).Error(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body, "error")
}
