package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/middleware"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"constraint", apperrors.NewConstraintError("a record with this value already exists"), http.StatusBadRequest, dto.ErrorCodeConstraintViolation},
		{"validation", apperrors.NewValidationError("invalid student ID"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"store down", apperrors.ErrStoreUnavailable, http.StatusInternalServerError, dto.ErrorCodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students/1", nil)

			middleware.HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w.Body.Bytes())
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandleAPIError_NotFoundKeepsEntityMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/departments/99", nil)

	middleware.HandleAPIError(c, apperrors.ErrDepartmentNotFound)

	resp := decodeError(t, w.Body.Bytes())
	assert.Equal(t, "department not found", resp.Error)
}

func TestHandleAPIError_UnknownErrorTextIsRedacted(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)

	middleware.HandleAPIError(c, errors.New("pq: something internal leaked"))

	resp := decodeError(t, w.Body.Bytes())
	assert.Equal(t, "Internal server error", resp.Error)
	assert.NotContains(t, resp.Error, "leaked")
}

func TestNoRouteAndNoMethod(t *testing.T) {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowedHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.GET("/api/v1/students", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("unknown path is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, "Invalid endpoint", resp.Error)
	})

	t.Run("wrong verb on known path is 405", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/students", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, dto.ErrorCodeMethodNotAllowed, resp.Code)
	})
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an ID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes an incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CORS())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("headers on normal requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email   string `json:"email" binding:"required,email"`
		Credits int    `json:"credits" binding:"omitempty,gte=1,lte=6"`
	}

	t.Run("passes a valid struct", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.True(t, middleware.ValidateStruct(c, &form{Email: "ada@example.com", Credits: 3}))
	})

	t.Run("writes per-field details on failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		assert.False(t, middleware.ValidateStruct(c, &form{Email: "not-an-email", Credits: 9}))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Code)
		assert.Contains(t, resp.Details, "Email must be a valid email address")
		assert.Contains(t, resp.Details, "Credits must be at most 6")
	})
}
