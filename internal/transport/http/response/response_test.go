package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-api/internal/domain"
)

func run(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, zap.NewNop(), err)

	var env Envelope
	if e := json.Unmarshal(w.Body.Bytes(), &env); e != nil {
		t.Fatalf("bad envelope: %v", e)
	}
	return w, env
}

func TestError_Conflict(t *testing.T) {
	w, env := run(t, &domain.ConflictError{Field: "role name", Value: "admin"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Success || env.Message != "Already exists" {
		t.Fatalf("envelope: %+v", env)
	}
	if env.Errors != "role name already taken: admin" {
		t.Fatalf("errors: %v", env.Errors)
	}
}

func TestError_InvalidCredentials(t *testing.T) {
	w, _ := run(t, domain.ErrInvalidCredentials)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestError_NotFound(t *testing.T) {
	w, _ := run(t, domain.ErrNotFound)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestError_UnknownIsOpaque(t *testing.T) {
	w, env := run(t, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Errors != nil {
		t.Fatalf("internal detail leaked: %v", env.Errors)
	}
	if env.Message != "Internal server error" {
		t.Fatalf("message: %q", env.Message)
	}
}

func TestOK_Shape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	OK(c, gin.H{"id": "1"})

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if !env.Success || env.Message != "Success" || env.Data == nil {
		t.Fatalf("envelope: %+v", env)
	}
}
