package rbac

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (s *stubService) LoadPolicy() error { return nil }

func (s *stubService) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.enforceFn(req)
}

func (s *stubService) Roles() ([]domain.RoleResponse, error) {
	return []domain.RoleResponse{{Name: RoleUser}}, nil
}

func TestHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("uses caller role", func(t *testing.T) {
		svc := &stubService{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, RoleUser, req.Role)
			assert.Equal(t, "leave", req.Resource)
			assert.Equal(t, "apply", req.Action)
			return true, nil
		}}
		h := NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(map[string]string{"resource": "leave", "action": "apply"})
		c.Request = httptest.NewRequest(http.MethodPost, "/rbac/check", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("role", RoleUser)

		h.Check(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := NewHandler(&stubService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/rbac/check", bytes.NewReader([]byte(`{}`)))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Check(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &stubService{enforceFn: func(domain.EnforceRequest) (bool, error) {
			return false, errors.New("model broken")
		}}
		h := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(map[string]string{"resource": "leave", "action": "apply"})
		c.Request = httptest.NewRequest(http.MethodPost, "/rbac/check", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Check(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_ListRoles(t *testing.T) {
	h := NewHandler(&stubService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rbac/roles", nil)

	h.ListRoles(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"user"`)
}
