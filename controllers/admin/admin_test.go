package adminController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, password string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/admin/login", AdminLogin())

	payload, _ := json.Marshal(gin.H{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginIssuesToken(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")

	w := postLogin(t, "hunter2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 300, resp.ExpiresIn)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	w := postLogin(t, "guess")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsWhenPasswordUnset(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	w := postLogin(t, "")

	// Empty body password fails binding, empty configured password can
	// never match.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
