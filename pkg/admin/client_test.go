package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

const testKey = "sk-admin-test"

func newTestClient(t *testing.T, mux *http.ServeMux) *admin.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c, err := admin.New(testKey, client.OptEndpoint(srv.URL+"/v1"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func list(data ...any) map[string]any {
	return map[string]any{"object": "list", "data": data, "has_more": false}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	_, err := admin.New("")
	assert.ErrorIs(err, openai.ErrBadParameter)

	t.Setenv(admin.EnvAdminKey, "")
	_, err = admin.NewFromEnv()
	assert.ErrorIs(err, openai.ErrBadParameter)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/users", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, list())
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// The admin key and base url are read from the environment
	t.Setenv(admin.EnvAdminKey, "sk-admin-env")
	t.Setenv(admin.EnvBaseURL, srv.URL+"/v1")
	c, err := admin.NewFromEnv()
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = c.ListUsers(context.Background())
	assert.NoError(err)
	assert.Equal("Bearer sk-admin-env", auth)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"error": map[string]any{"message": "admin key required", "type": "invalid_request_error"}})
	})
	c := newTestClient(t, mux)

	_, err := c.GetProject(context.Background(), "proj_1")
	assert.ErrorIs(err, openai.ErrNotAuthorized)
}
