package admin_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	assert "github.com/stretchr/testify/assert"
)

func Test_audit_001(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/audit_logs", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{
			"id":"audit_log-1","type":"api_key.deleted","effective_at":1720804090,
			"actor":{"type":"api_key","api_key":{"id":"key_1","type":"user","user":{"id":"user_1","email":"a@example.com"}}},
			"api_key.deleted":{"id":"key_2"}
		}],"first_id":"audit_log-1","last_id":"audit_log-1","has_more":false}`))
	})
	c := newTestClient(t, mux)

	after := time.Unix(1720000000, 0)
	before := time.Unix(1730000000, 0)
	logs, err := c.ListAuditLogs(context.Background(),
		admin.WithEventTypes("api_key.created", "api_key.deleted"),
		admin.WithActorEmails("a@example.com"),
		admin.WithProjectIDs("proj_1"),
		admin.WithEffectiveAfter(after),
		admin.WithEffectiveBefore(before),
		httpclient.WithLimit(10),
	)
	if assert.NoError(err) && assert.Len(logs.Data, 1) {
		log := logs.Data[0]
		assert.Equal("api_key.deleted", log.Type)
		assert.Equal("key_1", log.Actor.APIKey.ID)
		assert.JSONEq(`{"id":"key_2"}`, string(log.Details))
	}

	// Array filters are sent as key[]
	assert.Equal([]string{"api_key.created", "api_key.deleted"}, query["event_types[]"])
	assert.Equal([]string{"a@example.com"}, query["actor_emails[]"])
	assert.Equal([]string{"proj_1"}, query["project_ids[]"])
	assert.Empty(query["actor_ids[]"])
	assert.Equal("1720000000", query.Get("effective_at[gt]"))
	assert.Equal("1730000000", query.Get("effective_at[lt]"))
	assert.Equal("10", query.Get("limit"))
}

func Test_audit_002(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/audit_logs", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, list())
	})
	c := newTestClient(t, mux)

	// No filters means no query
	logs, err := c.ListAuditLogs(context.Background())
	if assert.NoError(err) {
		assert.Empty(logs.Data)
	}
	assert.Empty(query)

	// Empty filter values are rejected
	_, err = c.ListAuditLogs(context.Background(), admin.WithResourceIDs("res_1", ""))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ListAuditLogs(context.Background(), admin.WithActorIDs(""))
	assert.ErrorIs(err, openai.ErrBadParameter)
}
