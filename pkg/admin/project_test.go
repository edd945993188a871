package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_project_001(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	var created, renamed schema.ProjectRequest
	var archived bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/projects", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, list(schema.Project{ID: "proj_1", Object: "organization.project", Name: "Default", Status: "active"}))
	})
	mux.HandleFunc("POST /v1/organization/projects", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&created)
		writeJSON(w, http.StatusOK, schema.Project{ID: "proj_2", Name: created.Name, Status: "active"})
	})
	mux.HandleFunc("GET /v1/organization/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.Project{ID: r.PathValue("id"), Name: "Default"})
	})
	mux.HandleFunc("POST /v1/organization/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&renamed)
		writeJSON(w, http.StatusOK, schema.Project{ID: r.PathValue("id"), Name: renamed.Name})
	})
	mux.HandleFunc("POST /v1/organization/projects/{id}/archive", func(w http.ResponseWriter, r *http.Request) {
		archived = true
		at := int64(1711471533)
		writeJSON(w, http.StatusOK, schema.Project{ID: r.PathValue("id"), Status: "archived", ArchivedAt: &at})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	projects, err := c.ListProjects(ctx, httpclient.WithLimit(5), admin.WithIncludeArchived())
	if assert.NoError(err) && assert.Len(projects.Data, 1) {
		assert.Equal("proj_1", projects.Data[0].ID)
	}
	assert.Equal("5", query.Get("limit"))
	assert.Equal("true", query.Get("include_archived"))

	project, err := c.CreateProject(ctx, "Research")
	if assert.NoError(err) {
		assert.Equal("Research", created.Name)
		assert.Equal("proj_2", project.ID)
	}

	project, err = c.GetProject(ctx, "proj_1")
	if assert.NoError(err) {
		assert.Equal("proj_1", project.ID)
	}

	project, err = c.ModifyProject(ctx, "proj_1", "Renamed")
	if assert.NoError(err) {
		assert.Equal("Renamed", renamed.Name)
		assert.Equal("Renamed", project.Name)
	}

	project, err = c.ArchiveProject(ctx, "proj_1")
	if assert.NoError(err) {
		assert.True(archived)
		assert.Equal("archived", project.Status)
		assert.NotNil(project.ArchivedAt)
	}
}

func Test_project_002(t *testing.T) {
	assert := assert.New(t)
	c := newTestClient(t, http.NewServeMux())
	ctx := context.Background()

	// Validation happens before any request
	_, err := c.CreateProject(ctx, "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.GetProject(ctx, "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ModifyProject(ctx, "proj_1", "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ArchiveProject(ctx, "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ListProjects(ctx, httpclient.WithLimit(0))
	assert.ErrorIs(err, openai.ErrBadParameter)
}

func Test_project_003(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	var added schema.ProjectUserRequest
	var modified schema.ProjectUserRoleRequest
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/projects/{id}/users", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]any{
			"object":   "list",
			"data":     []schema.ProjectUser{{ID: "user_1", Object: "organization.project.user", Email: "a@example.com", Role: schema.ProjectRoleOwner}},
			"first_id": "user_1",
			"last_id":  "user_1",
			"has_more": true,
		})
	})
	mux.HandleFunc("GET /v1/organization/projects/{id}/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("user") != "user_1" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"message": "No such user"}})
			return
		}
		writeJSON(w, http.StatusOK, schema.ProjectUser{ID: "user_1", Role: schema.ProjectRoleOwner})
	})
	mux.HandleFunc("POST /v1/organization/projects/{id}/users", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&added)
		writeJSON(w, http.StatusOK, schema.ProjectUser{ID: added.UserID, Role: added.Role})
	})
	mux.HandleFunc("POST /v1/organization/projects/{id}/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&modified)
		writeJSON(w, http.StatusOK, schema.ProjectUser{ID: r.PathValue("user"), Role: modified.Role})
	})
	mux.HandleFunc("DELETE /v1/organization/projects/{id}/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.DeletedObject{ID: r.PathValue("user"), Object: "organization.project.user.deleted", Deleted: true})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	users, err := c.ListProjectUsers(ctx, "proj_1", httpclient.WithLimit(20), httpclient.WithAfter("user_0"))
	if assert.NoError(err) && assert.Len(users.Data, 1) {
		assert.Equal("a@example.com", users.Data[0].Email)
		assert.True(users.HasMore)
		assert.Equal("user_1", users.LastID)
	}
	assert.Equal("20", query.Get("limit"))
	assert.Equal("user_0", query.Get("after"))

	user, err := c.GetProjectUser(ctx, "proj_1", "user_1")
	if assert.NoError(err) {
		assert.Equal(schema.ProjectRoleOwner, user.Role)
	}
	_, err = c.GetProjectUser(ctx, "proj_1", "user_9")
	assert.ErrorIs(err, openai.ErrNotFound)

	user, err = c.CreateProjectUser(ctx, "proj_1", "user_2", schema.ProjectRoleMember)
	if assert.NoError(err) {
		assert.Equal("user_2", added.UserID)
		assert.Equal(schema.ProjectRoleMember, added.Role)
		assert.Equal("user_2", user.ID)
	}

	user, err = c.ModifyProjectUser(ctx, "proj_1", "user_2", schema.ProjectRoleOwner)
	if assert.NoError(err) {
		assert.Equal(schema.ProjectRoleOwner, modified.Role)
		assert.Equal(schema.ProjectRoleOwner, user.Role)
	}

	deleted, err := c.DeleteProjectUser(ctx, "proj_1", "user_2")
	if assert.NoError(err) {
		assert.True(deleted.Deleted)
		assert.Equal("user_2", deleted.ID)
	}
}

func Test_project_004(t *testing.T) {
	assert := assert.New(t)
	c := newTestClient(t, http.NewServeMux())
	ctx := context.Background()

	_, err := c.ListProjectUsers(ctx, "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.GetProjectUser(ctx, "proj_1", "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.CreateProjectUser(ctx, "proj_1", "user_1", schema.ProjectUserRole("reader"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ModifyProjectUser(ctx, "", "user_1", schema.ProjectRoleOwner)
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.DeleteProjectUser(ctx, "proj_1", "")
	assert.ErrorIs(err, openai.ErrBadParameter)
}

func Test_project_005(t *testing.T) {
	assert := assert.New(t)
	var created schema.ProjectServiceAccountRequest
	var deletedKey, deletedAccount string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/organization/projects/{id}/api_keys", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, list(schema.ProjectAPIKey{
			ID: "key_1", Name: "Development", RedactedValue: "sk-abc...def",
			Owner: &schema.ProjectAPIKeyOwner{Type: "user", User: &schema.ProjectUser{ID: "user_1"}},
		}))
	})
	mux.HandleFunc("GET /v1/organization/projects/{id}/api_keys/{key}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.ProjectAPIKey{ID: r.PathValue("key")})
	})
	mux.HandleFunc("DELETE /v1/organization/projects/{id}/api_keys/{key}", func(w http.ResponseWriter, r *http.Request) {
		deletedKey = r.PathValue("key")
		writeJSON(w, http.StatusOK, schema.DeletedObject{ID: deletedKey, Deleted: true})
	})
	mux.HandleFunc("GET /v1/organization/projects/{id}/service_accounts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, list(schema.ProjectServiceAccount{ID: "svc_1", Name: "CI", Role: schema.ProjectRoleMember}))
	})
	mux.HandleFunc("POST /v1/organization/projects/{id}/service_accounts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&created)
		writeJSON(w, http.StatusOK, schema.ProjectServiceAccount{
			ID: "svc_2", Name: created.Name, Role: schema.ProjectRoleMember,
			APIKey: &schema.ServiceAPIKey{ID: "key_2", Value: "sk-secret"},
		})
	})
	mux.HandleFunc("GET /v1/organization/projects/{id}/service_accounts/{svc}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.ProjectServiceAccount{ID: r.PathValue("svc")})
	})
	mux.HandleFunc("DELETE /v1/organization/projects/{id}/service_accounts/{svc}", func(w http.ResponseWriter, r *http.Request) {
		deletedAccount = r.PathValue("svc")
		writeJSON(w, http.StatusOK, schema.DeletedObject{ID: deletedAccount, Deleted: true})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	keys, err := c.ListProjectAPIKeys(ctx, "proj_1")
	if assert.NoError(err) && assert.Len(keys.Data, 1) {
		assert.Equal("sk-abc...def", keys.Data[0].RedactedValue)
		assert.Equal("user_1", keys.Data[0].Owner.User.ID)
	}
	key, err := c.GetProjectAPIKey(ctx, "proj_1", "key_1")
	if assert.NoError(err) {
		assert.Equal("key_1", key.ID)
	}
	_, err = c.DeleteProjectAPIKey(ctx, "proj_1", "key_1")
	assert.NoError(err)
	assert.Equal("key_1", deletedKey)

	accounts, err := c.ListProjectServiceAccounts(ctx, "proj_1")
	if assert.NoError(err) {
		assert.Len(accounts.Data, 1)
	}
	account, err := c.CreateProjectServiceAccount(ctx, "proj_1", "Deploy")
	if assert.NoError(err) {
		assert.Equal("Deploy", created.Name)
		if assert.NotNil(account.APIKey) {
			assert.Equal("sk-secret", account.APIKey.Value)
		}
	}
	account, err = c.GetProjectServiceAccount(ctx, "proj_1", "svc_2")
	if assert.NoError(err) {
		assert.Equal("svc_2", account.ID)
	}
	_, err = c.DeleteProjectServiceAccount(ctx, "proj_1", "svc_2")
	assert.NoError(err)
	assert.Equal("svc_2", deletedAccount)

	_, err = c.CreateProjectServiceAccount(ctx, "proj_1", "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.GetProjectAPIKey(ctx, "", "key_1")
	assert.ErrorIs(err, openai.ErrBadParameter)
}
