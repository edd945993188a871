package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_batch_001(t *testing.T) {
	assert := assert.New(t)
	_, err := api.BatchRequest("", schema.BatchEndpointChatCompletions)
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.BatchRequest("file-1", schema.BatchEndpoint("/v1/images"))
	assert.ErrorIs(err, openai.ErrBadParameter)

	request, err := api.BatchRequest("file-1", schema.BatchEndpointEmbeddings, api.WithMetadata(map[string]string{"job": "nightly"}))
	if assert.NoError(err) {
		assert.Equal("24h", request.CompletionWindow)
		assert.Equal("nightly", request.Metadata["job"])
	}
}

func Test_batch_002(t *testing.T) {
	assert := assert.New(t)
	var received schema.BatchRequest
	var query url.Values
	var cancelled bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/batches", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusOK, schema.Batch{
			ID: "batch_1", Object: "batch", Endpoint: received.Endpoint, InputFileID: received.InputFileID,
			CompletionWindow: received.CompletionWindow, Status: "validating",
		})
	})
	mux.HandleFunc("GET /v1/batches", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, schema.ListResponse[schema.Batch]{Object: "list", Data: []schema.Batch{{ID: "batch_1"}, {ID: "batch_2"}}})
	})
	mux.HandleFunc("GET /v1/batches/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.Batch{
			ID: r.PathValue("id"), Status: "completed", OutputFileID: "file-out",
			RequestCounts: &schema.BatchRequestCounts{Total: 2, Completed: 2},
		})
	})
	mux.HandleFunc("POST /v1/batches/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancelled = true
		writeJSON(w, http.StatusOK, schema.Batch{ID: r.PathValue("id"), Status: "cancelling"})
	})
	c := newTestClient(t, mux)

	batch, err := c.CreateBatch(context.Background(), "file-1", schema.BatchEndpointChatCompletions)
	if assert.NoError(err) {
		assert.Equal("batch_1", batch.ID)
		assert.Equal("validating", batch.Status)
	}
	assert.Equal("file-1", received.InputFileID)
	assert.Equal(schema.BatchEndpointChatCompletions, received.Endpoint)
	assert.Equal("24h", received.CompletionWindow)

	batches, err := c.ListBatches(context.Background(), api.WithLimit(2), api.WithAfter("batch_0"))
	if assert.NoError(err) {
		assert.Len(batches.Data, 2)
	}
	assert.Equal("2", query.Get("limit"))
	assert.Equal("batch_0", query.Get("after"))

	batch, err = c.GetBatch(context.Background(), "batch_1")
	if assert.NoError(err) {
		assert.Equal("file-out", batch.OutputFileID)
		if assert.NotNil(batch.RequestCounts) {
			assert.Equal(2, batch.RequestCounts.Completed)
		}
	}

	batch, err = c.CancelBatch(context.Background(), "batch_1")
	if assert.NoError(err) {
		assert.Equal("cancelling", batch.Status)
	}
	assert.True(cancelled)

	_, err = c.GetBatch(context.Background(), "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.CancelBatch(context.Background(), "")
	assert.ErrorIs(err, openai.ErrBadParameter)
}
