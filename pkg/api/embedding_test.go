package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_embedding_001(t *testing.T) {
	assert := assert.New(t)
	var received schema.EmbeddingRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		response := schema.EmbeddingResponse{Object: "list", Model: received.Model}
		for i := range received.Input {
			response.Data = append(response.Data, schema.Embedding{Object: "embedding", Index: i, Embedding: []float64{0.1, 0.2, 0.3}})
		}
		writeJSON(w, http.StatusOK, response)
	})
	c := newTestClient(t, mux)

	response, err := c.CreateEmbeddings(context.Background(), "text-embedding-3-small", []string{"one", "two"}, api.WithDimensions(3))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Len(response.Data, 2)
	assert.Equal(1, response.Data[1].Index)
	assert.Len(response.Data[0].Embedding, 3)
	if assert.NotNil(received.Dimensions) {
		assert.Equal(uint(3), *received.Dimensions)
	}
}

func Test_embedding_002(t *testing.T) {
	assert := assert.New(t)
	_, err := api.EmbeddingRequest("", []string{"one"})
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.EmbeddingRequest("text-embedding-3-small", nil)
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.EmbeddingRequest("text-embedding-3-small", []string{"one", ""})
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.EmbeddingRequest("text-embedding-3-small", []string{"one"}, api.WithEncodingFormat("base64"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.EmbeddingRequest("text-embedding-3-small", []string{"one"}, api.WithDimensions(0))
	assert.ErrorIs(err, openai.ErrBadParameter)

	request, err := api.EmbeddingRequest("text-embedding-3-small", []string{"one"}, api.WithEncodingFormat("float"))
	if assert.NoError(err) {
		assert.Equal("float", request.EncodingFormat)
		assert.Nil(request.Dimensions)
	}
}

func Test_moderation_001(t *testing.T) {
	assert := assert.New(t)
	var received schema.ModerationRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/moderations", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusOK, schema.ModerationResponse{
			ID:    "modr-1",
			Model: "omni-moderation-latest",
			Results: []schema.ModerationResult{
				{Flagged: false, Categories: map[string]bool{"violence": false}},
				{Flagged: true, Categories: map[string]bool{"violence": true}, CategoryScores: map[string]float64{"violence": 0.98}},
			},
		})
	})
	c := newTestClient(t, mux)

	response, err := c.CreateModeration(context.Background(), []string{"hello", "something violent"}, api.WithModel("omni-moderation-latest"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("omni-moderation-latest", received.Model)
	assert.Equal([]string{"hello", "something violent"}, received.Input)
	assert.True(response.Flagged())
	if assert.Len(response.Results, 2) {
		assert.False(response.Results[0].Flagged)
		assert.Equal(0.98, response.Results[1].CategoryScores["violence"])
	}
}

func Test_moderation_002(t *testing.T) {
	assert := assert.New(t)
	c := newTestClient(t, http.NewServeMux())
	_, err := c.CreateModeration(context.Background(), nil)
	assert.ErrorIs(err, openai.ErrBadParameter)
}
