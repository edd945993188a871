package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_image_001(t *testing.T) {
	assert := assert.New(t)
	var received schema.ImageRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusOK, schema.ImageResponse{
			Created: 1700000000,
			Data:    []schema.Image{{URL: "https://example.com/cat.png", RevisedPrompt: "a fluffy cat"}},
		})
	})
	c := newTestClient(t, mux)

	response, err := c.CreateImage(context.Background(), "a cat",
		api.WithModel("dall-e-3"), api.WithSize("1024x1024"), api.WithQuality("hd"), api.WithStyle("vivid"), api.WithN(1),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("a cat", received.Prompt)
	assert.Equal("dall-e-3", received.Model)
	assert.Equal("1024x1024", received.Size)
	assert.Equal("hd", received.Quality)
	assert.Equal("vivid", received.Style)
	if assert.Len(response.Data, 1) {
		assert.Equal("https://example.com/cat.png", response.Data[0].URL)
		assert.Equal("a fluffy cat", response.Data[0].RevisedPrompt)
	}
}

func Test_image_002(t *testing.T) {
	assert := assert.New(t)
	_, err := api.ImageRequest("")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.ImageRequest("a cat", api.WithN(11))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.ImageRequest("a cat", api.WithQuality("ultra"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.ImageRequest("a cat", api.WithStyle("bold"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.ImageRequest("a cat", api.WithImageResponseFormat("png"))
	assert.ErrorIs(err, openai.ErrBadParameter)

	request, err := api.ImageRequest("a cat", api.WithImageResponseFormat(schema.ImageResponseB64JSON))
	if assert.NoError(err) {
		assert.Equal(schema.ImageResponseB64JSON, request.ResponseFormat)
		assert.Nil(request.N)
	}
}

func Test_image_003(t *testing.T) {
	assert := assert.New(t)
	var prompt, n, filename, mask string
	var image []byte
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/images/edits", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		prompt = r.FormValue("prompt")
		n = r.FormValue("n")
		if f, header, err := r.FormFile("image"); err == nil {
			filename = header.Filename
			image, _ = io.ReadAll(f)
			f.Close()
		}
		if _, header, err := r.FormFile("mask"); err == nil {
			mask = header.Filename
		}
		writeJSON(w, http.StatusOK, schema.ImageResponse{Data: []schema.Image{{B64JSON: "aGVsbG8="}}})
	})
	c := newTestClient(t, mux)

	response, err := c.EditImage(context.Background(),
		schema.NewFileUploadReader("cat.png", bytes.NewReader([]byte("PNGDATA"))), "add a hat",
		api.WithN(2), api.WithMask(schema.NewFileUploadReader("mask.png", bytes.NewReader([]byte("MASK")))),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("add a hat", prompt)
	assert.Equal("2", n)
	assert.Equal("cat.png", filename)
	assert.Equal("PNGDATA", string(image))
	assert.Equal("mask.png", mask)
	if assert.Len(response.Data, 1) {
		assert.Equal("aGVsbG8=", response.Data[0].B64JSON)
	}
}

func Test_image_004(t *testing.T) {
	assert := assert.New(t)
	var filename, model string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/images/variations", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		model = r.FormValue("model")
		if _, header, err := r.FormFile("image"); err == nil {
			filename = header.Filename
		}
		writeJSON(w, http.StatusOK, schema.ImageResponse{Data: []schema.Image{{URL: "https://example.com/1.png"}, {URL: "https://example.com/2.png"}}})
	})
	c := newTestClient(t, mux)

	response, err := c.CreateImageVariation(context.Background(),
		schema.NewFileUploadReader("cat.png", bytes.NewReader([]byte("PNGDATA"))), api.WithModel("dall-e-2"),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("cat.png", filename)
	assert.Equal("dall-e-2", model)
	assert.Len(response.Data, 2)
}

func Test_image_005(t *testing.T) {
	assert := assert.New(t)
	c := newTestClient(t, http.NewServeMux())

	// Validation happens before the request is made
	_, err := c.EditImage(context.Background(), schema.NewFileUploadReader("cat.png", bytes.NewReader(nil)), "")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.CreateImageVariation(context.Background(), schema.NewFileUploadReader("cat.png", bytes.NewReader(nil)), api.WithN(20))
	assert.ErrorIs(err, openai.ErrBadParameter)
}
