package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

// uploadServer records the parts of an upload by content
type uploadServer struct {
	sync.Mutex
	parts     map[string]string
	created   schema.UploadRequest
	completed schema.UploadCompleteRequest
	cancelled bool
	failPart  string
	seq       atomic.Int32
}

func newUploadMux(s *uploadServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/uploads", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&s.created)
		writeJSON(w, http.StatusOK, schema.Upload{
			ID: "upload_1", Object: "upload", Bytes: s.created.Bytes, Filename: s.created.Filename, Purpose: s.created.Purpose, Status: "pending",
		})
	})
	mux.HandleFunc("POST /v1/uploads/{id}/parts", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		f, _, err := r.FormFile("data")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if s.failPart != "" && string(data) == s.failPart {
			writeError(w, http.StatusInternalServerError, "part failed", "")
			return
		}
		id := fmt.Sprintf("part_%d", s.seq.Add(1))
		s.Lock()
		s.parts[id] = string(data)
		s.Unlock()
		writeJSON(w, http.StatusOK, schema.UploadPart{ID: id, Object: "upload.part", UploadID: r.PathValue("id")})
	})
	mux.HandleFunc("POST /v1/uploads/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&s.completed)
		writeJSON(w, http.StatusOK, schema.Upload{
			ID: r.PathValue("id"), Object: "upload", Status: "completed",
			File: &schema.File{ID: "file-9", Object: "file", Filename: s.created.Filename},
		})
	})
	mux.HandleFunc("POST /v1/uploads/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		s.cancelled = true
		writeJSON(w, http.StatusOK, schema.Upload{ID: r.PathValue("id"), Object: "upload", Status: "cancelled"})
	})
	return mux
}

func Test_upload_001(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(api.Parts(0, 10))
	assert.Equal([][2]int64{{0, 10}}, api.Parts(10, 10))
	assert.Equal([][2]int64{{0, 4}, {4, 4}, {8, 2}}, api.Parts(10, 4))
	assert.Equal([][2]int64{{0, 5}}, api.Parts(5, 64))
}

func Test_upload_002(t *testing.T) {
	assert := assert.New(t)
	_, err := api.UploadRequest("", schema.PurposeBatch, 10, "text/jsonl")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.UploadRequest("a.jsonl", schema.FilePurpose("x"), 10, "text/jsonl")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.UploadRequest("a.jsonl", schema.PurposeBatch, 0, "text/jsonl")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.UploadRequest("a.jsonl", schema.PurposeBatch, schema.UploadMaxBytes+1, "text/jsonl")
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = api.UploadRequest("a.jsonl", schema.PurposeBatch, 10, "")
	assert.ErrorIs(err, openai.ErrBadParameter)
}

func Test_upload_003(t *testing.T) {
	assert := assert.New(t)
	s := &uploadServer{parts: make(map[string]string)}
	c := newTestClient(t, newUploadMux(s))

	// Parts complete out of order, but are listed in order of offset
	data := []byte("aaaabbbbccccdd")
	upload, err := c.UploadLargeFile(context.Background(), bytes.NewReader(data), int64(len(data)), "big.jsonl", schema.PurposeBatch, "text/jsonl",
		api.WithPartSize(4), api.WithConcurrency(3), api.WithMD5("0123456789abcdef0123456789abcdef"),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("completed", upload.Status)
	if assert.NotNil(upload.File) {
		assert.Equal("file-9", upload.File.ID)
	}
	assert.Equal("big.jsonl", s.created.Filename)
	assert.Equal(int64(len(data)), s.created.Bytes)
	assert.Equal("0123456789abcdef0123456789abcdef", s.completed.MD5)
	if assert.Len(s.completed.PartIDs, 4) {
		var joined string
		for _, id := range s.completed.PartIDs {
			joined += s.parts[id]
		}
		assert.Equal(string(data), joined)
	}
	assert.False(s.cancelled)
}

func Test_upload_004(t *testing.T) {
	assert := assert.New(t)
	s := &uploadServer{parts: make(map[string]string), failPart: "cccc"}
	c := newTestClient(t, newUploadMux(s))

	// A failed part cancels the upload
	data := []byte("aaaabbbbccccdd")
	_, err := c.UploadLargeFile(context.Background(), bytes.NewReader(data), int64(len(data)), "big.jsonl", schema.PurposeBatch, "text/jsonl",
		api.WithPartSize(4), api.WithConcurrency(1),
	)
	assert.ErrorIs(err, openai.ErrInternalServerError)
	assert.True(s.cancelled)
}

func Test_upload_005(t *testing.T) {
	assert := assert.New(t)
	s := &uploadServer{parts: make(map[string]string)}
	c := newTestClient(t, newUploadMux(s))

	upload, err := c.CreateUpload(context.Background(), "small.jsonl", schema.PurposeFineTune, 3, "text/jsonl")
	if !assert.NoError(err) {
		t.FailNow()
	}
	part, err := c.AddUploadPart(context.Background(), upload.ID, bytes.NewReader([]byte("abc")))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("upload_1", part.UploadID)
	completed, err := c.CompleteUpload(context.Background(), upload.ID, []string{part.ID})
	if assert.NoError(err) {
		assert.Equal("completed", completed.Status)
	}
	assert.Equal("", s.completed.MD5)

	cancelled, err := c.CancelUpload(context.Background(), upload.ID)
	if assert.NoError(err) {
		assert.Equal("cancelled", cancelled.Status)
	}

	_, err = c.CompleteUpload(context.Background(), upload.ID, nil)
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.AddUploadPart(context.Background(), "", bytes.NewReader(nil))
	assert.ErrorIs(err, openai.ErrBadParameter)
}

// zeros is an endless source of zero bytes
type zeros struct{}

func (zeros) Read(b []byte) (int, error) {
	clear(b)
	return len(b), nil
}

func (zeros) ReadAt(b []byte, _ int64) (int, error) {
	clear(b)
	return len(b), nil
}

func Test_upload_006(t *testing.T) {
	assert := assert.New(t)
	var requests atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/uploads/{id}/parts", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = io.Copy(io.Discard, r.Body)
		writeJSON(w, http.StatusOK, schema.UploadPart{ID: "part_1", Object: "upload.part", UploadID: r.PathValue("id")})
	})
	c := newTestClient(t, mux)

	// A part of known size is rejected before it is sent
	_, err := c.AddUploadPart(context.Background(), "upload_1", io.NewSectionReader(zeros{}, 0, schema.UploadPartMaxBytes+1))
	assert.ErrorIs(err, openai.ErrBadParameter)
	assert.Equal(int32(0), requests.Load())

	// A part of unknown size is cut off once it passes the limit
	_, err = c.AddUploadPart(context.Background(), "upload_1", io.LimitReader(zeros{}, schema.UploadPartMaxBytes+1))
	assert.ErrorIs(err, openai.ErrBadParameter)

	// A part of exactly the limit is accepted
	part, err := c.AddUploadPart(context.Background(), "upload_1", io.LimitReader(zeros{}, schema.UploadPartMaxBytes))
	if assert.NoError(err) {
		assert.Equal("part_1", part.ID)
	}
}
