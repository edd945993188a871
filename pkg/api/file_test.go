package api_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func newFileMux(query *url.Values) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/files", func(w http.ResponseWriter, r *http.Request) {
		*query = r.URL.Query()
		writeJSON(w, http.StatusOK, schema.ListResponse[schema.File]{
			Object:  "list",
			Data:    []schema.File{{ID: "file-1", Object: "file", Filename: "train.jsonl", Purpose: schema.PurposeFineTune}},
			HasMore: true,
		})
	})
	mux.HandleFunc("POST /v1/files", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		writeJSON(w, http.StatusOK, schema.File{
			ID:       "file-2",
			Object:   "file",
			Bytes:    int64(len(data)),
			Filename: header.Filename,
			Purpose:  schema.FilePurpose(r.FormValue("purpose")),
		})
	})
	mux.HandleFunc("GET /v1/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "file-1" {
			writeError(w, http.StatusNotFound, fmt.Sprintf("No such File object: %s", r.PathValue("id")), "")
			return
		}
		writeJSON(w, http.StatusOK, schema.File{ID: "file-1", Object: "file", Filename: "train.jsonl"})
	})
	mux.HandleFunc("DELETE /v1/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.DeletedObject{ID: r.PathValue("id"), Object: "file", Deleted: true})
	})
	mux.HandleFunc("GET /v1/files/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("{\"prompt\":\"a\"}\n{\"prompt\":\"b\"}\n"))
	})
	return mux
}

func Test_file_001(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	c := newTestClient(t, newFileMux(&query))

	files, err := c.ListFiles(context.Background(), api.WithPurpose(schema.PurposeFineTune), api.WithLimit(10), api.WithOrder("asc"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.True(files.HasMore)
	assert.Len(files.Data, 1)
	assert.Equal("fine-tune", query.Get("purpose"))
	assert.Equal("10", query.Get("limit"))
	assert.Equal("asc", query.Get("order"))
}

func Test_file_002(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	c := newTestClient(t, newFileMux(&query))

	file, err := c.UploadFile(context.Background(),
		schema.NewFileUploadReader("data/train.jsonl", bytes.NewReader([]byte("{}\n{}\n"))), schema.PurposeFineTune,
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("file-2", file.ID)
	assert.Equal("train.jsonl", file.Filename)
	assert.Equal(schema.PurposeFineTune, file.Purpose)
	assert.Equal(int64(6), file.Bytes)
}

func Test_file_003(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	c := newTestClient(t, newFileMux(&query))

	// Upload from a file on disk
	path := filepath.Join(t.TempDir(), "batch.jsonl")
	if err := os.WriteFile(path, []byte("{\"custom_id\":\"1\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	file, err := c.UploadFile(context.Background(), schema.NewFileUpload(path), schema.PurposeBatch)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("batch.jsonl", file.Filename)
	assert.Equal(schema.PurposeBatch, file.Purpose)

	// Missing file on disk
	_, err = c.UploadFile(context.Background(), schema.NewFileUpload(filepath.Join(t.TempDir(), "missing.jsonl")), schema.PurposeBatch)
	assert.Error(err)
}

func Test_file_004(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	c := newTestClient(t, newFileMux(&query))

	file, err := c.GetFile(context.Background(), "file-1")
	if assert.NoError(err) {
		assert.Equal("train.jsonl", file.Filename)
	}
	_, err = c.GetFile(context.Background(), "file-9")
	assert.ErrorIs(err, openai.ErrNotFound)

	deleted, err := c.DeleteFile(context.Background(), "file-1")
	if assert.NoError(err) {
		assert.True(deleted.Deleted)
	}

	content, err := c.GetFileContent(context.Background(), "file-1")
	if assert.NoError(err) {
		assert.Equal("{\"prompt\":\"a\"}\n{\"prompt\":\"b\"}\n", string(content))
	}
}

func Test_file_005(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	c := newTestClient(t, newFileMux(&query))

	_, err := c.UploadFile(context.Background(), schema.NewFileUploadReader("a.jsonl", bytes.NewReader(nil)), schema.FilePurpose("other"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.UploadFile(context.Background(), schema.FileUpload{}, schema.PurposeBatch)
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ListFiles(context.Background(), api.WithLimit(0))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.ListFiles(context.Background(), api.WithOrder("sideways"))
	assert.ErrorIs(err, openai.ErrBadParameter)
	_, err = c.GetFile(context.Background(), "")
	assert.ErrorIs(err, openai.ErrBadParameter)
}
