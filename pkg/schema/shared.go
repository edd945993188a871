package schema

import (
	"io"
	"os"
	"path/filepath"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ListResponse is the envelope around a page of objects
type ListResponse[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	FirstID string `json:"first_id,omitempty"`
	LastID  string `json:"last_id,omitempty"`
	HasMore bool   `json:"has_more"`
}

// DeletedObject is returned when an object has been deleted
type DeletedObject struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// FileUpload is a named stream of bytes for a multipart upload. When Body
// is nil, the file at Path is opened when the request is made.
type FileUpload struct {
	Path string
	Body io.Reader
}

// Usage reports token counts for a request
type Usage struct {
	PromptTokens            int                      `json:"prompt_tokens"`
	CompletionTokens        int                      `json:"completion_tokens,omitempty"`
	TotalTokens             int                      `json:"total_tokens"`
	PromptTokensDetails     *PromptTokensDetails     `json:"prompt_tokens_details,omitempty"`
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

type PromptTokensDetails struct {
	CachedTokens int `json:"cached_tokens"`
	AudioTokens  int `json:"audio_tokens,omitempty"`
}

type CompletionTokensDetails struct {
	ReasoningTokens          int `json:"reasoning_tokens"`
	AudioTokens              int `json:"audio_tokens,omitempty"`
	AcceptedPredictionTokens int `json:"accepted_prediction_tokens,omitempty"`
	RejectedPredictionTokens int `json:"rejected_prediction_tokens,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFileUpload returns an upload for a file on disk
func NewFileUpload(path string) FileUpload {
	return FileUpload{Path: path}
}

// NewFileUploadReader returns an upload for a stream with the given filename
func NewFileUploadReader(filename string, r io.Reader) FileUpload {
	return FileUpload{Path: filename, Body: r}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ListResponse[T]) String() string {
	return Stringify(r)
}

func (r DeletedObject) String() string {
	return Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Filename returns the base name of the upload
func (f FileUpload) Filename() string {
	if f.Path == "" {
		return ""
	}
	return filepath.Base(f.Path)
}

// Open returns the multipart file for the upload, and a function which
// must be called to release any opened file once the request is complete
func (f FileUpload) Open() (multipart.File, func() error, error) {
	if f.Body != nil {
		return multipart.File{Path: f.Filename(), Body: io.NopCloser(f.Body)}, func() error { return nil }, nil
	}
	r, err := os.Open(f.Path)
	if err != nil {
		return multipart.File{}, nil, err
	}
	return multipart.File{Path: f.Filename(), Body: r}, r.Close, nil
}
