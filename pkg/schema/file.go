package schema

import (
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/files

// The intended purpose of an uploaded file
type FilePurpose string

const (
	PurposeAssistants FilePurpose = "assistants"
	PurposeBatch      FilePurpose = "batch"
	PurposeFineTune   FilePurpose = "fine-tune"
	PurposeVision     FilePurpose = "vision"
	PurposeUserData   FilePurpose = "user_data"
	PurposeEvals      FilePurpose = "evals"
)

// File is an uploaded document
type File struct {
	ID        string      `json:"id"`
	Object    string      `json:"object"`
	Bytes     int64       `json:"bytes"`
	CreatedAt int64       `json:"created_at"`
	ExpiresAt int64       `json:"expires_at,omitempty"`
	Filename  string      `json:"filename"`
	Purpose   FilePurpose `json:"purpose"`
	Status    string      `json:"status,omitempty"`
}

// FileUploadRequest is the multipart form for POST /files
type FileUploadRequest struct {
	File    multipart.File `json:"file"`
	Purpose string         `json:"purpose"`
}

// FileContent is the raw body of GET /files/{id}/content
type FileContent []byte

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true if the purpose is known
func (p FilePurpose) Valid() bool {
	switch p {
	case PurposeAssistants, PurposeBatch, PurposeFineTune, PurposeVision, PurposeUserData, PurposeEvals:
		return true
	}
	return false
}

// Unmarshal reads the raw body
func (c *FileContent) Unmarshal(_ http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	*c = data
	return nil
}

func (f File) String() string {
	return Stringify(f)
}
