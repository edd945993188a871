package schema

import (
	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/uploads

const (
	// The maximum size of an upload
	UploadMaxBytes = 8 << 30

	// The maximum size of a single part
	UploadPartMaxBytes = 64 << 20
)

// UploadRequest is the request body for POST /uploads
type UploadRequest struct {
	Filename string      `json:"filename"`
	Purpose  FilePurpose `json:"purpose"`
	Bytes    int64       `json:"bytes"`
	MimeType string      `json:"mime_type"`
}

// UploadPartRequest is the multipart form for POST /uploads/{id}/parts
type UploadPartRequest struct {
	Data multipart.File `json:"data"`
}

// UploadCompleteRequest is the request body for POST /uploads/{id}/complete
type UploadCompleteRequest struct {
	PartIDs []string `json:"part_ids"`
	MD5     string   `json:"md5,omitempty"`
}

// Upload is an intermediate object that parts are added to
type Upload struct {
	ID        string      `json:"id"`
	Object    string      `json:"object"`
	Bytes     int64       `json:"bytes"`
	CreatedAt int64       `json:"created_at"`
	ExpiresAt int64       `json:"expires_at"`
	Filename  string      `json:"filename"`
	Purpose   FilePurpose `json:"purpose"`
	Status    string      `json:"status"` // pending, completed, cancelled or expired
	File      *File       `json:"file,omitempty"`
}

// UploadPart is a chunk of bytes added to an upload
type UploadPart struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	UploadID  string `json:"upload_id"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (u Upload) String() string {
	return Stringify(u)
}
