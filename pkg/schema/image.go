package schema

import (
	"encoding/base64"
	"os"
	"path/filepath"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/images

const (
	ImageResponseURL     = "url"
	ImageResponseB64JSON = "b64_json"
)

// ImageRequest is the request body for POST /images/generations
type ImageRequest struct {
	Prompt         string `json:"prompt"`
	Model          string `json:"model,omitempty"`
	N              *uint  `json:"n,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	Size           string `json:"size,omitempty"`
	Style          string `json:"style,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageEditRequest is the multipart form for POST /images/edits
type ImageEditRequest struct {
	Image          multipart.File `json:"image"`
	Prompt         string         `json:"prompt"`
	Model          string         `json:"model,omitempty"`
	N              string         `json:"n,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Size           string         `json:"size,omitempty"`
	User           string         `json:"user,omitempty"`
}

// ImageEditMaskRequest is the multipart form for POST /images/edits with a mask
type ImageEditMaskRequest struct {
	Image          multipart.File `json:"image"`
	Mask           multipart.File `json:"mask"`
	Prompt         string         `json:"prompt"`
	Model          string         `json:"model,omitempty"`
	N              string         `json:"n,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Size           string         `json:"size,omitempty"`
	User           string         `json:"user,omitempty"`
}

// ImageVariationRequest is the multipart form for POST /images/variations
type ImageVariationRequest struct {
	Image          multipart.File `json:"image"`
	Model          string         `json:"model,omitempty"`
	N              string         `json:"n,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Size           string         `json:"size,omitempty"`
	User           string         `json:"user,omitempty"`
}

// ImageResponse is returned by all image endpoints
type ImageResponse struct {
	Created int64   `json:"created"`
	Data    []Image `json:"data"`
	Usage   *Usage  `json:"usage,omitempty"`
}

// Image is either a URL or base64-encoded image data
type Image struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Save decodes base64 image data and writes it to a file, creating any
// missing parent directories
func (i Image) Save(path string) error {
	data, err := base64.StdEncoding.DecodeString(i.B64JSON)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (r ImageResponse) String() string {
	return Stringify(r)
}
