package httpclient

import (
	"errors"
	"io"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ChunkFn is called for each chunk of a binary response body. The slice is
// only valid for the duration of the call.
type ChunkFn func([]byte) error

// ChunkReader delivers a response body to a callback in order, as it is
// received
type ChunkReader struct {
	ContentType string
	Size        int
	Fn          ChunkFn
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultChunkSize = 32 * 1024
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewChunkReader returns a reader which calls fn for each chunk of the body
func NewChunkReader(fn ChunkFn) *ChunkReader {
	return &ChunkReader{Size: defaultChunkSize, Fn: fn}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Unmarshal reads the body until it is exhausted, or the callback returns
// an error
func (r *ChunkReader) Unmarshal(header http.Header, body io.Reader) error {
	r.ContentType = header.Get("Content-Type")
	size := r.Size
	if size <= 0 {
		size = defaultChunkSize
	}
	buf := make([]byte, size)
	for {
		n, err := body.Read(buf)
		if n > 0 && r.Fn != nil {
			if err := r.Fn(buf[:n]); err != nil {
				return err
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}
