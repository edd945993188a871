package api

import (
	"context"
	"fmt"
	"io"

	// Packages
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultConcurrency = 4
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithMD5 sets the expected checksum of the uploaded bytes
func WithMD5(value string) opt.Opt {
	if len(value) != 32 {
		return opt.Error(openai.ErrBadParameter.With("md5 must be 32 hexadecimal characters"))
	}
	return opt.SetString(md5Key, value)
}

// WithPartSize sets the size of each part of a large upload, up to 64 MB
func WithPartSize(value uint) opt.Opt {
	if value < 1 || value > schema.UploadPartMaxBytes {
		return opt.Error(openai.ErrBadParameter.Withf("part size must be between 1 and %d bytes", schema.UploadPartMaxBytes))
	}
	return opt.SetUint(partSizeKey, value)
}

// WithConcurrency sets the number of parts uploaded in parallel
func WithConcurrency(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(openai.ErrBadParameter.With("concurrency must be at least 1"))
	}
	return opt.SetUint(concurrencyKey, value)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateUpload creates an upload to which parts can be added
func (c *Client) CreateUpload(ctx context.Context, filename string, purpose schema.FilePurpose, bytes int64, mimeType string) (*schema.Upload, error) {
	request, err := UploadRequest(filename, purpose, bytes, mimeType)
	if err != nil {
		return nil, err
	}
	var response schema.Upload
	if err := c.Post(ctx, request, &response, client.OptPath("uploads")); err != nil {
		return nil, err
	}
	return &response, nil
}

// AddUploadPart adds a part of up to 64 MB to an upload
func (c *Client) AddUploadPart(ctx context.Context, uploadID string, data io.Reader) (*schema.UploadPart, error) {
	if uploadID == "" {
		return nil, openai.ErrBadParameter.With("upload id is required")
	}
	if data == nil {
		return nil, openai.ErrBadParameter.With("data is required")
	}
	if size, ok := knownSize(data); ok && size > schema.UploadPartMaxBytes {
		return nil, errPartTooLarge()
	}

	// Readers of unknown size are cut off once the limit is exceeded
	body := &partReader{r: io.LimitReader(data, schema.UploadPartMaxBytes+1)}
	request := schema.UploadPartRequest{
		Data: multipart.File{Path: "data", Body: io.NopCloser(body)},
	}
	var response schema.UploadPart
	err := c.PostMultipart(ctx, request, &response, client.OptPath("uploads", uploadID, "parts"), client.OptNoTimeout())
	if body.exceeded {
		return nil, errPartTooLarge()
	} else if err != nil {
		return nil, err
	}
	return &response, nil
}

// CompleteUpload completes an upload with parts in order, returning the
// upload with the created file
func (c *Client) CompleteUpload(ctx context.Context, uploadID string, partIDs []string, opts ...opt.Opt) (*schema.Upload, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if uploadID == "" {
		return nil, openai.ErrBadParameter.With("upload id is required")
	}
	if len(partIDs) == 0 {
		return nil, openai.ErrBadParameter.With("at least one part is required")
	}
	request := schema.UploadCompleteRequest{
		PartIDs: partIDs,
		MD5:     o.GetString(md5Key),
	}
	var response schema.Upload
	if err := c.Post(ctx, request, &response, client.OptPath("uploads", uploadID, "complete")); err != nil {
		return nil, err
	}
	return &response, nil
}

// CancelUpload cancels an upload. No parts can be added afterwards.
func (c *Client) CancelUpload(ctx context.Context, uploadID string) (*schema.Upload, error) {
	if uploadID == "" {
		return nil, openai.ErrBadParameter.With("upload id is required")
	}
	var response schema.Upload
	if err := c.PostEmpty(ctx, &response, client.OptPath("uploads", uploadID, "cancel")); err != nil {
		return nil, err
	}
	return &response, nil
}

// UploadLargeFile uploads size bytes from r in parts, with parts uploaded in
// parallel. On failure the upload is cancelled. Use WithPartSize,
// WithConcurrency and WithMD5 to control the upload.
func (c *Client) UploadLargeFile(ctx context.Context, r io.ReaderAt, size int64, filename string, purpose schema.FilePurpose, mimeType string, opts ...opt.Opt) (*schema.Upload, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, openai.ErrBadParameter.With("reader is required")
	}
	partSize := int64(schema.UploadPartMaxBytes)
	if o.Has(partSizeKey) {
		partSize = int64(o.GetUint(partSizeKey))
	}
	concurrency := defaultConcurrency
	if o.Has(concurrencyKey) {
		concurrency = int(o.GetUint(concurrencyKey))
	}

	// Create the upload
	upload, err := c.CreateUpload(ctx, filename, purpose, size, mimeType)
	if err != nil {
		return nil, err
	}

	// Upload the parts, keeping the ids in order
	parts := Parts(size, partSize)
	ids := make([]string, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, part := range parts {
		g.Go(func() error {
			response, err := c.AddUploadPart(gctx, upload.ID, io.NewSectionReader(r, part[0], part[1]))
			if err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
			ids[i] = response.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, c.cancelUpload(upload.ID, err)
	}

	// Complete the upload
	md5 := opt.Unset(md5Key)
	if o.Has(md5Key) {
		md5 = WithMD5(o.GetString(md5Key))
	}
	completed, err := c.CompleteUpload(ctx, upload.ID, ids, md5)
	if err != nil {
		return nil, c.cancelUpload(upload.ID, err)
	}

	// Return success
	return completed, nil
}

// UploadRequest returns the request body to create an upload
func UploadRequest(filename string, purpose schema.FilePurpose, bytes int64, mimeType string) (*schema.UploadRequest, error) {
	if filename == "" {
		return nil, openai.ErrBadParameter.With("filename is required")
	}
	if !purpose.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid purpose: %q", purpose)
	}
	if bytes <= 0 || bytes > schema.UploadMaxBytes {
		return nil, openai.ErrBadParameter.Withf("bytes must be between 1 and %d", int64(schema.UploadMaxBytes))
	}
	if mimeType == "" {
		return nil, openai.ErrBadParameter.With("mime type is required")
	}
	return &schema.UploadRequest{
		Filename: filename,
		Purpose:  purpose,
		Bytes:    bytes,
		MimeType: mimeType,
	}, nil
}

// Parts returns the offset and length of each part of an upload
func Parts(size, partSize int64) [][2]int64 {
	if size <= 0 || partSize <= 0 {
		return nil
	}
	parts := make([][2]int64, 0, (size+partSize-1)/partSize)
	for offset := int64(0); offset < size; offset += partSize {
		parts = append(parts, [2]int64{offset, min(partSize, size-offset)})
	}
	return parts
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// partReader fails once more than UploadPartMaxBytes have been read
type partReader struct {
	r        io.Reader
	n        int64
	exceeded bool
}

func (p *partReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.n += int64(n)
	if p.n > schema.UploadPartMaxBytes {
		p.exceeded = true
		return 0, errPartTooLarge()
	}
	return n, err
}

// knownSize returns the number of bytes in r, when known
func knownSize(r io.Reader) (int64, bool) {
	switch r := r.(type) {
	case interface{ Len() int }:
		return int64(r.Len()), true
	case interface{ Size() int64 }:
		return r.Size(), true
	}
	return 0, false
}

func errPartTooLarge() error {
	return openai.ErrBadParameter.Withf("part exceeds %d bytes", schema.UploadPartMaxBytes)
}

// cancelUpload cancels an upload after a failure, using a fresh context so
// that cancellation is attempted even when ctx is done
func (c *Client) cancelUpload(uploadID string, cause error) error {
	if _, err := c.CancelUpload(context.Background(), uploadID); err != nil {
		return fmt.Errorf("%w (cancel failed: %v)", cause, err)
	}
	return cause
}
