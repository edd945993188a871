package api

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithPurpose filters files by purpose
func WithPurpose(purpose schema.FilePurpose) opt.Opt {
	if !purpose.Valid() {
		return opt.Error(openai.ErrBadParameter.Withf("invalid purpose: %q", purpose))
	}
	return opt.SetString(purposeKey, string(purpose))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListFiles returns a page of files. Use WithPurpose, WithLimit, WithAfter
// and WithOrder to filter and paginate.
func (c *Client) ListFiles(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.File], error) {
	reqopts, err := httpclient.Query(opts, []string{purposeKey, opt.LimitKey, opt.AfterKey, opt.OrderKey}, "files")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.File]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// UploadFile uploads a file of up to 512 MB for the given purpose
func (c *Client) UploadFile(ctx context.Context, file schema.FileUpload, purpose schema.FilePurpose) (*schema.File, error) {
	if !purpose.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid purpose: %q", purpose)
	}
	if file.Filename() == "" {
		return nil, openai.ErrBadParameter.With("filename is required")
	}

	// Open the file
	f, closeFile, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer closeFile()

	var response schema.File
	if err := c.PostMultipart(ctx, schema.FileUploadRequest{File: f, Purpose: string(purpose)}, &response, client.OptPath("files")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetFile returns information about a file
func (c *Client) GetFile(ctx context.Context, id string) (*schema.File, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("file id is required")
	}
	var response schema.File
	if err := c.Get(ctx, &response, client.OptPath("files", id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteFile deletes a file
func (c *Client) DeleteFile(ctx context.Context, id string) (*schema.DeletedObject, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("file id is required")
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath("files", id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetFileContent returns the contents of a file
func (c *Client) GetFileContent(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("file id is required")
	}
	var response schema.FileContent
	if err := c.Get(ctx, &response, client.OptPath("files", id, "content"), client.OptNoTimeout()); err != nil {
		return nil, err
	}
	return []byte(response), nil
}
