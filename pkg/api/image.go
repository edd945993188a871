package api

import (
	"context"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	maxImages = 10
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS
//
// See: https://platform.openai.com/docs/api-reference/images

// WithQuality sets the image quality: standard or hd for dall-e-3, and
// low, medium, high or auto for gpt-image-1
func WithQuality(value string) opt.Opt {
	switch value {
	case "standard", "hd", "low", "medium", "high", "auto":
		return opt.SetString(qualityKey, value)
	}
	return opt.Error(openai.ErrBadParameter.Withf("invalid quality: %q", value))
}

// WithImageResponseFormat sets whether images are returned as a url or as
// b64_json
func WithImageResponseFormat(value string) opt.Opt {
	switch value {
	case schema.ImageResponseURL, schema.ImageResponseB64JSON:
		return opt.SetString(responseFormatKey, value)
	}
	return opt.Error(openai.ErrBadParameter.Withf("invalid image response format: %q", value))
}

// WithSize sets the image size, for example 1024x1024
func WithSize(value string) opt.Opt {
	if value == "" {
		return opt.Error(openai.ErrBadParameter.With("size is required"))
	}
	return opt.SetString(sizeKey, value)
}

// WithStyle sets the style for dall-e-3: vivid or natural
func WithStyle(value string) opt.Opt {
	switch value {
	case "vivid", "natural":
		return opt.SetString(styleKey, value)
	}
	return opt.Error(openai.ErrBadParameter.Withf("invalid style: %q", value))
}

// WithMask sets an image whose transparent areas indicate where the image
// should be edited
func WithMask(mask schema.FileUpload) opt.Opt {
	if mask.Path == "" {
		return opt.Error(openai.ErrBadParameter.With("mask filename is required"))
	}
	return opt.SetAny(maskKey, mask)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateImage creates images from a prompt
func (c *Client) CreateImage(ctx context.Context, prompt string, opts ...opt.Opt) (*schema.ImageResponse, error) {
	request, err := ImageRequest(prompt, opts...)
	if err != nil {
		return nil, err
	}
	var response schema.ImageResponse
	if err := c.Post(ctx, request, &response, client.OptPath("images", "generations")); err != nil {
		return nil, err
	}
	return &response, nil
}

// EditImage creates edited images from an image and a prompt. Use WithMask
// to restrict the edit to part of the image.
func (c *Client) EditImage(ctx context.Context, image schema.FileUpload, prompt string, opts ...opt.Opt) (*schema.ImageResponse, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if prompt == "" {
		return nil, openai.ErrBadParameter.With("prompt is required")
	}
	n, err := imageN(o)
	if err != nil {
		return nil, err
	}

	// Open the image
	file, closeImage, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer closeImage()

	// Without a mask
	var response schema.ImageResponse
	mask, ok := o.Get(maskKey).(schema.FileUpload)
	if !ok {
		request := schema.ImageEditRequest{
			Image:          file,
			Prompt:         prompt,
			Model:          o.GetString(opt.ModelKey),
			N:              n,
			ResponseFormat: o.GetString(responseFormatKey),
			Size:           o.GetString(sizeKey),
			User:           o.GetString(opt.UserKey),
		}
		if err := c.PostMultipart(ctx, request, &response, client.OptPath("images", "edits")); err != nil {
			return nil, err
		}
		return &response, nil
	}

	// With a mask
	maskFile, closeMask, err := mask.Open()
	if err != nil {
		return nil, err
	}
	defer closeMask()
	request := schema.ImageEditMaskRequest{
		Image:          file,
		Mask:           maskFile,
		Prompt:         prompt,
		Model:          o.GetString(opt.ModelKey),
		N:              n,
		ResponseFormat: o.GetString(responseFormatKey),
		Size:           o.GetString(sizeKey),
		User:           o.GetString(opt.UserKey),
	}
	if err := c.PostMultipart(ctx, request, &response, client.OptPath("images", "edits")); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateImageVariation creates variations of an image
func (c *Client) CreateImageVariation(ctx context.Context, image schema.FileUpload, opts ...opt.Opt) (*schema.ImageResponse, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	n, err := imageN(o)
	if err != nil {
		return nil, err
	}

	// Open the image
	file, closeImage, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer closeImage()

	request := schema.ImageVariationRequest{
		Image:          file,
		Model:          o.GetString(opt.ModelKey),
		N:              n,
		ResponseFormat: o.GetString(responseFormatKey),
		Size:           o.GetString(sizeKey),
		User:           o.GetString(opt.UserKey),
	}
	var response schema.ImageResponse
	if err := c.PostMultipart(ctx, request, &response, client.OptPath("images", "variations")); err != nil {
		return nil, err
	}
	return &response, nil
}

// ImageRequest returns the request body for image generation
func ImageRequest(prompt string, opts ...opt.Opt) (*schema.ImageRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if prompt == "" {
		return nil, openai.ErrBadParameter.With("prompt is required")
	}
	if _, err := imageN(o); err != nil {
		return nil, err
	}
	return &schema.ImageRequest{
		Prompt:         prompt,
		Model:          o.GetString(opt.ModelKey),
		N:              uintPtr(o, opt.NKey),
		Quality:        o.GetString(qualityKey),
		ResponseFormat: o.GetString(responseFormatKey),
		Size:           o.GetString(sizeKey),
		Style:          o.GetString(styleKey),
		User:           o.GetString(opt.UserKey),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// imageN returns the number of images as a form value, or empty if not set
func imageN(o *opt.Options) (string, error) {
	if !o.Has(opt.NKey) {
		return "", nil
	}
	n := o.GetUint(opt.NKey)
	if n < 1 || n > maxImages {
		return "", openai.ErrBadParameter.Withf("n must be between 1 and %d", maxImages)
	}
	return strconv.FormatUint(uint64(n), 10), nil
}
