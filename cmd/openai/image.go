package main

import (
	"fmt"
	"path/filepath"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageCommands struct {
	Image ImageCommand `cmd:"" name:"image" help:"Generate, edit or vary images." group:"IMAGE"`
}

type ImageCommand struct {
	Prompt  []string `arg:"" name:"prompt" help:"Text description of the image" optional:""`
	Model   string   `name:"model" help:"Image model" default:"dall-e-3"`
	Edit    string   `name:"edit" help:"Edit an image file with the prompt" type:"existingfile"`
	Vary    string   `name:"vary" help:"Create variations of an image file" type:"existingfile"`
	Mask    string   `name:"mask" help:"Mask for an edit, transparent where the image is edited" type:"existingfile"`
	N       *uint    `name:"n" help:"Number of images"`
	Size    string   `name:"size" help:"Image size, for example 1024x1024"`
	Quality string   `name:"quality" help:"Image quality"`
	Style   string   `name:"style" help:"Image style (vivid or natural)"`
	Out     string   `name:"out" help:"Save base64 images to files with this prefix" type:"path"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ImageCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ImageCommand",
		attribute.String("model", cmd.Model),
	)
	defer func() { endSpan(err) }()

	// Options
	opts := []opt.Opt{api.WithModel(cmd.Model)}
	if cmd.N != nil {
		opts = append(opts, api.WithN(*cmd.N))
	}
	if cmd.Size != "" {
		opts = append(opts, api.WithSize(cmd.Size))
	}
	if cmd.Out != "" {
		opts = append(opts, api.WithImageResponseFormat(schema.ImageResponseB64JSON))
	}

	// Generate, edit or vary
	prompt := strings.Join(cmd.Prompt, " ")
	var response *schema.ImageResponse
	switch {
	case cmd.Vary != "":
		response, err = client.CreateImageVariation(parent, schema.NewFileUpload(cmd.Vary), opts...)
	case cmd.Edit != "":
		if cmd.Mask != "" {
			opts = append(opts, api.WithMask(schema.NewFileUpload(cmd.Mask)))
		}
		response, err = client.EditImage(parent, schema.NewFileUpload(cmd.Edit), prompt, opts...)
	default:
		if cmd.Quality != "" {
			opts = append(opts, api.WithQuality(cmd.Quality))
		}
		if cmd.Style != "" {
			opts = append(opts, api.WithStyle(cmd.Style))
		}
		response, err = client.CreateImage(parent, prompt, opts...)
	}
	if err != nil {
		return err
	}

	// Save images
	if cmd.Out != "" {
		for i, image := range response.Data {
			path := fmt.Sprintf("%s-%d.png", strings.TrimSuffix(cmd.Out, filepath.Ext(cmd.Out)), i)
			if err := image.Save(path); err != nil {
				return err
			}
			ctx.log.Info().Str("path", path).Msg("saved image")
			response.Data[i].B64JSON = ""
		}
	}
	return ctx.Write(response)
}
