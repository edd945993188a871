package main

import (
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Files larger than this are sent in parts through the uploads endpoint
	largeFileSize = 512 << 20
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FileCommands struct {
	ListFiles   ListFilesCommand   `cmd:"" name:"files" help:"List files." group:"FILE"`
	GetFile     GetFileCommand     `cmd:"" name:"file" help:"Get file metadata." group:"FILE"`
	Upload      UploadCommand      `cmd:"" name:"upload" help:"Upload a file." group:"FILE"`
	DeleteFile  DeleteFileCommand  `cmd:"" name:"delete-file" help:"Delete a file." group:"FILE"`
	FileContent FileContentCommand `cmd:"" name:"file-content" help:"Write the contents of a file to stdout." group:"FILE"`
}

type ListFilesCommand struct {
	ListFlags
	Purpose string `name:"purpose" help:"Only return files with this purpose"`
	Order   string `name:"order" help:"Sort order by creation time (asc or desc)"`
}

type GetFileCommand struct {
	ID string `arg:"" name:"file" help:"File identifier"`
}

type UploadCommand struct {
	Path    string `arg:"" name:"path" help:"File to upload" type:"existingfile"`
	Purpose string `name:"purpose" help:"Intended purpose of the file" required:""`
	Parts   bool   `name:"parts" help:"Upload in parts, as for files larger than 512MB"`
	Mime    string `name:"mime" help:"MIME type for an upload in parts" default:"application/octet-stream"`
}

type DeleteFileCommand struct {
	ID string `arg:"" name:"file" help:"File identifier"`
}

type FileContentCommand struct {
	ID string `arg:"" name:"file" help:"File identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListFilesCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListFilesCommand")
	defer func() { endSpan(err) }()

	opts := append(cmd.ListFlags.opts(), api.WithOrder(cmd.Order))
	if cmd.Purpose != "" {
		opts = append(opts, api.WithPurpose(schema.FilePurpose(cmd.Purpose)))
	}
	response, err := client.ListFiles(parent, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *GetFileCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetFileCommand",
		attribute.String("file", cmd.ID),
	)
	defer func() { endSpan(err) }()

	file, err := client.GetFile(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(file)
}

func (cmd *UploadCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "UploadCommand",
		attribute.String("path", cmd.Path),
		attribute.String("purpose", cmd.Purpose),
	)
	defer func() { endSpan(err) }()

	info, err := os.Stat(cmd.Path)
	if err != nil {
		return err
	}

	// Small files are uploaded in one request
	if !cmd.Parts && info.Size() <= largeFileSize {
		file, err := client.UploadFile(parent, schema.NewFileUpload(cmd.Path), schema.FilePurpose(cmd.Purpose))
		if err != nil {
			return err
		}
		return ctx.Write(file)
	}

	// Large files are uploaded in parts
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	ctx.log.Info().Str("path", cmd.Path).Int64("bytes", info.Size()).Msg("uploading in parts")
	upload, err := client.UploadLargeFile(parent, f, info.Size(), info.Name(), schema.FilePurpose(cmd.Purpose), cmd.Mime)
	if err != nil {
		return err
	}
	return ctx.Write(upload)
}

func (cmd *DeleteFileCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "DeleteFileCommand",
		attribute.String("file", cmd.ID),
	)
	defer func() { endSpan(err) }()

	result, err := client.DeleteFile(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(result)
}

func (cmd *FileContentCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "FileContentCommand",
		attribute.String("file", cmd.ID),
	)
	defer func() { endSpan(err) }()

	data, err := client.GetFileContent(parent, cmd.ID)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
