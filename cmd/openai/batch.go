package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type BatchCommands struct {
	ListBatches ListBatchesCommand `cmd:"" name:"batches" help:"List batches." group:"BATCH"`
	GetBatch    GetBatchCommand    `cmd:"" name:"batch" help:"Get a batch." group:"BATCH"`
	CreateBatch CreateBatchCommand `cmd:"" name:"create-batch" help:"Create a batch from an uploaded file of requests." group:"BATCH"`
	CancelBatch CancelBatchCommand `cmd:"" name:"cancel-batch" help:"Cancel a batch." group:"BATCH"`
}

type ListBatchesCommand struct {
	ListFlags
}

type GetBatchCommand struct {
	ID string `arg:"" name:"batch" help:"Batch identifier"`
}

type CreateBatchCommand struct {
	File     string            `arg:"" name:"file" help:"Identifier of an uploaded file with purpose batch"`
	Endpoint string            `name:"endpoint" help:"Endpoint for the requests in the batch" default:"/v1/chat/completions"`
	Metadata map[string]string `name:"metadata" help:"Metadata as key=value pairs"`
}

type CancelBatchCommand struct {
	ID string `arg:"" name:"batch" help:"Batch identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListBatchesCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListBatchesCommand")
	defer func() { endSpan(err) }()

	response, err := client.ListBatches(parent, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *GetBatchCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetBatchCommand",
		attribute.String("batch", cmd.ID),
	)
	defer func() { endSpan(err) }()

	batch, err := client.GetBatch(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(batch)
}

func (cmd *CreateBatchCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CreateBatchCommand",
		attribute.String("file", cmd.File),
		attribute.String("endpoint", cmd.Endpoint),
	)
	defer func() { endSpan(err) }()

	opts := []opt.Opt{}
	if len(cmd.Metadata) > 0 {
		opts = append(opts, api.WithMetadata(cmd.Metadata))
	}
	batch, err := client.CreateBatch(parent, cmd.File, schema.BatchEndpoint(cmd.Endpoint), opts...)
	if err != nil {
		return err
	}
	return ctx.Write(batch)
}

func (cmd *CancelBatchCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CancelBatchCommand",
		attribute.String("batch", cmd.ID),
	)
	defer func() { endSpan(err) }()

	batch, err := client.CancelBatch(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(batch)
}
