package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelCommands struct {
	ListModels  ListModelsCommand  `cmd:"" name:"models" help:"List models." group:"MODEL"`
	GetModel    GetModelCommand    `cmd:"" name:"model" help:"Get model." group:"MODEL"`
	DeleteModel DeleteModelCommand `cmd:"" name:"delete-model" help:"Delete a fine-tuned model." group:"MODEL"`
}

type ListModelsCommand struct{}

type GetModelCommand struct {
	ID string `arg:"" name:"model" help:"Model identifier"`
}

type DeleteModelCommand struct {
	ID string `arg:"" name:"model" help:"Model identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand")
	defer func() { endSpan(err) }()

	models, err := client.ListModels(parent)
	if err != nil {
		return err
	}
	return ctx.Write(models)
}

func (cmd *GetModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand",
		attribute.String("model", cmd.ID),
	)
	defer func() { endSpan(err) }()

	model, err := client.GetModel(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(model)
}

func (cmd *DeleteModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "DeleteModelCommand",
		attribute.String("model", cmd.ID),
	)
	defer func() { endSpan(err) }()

	result, err := client.DeleteModel(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(result)
}
