package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FineTuningCommands struct {
	ListJobs  ListJobsCommand  `cmd:"" name:"jobs" help:"List fine-tuning jobs." group:"FINE-TUNING"`
	GetJob    GetJobCommand    `cmd:"" name:"job" help:"Get a fine-tuning job." group:"FINE-TUNING"`
	CreateJob CreateJobCommand `cmd:"" name:"create-job" help:"Create a fine-tuning job." group:"FINE-TUNING"`
	CancelJob CancelJobCommand `cmd:"" name:"cancel-job" help:"Cancel a fine-tuning job." group:"FINE-TUNING"`
	JobEvents JobEventsCommand `cmd:"" name:"job-events" help:"List the events for a fine-tuning job." group:"FINE-TUNING"`
}

type ListJobsCommand struct {
	ListFlags
}

type GetJobCommand struct {
	ID string `arg:"" name:"job" help:"Fine-tuning job identifier"`
}

type CreateJobCommand struct {
	Model          string   `arg:"" name:"model" help:"Base model to fine-tune"`
	TrainingFile   string   `arg:"" name:"training-file" help:"Identifier of an uploaded training file"`
	ValidationFile string   `name:"validation-file" help:"Identifier of an uploaded validation file"`
	Suffix         string   `name:"suffix" help:"Suffix for the fine-tuned model name"`
	Epochs         *uint    `name:"epochs" help:"Number of epochs"`
	BatchSize      *uint    `name:"batch-size" help:"Batch size"`
	LearningRate   *float64 `name:"learning-rate" help:"Learning rate multiplier"`
	Seed           *int     `name:"seed" help:"Seed for reproducible jobs"`
}

type CancelJobCommand struct {
	ID string `arg:"" name:"job" help:"Fine-tuning job identifier"`
}

type JobEventsCommand struct {
	ListFlags
	ID string `arg:"" name:"job" help:"Fine-tuning job identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListJobsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListJobsCommand")
	defer func() { endSpan(err) }()

	response, err := client.ListFineTuningJobs(parent, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *GetJobCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetJobCommand",
		attribute.String("job", cmd.ID),
	)
	defer func() { endSpan(err) }()

	job, err := client.GetFineTuningJob(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(job)
}

func (cmd *CreateJobCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CreateJobCommand",
		attribute.String("model", cmd.Model),
		attribute.String("training_file", cmd.TrainingFile),
	)
	defer func() { endSpan(err) }()

	opts := []opt.Opt{}
	if cmd.ValidationFile != "" {
		opts = append(opts, api.WithValidationFile(cmd.ValidationFile))
	}
	if cmd.Suffix != "" {
		opts = append(opts, api.WithSuffix(cmd.Suffix))
	}
	if cmd.Epochs != nil {
		opts = append(opts, api.WithEpochs(*cmd.Epochs))
	}
	if cmd.BatchSize != nil {
		opts = append(opts, api.WithBatchSize(*cmd.BatchSize))
	}
	if cmd.LearningRate != nil {
		opts = append(opts, api.WithLearningRateMultiplier(*cmd.LearningRate))
	}
	if cmd.Seed != nil {
		opts = append(opts, api.WithSeed(*cmd.Seed))
	}
	job, err := client.CreateFineTuningJob(parent, cmd.Model, cmd.TrainingFile, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(job)
}

func (cmd *CancelJobCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CancelJobCommand",
		attribute.String("job", cmd.ID),
	)
	defer func() { endSpan(err) }()

	job, err := client.CancelFineTuningJob(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.Write(job)
}

func (cmd *JobEventsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "JobEventsCommand",
		attribute.String("job", cmd.ID),
	)
	defer func() { endSpan(err) }()

	events, err := client.ListFineTuningEvents(parent, cmd.ID, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(events)
}
