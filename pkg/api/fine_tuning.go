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
// GLOBALS

const (
	maxSuffix = 64
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS
//
// See: https://platform.openai.com/docs/api-reference/fine-tuning/create

// WithValidationFile sets the uploaded file of validation data
func WithValidationFile(id string) opt.Opt {
	return opt.SetString(validationFileKey, id)
}

// WithSuffix sets a string of up to 64 characters added to the
// fine-tuned model name
func WithSuffix(value string) opt.Opt {
	if len(value) > maxSuffix {
		return opt.Error(openai.ErrBadParameter.Withf("suffix must be at most %d characters", maxSuffix))
	}
	return opt.SetString(suffixKey, value)
}

// WithEpochs sets the number of epochs to train for
func WithEpochs(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(openai.ErrBadParameter.With("epochs must be at least 1"))
	}
	return opt.SetUint(epochsKey, value)
}

// WithBatchSize sets the number of examples in each batch
func WithBatchSize(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(openai.ErrBadParameter.With("batch size must be at least 1"))
	}
	return opt.SetUint(batchSizeKey, value)
}

// WithLearningRateMultiplier scales the learning rate
func WithLearningRateMultiplier(value float64) opt.Opt {
	if value <= 0 {
		return opt.Error(openai.ErrBadParameter.With("learning rate multiplier must be positive"))
	}
	return opt.SetFloat64(learningRateKey, value)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateFineTuningJob creates a job which fine-tunes a model from a
// training file
func (c *Client) CreateFineTuningJob(ctx context.Context, model, trainingFile string, opts ...opt.Opt) (*schema.FineTuningJob, error) {
	request, err := FineTuningJobRequest(model, trainingFile, opts...)
	if err != nil {
		return nil, err
	}
	var response schema.FineTuningJob
	if err := c.Post(ctx, request, &response, client.OptPath("fine_tuning", "jobs")); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListFineTuningJobs returns a page of jobs. Use WithLimit and WithAfter to
// paginate.
func (c *Client) ListFineTuningJobs(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.FineTuningJob], error) {
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, "fine_tuning", "jobs")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.FineTuningJob]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetFineTuningJob returns a job
func (c *Client) GetFineTuningJob(ctx context.Context, id string) (*schema.FineTuningJob, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("job id is required")
	}
	var response schema.FineTuningJob
	if err := c.Get(ctx, &response, client.OptPath("fine_tuning", "jobs", id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CancelFineTuningJob cancels a job
func (c *Client) CancelFineTuningJob(ctx context.Context, id string) (*schema.FineTuningJob, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("job id is required")
	}
	var response schema.FineTuningJob
	if err := c.PostEmpty(ctx, &response, client.OptPath("fine_tuning", "jobs", id, "cancel")); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListFineTuningEvents returns a page of status updates for a job
func (c *Client) ListFineTuningEvents(ctx context.Context, id string, opts ...opt.Opt) (*schema.ListResponse[schema.FineTuningEvent], error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("job id is required")
	}
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, "fine_tuning", "jobs", id, "events")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.FineTuningEvent]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListFineTuningCheckpoints returns a page of checkpoints for a job
func (c *Client) ListFineTuningCheckpoints(ctx context.Context, id string, opts ...opt.Opt) (*schema.ListResponse[schema.FineTuningCheckpoint], error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("job id is required")
	}
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, "fine_tuning", "jobs", id, "checkpoints")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.FineTuningCheckpoint]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// FineTuningJobRequest returns the request body to create a job
func FineTuningJobRequest(model, trainingFile string, opts ...opt.Opt) (*schema.FineTuningJobRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	if trainingFile == "" {
		return nil, openai.ErrBadParameter.With("training file is required")
	}
	request := &schema.FineTuningJobRequest{
		Model:          model,
		TrainingFile:   trainingFile,
		ValidationFile: o.GetString(validationFileKey),
		Suffix:         o.GetString(suffixKey),
		Seed:           intPtr(o, opt.SeedKey),
		Metadata:       metadata(o),
	}

	// Absent hyperparameters are chosen automatically
	if o.Has(epochsKey) || o.Has(batchSizeKey) || o.Has(learningRateKey) {
		request.Hyperparameters = &schema.FineTuningHyperparameters{}
		if o.Has(epochsKey) {
			request.Hyperparameters.NEpochs = o.GetUint(epochsKey)
		}
		if o.Has(batchSizeKey) {
			request.Hyperparameters.BatchSize = o.GetUint(batchSizeKey)
		}
		if o.Has(learningRateKey) {
			request.Hyperparameters.LearningRateMultiplier = o.GetFloat64(learningRateKey)
		}
	}

	// Return success
	return request, nil
}
