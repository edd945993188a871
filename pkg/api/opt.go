package api

import (
	// Packages
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	instructionsKey     = "instructions"
	nameKey             = "name"
	descriptionKey      = "description"
	purposeKey          = "purpose"
	maxTokensKey        = "max_completion_tokens"
	stopKey             = "stop"
	presencePenaltyKey  = "presence_penalty"
	frequencyPenaltyKey = "frequency_penalty"
	storeKey            = "store"
	reasoningEffortKey  = "reasoning_effort"
	logprobsKey         = "logprobs"
	topLogprobsKey      = "top_logprobs"
	parallelToolsKey    = "parallel_tool_calls"
	toolChoiceKey       = "tool_choice"
	responseFormatKey   = "response_format"
	chatStreamKey       = "chat-stream"
	dimensionsKey       = "dimensions"
	encodingFormatKey   = "encoding_format"
	qualityKey          = "quality"
	sizeKey             = "size"
	styleKey            = "style"
	maskKey             = "mask"
	speedKey            = "speed"
	languageKey         = "language"
	granularitiesKey    = "timestamp_granularities"
	md5Key              = "md5"
	partSizeKey         = "part-size"
	concurrencyKey      = "concurrency"
	validationFileKey   = "validation_file"
	suffixKey           = "suffix"
	epochsKey           = "n_epochs"
	batchSizeKey        = "batch_size"
	learningRateKey     = "learning_rate_multiplier"
	assistantToolsKey   = "assistant-tools"
)

///////////////////////////////////////////////////////////////////////////////
// LIST OPTIONS

// WithLimit sets the number of objects returned by a list, between 1 and 100
func WithLimit(limit uint) opt.Opt {
	return httpclient.WithLimit(limit)
}

// WithAfter returns objects after the given object ID in a list
func WithAfter(id string) opt.Opt {
	return httpclient.WithAfter(id)
}

// WithBefore returns objects before the given object ID in a list
func WithBefore(id string) opt.Opt {
	return httpclient.WithBefore(id)
}

// WithOrder sets the sort order of a list by creation time, asc or desc
func WithOrder(order string) opt.Opt {
	return httpclient.WithOrder(order)
}

///////////////////////////////////////////////////////////////////////////////
// COMMON OPTIONS

// WithModel sets the model, for endpoints where the model is optional
func WithModel(model string) opt.Opt {
	if model == "" {
		return opt.Unset(opt.ModelKey)
	}
	return opt.SetString(opt.ModelKey, model)
}

// WithUser sets an identifier for the end user, used for abuse monitoring
func WithUser(user string) opt.Opt {
	return opt.SetString(opt.UserKey, user)
}

// WithN sets the number of choices or images to generate
func WithN(n uint) opt.Opt {
	if n < 1 {
		return opt.Error(openai.ErrBadParameter.With("n must be at least 1"))
	}
	return opt.SetUint(opt.NKey, n)
}

// WithMetadata attaches up to 16 key-value pairs to an object
func WithMetadata(metadata map[string]string) opt.Opt {
	if len(metadata) > 16 {
		return opt.Error(openai.ErrBadParameter.With("metadata must have at most 16 keys"))
	}
	if len(metadata) == 0 {
		return opt.Unset(opt.MetadataKey)
	}
	return opt.SetAny(opt.MetadataKey, metadata)
}

// WithTemperature sets the sampling temperature, between 0 and 2
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(openai.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithTopP sets the nucleus sampling parameter, between 0 and 1
func WithTopP(value float64) opt.Opt {
	if value < 0 || value > 1 {
		return opt.Error(openai.ErrBadParameter.With("top_p must be between 0.0 and 1.0"))
	}
	return opt.SetFloat64(opt.TopPKey, value)
}

// WithSeed requests deterministic sampling
func WithSeed(value int) opt.Opt {
	return opt.SetInt(opt.SeedKey, value)
}

// WithPrompt sets optional text to guide a transcription or translation
func WithPrompt(value string) opt.Opt {
	return opt.SetString(opt.PromptKey, value)
}

// WithInstructions sets instructions for speech generation, or the system
// instructions for an assistant
func WithInstructions(value string) opt.Opt {
	return opt.SetString(instructionsKey, value)
}

// WithName sets the name of an assistant
func WithName(value string) opt.Opt {
	return opt.SetString(nameKey, value)
}

// WithDescription sets the description of an assistant
func WithDescription(value string) opt.Opt {
	return opt.SetString(descriptionKey, value)
}

// WithTools sets the function tools which may be called
func WithTools(tools ...schema.ChatTool) opt.Opt {
	return func(o *opt.Options) error {
		for _, tool := range tools {
			if tool.Function.Name == "" {
				return openai.ErrBadParameter.With("tool name is required")
			}
		}
		existing, _ := o.Get(opt.ToolsKey).([]schema.ChatTool)
		o.Set(opt.ToolsKey, append(existing, tools...))
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func stringPtr(o *opt.Options, key string) *string {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetString(key))
}

func float64Ptr(o *opt.Options, key string) *float64 {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetFloat64(key))
}

func uintPtr(o *opt.Options, key string) *uint {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetUint(key))
}

func intPtr(o *opt.Options, key string) *int {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetInt(key))
}

func boolPtr(o *opt.Options, key string) *bool {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetBool(key))
}

func metadata(o *opt.Options) map[string]string {
	v, _ := o.Get(opt.MetadataKey).(map[string]string)
	return v
}

func tools(o *opt.Options) []schema.ChatTool {
	v, _ := o.Get(opt.ToolsKey).([]schema.ChatTool)
	return v
}
