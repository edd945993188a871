package api

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatStreamFn is called for each chunk of a streamed chat completion
type ChatStreamFn func(*schema.ChatCompletionChunk) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolChoiceAuto     = "auto"
	toolChoiceNone     = "none"
	toolChoiceRequired = "required"
	maxStopSequences   = 4
	maxTopLogprobs     = 20
)

///////////////////////////////////////////////////////////////////////////////
// CHAT OPTIONS
//
// See: https://platform.openai.com/docs/api-reference/chat/create

// WithMaxCompletionTokens sets an upper bound for generated tokens,
// including reasoning tokens
func WithMaxCompletionTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(openai.ErrBadParameter.With("max_completion_tokens must be at least 1"))
	}
	return opt.SetUint(maxTokensKey, value)
}

// WithStop sets up to four sequences where generation stops
func WithStop(values ...string) opt.Opt {
	if len(values) == 0 || len(values) > maxStopSequences {
		return opt.Error(openai.ErrBadParameter.Withf("between 1 and %d stop sequences are required", maxStopSequences))
	}
	return opt.AddString(stopKey, values...)
}

// WithPresencePenalty penalises tokens which have already appeared,
// between -2 and 2
func WithPresencePenalty(value float64) opt.Opt {
	if value < -2 || value > 2 {
		return opt.Error(openai.ErrBadParameter.With("presence_penalty must be between -2.0 and 2.0"))
	}
	return opt.SetFloat64(presencePenaltyKey, value)
}

// WithFrequencyPenalty penalises tokens by how often they have appeared,
// between -2 and 2
func WithFrequencyPenalty(value float64) opt.Opt {
	if value < -2 || value > 2 {
		return opt.Error(openai.ErrBadParameter.With("frequency_penalty must be between -2.0 and 2.0"))
	}
	return opt.SetFloat64(frequencyPenaltyKey, value)
}

// WithStore sets whether the completion is stored for distillation or evals
func WithStore(value bool) opt.Opt {
	return opt.SetBool(storeKey, value)
}

// WithReasoningEffort constrains effort on reasoning models: minimal, low,
// medium or high
func WithReasoningEffort(value string) opt.Opt {
	switch value {
	case "minimal", "low", "medium", "high":
		return opt.SetString(reasoningEffortKey, value)
	}
	return opt.Error(openai.ErrBadParameter.Withf("invalid reasoning effort: %q", value))
}

// WithLogprobs returns log probabilities of the output tokens
func WithLogprobs(value bool) opt.Opt {
	return opt.SetBool(logprobsKey, value)
}

// WithTopLogprobs returns the most likely tokens at each position, between
// 0 and 20. Requires WithLogprobs(true).
func WithTopLogprobs(value uint) opt.Opt {
	if value > maxTopLogprobs {
		return opt.Error(openai.ErrBadParameter.Withf("top_logprobs must be between 0 and %d", maxTopLogprobs))
	}
	return opt.SetUint(topLogprobsKey, value)
}

// WithParallelToolCalls sets whether tools may be called in parallel
func WithParallelToolCalls(value bool) opt.Opt {
	return opt.SetBool(parallelToolsKey, value)
}

// WithToolChoiceAuto lets the model decide whether to call tools
func WithToolChoiceAuto() opt.Opt {
	return opt.SetAny(toolChoiceKey, toolChoiceAuto)
}

// WithToolChoiceNone prevents the model from calling tools
func WithToolChoiceNone() opt.Opt {
	return opt.SetAny(toolChoiceKey, toolChoiceNone)
}

// WithToolChoiceRequired forces the model to call one or more tools
func WithToolChoiceRequired() opt.Opt {
	return opt.SetAny(toolChoiceKey, toolChoiceRequired)
}

// WithToolChoiceFunction forces the model to call the named function
func WithToolChoiceFunction(name string) opt.Opt {
	if name == "" {
		return opt.Error(openai.ErrBadParameter.With("function name is required"))
	}
	choice := schema.ChatToolChoice{Type: "function"}
	choice.Function.Name = name
	return opt.SetAny(toolChoiceKey, choice)
}

// WithJSONObject constrains the output to a valid JSON object
func WithJSONObject() opt.Opt {
	return opt.SetAny(responseFormatKey, schema.ChatResponseFormat{Type: schema.ResponseFormatJSONObject})
}

// WithJSONSchema constrains the output to JSON matching the schema
func WithJSONSchema(name string, s *jsonschema.Schema, strict bool) opt.Opt {
	if s == nil {
		return opt.Error(openai.ErrBadParameter.With("schema is required for JSON output"))
	}
	data, err := schema.NewJSONSchema(s)
	if err != nil {
		return opt.Error(openai.ErrBadParameter.Withf("failed to serialize JSON schema: %v", err))
	}
	return WithJSONSchemaRaw(name, data, strict)
}

// WithJSONSchemaRaw constrains the output to JSON matching an encoded
// schema, for example one read from a file
func WithJSONSchemaRaw(name string, s schema.JSONSchema, strict bool) opt.Opt {
	if name == "" {
		return opt.Error(openai.ErrBadParameter.With("schema name is required"))
	}
	if len(s) == 0 {
		return opt.Error(openai.ErrBadParameter.With("schema is required for JSON output"))
	}
	return opt.SetAny(responseFormatKey, schema.ChatResponseFormat{
		Type: schema.ResponseFormatJSONSchema,
		JSONSchema: &schema.ChatJSONSchema{
			Name:   name,
			Schema: s,
			Strict: &strict,
		},
	})
}

// WithChatStream streams the completion, calling fn for each chunk as it
// arrives. The accumulated completion is returned at the end of the stream.
func WithChatStream(fn ChatStreamFn) opt.Opt {
	if fn == nil {
		return opt.Error(openai.ErrBadParameter.With("stream callback is required"))
	}
	return opt.SetAny(chatStreamKey, fn)
}
