package api

import (
	"context"
	"io"
	"sort"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// chatAccumulator builds a completion from streamed chunks
type chatAccumulator struct {
	completion schema.ChatCompletion
	choices    map[int]*chatChoiceAccumulator
}

type chatChoiceAccumulator struct {
	role         schema.ChatRole
	content      strings.Builder
	refusal      strings.Builder
	finishReason string
	logprobs     *schema.ChatLogprobs
	toolCalls    map[int]*schema.ChatToolCall
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateChatCompletion generates a model response for a conversation. Use
// WithChatStream to receive the response incrementally.
func (c *Client) CreateChatCompletion(ctx context.Context, model string, messages []schema.ChatMessage, opts ...opt.Opt) (*schema.ChatCompletion, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	request, err := chatCompletionRequestFromOpts(model, messages, o)
	if err != nil {
		return nil, err
	}

	// Streaming path
	if fn, ok := o.Get(chatStreamKey).(ChatStreamFn); ok && fn != nil {
		return c.chatStream(ctx, request, fn)
	}

	// Non-streaming path
	var response schema.ChatCompletion
	if err := c.Post(ctx, request, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}
	return &response, nil
}

// ChatCompletionRequest returns the request body for a chat completion
func ChatCompletionRequest(model string, messages []schema.ChatMessage, opts ...opt.Opt) (*schema.ChatCompletionRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return chatCompletionRequestFromOpts(model, messages, o)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func chatCompletionRequestFromOpts(model string, messages []schema.ChatMessage, o *opt.Options) (*schema.ChatCompletionRequest, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	if len(messages) == 0 {
		return nil, openai.ErrBadParameter.With("at least one message is required")
	}
	for i, message := range messages {
		if message.Role == "" {
			return nil, openai.ErrBadParameter.Withf("message %d: role is required", i)
		}
		if message.Role == schema.RoleTool && message.ToolCallID == "" {
			return nil, openai.ErrBadParameter.Withf("message %d: tool_call_id is required", i)
		}
	}

	request := &schema.ChatCompletionRequest{
		Model:               model,
		Messages:            messages,
		Temperature:         float64Ptr(o, opt.TemperatureKey),
		TopP:                float64Ptr(o, opt.TopPKey),
		MaxCompletionTokens: uintPtr(o, maxTokensKey),
		N:                   uintPtr(o, opt.NKey),
		Stop:                o.GetStringArray(stopKey),
		Seed:                intPtr(o, opt.SeedKey),
		PresencePenalty:     float64Ptr(o, presencePenaltyKey),
		FrequencyPenalty:    float64Ptr(o, frequencyPenaltyKey),
		User:                o.GetString(opt.UserKey),
		Store:               boolPtr(o, storeKey),
		Metadata:            metadata(o),
		ReasoningEffort:     o.GetString(reasoningEffortKey),
		Logprobs:            boolPtr(o, logprobsKey),
		TopLogprobs:         uintPtr(o, topLogprobsKey),
		Tools:               tools(o),
		ToolChoice:          o.Get(toolChoiceKey),
		ParallelToolCalls:   boolPtr(o, parallelToolsKey),
	}

	// Check dependent parameters
	if request.TopLogprobs != nil && (request.Logprobs == nil || !*request.Logprobs) {
		return nil, openai.ErrBadParameter.With("top_logprobs requires logprobs")
	}
	if request.ParallelToolCalls != nil && len(request.Tools) == 0 {
		return nil, openai.ErrBadParameter.With("parallel_tool_calls requires tools")
	}

	// Set the response format
	if format, ok := o.Get(responseFormatKey).(schema.ChatResponseFormat); ok {
		request.ResponseFormat = &format
	}

	// Set streaming
	if _, ok := o.Get(chatStreamKey).(ChatStreamFn); ok {
		request.Stream = true
		request.StreamOptions = &schema.ChatStreamOptions{IncludeUsage: true}
	}

	// Return success
	return request, nil
}

// chatStream posts the request and reads the server-sent events, calling fn
// for each chunk and accumulating them into a completion
func (c *Client) chatStream(ctx context.Context, request *schema.ChatCompletionRequest, fn ChatStreamFn) (*schema.ChatCompletion, error) {
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	acc := newChatAccumulator()
	callback := func(event client.TextStreamEvent) error {
		// Check for [DONE] sentinel
		data := strings.TrimSpace(event.Data)
		if data == "" {
			return nil
		} else if data == "[DONE]" {
			return io.EOF
		}

		// Decode and deliver the chunk
		var chunk schema.ChatCompletionChunk
		if err := event.Json(&chunk); err != nil {
			return openai.ErrDecode.With(err)
		}
		acc.add(&chunk)
		return fn(&chunk)
	}

	// Pass a non-nil out so the client reads the stream
	var discard schema.ChatCompletion
	if err := c.Do(ctx, payload, &discard,
		client.OptPath("chat", "completions"),
		client.OptReqHeader("Accept", client.ContentTypeTextStream),
		client.OptTextStreamCallback(callback),
		client.OptNoTimeout(),
	); err != nil {
		return nil, err
	}

	// Return the accumulated completion
	return acc.result(), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS - ACCUMULATOR

func newChatAccumulator() *chatAccumulator {
	return &chatAccumulator{choices: make(map[int]*chatChoiceAccumulator)}
}

func (acc *chatAccumulator) add(chunk *schema.ChatCompletionChunk) {
	if acc.completion.ID == "" {
		acc.completion.ID = chunk.ID
		acc.completion.Created = chunk.Created
		acc.completion.Model = chunk.Model
	}
	if chunk.ServiceTier != "" {
		acc.completion.ServiceTier = chunk.ServiceTier
	}
	if chunk.SystemFingerprint != "" {
		acc.completion.SystemFingerprint = chunk.SystemFingerprint
	}
	if chunk.Usage != nil {
		acc.completion.Usage = chunk.Usage
	}
	for _, choice := range chunk.Choices {
		acc.choice(choice.Index).add(choice)
	}
}

func (acc *chatAccumulator) choice(index int) *chatChoiceAccumulator {
	if choice, exists := acc.choices[index]; exists {
		return choice
	}
	choice := &chatChoiceAccumulator{toolCalls: make(map[int]*schema.ChatToolCall)}
	acc.choices[index] = choice
	return choice
}

func (acc *chatAccumulator) result() *schema.ChatCompletion {
	result := acc.completion
	result.Object = "chat.completion"
	for _, index := range sortedKeys(acc.choices) {
		result.Choices = append(result.Choices, acc.choices[index].result(index))
	}
	return &result
}

func (choice *chatChoiceAccumulator) add(chunk schema.ChatChunkChoice) {
	delta := chunk.Delta
	if delta.Role != "" {
		choice.role = delta.Role
	}
	choice.content.WriteString(delta.Content)
	choice.refusal.WriteString(delta.Refusal)
	if chunk.FinishReason != "" {
		choice.finishReason = chunk.FinishReason
	}
	if chunk.Logprobs != nil {
		if choice.logprobs == nil {
			choice.logprobs = &schema.ChatLogprobs{}
		}
		choice.logprobs.Content = append(choice.logprobs.Content, chunk.Logprobs.Content...)
		choice.logprobs.Refusal = append(choice.logprobs.Refusal, chunk.Logprobs.Refusal...)
	}

	// Tool calls arrive in fragments keyed by index; the first fragment
	// carries the id and name, later fragments extend the arguments
	for i, call := range delta.ToolCalls {
		index := i
		if call.Index != nil {
			index = *call.Index
		}
		existing, exists := choice.toolCalls[index]
		if !exists {
			existing = &schema.ChatToolCall{Type: "function"}
			choice.toolCalls[index] = existing
		}
		if call.ID != "" {
			existing.ID = call.ID
		}
		if call.Type != "" {
			existing.Type = call.Type
		}
		if existing.Function.Name == "" {
			existing.Function.Name = call.Function.Name
		}
		existing.Function.Arguments += call.Function.Arguments
	}
}

func (choice *chatChoiceAccumulator) result(index int) schema.ChatChoice {
	role := choice.role
	if role == "" {
		role = schema.RoleAssistant
	}
	message := schema.ChatMessage{
		Role:    role,
		Refusal: choice.refusal.String(),
	}
	if choice.content.Len() > 0 || len(choice.toolCalls) == 0 {
		message.Content = schema.NewTextContent(choice.content.String())
	}
	for _, i := range sortedKeys(choice.toolCalls) {
		message.ToolCalls = append(message.ToolCalls, *choice.toolCalls[i])
	}
	return schema.ChatChoice{
		Index:        index,
		Message:      message,
		FinishReason: choice.finishReason,
		Logprobs:     choice.logprobs,
	}
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
