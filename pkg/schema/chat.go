package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Enumerations
//
// Reference: https://platform.openai.com/docs/api-reference/chat

// The author of a chat message
type ChatRole string

const (
	RoleDeveloper ChatRole = "developer"
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleTool      ChatRole = "tool"
)

const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonToolCalls     = "tool_calls"
	FinishReasonContentFilter = "content_filter"
)

const (
	ContentPartText  = "text"
	ContentPartImage = "image_url"
)

const (
	ResponseFormatText       = "text"
	ResponseFormatJSONObject = "json_object"
	ResponseFormatJSONSchema = "json_schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Messages

// ChatMessage is a single turn in a conversation
type ChatMessage struct {
	Role       ChatRole       `json:"role"`
	Content    *ChatContent   `json:"content,omitempty"`
	Name       string         `json:"name,omitempty"`
	Refusal    string         `json:"refusal,omitempty"`
	ToolCalls  []ChatToolCall `json:"tool_calls,omitempty"`   // assistant only
	ToolCallID string         `json:"tool_call_id,omitempty"` // tool role only
}

// ChatContent is either a plain string, or an array of content parts
type ChatContent struct {
	Text  *string
	Parts []ChatContentPart
}

// ChatContentPart represents one element in a multi-part content array
type ChatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *ChatImageURL `json:"image_url,omitempty"`
}

// ChatImageURL carries the URL (or data-URI) for an image content part
type ChatImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"` // auto, low or high
}

// ChatToolCall represents a tool invocation in an assistant message
type ChatToolCall struct {
	Index    *int             `json:"index,omitempty"` // streaming only
	ID       string           `json:"id,omitempty"`
	Type     string           `json:"type,omitempty"` // function
	Function ChatFunctionCall `json:"function"`
}

// ChatFunctionCall carries the function name and JSON-encoded arguments
type ChatFunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Tools and formats

// ChatTool describes a tool the model may call
type ChatTool struct {
	Type     string       `json:"type"` // function
	Function ChatFunction `json:"function"`
}

// ChatFunction describes the signature of a function tool
type ChatFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Strict      *bool              `json:"strict,omitempty"`
}

// ChatToolChoice forces a specific function to be called
type ChatToolChoice struct {
	Type     string `json:"type"` // function
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

// ChatResponseFormat constrains the model output format
type ChatResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *ChatJSONSchema `json:"json_schema,omitempty"`
}

// ChatJSONSchema is the structured output schema for json_schema responses
type ChatJSONSchema struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Schema      JSONSchema `json:"schema,omitempty"`
	Strict      *bool      `json:"strict,omitempty"`
}

// ChatStreamOptions are set on streaming requests
type ChatStreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Request

// ChatCompletionRequest is the request body for POST /chat/completions
type ChatCompletionRequest struct {
	Model               string              `json:"model"`
	Messages            []ChatMessage       `json:"messages"`
	Temperature         *float64            `json:"temperature,omitempty"`
	TopP                *float64            `json:"top_p,omitempty"`
	MaxCompletionTokens *uint               `json:"max_completion_tokens,omitempty"`
	N                   *uint               `json:"n,omitempty"`
	Stop                []string            `json:"stop,omitempty"`
	Seed                *int                `json:"seed,omitempty"`
	PresencePenalty     *float64            `json:"presence_penalty,omitempty"`
	FrequencyPenalty    *float64            `json:"frequency_penalty,omitempty"`
	User                string              `json:"user,omitempty"`
	Store               *bool               `json:"store,omitempty"`
	Metadata            map[string]string   `json:"metadata,omitempty"`
	ReasoningEffort     string              `json:"reasoning_effort,omitempty"`
	Logprobs            *bool               `json:"logprobs,omitempty"`
	TopLogprobs         *uint               `json:"top_logprobs,omitempty"`
	Tools               []ChatTool          `json:"tools,omitempty"`
	ToolChoice          any                 `json:"tool_choice,omitempty"`
	ParallelToolCalls   *bool               `json:"parallel_tool_calls,omitempty"`
	ResponseFormat      *ChatResponseFormat `json:"response_format,omitempty"`
	Stream              bool                `json:"stream,omitempty"`
	StreamOptions       *ChatStreamOptions  `json:"stream_options,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Response

// ChatCompletion is the response body from POST /chat/completions
type ChatCompletion struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"`
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	Choices           []ChatChoice `json:"choices"`
	Usage             *Usage       `json:"usage,omitempty"`
	ServiceTier       string       `json:"service_tier,omitempty"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
}

// ChatChoice is one element of the choices array
type ChatChoice struct {
	Index        int           `json:"index"`
	Message      ChatMessage   `json:"message"`
	FinishReason string        `json:"finish_reason"`
	Logprobs     *ChatLogprobs `json:"logprobs,omitempty"`
}

// ChatLogprobs holds token log probabilities
type ChatLogprobs struct {
	Content []ChatTokenLogprob `json:"content"`
	Refusal []ChatTokenLogprob `json:"refusal,omitempty"`
}

type ChatTokenLogprob struct {
	Token       string             `json:"token"`
	Logprob     float64            `json:"logprob"`
	Bytes       []int              `json:"bytes,omitempty"`
	TopLogprobs []ChatTokenLogprob `json:"top_logprobs,omitempty"`
}

// ChatCompletionChunk is a single server-sent event of a streaming completion
type ChatCompletionChunk struct {
	ID                string            `json:"id"`
	Object            string            `json:"object"`
	Created           int64             `json:"created"`
	Model             string            `json:"model"`
	Choices           []ChatChunkChoice `json:"choices"`
	Usage             *Usage            `json:"usage,omitempty"` // final chunk only
	ServiceTier       string            `json:"service_tier,omitempty"`
	SystemFingerprint string            `json:"system_fingerprint,omitempty"`
}

// ChatChunkChoice carries the incremental delta for one choice
type ChatChunkChoice struct {
	Index        int           `json:"index"`
	Delta        ChatDelta     `json:"delta"`
	FinishReason string        `json:"finish_reason,omitempty"`
	Logprobs     *ChatLogprobs `json:"logprobs,omitempty"`
}

// ChatDelta is the incremental content within a chunk
type ChatDelta struct {
	Role      ChatRole       `json:"role,omitempty"`
	Content   string         `json:"content,omitempty"`
	Refusal   string         `json:"refusal,omitempty"`
	ToolCalls []ChatToolCall `json:"tool_calls,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DeveloperMessage returns a message with developer instructions
func DeveloperMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleDeveloper, Content: NewTextContent(text)}
}

// SystemMessage returns a message with system instructions
func SystemMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: NewTextContent(text)}
}

// UserMessage returns a text message from the user
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: NewTextContent(text)}
}

// UserMessageWithImage returns a message from the user with text and an image
// URL, which may be a data URI. Detail is auto, low or high, or empty.
func UserMessageWithImage(text, url, detail string) ChatMessage {
	parts := []ChatContentPart{}
	if text != "" {
		parts = append(parts, ChatContentPart{Type: ContentPartText, Text: text})
	}
	parts = append(parts, ChatContentPart{Type: ContentPartImage, ImageURL: &ChatImageURL{URL: url, Detail: detail}})
	return ChatMessage{Role: RoleUser, Content: &ChatContent{Parts: parts}}
}

// AssistantMessage returns a text message from the assistant, used to
// replay previous turns
func AssistantMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: NewTextContent(text)}
}

// ToolMessage returns the result of a tool call
func ToolMessage(toolCallID, text string) ChatMessage {
	return ChatMessage{Role: RoleTool, ToolCallID: toolCallID, Content: NewTextContent(text)}
}

// NewTextContent returns plain string content
func NewTextContent(text string) *ChatContent {
	return &ChatContent{Text: &text}
}

// NewFunctionTool returns a function tool. Parameters may be nil for a
// function without arguments.
func NewFunctionTool(name, description string, parameters *jsonschema.Schema) ChatTool {
	return ChatTool{
		Type: "function",
		Function: ChatFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (c ChatContent) MarshalJSON() ([]byte, error) {
	switch {
	case c.Parts != nil:
		return json.Marshal(c.Parts)
	case c.Text != nil:
		return json.Marshal(*c.Text)
	default:
		return []byte("null"), nil
	}
}

func (c *ChatContent) UnmarshalJSON(data []byte) error {
	c.Text, c.Parts = nil, nil
	switch {
	case string(data) == "null":
		return nil
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		c.Text = &text
		return nil
	case len(data) > 0 && data[0] == '[':
		return json.Unmarshal(data, &c.Parts)
	}
	return fmt.Errorf("unexpected content: %s", string(data))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// String returns the text of the content, joining text parts
func (c *ChatContent) String() string {
	if c == nil {
		return ""
	}
	if c.Text != nil {
		return *c.Text
	}
	var parts []string
	for _, part := range c.Parts {
		if part.Type == ContentPartText {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Text returns the text content of the message
func (m ChatMessage) Text() string {
	return m.Content.String()
}

// Text returns the text content of the first choice
func (c *ChatCompletion) Text() string {
	if c == nil || len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Text()
}

func (c ChatCompletion) String() string {
	return Stringify(c)
}
