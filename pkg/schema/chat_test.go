package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/mutablelogic/go-openai/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestChatContentText(t *testing.T) {
	assert := assert.New(t)

	// Plain text content is encoded as a string
	data, err := json.Marshal(schema.UserMessage("Hello"))
	assert.NoError(err)
	assert.JSONEq(`{"role":"user","content":"Hello"}`, string(data))

	var msg schema.ChatMessage
	assert.NoError(json.Unmarshal(data, &msg))
	assert.Equal(schema.RoleUser, msg.Role)
	assert.Equal("Hello", msg.Text())
	if assert.NotNil(msg.Content) {
		assert.Nil(msg.Content.Parts)
	}
}

func TestChatContentParts(t *testing.T) {
	assert := assert.New(t)

	// Content with an image is encoded as an array of parts
	data, err := json.Marshal(schema.UserMessageWithImage("What is this?", "https://example.com/cat.png", "low"))
	assert.NoError(err)
	assert.JSONEq(`{"role":"user","content":[
		{"type":"text","text":"What is this?"},
		{"type":"image_url","image_url":{"url":"https://example.com/cat.png","detail":"low"}}
	]}`, string(data))

	var msg schema.ChatMessage
	assert.NoError(json.Unmarshal(data, &msg))
	if assert.NotNil(msg.Content) && assert.Len(msg.Content.Parts, 2) {
		assert.Equal(schema.ContentPartImage, msg.Content.Parts[1].Type)
		assert.Equal("low", msg.Content.Parts[1].ImageURL.Detail)
	}
	assert.Equal("What is this?", msg.Text())
}

func TestChatContentNull(t *testing.T) {
	assert := assert.New(t)

	// An assistant message with tool calls may have null content
	var msg schema.ChatMessage
	assert.NoError(json.Unmarshal([]byte(`{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"f","arguments":"{}"}}]}`), &msg))
	assert.Nil(msg.Content)
	assert.Equal("", msg.Text())
	if assert.Len(msg.ToolCalls, 1) {
		assert.Equal("f", msg.ToolCalls[0].Function.Name)
	}

	// Numbers are not valid content
	assert.Error(json.Unmarshal([]byte(`{"role":"user","content":42}`), &msg))
}

func TestToolMessage(t *testing.T) {
	assert := assert.New(t)
	data, err := json.Marshal(schema.ToolMessage("call_1", "sunny"))
	assert.NoError(err)
	assert.JSONEq(`{"role":"tool","content":"sunny","tool_call_id":"call_1"}`, string(data))
}

func TestChatCompletionText(t *testing.T) {
	assert := assert.New(t)
	var completion *schema.ChatCompletion
	assert.Equal("", completion.Text())

	assert.NoError(json.Unmarshal([]byte(`{
		"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o",
		"choices":[{"index":0,"message":{"role":"assistant","content":"Hi"},"finish_reason":"stop"}],
		"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2,"prompt_tokens_details":{"cached_tokens":0}}
	}`), &completion))
	assert.Equal("Hi", completion.Text())
	assert.Equal(2, completion.Usage.TotalTokens)
}

func TestNewFunctionTool(t *testing.T) {
	assert := assert.New(t)
	data, err := json.Marshal(schema.NewFunctionTool("now", "Returns the time", nil))
	assert.NoError(err)
	assert.JSONEq(`{"type":"function","function":{"name":"now","description":"Returns the time"}}`, string(data))
}
