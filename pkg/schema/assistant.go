package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/assistants

// AssistantRequest is the request body to create or modify an assistant.
// Model is required on create, and optional on modify.
type AssistantRequest struct {
	Model        string            `json:"model,omitempty"`
	Name         *string           `json:"name,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Instructions *string           `json:"instructions,omitempty"`
	Tools        []AssistantTool   `json:"tools,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Temperature  *float64          `json:"temperature,omitempty"`
	TopP         *float64          `json:"top_p,omitempty"`
}

// AssistantTool is a code_interpreter, file_search or function tool
type AssistantTool struct {
	Type     string        `json:"type"`
	Function *ChatFunction `json:"function,omitempty"`
}

// Assistant is a configured assistant
type Assistant struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	CreatedAt    int64             `json:"created_at"`
	Name         string            `json:"name,omitempty"`
	Description  string            `json:"description,omitempty"`
	Model        string            `json:"model"`
	Instructions string            `json:"instructions,omitempty"`
	Tools        []AssistantTool   `json:"tools"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Temperature  *float64          `json:"temperature,omitempty"`
	TopP         *float64          `json:"top_p,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCodeInterpreterTool returns the built-in code interpreter tool
func NewCodeInterpreterTool() AssistantTool {
	return AssistantTool{Type: "code_interpreter"}
}

// NewFileSearchTool returns the built-in file search tool
func NewFileSearchTool() AssistantTool {
	return AssistantTool{Type: "file_search"}
}

// NewAssistantFunctionTool returns a function tool for an assistant
func NewAssistantFunctionTool(tool ChatTool) AssistantTool {
	fn := tool.Function
	return AssistantTool{Type: "function", Function: &fn}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a Assistant) String() string {
	return Stringify(a)
}
