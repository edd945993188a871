package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/batch

// The endpoint used by all requests in a batch
type BatchEndpoint string

const (
	BatchEndpointResponses       BatchEndpoint = "/v1/responses"
	BatchEndpointChatCompletions BatchEndpoint = "/v1/chat/completions"
	BatchEndpointEmbeddings      BatchEndpoint = "/v1/embeddings"
	BatchEndpointCompletions     BatchEndpoint = "/v1/completions"
)

const (
	// The only completion window currently supported
	BatchCompletionWindow = "24h"
)

// BatchRequest is the request body for POST /batches
type BatchRequest struct {
	InputFileID      string            `json:"input_file_id"`
	Endpoint         BatchEndpoint     `json:"endpoint"`
	CompletionWindow string            `json:"completion_window"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// Batch is a group of requests processed asynchronously
type Batch struct {
	ID               string              `json:"id"`
	Object           string              `json:"object"`
	Endpoint         BatchEndpoint       `json:"endpoint"`
	Errors           *BatchErrors        `json:"errors,omitempty"`
	InputFileID      string              `json:"input_file_id"`
	CompletionWindow string              `json:"completion_window"`
	Status           string              `json:"status"`
	OutputFileID     string              `json:"output_file_id,omitempty"`
	ErrorFileID      string              `json:"error_file_id,omitempty"`
	CreatedAt        int64               `json:"created_at"`
	InProgressAt     int64               `json:"in_progress_at,omitempty"`
	ExpiresAt        int64               `json:"expires_at,omitempty"`
	FinalizingAt     int64               `json:"finalizing_at,omitempty"`
	CompletedAt      int64               `json:"completed_at,omitempty"`
	FailedAt         int64               `json:"failed_at,omitempty"`
	ExpiredAt        int64               `json:"expired_at,omitempty"`
	CancellingAt     int64               `json:"cancelling_at,omitempty"`
	CancelledAt      int64               `json:"cancelled_at,omitempty"`
	RequestCounts    *BatchRequestCounts `json:"request_counts,omitempty"`
	Metadata         map[string]string   `json:"metadata,omitempty"`
}

type BatchErrors struct {
	Object string       `json:"object"`
	Data   []BatchError `json:"data"`
}

type BatchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	Line    *int   `json:"line,omitempty"`
}

type BatchRequestCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true if the endpoint is supported for batches
func (e BatchEndpoint) Valid() bool {
	switch e {
	case BatchEndpointResponses, BatchEndpointChatCompletions, BatchEndpointEmbeddings, BatchEndpointCompletions:
		return true
	}
	return false
}

func (b Batch) String() string {
	return Stringify(b)
}
