package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EmbeddingRequest is the request body for POST /embeddings
type EmbeddingRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	Dimensions     *uint    `json:"dimensions,omitempty"`
	EncodingFormat string   `json:"encoding_format,omitempty"`
	User           string   `json:"user,omitempty"`
}

// EmbeddingResponse is the response body from POST /embeddings
type EmbeddingResponse struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  *Usage      `json:"usage,omitempty"`
}

// Embedding is a single embedding vector, for the input at Index
type Embedding struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r EmbeddingResponse) String() string {
	return Stringify(r)
}
