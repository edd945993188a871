package openai

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps basic model methods
type Client interface {
	// ListModels returns the list of available models
	ListModels(ctx context.Context) ([]schema.Model, error)

	// GetModel returns the model with the given identifier
	GetModel(ctx context.Context, id string) (*schema.Model, error)
}

// Generator is an interface for creating chat completions
type Generator interface {
	// CreateChatCompletion sends messages and returns the completion. When a
	// stream callback is set in the options, chunks are delivered as they arrive
	// and the accumulated completion is returned.
	CreateChatCompletion(ctx context.Context, model string, messages []schema.ChatMessage, opts ...opt.Opt) (*schema.ChatCompletion, error)
}

// Embedder is an interface for generating text embeddings
type Embedder interface {
	// CreateEmbeddings generates embedding vectors for one or more inputs
	CreateEmbeddings(ctx context.Context, model string, input []string, opts ...opt.Opt) (*schema.EmbeddingResponse, error)
}

// Speaker is an interface for text-to-speech
type Speaker interface {
	// Speech returns the generated audio
	Speech(ctx context.Context, model, input string, voice schema.AudioVoice, opts ...opt.Opt) (*schema.AudioSpeechResponse, error)

	// SpeechStream delivers the generated audio as an ordered sequence of chunks
	SpeechStream(ctx context.Context, model, input string, voice schema.AudioVoice, fn func([]byte) error, opts ...opt.Opt) error
}

// Transcriber is an interface for speech-to-text
type Transcriber interface {
	// Transcription returns the transcript of the audio in its own language
	Transcription(ctx context.Context, model string, file schema.FileUpload, opts ...opt.Opt) (*schema.AudioTranscription, error)

	// Translation returns the transcript of the audio translated into English
	Translation(ctx context.Context, model string, file schema.FileUpload, opts ...opt.Opt) (*schema.AudioTranscription, error)
}
