package schema

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Enumerations
//
// Reference: https://platform.openai.com/docs/api-reference/audio

// The voice to use when generating audio
type AudioVoice string

// The encoding of generated speech
type AudioSpeechResponseFormat string

// The format of transcription or translation output
type AudioOutputFormat string

// The granularity of timestamps in a verbose transcription
type TimestampGranularity string

const (
	VoiceAlloy   AudioVoice = "alloy"
	VoiceAsh     AudioVoice = "ash"
	VoiceBallad  AudioVoice = "ballad"
	VoiceCoral   AudioVoice = "coral"
	VoiceEcho    AudioVoice = "echo"
	VoiceFable   AudioVoice = "fable"
	VoiceOnyx    AudioVoice = "onyx"
	VoiceNova    AudioVoice = "nova"
	VoiceSage    AudioVoice = "sage"
	VoiceShimmer AudioVoice = "shimmer"
	VoiceVerse   AudioVoice = "verse"
)

const (
	SpeechFormatMP3  AudioSpeechResponseFormat = "mp3"
	SpeechFormatOpus AudioSpeechResponseFormat = "opus"
	SpeechFormatAAC  AudioSpeechResponseFormat = "aac"
	SpeechFormatFLAC AudioSpeechResponseFormat = "flac"
	SpeechFormatWAV  AudioSpeechResponseFormat = "wav"
	SpeechFormatPCM  AudioSpeechResponseFormat = "pcm"
)

const (
	OutputFormatJSON        AudioOutputFormat = "json"
	OutputFormatText        AudioOutputFormat = "text"
	OutputFormatSRT         AudioOutputFormat = "srt"
	OutputFormatVerboseJSON AudioOutputFormat = "verbose_json"
	OutputFormatVTT         AudioOutputFormat = "vtt"
)

const (
	TimestampWord    TimestampGranularity = "word"
	TimestampSegment TimestampGranularity = "segment"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Requests

// AudioSpeechRequest is the request body for POST /audio/speech
type AudioSpeechRequest struct {
	Model          string                    `json:"model"`
	Input          string                    `json:"input"`
	Voice          AudioVoice                `json:"voice"`
	Instructions   string                    `json:"instructions,omitempty"`
	ResponseFormat AudioSpeechResponseFormat `json:"response_format,omitempty"`
	Speed          *float64                  `json:"speed,omitempty"`
	Stream         bool                      `json:"stream,omitempty"`
}

// AudioTranscriptionRequest is the multipart form for POST /audio/transcriptions.
// Numeric values are pre-formatted so that absent values are omitted.
type AudioTranscriptionRequest struct {
	File                   multipart.File `json:"file"`
	Model                  string         `json:"model"`
	Language               string         `json:"language,omitempty"`
	Prompt                 string         `json:"prompt,omitempty"`
	ResponseFormat         string         `json:"response_format,omitempty"`
	Temperature            string         `json:"temperature,omitempty"`
	TimestampGranularities []string       `json:"timestamp_granularities[],omitempty"`
}

// AudioTranslationRequest is the multipart form for POST /audio/translations
type AudioTranslationRequest struct {
	File           multipart.File `json:"file"`
	Model          string         `json:"model"`
	Prompt         string         `json:"prompt,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Temperature    string         `json:"temperature,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Responses

// AudioSpeechResponse holds generated audio
type AudioSpeechResponse struct {
	ContentType string
	Bytes       []byte
}

// AudioTranscription is the result of a transcription or translation. For
// the text, srt and vtt formats only Text is set, holding the raw body.
type AudioTranscription struct {
	Task     string         `json:"task,omitempty"`
	Language string         `json:"language,omitempty"`
	Duration float64        `json:"duration,omitempty"`
	Text     string         `json:"text"`
	Words    []AudioWord    `json:"words,omitempty"`
	Segments []AudioSegment `json:"segments,omitempty"`
	Usage    *AudioUsage    `json:"usage,omitempty"`
}

type AudioWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type AudioSegment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens,omitempty"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

type AudioUsage struct {
	Type         string  `json:"type"`
	Seconds      float64 `json:"seconds,omitempty"`
	InputTokens  int     `json:"input_tokens,omitempty"`
	OutputTokens int     `json:"output_tokens,omitempty"`
	TotalTokens  int     `json:"total_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - Enumerations

// Valid returns true if the voice is a known voice
func (v AudioVoice) Valid() bool {
	switch v {
	case VoiceAlloy, VoiceAsh, VoiceBallad, VoiceCoral, VoiceEcho, VoiceFable,
		VoiceOnyx, VoiceNova, VoiceSage, VoiceShimmer, VoiceVerse:
		return true
	}
	return false
}

// Valid returns true if the format is a known speech format
func (f AudioSpeechResponseFormat) Valid() bool {
	switch f {
	case SpeechFormatMP3, SpeechFormatOpus, SpeechFormatAAC, SpeechFormatFLAC, SpeechFormatWAV, SpeechFormatPCM:
		return true
	}
	return false
}

// Valid returns true if the format is a known output format
func (f AudioOutputFormat) Valid() bool {
	switch f {
	case OutputFormatJSON, OutputFormatText, OutputFormatSRT, OutputFormatVerboseJSON, OutputFormatVTT:
		return true
	}
	return false
}

// Valid returns true if the granularity is known
func (g TimestampGranularity) Valid() bool {
	return g == TimestampWord || g == TimestampSegment
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - AudioSpeechResponse

// Unmarshal reads the audio from the response body
func (r *AudioSpeechResponse) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	r.ContentType = header.Get("Content-Type")
	r.Bytes = data
	return nil
}

// Save writes the audio to a file, creating any missing parent directories
func (r *AudioSpeechResponse) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, r.Bytes, 0o644)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - AudioTranscription

// Unmarshal decodes JSON transcripts, and otherwise keeps the raw text
func (r *AudioTranscription) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if mimetype, _, err := mime.ParseMediaType(header.Get("Content-Type")); err == nil && mimetype == "application/json" {
		return json.Unmarshal(data, r)
	}
	r.Text = string(bytes.TrimRight(data, "\n"))
	return nil
}

func (r AudioTranscription) String() string {
	return Stringify(r)
}
