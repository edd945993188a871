package api

import (
	"context"
	"strconv"
	"unicode/utf8"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The maximum number of characters to generate speech from
	MaxSpeechInput = 4096
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SPEECH

// Speech generates audio from the input text
func (c *Client) Speech(ctx context.Context, model, input string, voice schema.AudioVoice, opts ...opt.Opt) (*schema.AudioSpeechResponse, error) {
	request, err := SpeechRequest(model, input, voice, opts...)
	if err != nil {
		return nil, err
	}
	var response schema.AudioSpeechResponse
	if err := c.Post(ctx, request, &response, client.OptPath("audio", "speech")); err != nil {
		return nil, err
	}
	return &response, nil
}

// SpeechStream generates audio from the input text, calling fn with each
// chunk of audio in order as it is received. The stream ends when the audio
// is complete, fn returns an error, or the context is cancelled.
func (c *Client) SpeechStream(ctx context.Context, model, input string, voice schema.AudioVoice, fn func([]byte) error, opts ...opt.Opt) error {
	if fn == nil {
		return openai.ErrBadParameter.With("stream callback is required")
	}
	request, err := SpeechRequest(model, input, voice, opts...)
	if err != nil {
		return err
	}
	request.Stream = true
	return c.Post(ctx, request, httpclient.NewChunkReader(fn),
		client.OptPath("audio", "speech"),
		client.OptNoTimeout(),
	)
}

// SpeechRequest returns the request body for speech generation
func SpeechRequest(model, input string, voice schema.AudioVoice, opts ...opt.Opt) (*schema.AudioSpeechRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return speechRequestFromOpts(model, input, voice, o)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - TRANSCRIPTION AND TRANSLATION

// Transcription transcribes audio into the input language
func (c *Client) Transcription(ctx context.Context, model string, file schema.FileUpload, opts ...opt.Opt) (*schema.AudioTranscription, error) {
	request, err := TranscriptionRequest(model, opts...)
	if err != nil {
		return nil, err
	}

	// Open the file
	f, closeFile, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer closeFile()
	request.File = f

	var response schema.AudioTranscription
	if err := c.PostMultipart(ctx, request, &response, client.OptPath("audio", "transcriptions")); err != nil {
		return nil, err
	}
	return &response, nil
}

// Translation translates audio into English
func (c *Client) Translation(ctx context.Context, model string, file schema.FileUpload, opts ...opt.Opt) (*schema.AudioTranscription, error) {
	request, err := TranslationRequest(model, opts...)
	if err != nil {
		return nil, err
	}

	// Open the file
	f, closeFile, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer closeFile()
	request.File = f

	var response schema.AudioTranscription
	if err := c.PostMultipart(ctx, request, &response, client.OptPath("audio", "translations")); err != nil {
		return nil, err
	}
	return &response, nil
}

// TranscriptionRequest returns the form for a transcription, without the file
func TranscriptionRequest(model string, opts ...opt.Opt) (*schema.AudioTranscriptionRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return transcriptionRequestFromOpts(model, o)
}

// TranslationRequest returns the form for a translation, without the file
func TranslationRequest(model string, opts ...opt.Opt) (*schema.AudioTranslationRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return translationRequestFromOpts(model, o)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func speechRequestFromOpts(model, input string, voice schema.AudioVoice, o *opt.Options) (*schema.AudioSpeechRequest, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	if input == "" {
		return nil, openai.ErrBadParameter.With("input is required")
	} else if utf8.RuneCountInString(input) > MaxSpeechInput {
		return nil, openai.ErrBadParameter.Withf("input must be at most %d characters", MaxSpeechInput)
	}
	if !voice.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid voice: %q", voice)
	}

	// Instructions are not supported by the older models
	instructions := o.GetString(instructionsKey)
	if instructions != "" && (model == "tts-1" || model == "tts-1-hd") {
		return nil, openai.ErrBadParameter.Withf("instructions are not supported by %q", model)
	}

	// The format is shared with other endpoints, so check it again here
	format := schema.AudioSpeechResponseFormat(o.GetString(responseFormatKey))
	if format != "" && !format.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid speech format: %q", format)
	}

	return &schema.AudioSpeechRequest{
		Model:          model,
		Input:          input,
		Voice:          voice,
		Instructions:   instructions,
		ResponseFormat: format,
		Speed:          float64Ptr(o, speedKey),
	}, nil
}

func transcriptionRequestFromOpts(model string, o *opt.Options) (*schema.AudioTranscriptionRequest, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	format, err := outputFormat(o)
	if err != nil {
		return nil, err
	}
	temperature, err := audioTemperature(o)
	if err != nil {
		return nil, err
	}
	granularities := o.GetStringArray(granularitiesKey)
	if len(granularities) > 0 && format != schema.OutputFormatVerboseJSON {
		return nil, openai.ErrBadParameter.Withf("timestamp granularities require the %q format", schema.OutputFormatVerboseJSON)
	}
	return &schema.AudioTranscriptionRequest{
		Model:                  model,
		Language:               o.GetString(languageKey),
		Prompt:                 o.GetString(opt.PromptKey),
		ResponseFormat:         string(format),
		Temperature:            temperature,
		TimestampGranularities: granularities,
	}, nil
}

func translationRequestFromOpts(model string, o *opt.Options) (*schema.AudioTranslationRequest, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	if o.Has(granularitiesKey) || o.Has(languageKey) {
		return nil, openai.ErrBadParameter.With("translations do not support language or timestamp granularities")
	}
	format, err := outputFormat(o)
	if err != nil {
		return nil, err
	}
	temperature, err := audioTemperature(o)
	if err != nil {
		return nil, err
	}
	return &schema.AudioTranslationRequest{
		Model:          model,
		Prompt:         o.GetString(opt.PromptKey),
		ResponseFormat: string(format),
		Temperature:    temperature,
	}, nil
}

func outputFormat(o *opt.Options) (schema.AudioOutputFormat, error) {
	format := schema.AudioOutputFormat(o.GetString(responseFormatKey))
	if format != "" && !format.Valid() {
		return "", openai.ErrBadParameter.Withf("invalid output format: %q", format)
	}
	return format, nil
}

// audioTemperature returns the temperature as a form value, checking the
// narrower range which applies to audio
func audioTemperature(o *opt.Options) (string, error) {
	if !o.Has(opt.TemperatureKey) {
		return "", nil
	}
	value := o.GetFloat64(opt.TemperatureKey)
	if value < 0 || value > 1 {
		return "", openai.ErrBadParameter.With("temperature must be between 0.0 and 1.0")
	}
	return strconv.FormatFloat(value, 'f', -1, 64), nil
}
