package api

import (
	// Packages
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	minSpeed = 0.25
	maxSpeed = 4.0
)

///////////////////////////////////////////////////////////////////////////////
// AUDIO OPTIONS
//
// See: https://platform.openai.com/docs/api-reference/audio

// WithSpeechFormat sets the encoding of generated speech
func WithSpeechFormat(format schema.AudioSpeechResponseFormat) opt.Opt {
	if !format.Valid() {
		return opt.Error(openai.ErrBadParameter.Withf("invalid speech format: %q", format))
	}
	return opt.SetString(responseFormatKey, string(format))
}

// WithSpeed sets the speed of generated speech, between 0.25 and 4.0
func WithSpeed(value float64) opt.Opt {
	if value < minSpeed || value > maxSpeed {
		return opt.Error(openai.ErrBadParameter.Withf("speed must be between %v and %v", minSpeed, maxSpeed))
	}
	return opt.SetFloat64(speedKey, value)
}

// WithLanguage sets the ISO-639-1 language of the input audio
func WithLanguage(value string) opt.Opt {
	if len(value) != 2 {
		return opt.Error(openai.ErrBadParameter.Withf("language must be an ISO-639-1 code: %q", value))
	}
	return opt.SetString(languageKey, value)
}

// WithOutputFormat sets the format of a transcription or translation
func WithOutputFormat(format schema.AudioOutputFormat) opt.Opt {
	if !format.Valid() {
		return opt.Error(openai.ErrBadParameter.Withf("invalid output format: %q", format))
	}
	return opt.SetString(responseFormatKey, string(format))
}

// WithAudioTemperature sets the sampling temperature of a transcription or
// translation, between 0 and 1
func WithAudioTemperature(value float64) opt.Opt {
	if value < 0 || value > 1 {
		return opt.Error(openai.ErrBadParameter.With("temperature must be between 0.0 and 1.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithTimestampGranularities sets the timestamps to populate in a
// transcription. Requires the verbose_json output format.
func WithTimestampGranularities(values ...schema.TimestampGranularity) opt.Opt {
	return func(o *opt.Options) error {
		if len(values) == 0 {
			return openai.ErrBadParameter.With("at least one timestamp granularity is required")
		}
		for _, value := range values {
			if !value.Valid() {
				return openai.ErrBadParameter.Withf("invalid timestamp granularity: %q", value)
			}
			o.Add(granularitiesKey, string(value))
		}
		return nil
	}
}
