package main

import (
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AudioCommands struct {
	Speak      SpeakCommand      `cmd:"" name:"speak" help:"Generate speech from text." group:"AUDIO"`
	Transcribe TranscribeCommand `cmd:"" name:"transcribe" help:"Transcribe audio into text." group:"AUDIO"`
	Translate  TranslateCommand  `cmd:"" name:"translate" help:"Translate audio into English text." group:"AUDIO"`
}

type SpeakCommand struct {
	Input        []string `arg:"" name:"input" help:"Text to speak"`
	Model        string   `name:"model" help:"Speech model" default:"gpt-4o-mini-tts"`
	Voice        string   `name:"voice" help:"Voice" default:"alloy"`
	Format       string   `name:"format" help:"Audio format (mp3, opus, aac, flac, wav, pcm)" default:"mp3"`
	Speed        *float64 `name:"speed" help:"Speed, between 0.25 and 4.0"`
	Instructions string   `name:"instructions" help:"Instructions for the voice"`
	Out          string   `name:"out" short:"o" help:"Output file" type:"path"`
}

type TranscribeCommand struct {
	AudioFlags
	Language string `name:"language" help:"Language of the audio, as an ISO-639-1 code"`
}

type TranslateCommand struct {
	AudioFlags
}

type AudioFlags struct {
	File        string   `arg:"" name:"file" help:"Audio file" type:"existingfile"`
	Model       string   `name:"model" help:"Transcription model" default:"whisper-1"`
	Prompt      string   `name:"prompt" help:"Text to guide the style of the transcript"`
	Format      string   `name:"format" help:"Output format (json, text, srt, verbose_json, vtt)"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature, between 0 and 1"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SpeakCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// Audio goes to a file, or to stdout when it is not a terminal
	w := os.Stdout
	if cmd.Out != "" {
		f, err := os.Create(cmd.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else if isTerminal(os.Stdout) {
		return openai.ErrBadParameter.With("refusing to write audio to a terminal, use --out")
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SpeakCommand",
		attribute.String("model", cmd.Model),
		attribute.String("voice", cmd.Voice),
	)
	defer func() { endSpan(err) }()

	opts := []opt.Opt{api.WithSpeechFormat(schema.AudioSpeechResponseFormat(cmd.Format))}
	if cmd.Speed != nil {
		opts = append(opts, api.WithSpeed(*cmd.Speed))
	}
	if cmd.Instructions != "" {
		opts = append(opts, api.WithInstructions(cmd.Instructions))
	}

	// Stream the audio as it is generated
	var written int
	if err := client.SpeechStream(parent, cmd.Model, strings.Join(cmd.Input, " "), schema.AudioVoice(cmd.Voice), func(chunk []byte) error {
		n, err := w.Write(chunk)
		written += n
		return err
	}, opts...); err != nil {
		return err
	}
	ctx.log.Debug().Int("bytes", written).Str("out", cmd.Out).Msg("speech")
	return nil
}

func (cmd *TranscribeCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "TranscribeCommand",
		attribute.String("model", cmd.Model),
		attribute.String("file", cmd.File),
	)
	defer func() { endSpan(err) }()

	opts := cmd.opts()
	if cmd.Language != "" {
		opts = append(opts, api.WithLanguage(cmd.Language))
	}
	response, err := client.Transcription(parent, cmd.Model, schema.NewFileUpload(cmd.File), opts...)
	if err != nil {
		return err
	}
	return writeTranscript(ctx, cmd.Format, response)
}

func (cmd *TranslateCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "TranslateCommand",
		attribute.String("model", cmd.Model),
		attribute.String("file", cmd.File),
	)
	defer func() { endSpan(err) }()

	response, err := client.Translation(parent, cmd.Model, schema.NewFileUpload(cmd.File), cmd.opts()...)
	if err != nil {
		return err
	}
	return writeTranscript(ctx, cmd.Format, response)
}

func (flags *AudioFlags) opts() []opt.Opt {
	opts := []opt.Opt{}
	if flags.Prompt != "" {
		opts = append(opts, api.WithPrompt(flags.Prompt))
	}
	if flags.Format != "" {
		opts = append(opts, api.WithOutputFormat(schema.AudioOutputFormat(flags.Format)))
	}
	if flags.Temperature != nil {
		opts = append(opts, api.WithAudioTemperature(*flags.Temperature))
	}
	return opts
}

// writeTranscript writes text formats as they are, and structured formats
// in the output format
func writeTranscript(ctx *Globals, format string, response *schema.AudioTranscription) error {
	switch schema.AudioOutputFormat(format) {
	case schema.OutputFormatText, schema.OutputFormatSRT, schema.OutputFormatVTT:
		_, err := os.Stdout.WriteString(response.Text + "\n")
		return err
	default:
		return ctx.Write(response)
	}
}
