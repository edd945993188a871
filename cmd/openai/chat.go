package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCommands struct {
	Chat     ChatCommand     `cmd:"" name:"chat" help:"Create a chat completion." group:"CHAT"`
	Embed    EmbedCommand    `cmd:"" name:"embed" help:"Create embeddings for text." group:"CHAT"`
	Moderate ModerateCommand `cmd:"" name:"moderate" help:"Classify text for moderation." group:"CHAT"`
}

type ChatCommand struct {
	Model       string   `arg:"" name:"model" help:"Model identifier"`
	Prompt      []string `arg:"" name:"prompt" help:"User prompt"`
	System      string   `name:"system" help:"Developer instructions"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature, between 0 and 2"`
	MaxTokens   *uint    `name:"max-tokens" help:"Upper bound on generated tokens"`
	Seed        *int     `name:"seed" help:"Seed for deterministic sampling"`
	JSON        bool     `name:"json" help:"Respond with a JSON object"`
	Schema      string   `name:"schema" help:"Respond with JSON matching the schema in a YAML or JSON file" type:"existingfile"`
	SchemaName  string   `name:"schema-name" help:"Name of the response schema" default:"response"`
	NoStream    bool     `name:"no-stream" help:"Wait for the whole completion"`
	Raw         bool     `name:"raw" help:"Do not render markdown on a terminal"`
	Style       string   `name:"style" help:"Markdown style when rendering on a terminal" default:"dark"`
	Completion  bool     `name:"completion" help:"Write the completion object instead of the text"`
}

type EmbedCommand struct {
	Model      string   `arg:"" name:"model" help:"Model identifier"`
	Input      []string `arg:"" name:"input" help:"Text to embed"`
	Dimensions *uint    `name:"dimensions" help:"Number of dimensions for the output vectors"`
}

type ModerateCommand struct {
	Input []string `arg:"" name:"input" help:"Text to classify"`
	Model string   `name:"model" help:"Moderation model"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("model", cmd.Model),
	)
	defer func() { endSpan(err) }()

	// Messages
	messages := []schema.ChatMessage{}
	if cmd.System != "" {
		messages = append(messages, schema.DeveloperMessage(cmd.System))
	}
	messages = append(messages, schema.UserMessage(strings.Join(cmd.Prompt, " ")))

	// Options
	opts, err := cmd.opts()
	if err != nil {
		return err
	}

	// Render markdown when writing text to a terminal, otherwise stream
	render := !cmd.Raw && !cmd.Completion && isTerminal(os.Stdout)
	if !cmd.NoStream && !cmd.Completion && !render {
		opts = append(opts, api.WithChatStream(func(chunk *schema.ChatCompletionChunk) error {
			for _, choice := range chunk.Choices {
				if choice.Index == 0 {
					fmt.Fprint(os.Stdout, choice.Delta.Content)
				}
			}
			return nil
		}))
	}

	completion, err := client.CreateChatCompletion(parent, cmd.Model, messages, opts...)
	if err != nil {
		return err
	}
	if completion.Usage != nil {
		ctx.log.Debug().
			Int("prompt_tokens", completion.Usage.PromptTokens).
			Int("completion_tokens", completion.Usage.CompletionTokens).
			Msg("usage")
	}

	switch {
	case cmd.Completion:
		return ctx.Write(completion)
	case render:
		text, err := renderMarkdown(os.Stdout, cmd.Style, completion.Text())
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
	case cmd.NoStream:
		fmt.Fprintln(os.Stdout, completion.Text())
	default:
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func (cmd *ChatCommand) opts() ([]opt.Opt, error) {
	opts := []opt.Opt{}
	if cmd.Temperature != nil {
		opts = append(opts, api.WithTemperature(*cmd.Temperature))
	}
	if cmd.MaxTokens != nil {
		opts = append(opts, api.WithMaxCompletionTokens(*cmd.MaxTokens))
	}
	if cmd.Seed != nil {
		opts = append(opts, api.WithSeed(*cmd.Seed))
	}
	if cmd.JSON {
		opts = append(opts, api.WithJSONObject())
	}
	if cmd.Schema != "" {
		s, err := schema.ReadJSONSchemaFile(cmd.Schema)
		if err != nil {
			return nil, err
		}
		opts = append(opts, api.WithJSONSchemaRaw(cmd.SchemaName, s, true))
	}
	return opts, nil
}

func (cmd *EmbedCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "EmbedCommand",
		attribute.String("model", cmd.Model),
		attribute.Int("inputs", len(cmd.Input)),
	)
	defer func() { endSpan(err) }()

	opts := []opt.Opt{}
	if cmd.Dimensions != nil {
		opts = append(opts, api.WithDimensions(*cmd.Dimensions))
	}
	response, err := client.CreateEmbeddings(parent, cmd.Model, cmd.Input, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *ModerateCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModerateCommand")
	defer func() { endSpan(err) }()

	opts := []opt.Opt{}
	if cmd.Model != "" {
		opts = append(opts, api.WithModel(cmd.Model))
	}
	response, err := client.CreateModeration(parent, cmd.Input, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}
