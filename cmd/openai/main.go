package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	uuid "github.com/google/uuid"
	version "github.com/mutablelogic/go-openai/pkg/version"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output, including request and response bodies"`

	// Credentials and endpoint
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Output
	Output  string        `name:"output" enum:"json,yaml" default:"json" help:"Output format (json or yaml)"`
	Timeout time.Duration `name:"timeout" env:"OPENAI_TIMEOUT" help:"Request timeout" default:"0s"`

	// Tracing
	OtelEndpoint string `name:"otel-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OpenTelemetry OTLP/HTTP endpoint"`

	// Context
	ctx       context.Context
	log       zerolog.Logger
	tracer    trace.Tracer
	requestID string
	execName  string
}

type OpenAI struct {
	APIKey   string `name:"api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	AdminKey string `name:"admin-key" env:"OPENAI_ADMIN_KEY" help:"OpenAI admin API key"`
	BaseURL  string `name:"base-url" env:"OPENAI_BASE_URL" help:"API endpoint"`
	Org      string `name:"org" env:"OPENAI_ORG_ID" help:"Organization identifier"`
	Project  string `name:"project" env:"OPENAI_PROJECT_ID" help:"Project identifier"`
}

type CLI struct {
	Globals
	ModelCommands
	ChatCommands
	ImageCommands
	AudioCommands
	FileCommands
	BatchCommands
	FineTuningCommands
	ProjectCommands
	OrganizationCommands
	VersionCommands
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	shutdownTimeout = 5 * time.Second
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Create a logger
	cli.Globals.log = newLogger(cli.Debug)

	// Every invocation is identified by a request id
	cli.Globals.requestID = uuid.NewString()
	cli.Globals.log.Debug().Str("request_id", cli.Globals.requestID).Str("version", version.Version()).Msg("start")

	// Create a tracer, which discards spans unless an endpoint is set
	cli.Globals.tracer = noop.NewTracerProvider().Tracer(cli.Globals.execName)
	var shutdown func(context.Context) error
	if cli.OtelEndpoint != "" {
		tracer, fn, err := newTracer(ctx, cli.OtelEndpoint, cli.Globals.execName)
		if err != nil {
			cmd.FatalIfErrorf(err)
			return
		}
		cli.Globals.tracer, shutdown = tracer, fn
	}

	// Run the command, then export any spans before exiting
	err := cmd.Run(&cli.Globals)
	if err != nil {
		cli.Globals.log.Error().Err(err).Str("request_id", cli.Globals.requestID).Msg(cmd.Command())
	}
	flushTracer(shutdown, cli.Globals.log)
	if err != nil {
		cancel()
		os.Exit(-1)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// flushTracer exports pending spans, waiting at most shutdownTimeout
func flushTracer(shutdown func(context.Context) error, log zerolog.Logger) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("tracer shutdown")
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
