package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	// Packages
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

func Test_main_001(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	// No tracer to flush
	flushTracer(nil, log)
	assert.Empty(buf.String())

	// Spans are flushed with a deadline
	var called bool
	flushTracer(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(ok)
		called = true
		return nil
	}, log)
	assert.True(called)
	assert.Empty(buf.String())

	// Shutdown errors are logged
	flushTracer(func(context.Context) error { return errors.New("exporter unavailable") }, log)
	assert.Contains(buf.String(), "exporter unavailable")
	assert.Contains(buf.String(), "tracer shutdown")
}
