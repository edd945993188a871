package schema_test

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mutablelogic/go-openai/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTranscriptionText(t *testing.T) {
	assert := assert.New(t)
	var r schema.AudioTranscription
	header := http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}}
	assert.NoError(r.Unmarshal(header, strings.NewReader("Hello world\n")))
	assert.Equal("Hello world", r.Text)
}

func TestTranscriptionSubtitles(t *testing.T) {
	assert := assert.New(t)
	srt := "1\n00:00:00,000 --> 00:00:01,000\nHello\n\n"
	var r schema.AudioTranscription
	assert.NoError(r.Unmarshal(http.Header{"Content-Type": []string{"application/x-subrip"}}, strings.NewReader(srt)))
	assert.Equal(strings.TrimRight(srt, "\n"), r.Text)
}

func TestTranscriptionJSON(t *testing.T) {
	assert := assert.New(t)
	var r schema.AudioTranscription
	header := http.Header{"Content-Type": []string{"application/json"}}
	assert.NoError(r.Unmarshal(header, strings.NewReader(`{"task":"transcribe","language":"english","duration":1.5,"text":"Hi",
		"segments":[{"id":0,"seek":0,"start":0,"end":1.5,"text":"Hi","temperature":0,"avg_logprob":-0.2,"compression_ratio":0.5,"no_speech_prob":0.01}],
		"usage":{"type":"duration","seconds":2}}`)))
	assert.Equal("Hi", r.Text)
	assert.Equal(1.5, r.Duration)
	assert.Len(r.Segments, 1)
	if assert.NotNil(r.Usage) {
		assert.Equal(2.0, r.Usage.Seconds)
	}

	// Invalid JSON is an error
	assert.Error(r.Unmarshal(header, strings.NewReader(`{"text":`)))
}

func TestSpeechSave(t *testing.T) {
	assert := assert.New(t)
	var r schema.AudioSpeechResponse
	assert.NoError(r.Unmarshal(http.Header{"Content-Type": []string{"audio/mpeg"}}, strings.NewReader("ID3DATA")))
	assert.Equal("audio/mpeg", r.ContentType)

	path := filepath.Join(t.TempDir(), "out", "speech.mp3")
	assert.NoError(r.Save(path))
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("ID3DATA", string(data))
}

func TestImageSave(t *testing.T) {
	assert := assert.New(t)
	image := schema.Image{B64JSON: base64.StdEncoding.EncodeToString([]byte("PNGDATA"))}
	path := filepath.Join(t.TempDir(), "images", "cat.png")
	assert.NoError(image.Save(path))
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("PNGDATA", string(data))

	// Invalid base64 is an error
	assert.Error(schema.Image{B64JSON: "!!!"}.Save(path))
}

func TestEnumerations(t *testing.T) {
	assert := assert.New(t)
	assert.True(schema.VoiceShimmer.Valid())
	assert.False(schema.AudioVoice("robot").Valid())
	assert.True(schema.SpeechFormatOpus.Valid())
	assert.False(schema.AudioSpeechResponseFormat("ogg").Valid())
	assert.True(schema.OutputFormatVTT.Valid())
	assert.False(schema.AudioOutputFormat("xml").Valid())
	assert.True(schema.PurposeUserData.Valid())
	assert.False(schema.FilePurpose("other").Valid())
	assert.True(schema.BatchEndpointResponses.Valid())
	assert.False(schema.BatchEndpoint("/v1/images").Valid())
}
