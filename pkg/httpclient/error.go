package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type errorBody struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Param   string `json:"param"`
		Code    any    `json:"code"`
	} `json:"error"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Error maps an error returned by the HTTP client onto one of an
// *openai.APIError for non-2xx responses, openai.ErrDecode for a body which
// could not be decoded, or openai.ErrTransport for a failed round trip.
// Context cancellation is returned unchanged.
func Error(err error) error {
	if err == nil {
		return nil
	}

	// Cancelled or timed out by the caller
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// Already mapped
	var apiErr *openai.APIError
	var code openai.Err
	if errors.As(err, &apiErr) || errors.As(err, &code) {
		return err
	}

	// Non-2xx status
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		return ParseAPIError(int(httpErr), err.Error())
	}

	// Decoding
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", openai.ErrDecode, err)
	}

	// Transport
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", openai.ErrTransport, err)
	}

	// Anything else is reported as is
	return err
}

// ParseAPIError returns an API error for a status code, populated from a
// JSON error body of the form {"error":{"message":...}} found in text.
func ParseAPIError(status int, text string) *openai.APIError {
	result := &openai.APIError{StatusCode: status}
	if i := strings.Index(text, "{"); i >= 0 {
		var body errorBody
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&body); err == nil && body.Error != nil {
			result.Message = body.Error.Message
			result.Type = body.Error.Type
			result.Param = body.Error.Param
			switch code := body.Error.Code.(type) {
			case string:
				result.Code = code
			case float64:
				result.Code = strconv.FormatFloat(code, 'f', -1, 64)
			}
			return result
		}
	}

	// Use the text after the status as the message
	if _, message, ok := strings.Cut(text, ": "); ok {
		result.Message = strings.TrimSpace(message)
	}
	return result
}
