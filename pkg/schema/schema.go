/*
schema contains the data-transfer types for the OpenAI REST API: request
parameters, response objects and the closed vocabularies used by both.
https://platform.openai.com/docs/api-reference
*/
package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns the indented JSON encoding of a value
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
