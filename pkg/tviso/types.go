package tviso

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response is a decoded Tviso API response.
//
// The API does not publish a schema, so only the error field is lifted
// out. Everything else stays in Raw and can be read with Get or Decode.
type Response struct {
	Error int             // Tviso error code, 0 on success or when absent
	Raw   json.RawMessage // Response body as returned by the API
}

// newResponse wraps a JSON body. The caller must have checked that body
// is valid JSON.
func newResponse(body []byte) *Response {
	return &Response{
		Error: int(gjson.GetBytes(body, "error").Int()),
		Raw:   json.RawMessage(body),
	}
}

// Get returns the value at path using gjson path syntax, for example
// "user_token" or "medias.0.name".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Raw, v)
}

// String returns the raw response body.
func (r *Response) String() string {
	return string(r.Raw)
}
