package orchid

import (
	"encoding/json"
	"strings"

	"github.com/ipconfigure/go-orchid/httpclient"
)

// Response is the server's answer to a single request, passed through
// unmodified. Helpers interpret the body on demand based on the response
// content-type, mirroring how callers consume the raw API: JSON for
// resources, text for plain timestamps, bytes for frames, exports, and logs.
type Response struct {
	*httpclient.Response
}

// ContentType returns the response content-type header.
func (r *Response) ContentType() string {
	return r.Headers["Content-Type"]
}

// IsJSON reports whether the response carries a JSON body.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

// IsText reports whether the response carries a text body.
func (r *Response) IsText() bool {
	return strings.Contains(r.ContentType(), "text")
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
