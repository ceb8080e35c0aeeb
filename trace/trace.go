// Package trace describes the captured request/response pairs the
// inference pipeline consumes. Capture, persistence, and bundle loading
// live outside this module (spec.md §1); callers adapt their own storage
// to the Trace interface.
package trace

// Trace is one captured GraphQL HTTP exchange. Implementations may carry
// arbitrary additional metadata; the pipeline only ever reads the two
// bodies.
type Trace interface {
	// RequestBody is the raw HTTP request body, or nil/empty if none was
	// captured.
	RequestBody() []byte
	// ResponseBody is the raw HTTP response body, or nil/empty if none was
	// captured.
	ResponseBody() []byte
}

// Record is a concrete Trace implementation for callers with no reason to
// define their own. TraceID, Method, URL, Status, and Timestamp are
// carried through untouched; the inference core never reads them.
type Record struct {
	TraceID   string
	Method    string
	URL       string
	Status    int
	Timestamp int64

	Request  []byte
	Response []byte
}

var _ Trace = (*Record)(nil)

func (r *Record) RequestBody() []byte  { return r.Request }
func (r *Record) ResponseBody() []byte { return r.Response }

// RequestBody is the decoded shape of a single GraphQL HTTP request body.
// A raw body may decode to one of these (single operation) or to a JSON
// array of these (a batch).
type RequestBody struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// ResponseBody is the decoded shape of a single GraphQL HTTP response
// body. The extractor does not decode responses into this struct: it
// walks the raw response bytes with gjson rather than through a decoded
// map, so the distinction between "key absent" and "key present with a
// null value" survives (spec.md §4.2.2).
type ResponseBody struct {
	Data   interface{}              `json:"data,omitempty"`
	Errors []map[string]interface{} `json:"errors,omitempty"`
}
