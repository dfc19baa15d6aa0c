package types

import "net/http"

// RequestDescriptor is the HTTP request an integrating backend sends to the
// intelligence service for one Envelope.
type RequestDescriptor struct {
	Method string      `json:"method" yaml:"method"`
	URL    string      `json:"url" yaml:"url"`
	Header http.Header `json:"headers" yaml:"headers"`
	Body   string      `json:"body" yaml:"body"`
}
