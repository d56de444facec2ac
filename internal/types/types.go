package types

import (
	"net/url"
	"slices"
	"strings"
)

// Methods lists the HTTP methods the address bar cycles through
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// NextMethod returns the method after m in Methods, wrapping around.
// Unknown methods restart at GET.
func NextMethod(m string) string {
	i := slices.Index(Methods, strings.ToUpper(m))
	return Methods[(i+1)%len(Methods)]
}

// Pair is an ordered key/value entry, used for headers and query params
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Request represents an HTTP request definition from a collection file
type Request struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Method  string `json:"method" yaml:"method"`
	URL     string `json:"url" yaml:"url"`
	Headers []Pair `json:"headers,omitempty" yaml:"headers,omitempty"`
	Params  []Pair `json:"params,omitempty" yaml:"params,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Title returns the name, or "METHOD url" for unnamed requests
func (r *Request) Title() string {
	if r.Name != "" {
		return r.Name
	}
	return strings.TrimSpace(r.Method + " " + r.URL)
}

// Clone returns a deep copy
func (r *Request) Clone() *Request {
	c := *r
	c.Headers = slices.Clone(r.Headers)
	c.Params = slices.Clone(r.Params)
	return &c
}

// FullURL returns URL with Params appended to its query string
func (r *Request) FullURL() (string, error) {
	if len(r.Params) == 0 {
		return r.URL, nil
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for _, p := range r.Params {
		q.Add(p.Key, p.Value)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Response contains the HTTP response data
type Response struct {
	Status       int    `json:"status"`
	StatusText   string `json:"statusText"`
	Headers      []Pair `json:"headers"`
	Body         string `json:"body"`
	ContentType  string `json:"contentType,omitempty"`
	Duration     int64  `json:"duration"`     // milliseconds
	RequestSize  int    `json:"requestSize"`  // bytes
	ResponseSize int    `json:"responseSize"` // bytes
	Error        string `json:"error,omitempty"`
}

// IsJSON reports whether the response declares a JSON content type
func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "json")
}
