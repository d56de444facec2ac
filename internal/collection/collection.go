// Package collection loads request collections from YAML or JSON files and
// keeps the in-memory list the request list edits.
package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/reqtui/internal/types"
)

// Collection is an ordered list of requests loaded from one file.
// Changes are kept in memory only.
type Collection struct {
	Path     string
	Requests []*types.Request
}

// New returns an empty in-memory collection.
func New() *Collection {
	return &Collection{}
}

// Load reads and parses a collection file. Methods default to defaultMethod.
func Load(path, defaultMethod string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	requests, err := Parse(data, filepath.Ext(path), defaultMethod)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return &Collection{Path: path, Requests: requests}, nil
}

// Parse decodes a collection document: either a single request or a list
// of requests. JSON documents may carry comments.
func Parse(data []byte, ext, defaultMethod string) ([]*types.Request, error) {
	var requests []*types.Request
	var err error
	if strings.EqualFold(ext, ".json") {
		requests, err = parseJSON(jsonc.ToJSON(data))
	} else {
		requests, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	for _, req := range requests {
		if req.Method == "" {
			req.Method = defaultMethod
		}
		req.Method = strings.ToUpper(req.Method)
	}
	return requests, nil
}

func parseYAML(data []byte) ([]*types.Request, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	var nodes []*yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		nodes = root.Content
	case yaml.MappingNode:
		nodes = []*yaml.Node{root}
	default:
		return nil, fmt.Errorf("line %d: expected a request or a list of requests", root.Line)
	}

	requests := make([]*types.Request, 0, len(nodes))
	for i, n := range nodes {
		req, err := decodeRequest(n)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i+1, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// entry is the on-disk shape of a request. Headers and params may be
// written as a mapping or as a list of {key, value}.
type entry struct {
	Name    string    `yaml:"name"`
	Method  string    `yaml:"method"`
	URL     string    `yaml:"url"`
	Headers yaml.Node `yaml:"headers"`
	Params  yaml.Node `yaml:"params"`
	Body    yaml.Node `yaml:"body"`
}

func decodeRequest(n *yaml.Node) (*types.Request, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	var e entry
	if err := n.Decode(&e); err != nil {
		return nil, err
	}

	headers, err := decodePairs(&e.Headers)
	if err != nil {
		return nil, fmt.Errorf("headers: %w", err)
	}
	params, err := decodePairs(&e.Params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	body, err := decodeBody(&e.Body)
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}

	return &types.Request{
		Name:    e.Name,
		Method:  e.Method,
		URL:     e.URL,
		Headers: headers,
		Params:  params,
		Body:    body,
	}, nil
}

func decodePairs(n *yaml.Node) ([]types.Pair, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		pairs := make([]types.Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			pairs = append(pairs, types.Pair{Key: n.Content[i].Value, Value: n.Content[i+1].Value})
		}
		return pairs, nil
	case yaml.SequenceNode:
		var pairs []types.Pair
		if err := n.Decode(&pairs); err != nil {
			return nil, err
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("line %d: expected a mapping or a list", n.Line)
	}
}

// decodeBody accepts a string body, or any structured value which is
// re-encoded as JSON text.
func decodeBody(n *yaml.Node) (string, error) {
	switch n.Kind {
	case 0:
		return "", nil
	case yaml.ScalarNode:
		return n.Value, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return "", err
		}
		return marshalBody(v)
	}
}

// Len returns the number of requests.
func (c *Collection) Len() int {
	return len(c.Requests)
}

// Get returns request i, or nil when out of range.
func (c *Collection) Get(i int) *types.Request {
	if i < 0 || i >= len(c.Requests) {
		return nil
	}
	return c.Requests[i]
}

// Add appends a new empty request and returns its index.
func (c *Collection) Add(name, method string) int {
	c.Requests = append(c.Requests, &types.Request{Name: name, Method: method})
	return len(c.Requests) - 1
}

// Remove deletes request i. It reports false when i is out of range.
func (c *Collection) Remove(i int) bool {
	if i < 0 || i >= len(c.Requests) {
		return false
	}
	c.Requests = append(c.Requests[:i], c.Requests[i+1:]...)
	return true
}

// Rename sets the name of request i.
func (c *Collection) Rename(i int, name string) bool {
	req := c.Get(i)
	if req == nil {
		return false
	}
	req.Name = name
	return true
}

// Titles returns the display title of every request.
func (c *Collection) Titles() []string {
	titles := make([]string, len(c.Requests))
	for i, r := range c.Requests {
		titles[i] = r.Title()
	}
	return titles
}
