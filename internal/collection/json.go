package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/studiowebux/reqtui/internal/types"
)

// jsonEntry mirrors entry for JSON documents. Headers, params and body are
// kept raw so object key order survives decoding.
type jsonEntry struct {
	Name    string          `json:"name"`
	Method  string          `json:"method"`
	URL     string          `json:"url"`
	Headers json.RawMessage `json:"headers"`
	Params  json.RawMessage `json:"params"`
	Body    json.RawMessage `json:"body"`
}

func parseJSON(data []byte) ([]*types.Request, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raws []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("failed to parse collection: %w", err)
		}
	case '{':
		raws = []json.RawMessage{data}
	default:
		return nil, errors.New("expected a request or a list of requests")
	}

	requests := make([]*types.Request, 0, len(raws))
	for i, raw := range raws {
		req, err := decodeJSONRequest(raw)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i+1, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func decodeJSONRequest(raw json.RawMessage) (*types.Request, error) {
	var e jsonEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}

	headers, err := decodeJSONPairs(e.Headers)
	if err != nil {
		return nil, fmt.Errorf("headers: %w", err)
	}
	params, err := decodeJSONPairs(e.Params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	body, err := decodeJSONBody(e.Body)
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

// decodeJSONPairs reads an object in document order, or a list of
// {key, value}.
func decodeJSONPairs(raw json.RawMessage) ([]types.Pair, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var pairs []types.Pair
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return nil, err
		}
		return pairs, nil
	case '{':
	default:
		return nil, errors.New("expected an object or a list")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var pairs []types.Pair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case nil:
			pairs = append(pairs, types.Pair{Key: key})
		case map[string]any, []any:
			return nil, fmt.Errorf("%s: expected a scalar value", key)
		default:
			pairs = append(pairs, types.Pair{Key: key, Value: fmt.Sprint(v)})
		}
	}
	return pairs, nil
}

// decodeJSONBody accepts a string body, or any structured value which is
// pretty-printed in its original key order.
func decodeJSONBody(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return strings.TrimSuffix(string(pretty.PrettyOptions(raw, bodyOptions)), "\n"), nil
}
