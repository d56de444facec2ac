package collection

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/pretty"
)

var bodyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  "}

func marshalBody(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(pretty.PrettyOptions(raw, bodyOptions)), "\n"), nil
}
