package hubgrab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// queryValues flattens a struct-tagged query object into URL query
// parameters. Fields left unset (nil pointers with omitempty tags) are
// absent from the result entirely, never sent as empty values. String
// slices are joined with commas and numbers keep their literal form.
func queryValues(query any) (url.Values, error) {
	raw, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so the same tags drive both the query
	// string and body encodings. UseNumber keeps numerics verbatim.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	fields := make(map[string]any)
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}

	values := url.Values{}
	for name, value := range fields {
		if value == nil {
			continue
		}
		encoded, err := queryString(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		values.Set(name, encoded)
	}
	return values, nil
}

func queryString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			part, err := queryString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported query value of type %T", value)
	}
}
