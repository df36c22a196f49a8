package cms

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// The CMS answers in one of two shapes per record: a flat object, or a
// nested envelope {"id": N, "attributes": {...}}. Everything below collapses
// both into one flat map so the ambiguity never leaks past this package.

// flattenEntry detects the shape of a single record and returns flat fields.
// The id always comes from the outer envelope; a duplicate id inside
// attributes may be stale and is overwritten.
func flattenEntry(raw json.RawMessage) (map[string]interface{}, error) {
	var outer map[string]interface{}
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	attrs, ok := outer["attributes"].(map[string]interface{})
	if !ok {
		return outer, nil
	}

	flat := make(map[string]interface{}, len(attrs)+1)
	for k, v := range attrs {
		flat[k] = v
	}
	flat["id"] = outer["id"]
	return flat, nil
}

// decodeList flattens every item of a collection response.
func decodeList(data json.RawMessage) ([]map[string]interface{}, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		flat, err := flattenEntry(item)
		if err != nil {
			return nil, err
		}
		out = append(out, flat)
	}
	return out, nil
}

// decodeSingle flattens a single-record response. Returns nil when the
// CMS reports no record (data: null).
func decodeSingle(data json.RawMessage) (map[string]interface{}, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	return flattenEntry(data)
}

// field accessors over the flattened map

func strField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intField(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	}
	return 0
}

func strSliceField(m map[string]interface{}, key string) []string {
	items, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]interface{}:
			// Repeatable components carry their text under a single field.
			for _, candidate := range []string{"text", "name", "value", "feature"} {
				if s, ok := v[candidate].(string); ok && s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}

func timeField(m map[string]interface{}, key string) time.Time {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// ResolveMediaURL makes a media URL absolute against the CMS base exactly
// once. Absolute URLs (anything with a scheme) pass through unchanged, so
// the operation is idempotent. Empty input stays empty.
func (c *Client) ResolveMediaURL(u string) string {
	if u == "" {
		return ""
	}
	if parsed, err := url.Parse(u); err == nil && parsed.Scheme != "" {
		return u
	}
	return c.baseURL + "/" + strings.TrimLeft(u, "/")
}

// mediaField extracts a media URL from whatever shape the CMS used: a plain
// string, a media object with "url", a nested data/attributes envelope, or a
// list of any of those (first item wins). Absent media yields "".
func (c *Client) mediaField(m map[string]interface{}, key string) string {
	return c.resolveMediaValue(m[key])
}

func (c *Client) resolveMediaValue(v interface{}) string {
	switch media := v.(type) {
	case string:
		return c.ResolveMediaURL(media)
	case []interface{}:
		if len(media) == 0 {
			return ""
		}
		return c.resolveMediaValue(media[0])
	case map[string]interface{}:
		if u, ok := media["url"].(string); ok {
			return c.ResolveMediaURL(u)
		}
		if data, ok := media["data"]; ok {
			if inner, ok := data.(map[string]interface{}); ok {
				if attrs, ok := inner["attributes"].(map[string]interface{}); ok {
					if u, ok := attrs["url"].(string); ok {
						return c.ResolveMediaURL(u)
					}
				}
				return c.resolveMediaValue(inner)
			}
			if list, ok := data.([]interface{}); ok {
				return c.resolveMediaValue(list)
			}
		}
	}
	return ""
}
