package llm

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/extractly-io/extractly/internal/schema"
)

// SanitizeOptionalValues removes or normalizes optional entries that don't
// meet the stricter schema, so the overall document can still validate. We
// only touch OPTIONAL fields and properties; a broken required value keeps
// failing strict validation and surfaces as an extraction error.
func SanitizeOptionalValues(doc []byte, def *schema.Definition) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	if fields, ok := m["fields"].(map[string]any); ok {
		for name, raw := range fields {
			f, known := def.FieldByName(name)
			if !known {
				delete(fields, name)
				dropped = append(dropped, name)
				continue
			}
			if f.Required {
				continue
			}
			if !normalizeEntry(raw, f) {
				delete(fields, name)
				dropped = append(dropped, name)
			}
		}
	}

	if collections, ok := m["collections"].(map[string]any); ok {
		for cname, raw := range collections {
			c, known := def.CollectionByName(cname)
			if !known {
				delete(collections, cname)
				dropped = append(dropped, cname)
				continue
			}
			items, ok := raw.([]any)
			if !ok {
				delete(collections, cname)
				dropped = append(dropped, cname)
				continue
			}
			for _, item := range items {
				entry, ok := item.(map[string]any)
				if !ok {
					continue
				}
				for pname, praw := range entry {
					p, known := propByName(c, pname)
					if !known {
						delete(entry, pname)
						dropped = append(dropped, cname+"."+pname)
						continue
					}
					if p.Required {
						continue
					}
					if !normalizeEntry(praw, p) {
						delete(entry, pname)
						dropped = append(dropped, cname+"."+pname)
					}
				}
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}

func propByName(c schema.CollectionDef, name string) (schema.FieldDef, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return schema.FieldDef{}, false
}

// normalizeEntry fixes up one {"value": ...} wrapper in place. It reports
// false when the entry is beyond repair and should be dropped.
func normalizeEntry(raw any, f schema.FieldDef) bool {
	entry, ok := raw.(map[string]any)
	if !ok {
		return false
	}

	// confidence sometimes comes back as a float
	if c, ok := entry["confidence"].(float64); ok {
		entry["confidence"] = int(c)
	}

	v, present := entry["value"]
	if !present || v == nil {
		return false
	}

	switch f.Type {
	case "NUMBER":
		switch t := v.(type) {
		case float64:
			entry["value"] = strconv.FormatFloat(t, 'f', -1, 64)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				return false
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return false
			}
			entry["value"] = s
		default:
			return false
		}
	case "BOOLEAN":
		switch t := v.(type) {
		case bool:
			// fine as is
		case string:
			b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(t)))
			if err != nil {
				return false
			}
			entry["value"] = b
		default:
			return false
		}
	default:
		s, ok := v.(string)
		if !ok {
			return false
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "null") {
			return false
		}
		entry["value"] = s
	}
	return true
}
