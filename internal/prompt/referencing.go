package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule text and additional instructions may reference already-validated
// fields with @-references, either @{Field Name} for names with spaces or
// @field_name for simple identifiers. References resolve to the validated
// value at prompt-build time.
var refPattern = regexp.MustCompile(`@\{([^{}@\n]+)\}|@([A-Za-z][A-Za-z0-9_]*)`)

// References returns the referenced field names in order of appearance,
// without duplicates.
func References(template string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range refPattern.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ValidateReferences returns the referenced names that are not known fields.
// An empty result means the template is safe to substitute.
func ValidateReferences(template string, known []string) []string {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}
	var unknown []string
	for _, name := range References(template) {
		if _, ok := set[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Substitute replaces every @-reference with its validated value. References
// with no value yet are replaced with a visible placeholder so the model is
// told the dependency is unresolved rather than being handed a dangling @.
func Substitute(template string, values map[string]string) string {
	return refPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.TrimSpace(strings.Trim(match, "@{}"))
		if v, ok := values[name]; ok && v != "" {
			return v
		}
		return fmt.Sprintf("[unresolved: %s]", name)
	})
}
