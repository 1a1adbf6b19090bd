// Package validation holds the pure content-validation helpers: required
// field checks and the highlights storage codec. Nothing here touches the
// database or the request context.
package validation

import "strings"

// MissingFields returns the required fields that are absent or empty in the
// payload. The result preserves the order of required, so error messages are
// stable regardless of payload iteration order.
func MissingFields(payload map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		value, ok := payload[field]
		if !ok || isEmpty(value) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case []string:
		return len(v) == 0
	case Highlights:
		return len(v) == 0
	case int:
		return v == 0
	default:
		return false
	}
}
