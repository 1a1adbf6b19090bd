package validation

import (
	"encoding/json"
	"strings"
)

// HighlightDelimiter joins experience highlights into the single stored
// column. Highlights containing the delimiter themselves are not supported;
// they would split into extra entries on read.
const HighlightDelimiter = "||"

// JoinHighlights encodes an ordered highlight list into its storage form.
func JoinHighlights(highlights []string) string {
	return strings.Join(highlights, HighlightDelimiter)
}

// SplitHighlights decodes a stored highlights column back into the ordered
// list. An empty column yields an empty list, never a one-element list with
// an empty string.
func SplitHighlights(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Split(stored, HighlightDelimiter)
}

// Highlights is an ordered highlight list that accepts both wire shapes the
// admin clients send: a JSON array of strings, or a single already-joined
// string.
type Highlights []string

// UnmarshalJSON implements json.Unmarshaler.
func (h *Highlights) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*h = SplitHighlights(joined)
	return nil
}
