package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields_PreservesRequiredOrder(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"email": "you@example.com",
	}
	missing := MissingFields(payload, []string{"name", "title", "summary", "location", "email"})
	assert.Equal(t, []string{"name", "title", "summary", "location"}, missing)
}

func TestMissingFields_AllPresent(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"name":  "Zafar",
		"email": "you@example.com",
	}
	missing := MissingFields(payload, []string{"name", "email"})
	assert.Empty(t, missing)
}

func TestMissingFields_EmptyVariants(t *testing.T) {
	t.Parallel()

	empty := ""
	filled := "ok"

	tests := []struct {
		name    string
		value   any
		missing bool
	}{
		{"nil value", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   ", true},
		{"filled string", "hello", false},
		{"nil string pointer", (*string)(nil), true},
		{"pointer to empty string", &empty, true},
		{"pointer to filled string", &filled, false},
		{"empty slice", []string{}, true},
		{"filled slice", []string{"a"}, false},
		{"empty highlights", Highlights{}, true},
		{"filled highlights", Highlights{"a"}, false},
		{"zero int", 0, true},
		{"nonzero int", 3, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			missing := MissingFields(map[string]any{"field": tt.value}, []string{"field"})
			if tt.missing {
				assert.Equal(t, []string{"field"}, missing)
			} else {
				assert.Empty(t, missing)
			}
		})
	}
}

func TestMissingFields_AbsentKeyCountsAsMissing(t *testing.T) {
	t.Parallel()

	missing := MissingFields(map[string]any{}, []string{"subject"})
	assert.Equal(t, []string{"subject"}, missing)
}
