package service

import (
	"sync"

	"github.com/kimo/alma-take-home-assignment/schema"
)

// FormConfigStore holds the JSON-Schema document that drives the public
// form. Reads and writes both go through a deep copy, so no caller ever
// shares mutable state with the store or with another caller.
type FormConfigStore struct {
	mu      sync.RWMutex
	current map[string]any
}

// NewFormConfigStore creates a store seeded with the built-in default
// schema.
func NewFormConfigStore() *FormConfigStore {
	return &FormConfigStore{current: DefaultFormSchema()}
}

// Get returns an independent copy of the current document.
func (s *FormConfigStore) Get() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopyMap(s.current)
}

// Set replaces the stored document with an independent copy of doc.
// Writes are full replacement; there is no merge.
func (s *FormConfigStore) Set(doc map[string]any) {
	copied := deepCopyMap(doc)
	s.mu.Lock()
	s.current = copied
	s.mu.Unlock()
}

// DefaultFormSchema builds the built-in draft-07 document covering all
// seven applicant fields.
func DefaultFormSchema() map[string]any {
	return map[string]any{
		"$schema":     "http://json-schema.org/draft-07/schema#",
		"title":       "Lead Assessment Form",
		"description": "Immigration case assessment intake form",
		"type":        "object",
		"required": []any{
			"firstName",
			"lastName",
			"email",
			"country",
			"linkedIn",
			"visaInterests",
			"helpMessage",
		},
		"properties": map[string]any{
			"firstName": map[string]any{
				"type":      "string",
				"title":     "First Name",
				"minLength": 1,
			},
			"lastName": map[string]any{
				"type":      "string",
				"title":     "Last Name",
				"minLength": 1,
			},
			"email": map[string]any{
				"type":   "string",
				"title":  "Email",
				"format": "email",
			},
			"country": map[string]any{
				"type":  "string",
				"title": "Country of Citizenship",
				"enum":  toAnySlice(schema.Countries),
			},
			"linkedIn": map[string]any{
				"type":   "string",
				"title":  "LinkedIn / Website URL",
				"format": "uri",
			},
			"visaInterests": map[string]any{
				"type":  "array",
				"title": "Visa Categories of Interest",
				"items": map[string]any{
					"type": "string",
					"enum": toAnySlice(schema.VisaOptions),
				},
				"minItems": 1,
			},
			"helpMessage": map[string]any{
				"type":      "string",
				"title":     "How can we help you?",
				"minLength": 1,
			},
		},
	}
}

// deepCopyMap recursively copies maps, slices, and scalars. Scalars are
// immutable in Go so they are assigned as-is.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
