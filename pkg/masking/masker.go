package masking

// Masker applies the scrub patterns to strings and nested payloads.
// The zero value is not usable; construct with New.
type Masker struct {
	patterns []*CompiledPattern
}

// New returns a masker over the built-in pattern set.
func New() *Masker {
	return &Masker{patterns: builtinPatterns}
}

// String scrubs one string.
func (m *Masker) String(s string) string {
	for _, p := range m.patterns {
		s = p.Regex.ReplaceAllString(s, p.Replacement)
	}
	return s
}

// Map returns a scrubbed copy of a JSON-shaped payload. String leaves are
// masked; maps and slices are walked; everything else passes through. The
// input is never mutated.
func (m *Masker) Map(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = m.value(v)
	}
	return out
}

func (m *Masker) value(v any) any {
	switch val := v.(type) {
	case string:
		return m.String(val)
	case map[string]any:
		return m.Map(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = m.value(e)
		}
		return out
	default:
		return v
	}
}
