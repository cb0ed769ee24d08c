package config

import (
	"fmt"
	"strings"
)

// Backend identifies a storage backend implementation.
type Backend string

// Recognized backends.
const (
	BackendDurable Backend = "durable"
	BackendFile    Backend = "file"
	BackendMemory  Backend = "memory"
)

// ParseBackends parses a comma-separated fallback list such as
// "durable,file". Unknown names are an error; an empty input yields the
// default durable-then-file order.
func ParseBackends(s string) ([]Backend, error) {
	if strings.TrimSpace(s) == "" {
		return []Backend{BackendDurable, BackendFile}, nil
	}

	var out []Backend
	for _, part := range strings.Split(s, ",") {
		b := Backend(strings.TrimSpace(strings.ToLower(part)))
		switch b {
		case BackendDurable, BackendFile, BackendMemory:
			out = append(out, b)
		default:
			return nil, fmt.Errorf("unrecognized backend %q (expected durable, file, or memory)", part)
		}
	}
	return out, nil
}
