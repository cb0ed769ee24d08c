// Package masking scrubs credential-shaped strings out of agent-authored
// payloads before they land in shared storage. Mail payloads and verifier
// evidence are readable by every agent, so secrets an agent pastes into
// them must not survive the write.
package masking

import "regexp"

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns is the default scrub set. Order matters: the structural
// patterns (certificates, keys) run before the generic key=value sweeps.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "certificate",
		Regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`),
		Replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		Name:        "ssh_key",
		Regex:       regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
		Replacement: `__MASKED_SSH_KEY__`,
	},
	{
		Name:        "api_key",
		Regex:       regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`),
		Replacement: `"api_key": "__MASKED_API_KEY__"`,
	},
	{
		Name:        "token",
		Regex:       regexp.MustCompile(`(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-.]{20,})["']?`),
		Replacement: `"token": "__MASKED_TOKEN__"`,
	},
	{
		Name:        "password",
		Regex:       regexp.MustCompile(`(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`),
		Replacement: `"password": "__MASKED_PASSWORD__"`,
	},
}
