package providers

import (
	"encoding/json"
	"strings"
)

// Protocol is the wire-format classification ProtocolSniffer produces.
type Protocol string

const (
	ProtocolOpenAI    Protocol = "openai"
	ProtocolAnthropic Protocol = "anthropic"
	ProtocolUnknown   Protocol = "unknown"
)

// Headers is a case-insensitive key to first-value map, mirroring how a
// transport layer typically exposes request/response headers to the core.
type Headers map[string][]string

// Get returns the first value for key, matched case-insensitively, or ""
// if absent.
func (h Headers) Get(key string) string {
	lower := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lower && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// Sniff classifies a decoded chunk (plus its transport headers) as
// openai, anthropic, or unknown. It is advisory only — the caller may
// still force a specific adapter via ParserRegistry regardless of the
// result.
func Sniff(headers Headers, payload []byte) Protocol {
	if headers.Get("anthropic-version") != "" {
		return ProtocolAnthropic
	}

	var probe struct {
		Type   string `json:"type"`
		Object string `json:"object"`
	}
	if json.Unmarshal(payload, &probe) == nil {
		switch probe.Type {
		case "message_start", "content_block_delta":
			return ProtocolAnthropic
		}
		if probe.Object == "chat.completion.chunk" {
			return ProtocolOpenAI
		}
	}

	return ProtocolUnknown
}
