package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// ClineAdapter normalizes Cline's "say"-tagged event stream. Every event
// carries type=="say"; the say value selects the handling below.
type ClineAdapter struct{}

type clineSayEvent struct {
	Type string `json:"type"`
	Say  string `json:"say"`
	Text string `json:"text"`
}

// clineAPIReq is the JSON object Cline embeds as a string in the text
// field of api_req_started / api_req_finished events.
type clineAPIReq struct {
	TokensIn      int     `json:"tokensIn"`
	TokensOut     int     `json:"tokensOut"`
	CacheReads    int     `json:"cacheReads"`
	CacheWrites   int     `json:"cacheWrites"`
	Cost          float64 `json:"cost"`
}

type clineToolUse struct {
	Tool  string          `json:"tool"`
	Path  string          `json:"path,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

// Parse implements Adapter.
func (ClineAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("cline.say", payload) {
		return nil
	}

	var evt clineSayEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	switch evt.Say {
	case "api_req_started", "api_req_finished":
		return parseClineAPIReq(evt.Text)
	case "text":
		if evt.Text == "" {
			return nil
		}
		return &delta.StreamDelta{Kind: delta.KindContent, Content: evt.Text}
	case "tool":
		return parseClineTool(evt.Text)
	default:
		return nil
	}
}

func parseClineAPIReq(text string) *delta.StreamDelta {
	if !schema.Default().Valid("cline.embedded", []byte(text)) {
		return nil
	}

	var req clineAPIReq
	if err := json.Unmarshal([]byte(text), &req); err != nil {
		return nil
	}

	usage := delta.Usage{
		Input:      req.TokensIn,
		Output:     req.TokensOut,
		CacheRead:  req.CacheReads,
		CacheWrite: req.CacheWrites,
	}
	// Spec: suppress only when both input and output counters are zero —
	// cache counters alone still carry cost information worth propagating.
	if req.TokensIn == 0 && req.TokensOut == 0 {
		return nil
	}

	return &delta.StreamDelta{
		Kind:  delta.KindUsage,
		Usage: &usage,
		Cost:  req.Cost,
	}
}

func parseClineTool(text string) *delta.StreamDelta {
	if !schema.Default().Valid("cline.embedded", []byte(text)) {
		return nil
	}

	var tool clineToolUse
	if err := json.Unmarshal([]byte(text), &tool); err != nil {
		return nil
	}
	if tool.Tool == "" {
		return nil
	}

	return &delta.StreamDelta{
		Kind: delta.KindToolCall,
		ToolCall: &delta.ToolCall{
			Name: tool.Tool,
			Args: string(tool.Input),
		},
	}
}
