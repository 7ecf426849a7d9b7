package providers

import (
	"encoding/json"
	"strings"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// ClaudeCodeAdapter normalizes two payload families emitted by Claude
// Code: stream-json events (assistant | tool_use | tool_result | result |
// system) and hook events, distinguished by the presence of
// hook_event_name rather than a "type" field.
type ClaudeCodeAdapter struct{}

type claudeCodeStreamEvent struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Model   string `json:"model"`
	Content []struct {
		Type  string `json:"type"`
		Text  string `json:"text"`
		ID    string `json:"id"`
		Name  string `json:"name"`
		Input json.RawMessage `json:"input"`
	} `json:"content"`
	ToolUseID string `json:"tool_use_id"`
	Name      string `json:"name"`
	Input     json.RawMessage `json:"input"`
	StopReason string `json:"stop_reason"`
	Usage      *struct {
		InputTokens         int `json:"input_tokens"`
		OutputTokens        int `json:"output_tokens"`
		CacheReadInputTokens  int `json:"cache_read_input_tokens"`
		CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	} `json:"usage"`
	Result        string  `json:"result"`
	TotalCostUSD  float64 `json:"total_cost_usd"`
	DurationMS    int64   `json:"duration_ms"`
	DurationAPIMS int64   `json:"duration_api_ms"`
	SessionID     string  `json:"session_id"`
	Subtype       string  `json:"subtype"`
}

type claudeCodeHookEvent struct {
	HookEventName string `json:"hook_event_name"`
	SessionID     string `json:"session_id"`
	ToolName      string `json:"tool_name"`
	ToolInput     json.RawMessage `json:"tool_input"`
	Message       string `json:"message"`
}

// Parse implements Adapter.
func (ClaudeCodeAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}

	var probe struct {
		HookEventName string `json:"hook_event_name"`
	}
	if err := json.Unmarshal(payload, &probe); err == nil && probe.HookEventName != "" {
		return parseClaudeCodeHook(payload)
	}

	return parseClaudeCodeStream(payload)
}

func parseClaudeCodeStream(payload []byte) *delta.StreamDelta {
	if !schema.Default().Valid("claude_code.stream", payload) {
		return nil
	}

	var evt claudeCodeStreamEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}

	switch evt.Type {
	case "assistant":
		var texts []string
		for _, block := range evt.Content {
			if block.Type == "text" && block.Text != "" {
				texts = append(texts, block.Text)
			}
		}
		if len(texts) > 0 {
			d.Content = strings.Join(texts, "")
		}
		for _, block := range evt.Content {
			if block.Type == "tool_use" {
				d.ToolCall = &delta.ToolCall{
					ID:   block.ID,
					Name: block.Name,
					Args: string(block.Input),
				}
				break
			}
		}
		if evt.Usage != nil {
			d.Usage = &delta.Usage{
				Input:      evt.Usage.InputTokens,
				Output:     evt.Usage.OutputTokens,
				CacheRead:  evt.Usage.CacheReadInputTokens,
				CacheWrite: evt.Usage.CacheCreationInputTokens,
			}
		}
		d.Model = evt.Model
		d.StopReason = evt.StopReason
		d.Role = evt.Role
		if d.Content != "" {
			d.Kind = delta.KindContent
			if d.Role == "" {
				d.Role = "assistant"
			}
		} else if d.ToolCall != nil {
			d.Kind = delta.KindToolCall
		}

	case "tool_use":
		if evt.Name != "" || evt.ToolUseID != "" {
			d.Kind = delta.KindToolCall
			d.ToolCall = &delta.ToolCall{
				ID:   evt.ToolUseID,
				Name: evt.Name,
				Args: string(evt.Input),
			}
		}

	case "tool_result":
		var texts []string
		for _, block := range evt.Content {
			if block.Text != "" {
				texts = append(texts, block.Text)
			}
		}
		content := strings.Join(texts, "")
		if content == "" {
			content = evt.Result
		}
		if content != "" {
			d.Kind = delta.KindContent
			d.Content = "[Tool Result: " + evt.ToolUseID + "]\n" + content
		}

	case "result":
		if evt.Usage != nil {
			d.Usage = &delta.Usage{
				Input:      evt.Usage.InputTokens,
				Output:     evt.Usage.OutputTokens,
				CacheRead:  evt.Usage.CacheReadInputTokens,
				CacheWrite: evt.Usage.CacheCreationInputTokens,
			}
		}
		d.Cost = evt.TotalCostUSD
		duration := evt.DurationMS
		if duration == 0 {
			duration = evt.DurationAPIMS
		}
		if duration != 0 {
			d.Timing = &delta.Timing{Duration: duration}
		}
		if evt.SessionID != "" {
			d.Session = &delta.Session{ID: evt.SessionID}
		}
		if d.Usage != nil {
			d.Kind = delta.KindUsage
		} else if evt.Result != "" {
			d.Kind = delta.KindStop
			d.StopReason = evt.Result
		}

	case "system":
		switch evt.Subtype {
		case "init":
			d.Kind = delta.KindContent
			d.Content = "[Session initialized]"
			d.Model = evt.Model
			if evt.SessionID != "" {
				d.Session = &delta.Session{ID: evt.SessionID}
			}
		case "hook_response":
			if evt.Result != "" {
				d.Kind = delta.KindContent
				d.Content = strings.TrimSpace(evt.Result)
			}
		default:
			return nil
		}
	}

	return delta.OrNil(d)
}

func parseClaudeCodeHook(payload []byte) *delta.StreamDelta {
	if !schema.Default().Valid("claude_code.hook", payload) {
		return nil
	}

	var evt claudeCodeHookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}
	if evt.SessionID != "" {
		d.Session = &delta.Session{ID: evt.SessionID}
	}

	switch evt.HookEventName {
	case "SessionStart":
		d.Kind = delta.KindContent
		d.Content = "[Session started]"
	case "SessionEnd":
		d.Kind = delta.KindStop
		d.StopReason = "session_end"
	case "PostToolUse":
		d.Kind = delta.KindToolCall
		d.ToolCall = &delta.ToolCall{
			Name: evt.ToolName,
			Args: string(evt.ToolInput),
		}
	case "Stop":
		d.Kind = delta.KindStop
		d.StopReason = "stop"
	case "UserPromptSubmit":
		if evt.Message != "" {
			d.Kind = delta.KindContent
			d.Role = "user"
			d.Content = evt.Message
		}
	default:
		return nil
	}

	return delta.OrNil(d)
}
