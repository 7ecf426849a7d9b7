package providers

import (
	"encoding/json"
	"fmt"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// CodexAdapter normalizes Codex's thread/turn/item event stream.
type CodexAdapter struct{}

type codexEvent struct {
	Type   string `json:"type"`
	Thread struct {
		ID string `json:"id"`
	} `json:"thread"`
	Item struct {
		Type    string `json:"type"`
		Text    string `json:"text"`
		Command string `json:"command"`
		ExitCode int   `json:"exit_code"`
		Output  string `json:"output"`
		Status  string `json:"status"`
	} `json:"item"`
	Usage *struct {
		InputTokens       int `json:"input_tokens"`
		OutputTokens      int `json:"output_tokens"`
		CachedInputTokens int `json:"cached_input_tokens"`
	} `json:"usage"`
}

// Parse implements Adapter.
func (CodexAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("codex.event", payload) {
		return nil
	}

	var evt codexEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}

	switch evt.Type {
	case "thread.started":
		d.Kind = delta.KindContent
		d.Content = "[Thread started]"
		if evt.Thread.ID != "" {
			d.Session = &delta.Session{ThreadID: evt.Thread.ID}
		}

	case "turn.started", "item.started":
		return nil

	case "item.completed":
		switch evt.Item.Type {
		case "agent_message":
			if evt.Item.Text != "" {
				d.Kind = delta.KindContent
				d.Role = "assistant"
				d.Content = evt.Item.Text
			}
		case "reasoning":
			if evt.Item.Text != "" {
				d.Kind = delta.KindThought
				d.Thought = evt.Item.Text
			}
		case "command_execution":
			if evt.Item.Status == "completed" {
				d.Kind = delta.KindContent
				d.Content = fmt.Sprintf("[Command: %s]\nExit: %d\n%s", evt.Item.Command, evt.Item.ExitCode, evt.Item.Output)
			} else {
				d.Kind = delta.KindToolCall
				d.ToolCall = &delta.ToolCall{
					Name: "shell",
					Args: fmt.Sprintf(`{"command":%q}`, evt.Item.Command),
				}
			}
		}

	case "turn.completed":
		if evt.Usage != nil {
			d.Kind = delta.KindUsage
			d.Usage = &delta.Usage{
				Input:     evt.Usage.InputTokens,
				Output:    evt.Usage.OutputTokens,
				CacheRead: evt.Usage.CachedInputTokens,
			}
		}
	}

	return delta.OrNil(d)
}
