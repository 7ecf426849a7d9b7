package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// OpenCodeAdapter normalizes OpenCode's text/tool_use/step_start/
// step_finish event stream.
type OpenCodeAdapter struct{}

type opencodeEvent struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Name    string          `json:"name"`
	ID      string          `json:"id"`
	Input   json.RawMessage `json:"input"`
	Session string          `json:"session"`
	Message string          `json:"message"`
	Part    string          `json:"part"`
	Usage   *struct {
		Input  int `json:"input"`
		Output int `json:"output"`
	} `json:"usage"`
	Cost        float64 `json:"cost"`
	GitSnapshot string  `json:"git_snapshot"`
	StopReason  string  `json:"stop_reason"`
}

// Parse implements Adapter.
func (OpenCodeAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("opencode.event", payload) {
		return nil
	}

	var evt opencodeEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}

	switch evt.Type {
	case "text":
		if evt.Text == "" {
			return nil
		}
		d.Kind = delta.KindContent
		d.Content = evt.Text

	case "tool_use":
		d.Kind = delta.KindToolCall
		d.ToolCall = &delta.ToolCall{
			ID:   evt.ID,
			Name: evt.Name,
			Args: string(evt.Input),
		}

	case "step_start":
		return nil

	case "step_finish":
		if evt.Usage != nil {
			usage := delta.Usage{Input: evt.Usage.Input, Output: evt.Usage.Output}
			if !usage.IsZero() {
				d.Kind = delta.KindUsage
				d.Usage = &usage
			}
		}
		d.Cost = evt.Cost
		d.GitSnapshot = evt.GitSnapshot
		d.StopReason = evt.StopReason
	}

	if evt.Session != "" || evt.Message != "" || evt.Part != "" {
		d.Session = &delta.Session{
			ID:        evt.Session,
			MessageID: evt.Message,
			PartID:    evt.Part,
		}
	}

	return delta.OrNil(d)
}
