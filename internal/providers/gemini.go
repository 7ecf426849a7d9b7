package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// GeminiAdapter normalizes Gemini's normalized event stream.
type GeminiAdapter struct{}

type geminiEvent struct {
	Type  string `json:"type"`
	Role  string `json:"role"`
	Text  string `json:"text"`
	Model string `json:"model"`
	Name  string `json:"name"`
	ID    string `json:"id"`
	Input json.RawMessage `json:"input"`
	Content string `json:"content"`
	Result struct {
		Stats struct {
			Total int `json:"total"`
			Input int `json:"input"`
			Output int `json:"output"`
			Timing struct {
				Duration int64 `json:"duration"`
			} `json:"timing"`
		} `json:"stats"`
	} `json:"result"`
}

// Parse implements Adapter.
func (GeminiAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("gemini.event", payload) {
		return nil
	}

	var evt geminiEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}

	switch evt.Type {
	case "init":
		d.Kind = delta.KindContent
		d.Content = "[Session initialized]"
		d.Model = evt.Model

	case "message":
		if evt.Role == "user" {
			return nil
		}
		if evt.Text != "" {
			d.Kind = delta.KindContent
			d.Role = evt.Role
			if d.Role == "" {
				d.Role = "assistant"
			}
			d.Content = evt.Text
		}

	case "tool_use":
		d.Kind = delta.KindToolCall
		d.ToolCall = &delta.ToolCall{
			ID:   evt.ID,
			Name: evt.Name,
			Args: string(evt.Input),
		}

	case "tool_result":
		if evt.Content != "" {
			d.Kind = delta.KindContent
			d.Content = "[Tool Result: " + evt.ID + "]\n" + evt.Content
		}

	case "result":
		stats := evt.Result.Stats
		d.Kind = delta.KindUsage
		d.Usage = &delta.Usage{
			Input:  stats.Input,
			Output: stats.Output,
			Total:  stats.Total,
		}
		if stats.Timing.Duration != 0 {
			d.Timing = &delta.Timing{Duration: stats.Timing.Duration}
		}
	}

	return delta.OrNil(d)
}
