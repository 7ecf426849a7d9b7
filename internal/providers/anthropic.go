package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// AnthropicAdapter normalizes Anthropic Messages API streaming events.
type AnthropicAdapter struct{}

type anthropicEvent struct {
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Message struct {
		Usage struct {
			InputTokens int `json:"input_tokens"`
		} `json:"usage"`
	} `json:"message"`
	ContentBlock struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"content_block"`
	Delta struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
		StopReason  string `json:"stop_reason"`
	} `json:"delta"`
	Usage struct {
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Parse implements Adapter.
func (AnthropicAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("anthropic.event", payload) {
		return nil
	}

	var evt anthropicEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil
	}

	d := &delta.StreamDelta{}

	switch evt.Type {
	case "message_start":
		if evt.Message.Usage.InputTokens > 0 {
			d.Kind = delta.KindUsage
			d.Usage = &delta.Usage{Input: evt.Message.Usage.InputTokens}
		}

	case "content_block_start":
		if evt.ContentBlock.Type == "tool_use" {
			d.Kind = delta.KindToolCall
			d.ToolCall = &delta.ToolCall{
				Index: evt.Index,
				ID:    evt.ContentBlock.ID,
				Name:  evt.ContentBlock.Name,
				Args:  "",
			}
		}

	case "content_block_delta":
		switch evt.Delta.Type {
		case "text_delta":
			if evt.Delta.Text != "" {
				d.Kind = delta.KindContent
				d.Role = "assistant"
				d.Content = evt.Delta.Text
			}
		case "input_json_delta":
			d.Kind = delta.KindToolCall
			d.ToolCall = &delta.ToolCall{
				Index: evt.Index,
				Args:  evt.Delta.PartialJSON,
			}
		}

	case "message_delta":
		if evt.Usage.OutputTokens > 0 {
			d.Kind = delta.KindUsage
			d.Usage = &delta.Usage{Output: evt.Usage.OutputTokens}
		}
		if evt.Delta.StopReason != "" {
			if d.Usage == nil {
				d.Kind = delta.KindStop
			}
			d.StopReason = evt.Delta.StopReason
		}

	case "content_block_stop", "message_stop", "ping":
		return nil
	}

	return delta.OrNil(d)
}
