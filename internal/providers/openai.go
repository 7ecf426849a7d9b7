package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// OpenAIAdapter normalizes OpenAI-compatible chat-completion streaming
// chunks (SSE "data:" payloads, already decoded).
type OpenAIAdapter struct{}

type openaiChunk struct {
	Choices []struct {
		Delta struct {
			Role      string          `json:"role"`
			Content   json.RawMessage `json:"content"`
			ToolCalls []struct {
				Index    int    `json:"index"`
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Parse implements Adapter.
func (OpenAIAdapter) Parse(payload []byte) *delta.StreamDelta {
	if !schema.IsKeyedRecord(payload) {
		return nil
	}
	if !schema.Default().Valid("openai.chunk", payload) {
		return nil
	}

	var chunk openaiChunk
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return nil
	}

	return parseOpenAIChunk(chunk)
}

// parseOpenAIChunk is shared with XAIAdapter, which first runs the OpenAI
// normalization and then lifts xAI's reasoning_content extension on top.
func parseOpenAIChunk(chunk openaiChunk) *delta.StreamDelta {
	d := &delta.StreamDelta{}

	// Usage takes precedence over any delta content in the same chunk.
	if chunk.Usage != nil {
		d.Kind = delta.KindUsage
		d.Usage = &delta.Usage{
			Input:  chunk.Usage.PromptTokens,
			Output: chunk.Usage.CompletionTokens,
		}
		return delta.OrNil(d)
	}

	if len(chunk.Choices) == 0 {
		return nil
	}
	choice := chunk.Choices[0]

	if choice.Delta.Role != "" {
		d.Role = choice.Delta.Role
	}

	if len(choice.Delta.Content) > 0 && string(choice.Delta.Content) != "null" {
		var text string
		if err := json.Unmarshal(choice.Delta.Content, &text); err == nil && text != "" {
			d.Kind = delta.KindContent
			d.Content = text
			if d.Role == "" {
				d.Role = "assistant"
			}
		}
	}

	if len(choice.Delta.ToolCalls) > 0 {
		tc := choice.Delta.ToolCalls[0]
		d.Kind = delta.KindToolCall
		d.ToolCall = &delta.ToolCall{
			Index: tc.Index,
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Args:  tc.Function.Arguments,
		}
	}

	if d.Content == "" && d.ToolCall == nil && choice.FinishReason != "" {
		d.Kind = delta.KindStop
		d.StopReason = choice.FinishReason
	}

	return delta.OrNil(d)
}
