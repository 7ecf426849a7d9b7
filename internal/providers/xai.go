package providers

import (
	"encoding/json"

	"github.com/lucidgate/streamcore/internal/delta"
	"github.com/lucidgate/streamcore/internal/schema"
)

// XAIAdapter normalizes xAI streaming chunks, which are OpenAI-shaped with
// one extension: choices[0].delta.reasoning_content carries chain-of-
// thought text.
type XAIAdapter struct{}

// xaiReasoningProbe extracts only the reasoning_content extension,
// unmarshaled independently of openaiChunk to avoid a JSON-tag collision
// between two "choices" fields on the same struct.
type xaiReasoningProbe struct {
	Choices []struct {
		Delta struct {
			ReasoningContent string `json:"reasoning_content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Parse implements Adapter.
func (XAIAdapter) Parse(payload []byte) *delta.StreamDelta {
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
	var probe xaiReasoningProbe
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil
	}

	base := parseOpenAIChunk(chunk)

	var reasoning string
	if len(probe.Choices) > 0 {
		reasoning = probe.Choices[0].Delta.ReasoningContent
	}

	if reasoning == "" {
		return base
	}

	if base == nil {
		return delta.OrNil(&delta.StreamDelta{
			Kind:    delta.KindThought,
			Thought: reasoning,
		})
	}

	base.Kind = delta.KindThought
	base.Thought = reasoning
	return base
}
