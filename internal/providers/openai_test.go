package providers

import "testing"

func TestOpenAIAdapter_ContentDelta(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"content":"Hello"}}]}`)
	d := (OpenAIAdapter{}).Parse(payload)
	if d == nil || d.Kind != "content" || d.Content != "Hello" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenAIAdapter_UsageTakesPrecedence(t *testing.T) {
	payload := []byte(`{"choices":[],"usage":{"prompt_tokens":10,"completion_tokens":5}}`)
	d := (OpenAIAdapter{}).Parse(payload)
	if d == nil || d.Usage == nil || d.Usage.Input != 10 || d.Usage.Output != 5 {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenAIAdapter_EmptyChoicesNoUsage(t *testing.T) {
	d := (OpenAIAdapter{}).Parse([]byte(`{"choices":[]}`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}

func TestOpenAIAdapter_NullContentYieldsNil(t *testing.T) {
	d := (OpenAIAdapter{}).Parse([]byte(`{"choices":[{"delta":{"content":null}}]}`))
	if d != nil {
		t.Fatalf("expected nil for null content, got %+v", d)
	}
}

func TestOpenAIAdapter_ToolCallFirstOnly(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"tool_calls":[
		{"index":0,"id":"call_1","function":{"name":"lookup","arguments":"{\"q\":1}"}},
		{"index":1,"id":"call_2","function":{"name":"other","arguments":"{}"}}
	]}}]}`)
	d := (OpenAIAdapter{}).Parse(payload)
	if d == nil || d.ToolCall == nil {
		t.Fatalf("got %+v", d)
	}
	if d.ToolCall.ID != "call_1" || d.ToolCall.Index != 0 {
		t.Fatalf("expected first tool call only, got %+v", d.ToolCall)
	}
}

func TestOpenAIAdapter_FinishReason(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{},"finish_reason":"stop"}]}`)
	d := (OpenAIAdapter{}).Parse(payload)
	if d == nil || d.Kind != "stop" || d.StopReason != "stop" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenAIAdapter_RoleOnly(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"role":"assistant"}}]}`)
	d := (OpenAIAdapter{}).Parse(payload)
	if d == nil || d.Role != "assistant" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenAIAdapter_NonObjectPayload(t *testing.T) {
	d := (OpenAIAdapter{}).Parse([]byte(`[1,2,3]`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}
