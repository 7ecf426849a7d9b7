package providers

import "testing"

func TestGeminiAdapter_Init(t *testing.T) {
	payload := []byte(`{"type":"init","model":"gemini-2.5-pro"}`)
	d := (GeminiAdapter{}).Parse(payload)
	if d == nil || d.Model != "gemini-2.5-pro" {
		t.Fatalf("got %+v", d)
	}
}

func TestGeminiAdapter_AssistantMessage(t *testing.T) {
	payload := []byte(`{"type":"message","role":"assistant","text":"Hi there"}`)
	d := (GeminiAdapter{}).Parse(payload)
	if d == nil || d.Content != "Hi there" || d.Role != "assistant" {
		t.Fatalf("got %+v", d)
	}
}

func TestGeminiAdapter_UserMessageSuppressed(t *testing.T) {
	payload := []byte(`{"type":"message","role":"user","text":"What's the weather?"}`)
	d := (GeminiAdapter{}).Parse(payload)
	if d != nil {
		t.Fatalf("expected nil for user-role message, got %+v", d)
	}
}

func TestGeminiAdapter_ToolUse(t *testing.T) {
	payload := []byte(`{"type":"tool_use","id":"t1","name":"search","input":{"q":"go"}}`)
	d := (GeminiAdapter{}).Parse(payload)
	if d == nil || d.ToolCall == nil || d.ToolCall.Name != "search" {
		t.Fatalf("got %+v", d)
	}
}

func TestGeminiAdapter_ResultStats(t *testing.T) {
	payload := []byte(`{"type":"result","result":{"stats":{"total":120,"input":100,"output":20,"timing":{"duration":950}}}}`)
	d := (GeminiAdapter{}).Parse(payload)
	if d == nil || d.Usage == nil {
		t.Fatalf("got %+v", d)
	}
	if d.Usage.Total != 120 || d.Usage.Input != 100 || d.Usage.Output != 20 {
		t.Fatalf("got %+v", d.Usage)
	}
	if d.Timing == nil || d.Timing.Duration != 950 {
		t.Fatalf("got timing %+v", d.Timing)
	}
}

func TestGeminiAdapter_UnknownEventType(t *testing.T) {
	d := (GeminiAdapter{}).Parse([]byte(`{"type":"mystery"}`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}
