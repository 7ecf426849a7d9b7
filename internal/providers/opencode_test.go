package providers

import "testing"

func TestOpenCodeAdapter_Text(t *testing.T) {
	payload := []byte(`{"type":"text","text":"hello","session":"s1","message":"m1","part":"p1"}`)
	d := (OpenCodeAdapter{}).Parse(payload)
	if d == nil || d.Content != "hello" {
		t.Fatalf("got %+v", d)
	}
	if d.Session == nil || d.Session.ID != "s1" || d.Session.MessageID != "m1" || d.Session.PartID != "p1" {
		t.Fatalf("got session %+v", d.Session)
	}
}

func TestOpenCodeAdapter_ToolUse(t *testing.T) {
	payload := []byte(`{"type":"tool_use","id":"t1","name":"bash","input":{"command":"ls"}}`)
	d := (OpenCodeAdapter{}).Parse(payload)
	if d == nil || d.ToolCall == nil || d.ToolCall.Name != "bash" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenCodeAdapter_StepStartIgnored(t *testing.T) {
	d := (OpenCodeAdapter{}).Parse([]byte(`{"type":"step_start"}`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}

func TestOpenCodeAdapter_StepFinishWithUsage(t *testing.T) {
	payload := []byte(`{"type":"step_finish","usage":{"input":50,"output":10},"cost":0.03,"git_snapshot":"abc123","stop_reason":"end_turn"}`)
	d := (OpenCodeAdapter{}).Parse(payload)
	if d == nil || d.Usage == nil || d.Usage.Input != 50 || d.Usage.Output != 10 {
		t.Fatalf("got %+v", d)
	}
	if d.Cost != 0.03 || d.GitSnapshot != "abc123" || d.StopReason != "end_turn" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenCodeAdapter_StepFinishZeroTokensSuppressesUsageButKeepsRest(t *testing.T) {
	payload := []byte(`{"type":"step_finish","usage":{"input":0,"output":0},"stop_reason":"end_turn"}`)
	d := (OpenCodeAdapter{}).Parse(payload)
	if d == nil {
		t.Fatal("expected a delta (stop_reason still populated)")
	}
	if d.Usage != nil {
		t.Fatalf("expected usage suppressed, got %+v", d.Usage)
	}
	if d.StopReason != "end_turn" {
		t.Fatalf("got %+v", d)
	}
}

func TestOpenCodeAdapter_UnknownEventType(t *testing.T) {
	d := (OpenCodeAdapter{}).Parse([]byte(`{"type":"mystery"}`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}
