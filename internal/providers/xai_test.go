package providers

import "testing"

func TestXAIAdapter_ReasoningOnly(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"reasoning_content":"Thinking..."}}]}`)
	d := (XAIAdapter{}).Parse(payload)
	if d == nil {
		t.Fatal("expected a delta")
	}
	if d.Kind != "thought" || d.Thought != "Thinking..." {
		t.Fatalf("got %+v", d)
	}
}

func TestXAIAdapter_ReasoningAlongsideContent(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"content":"visible","reasoning_content":"hidden"}}]}`)
	d := (XAIAdapter{}).Parse(payload)
	if d == nil {
		t.Fatal("expected a delta")
	}
	if d.Kind != "thought" || d.Thought != "hidden" {
		t.Fatalf("expected reasoning to win the kind/field, got %+v", d)
	}
}

func TestXAIAdapter_NoReasoningPropagatesOpenAIResult(t *testing.T) {
	payload := []byte(`{"choices":[{"delta":{"content":"plain text"}}]}`)
	d := (XAIAdapter{}).Parse(payload)
	if d == nil || d.Kind != "content" || d.Content != "plain text" {
		t.Fatalf("got %+v", d)
	}
}

func TestXAIAdapter_NeitherReasoningNorContentYieldsNil(t *testing.T) {
	d := (XAIAdapter{}).Parse([]byte(`{"choices":[{"delta":{}}]}`))
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}

func TestXAIAdapter_UsageStillHonored(t *testing.T) {
	payload := []byte(`{"choices":[],"usage":{"prompt_tokens":7,"completion_tokens":2}}`)
	d := (XAIAdapter{}).Parse(payload)
	if d == nil || d.Usage == nil || d.Usage.Input != 7 || d.Usage.Output != 2 {
		t.Fatalf("got %+v", d)
	}
}
