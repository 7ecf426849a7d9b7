package providers

import "testing"

func TestClineAdapter_Text(t *testing.T) {
	payload := []byte(`{"type":"say","say":"text","text":"Hello from Cline"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d == nil || d.Kind != "content" || d.Content != "Hello from Cline" {
		t.Fatalf("got %+v", d)
	}
}

func TestClineAdapter_EmptyTextYieldsNil(t *testing.T) {
	payload := []byte(`{"type":"say","say":"text","text":""}`)
	d := (ClineAdapter{}).Parse(payload)
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}

func TestClineAdapter_APIReqStartedWithNonZeroTokens(t *testing.T) {
	payload := []byte(`{"type":"say","say":"api_req_started","text":"{\"tokensIn\":100,\"tokensOut\":20,\"cacheReads\":5,\"cacheWrites\":0,\"cost\":0.01}"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d == nil || d.Kind != "usage" {
		t.Fatalf("got %+v", d)
	}
	if d.Usage.Input != 100 || d.Usage.Output != 20 || d.Usage.CacheRead != 5 || d.Cost != 0.01 {
		t.Fatalf("got %+v cost=%v", d.Usage, d.Cost)
	}
}

func TestClineAdapter_APIReqFinishedWithZeroTokensSuppressed(t *testing.T) {
	payload := []byte(`{"type":"say","say":"api_req_finished","text":"{\"tokensIn\":0,\"tokensOut\":0,\"cacheReads\":0,\"cacheWrites\":0,\"cost\":0}"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d != nil {
		t.Fatalf("expected nil for zero-token usage, got %+v", d)
	}
}

func TestClineAdapter_ToolSubtype(t *testing.T) {
	payload := []byte(`{"type":"say","say":"tool","text":"{\"tool\":\"readFile\",\"path\":\"a.go\"}"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d == nil || d.Kind != "tool_call" || d.ToolCall.Name != "readFile" {
		t.Fatalf("got %+v", d)
	}
}

func TestClineAdapter_EmbeddedJSONParseFailureYieldsNil(t *testing.T) {
	payload := []byte(`{"type":"say","say":"api_req_started","text":"not json"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d != nil {
		t.Fatalf("expected nil on embedded JSON parse failure, got %+v", d)
	}
}

func TestClineAdapter_OtherSubtypeYieldsNil(t *testing.T) {
	payload := []byte(`{"type":"say","say":"reasoning","text":"hmm"}`)
	d := (ClineAdapter{}).Parse(payload)
	if d != nil {
		t.Fatalf("expected nil, got %+v", d)
	}
}
