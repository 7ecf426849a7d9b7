package providers

import "testing"

func TestSniff_AnthropicVersionHeader(t *testing.T) {
	headers := Headers{"Anthropic-Version": {"2023-06-01"}}
	got := Sniff(headers, []byte(`{}`))
	if got != ProtocolAnthropic {
		t.Fatalf("got %q", got)
	}
}

func TestSniff_AnthropicByEventType(t *testing.T) {
	for _, typ := range []string{"message_start", "content_block_delta"} {
		got := Sniff(nil, []byte(`{"type":"`+typ+`"}`))
		if got != ProtocolAnthropic {
			t.Errorf("type %s: got %q", typ, got)
		}
	}
}

func TestSniff_OpenAIByObjectField(t *testing.T) {
	got := Sniff(nil, []byte(`{"object":"chat.completion.chunk"}`))
	if got != ProtocolOpenAI {
		t.Fatalf("got %q", got)
	}
}

func TestSniff_Unknown(t *testing.T) {
	got := Sniff(nil, []byte(`{"type":"something_else"}`))
	if got != ProtocolUnknown {
		t.Fatalf("got %q", got)
	}
}

func TestSniff_UnknownOnMalformedPayload(t *testing.T) {
	got := Sniff(nil, []byte(`not json`))
	if got != ProtocolUnknown {
		t.Fatalf("got %q", got)
	}
}

func TestHeaders_GetIsCaseInsensitive(t *testing.T) {
	h := Headers{"Content-Type": {"application/json"}}
	if h.Get("content-type") != "application/json" {
		t.Fatalf("got %q", h.Get("content-type"))
	}
}

func TestHeaders_GetMissingKey(t *testing.T) {
	h := Headers{}
	if h.Get("missing") != "" {
		t.Fatal("expected empty string for missing key")
	}
}
