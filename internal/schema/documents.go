package schema

// documents holds the JSON Schema text for every recognized event shape,
// keyed by the name a provider adapter passes to Validator.Valid. Strict
// schemas enumerate every event-type string the adapter recognizes, so an
// unrecognized event type fails validation here rather than needing a
// default case in every adapter switch. Lenient schemas validate only that
// the payload is a keyed record (or, where noted, has one required
// discriminant), leaving every other field optional passthrough.
var documents = map[string]string{
	// Anthropic Messages API streaming events: message_start,
	// content_block_start, content_block_delta, content_block_stop,
	// message_delta, message_stop, ping. All are tagged by "type"; unknown
	// types are rejected here, pings pass validation but the adapter
	// ignores them explicitly (they carry no usable payload).
	"anthropic.event": `{
		"type": "object",
		"required": ["type"],
		"properties": {
			"type": {
				"type": "string",
				"enum": [
					"message_start", "content_block_start", "content_block_delta",
					"content_block_stop", "message_delta", "message_stop", "ping"
				]
			}
		}
	}`,

	// OpenAI (and xAI, which extends it) chat-completion streaming chunks
	// have no event-type discriminant — shape is validated structurally.
	"openai.chunk": `{
		"type": "object",
		"properties": {
			"choices": {"type": "array"},
			"usage": {"type": "object"}
		}
	}`,

	// Claude Code stream-json events.
	"claude_code.stream": `{
		"type": "object",
		"required": ["type"],
		"properties": {
			"type": {
				"type": "string",
				"enum": ["assistant", "tool_use", "tool_result", "result", "system"]
			}
		}
	}`,

	// Claude Code hook events, distinguished by the presence of
	// hook_event_name rather than a "type" field.
	"claude_code.hook": `{
		"type": "object",
		"required": ["hook_event_name"],
		"properties": {
			"hook_event_name": {
				"type": "string",
				"enum": ["SessionStart", "SessionEnd", "PostToolUse", "Stop", "UserPromptSubmit"]
			}
		}
	}`,

	// Codex thread/turn/item events.
	"codex.event": `{
		"type": "object",
		"required": ["type"],
		"properties": {
			"type": {
				"type": "string",
				"enum": ["thread.started", "turn.started", "item.started", "item.completed", "turn.completed"]
			}
		}
	}`,

	// Cline's "say" events — lenient beyond the say discriminant, since
	// Cline has added fields to individual say subtypes over time.
	"cline.say": `{
		"type": "object",
		"required": ["type", "say"],
		"properties": {
			"type": {"type": "string", "enum": ["say"]},
			"say": {"type": "string"}
		}
	}`,

	// Cline embeds a JSON object as a string in api_req_started/finished
	// events; that embedded document is lenient passthrough.
	"cline.embedded": `{"type": "object"}`,

	// Gemini normalized event stream.
	"gemini.event": `{
		"type": "object",
		"required": ["type"],
		"properties": {
			"type": {
				"type": "string",
				"enum": ["init", "message", "tool_use", "tool_result", "result"]
			}
		}
	}`,

	// OpenCode normalized event stream.
	"opencode.event": `{
		"type": "object",
		"required": ["type"],
		"properties": {
			"type": {
				"type": "string",
				"enum": ["text", "tool_use", "step_start", "step_finish"]
			}
		}
	}`,

	// Generic keyed-record check, for payloads with no dialect-specific
	// discriminant worth enumerating.
	"lenient.record": `{"type": "object"}`,
}
