// Package delta defines StreamDelta, the single normalized incremental
// event type produced by every provider adapter and by the tag extractor's
// enrichment path.
//
// All fields are optional. A populated StreamDelta always has at least one
// non-zero field — adapters and the extractor collapse an all-empty result
// to nil rather than returning a StreamDelta with nothing in it.
package delta

// Kind discriminates the shape of information a StreamDelta carries. It is
// set only when an adapter can classify the event with confidence; zero
// value means "unclassified, inspect the populated fields instead".
type Kind string

const (
	KindContent  Kind = "content"
	KindThought  Kind = "thought"
	KindToolCall Kind = "tool_call"
	KindUsage    Kind = "usage"
	KindStop     Kind = "stop"
)

// ToolCall is a partial tool invocation. Args is an unterminated JSON
// fragment — a lexically valid prefix of a JSON value, never guaranteed to
// be a complete value on its own. Callers reassemble the full argument
// string by concatenating Args fragments carrying the same Index, in the
// order they were emitted.
type ToolCall struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Args  string `json:"args,omitempty"`
}

// Usage is token and cache accounting for one event. Fields missing from
// the upstream payload coerce to zero; all counters are non-negative.
type Usage struct {
	Input      int `json:"input,omitempty"`
	Output     int `json:"output,omitempty"`
	Reasoning  int `json:"reasoning,omitempty"`
	CacheRead  int `json:"cache_read,omitempty"`
	CacheWrite int `json:"cache_write,omitempty"`
	Total      int `json:"total,omitempty"`
}

// IsZero reports whether every counter in Usage is zero — used by adapters
// that must suppress usage deltas carrying no information (Cline, OpenCode).
func (u Usage) IsZero() bool {
	return u.Input == 0 && u.Output == 0 && u.Reasoning == 0 &&
		u.CacheRead == 0 && u.CacheWrite == 0 && u.Total == 0
}

// Timing carries millisecond timestamps/durations for one event.
type Timing struct {
	Start    int64 `json:"start,omitempty"`
	End      int64 `json:"end,omitempty"`
	Duration int64 `json:"duration,omitempty"`
}

// Session carries the identifiers a provider attaches to a turn or message.
type Session struct {
	ID        string `json:"id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	PartID    string `json:"part_id,omitempty"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// StreamDelta is the normalized incremental event emitted by every adapter
// in internal/providers and by internal/tagextract's enrichment path.
type StreamDelta struct {
	Kind        Kind      `json:"kind,omitempty"`
	Role        string    `json:"role,omitempty"`
	Content     string    `json:"content,omitempty"`
	Thought     string    `json:"thought,omitempty"`
	Diff        string    `json:"diff,omitempty"`
	DiffFile    string    `json:"diff_file,omitempty"`
	ToolCall    *ToolCall `json:"tool_call,omitempty"`
	Usage       *Usage    `json:"usage,omitempty"`
	Cost        float64   `json:"cost,omitempty"`
	Timing      *Timing   `json:"timing,omitempty"`
	Session     *Session  `json:"session,omitempty"`
	Model       string    `json:"model,omitempty"`
	GitSnapshot string    `json:"git_snapshot,omitempty"`
	StopReason  string    `json:"stop_reason,omitempty"`
}

// IsEmpty reports whether no field of d carries any information. Adapters
// use this to collapse a well-formed-but-uninformative event to nil rather
// than returning a StreamDelta with nothing in it (§4.4 "a delta with zero
// populated fields is collapsed to None").
func (d *StreamDelta) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Kind == "" && d.Role == "" && d.Content == "" && d.Thought == "" &&
		d.Diff == "" && d.DiffFile == "" && d.ToolCall == nil && d.Usage == nil &&
		d.Cost == 0 && d.Timing == nil && d.Session == nil && d.Model == "" &&
		d.GitSnapshot == "" && d.StopReason == ""
}

// OrNil returns d, or nil if d.IsEmpty(). Adapters end with
// "return delta.OrNil(&d)" so the zero-information case is uniformly nil
// regardless of which fields happened to be touched along the way.
func OrNil(d *StreamDelta) *StreamDelta {
	if d.IsEmpty() {
		return nil
	}
	return d
}
