// Package redact applies an ordered battery of secret- and PII-detection
// patterns to free text before it leaves the streaming pipeline.
//
// Redactor is a pure function of its input: no state is mutated, nothing
// is logged, nothing is retried. Pattern compilation happens once, at
// construction, mirroring how this codebase pre-compiles regex and glob
// matchers for its rule engine rather than compiling per call.
package redact

import "regexp"

// rule is one (pattern, replacement) pair. Patterns are Go's standard
// regexp.Regexp — the RE2 engine backing it guarantees linear-time
// matching, which is what makes the phone-number rule below safe against
// catastrophic backtracking without any special-casing in the engine
// itself.
type rule struct {
	name    string
	pattern *regexp.Regexp
	replace string
}

// Redactor holds a pre-compiled, ordered list of redaction rules. Rule
// order is significant: more specific key formats are matched before the
// generic long-hex/base64 patterns that would otherwise shadow them.
type Redactor struct {
	rules     []rule
	phonePre  *regexp.Regexp // cheap pre-check: at least 7 digits present
	phonePatt *regexp.Regexp // full phone scan, only run after the pre-check
}

// digitRun is used to count the digits in a phone candidate match so that
// matches with fewer than 7 or more than 15 digits (outside the range a
// real phone number occupies) are discarded.
var digitRun = regexp.MustCompile(`[0-9]`)

// New builds a Redactor from an ordered rule list. Most callers should use
// Default instead; New exists so tests and alternate deployments can
// compose a custom rule set without touching the package-level default.
func New(rules []rule) *Redactor {
	return &Redactor{rules: rules}
}

// Default returns the standard Redactor: email, SSN, credit card, one rule
// per well-known provider/service secret format, a generic bearer-token
// and password rule, and the gated phone-number rule. Construction
// compiles every pattern exactly once; the returned Redactor is safe to
// share across goroutines and is typically stored as a package-level
// singleton by callers (see defaultRedactor below).
func Default() *Redactor {
	r := &Redactor{
		phonePre:  regexp.MustCompile(`[0-9]`),
		phonePatt: regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}
	r.rules = []rule{
		// Provider/service API key formats — specific prefixes first so they
		// never fall through to the generic long-hex/base64 rules below.
		{"anthropic_key", regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{20,}\b`), "[ANTHROPIC_KEY_REDACTED]"},
		{"openai_key", regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{20,}\b`), "[OPENAI_KEY_REDACTED]"},
		{"aws_access_key", regexp.MustCompile(`\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`), "[AWS_ACCESS_KEY_REDACTED]"},
		{"github_token", regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`), "[GITHUB_TOKEN_REDACTED]"},
		{"google_api_key", regexp.MustCompile(`\bAIza[A-Za-z0-9_-]{35}\b`), "[GOOGLE_API_KEY_REDACTED]"},
		{"npm_token", regexp.MustCompile(`\bnpm_[A-Za-z0-9]{36}\b`), "[NPM_TOKEN_REDACTED]"},
		{"jwt_token", regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\b`), "[JWT_TOKEN_REDACTED]"},
		{"private_key", regexp.MustCompile(`-----BEGIN (?:RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----[\s\S]*?-----END (?:RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----`), "[PRIVATE_KEY_REDACTED]"},
		{"database_url", regexp.MustCompile(`\b(?:postgres|postgresql|mysql|mongodb(?:\+srv)?|redis)://[^\s"']+`), "[DATABASE_URL_REDACTED]"},
		{"bearer_token", regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._-]{10,}\b`), "[BEARER_TOKEN_REDACTED]"},
		{"password_field", regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[:=]\s*\S+`), "[PASSWORD_REDACTED]"},
		// Generic long hex/base64 secrets — deliberately last among the key
		// rules so the specific formats above have first refusal.
		{"aws_secret_key", regexp.MustCompile(`\b[A-Za-z0-9+/]{40}\b`), "[AWS_SECRET_KEY_REDACTED]"},
		// PII.
		{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[EMAIL]"},
		{"ssn", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[SSN]"},
		{"credit_card", regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`), "[CREDIT_CARD]"},
	}
	return r
}

var defaultRedactor *Redactor

func init() {
	defaultRedactor = Default()
}

// Redact applies the default rule set to s and returns the redacted
// string. Empty input returns the input unchanged.
func Redact(s string) string {
	return defaultRedactor.Redact(s)
}

// Redact applies r's ordered rules to s in sequence and returns the
// redacted string. s is never mutated; an empty string is returned
// unchanged.
func (r *Redactor) Redact(s string) string {
	if s == "" {
		return s
	}

	for _, rl := range r.rules {
		s = rl.pattern.ReplaceAllString(s, rl.replace)
	}

	s = r.redactPhones(s)
	return s
}

// redactPhones applies the phone-number rule, gated by a cheap digit-count
// pre-check to avoid running the full pattern over digit-sparse text, and
// accepts a candidate match only when its digit count falls in [7,15] —
// the range a real phone number (with or without country code) occupies.
func (r *Redactor) redactPhones(s string) string {
	if !r.phonePre.MatchString(s) {
		return s
	}
	// Cheap pre-check above only confirms a single digit exists; count
	// actual digits before paying for the full scan.
	if len(digitRun.FindAllStringIndex(s, -1)) < 7 {
		return s
	}

	return r.phonePatt.ReplaceAllStringFunc(s, func(match string) string {
		digits := len(digitRun.FindAllString(match, -1))
		if digits < 7 || digits > 15 {
			return match
		}
		return "[PHONE]"
	})
}
