package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the first JSON object out of raw model output and
// decodes it into T. Models wrap the object in prose or markdown fences
// and occasionally emit // comments or bare ".9" literals; everything
// outside the object is discarded and both defects are repaired during a
// single scan. A non-nil validator rejects payloads that parse but make
// no sense for the task (an intent outside the taxonomy, a confidence
// outside [0,1]).
func ExtractJSON[T any](raw string, validator func(T) error) (T, error) {
	var zero T

	obj, ok := firstJSONObject(raw)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal(obj, &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// firstJSONObject scans raw for the first balanced top-level object and
// returns a repaired copy of it: line and block comments outside string
// values are dropped, and leading-decimal number literals gain their
// missing zero. Returns ok=false when no balanced object exists.
func firstJSONObject(raw string) ([]byte, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return nil, false
	}

	out := make([]byte, 0, len(raw)-start)
	depth := 0
	inString := false
	escaped := false
	var lastSig byte // last significant byte emitted outside a string

	for i := start; i < len(raw); i++ {
		c := raw[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(raw) && raw[i+1] == '/':
			for i < len(raw) && raw[i] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(raw) && raw[i+1] == '*':
			i += 2
			for i+1 < len(raw) && !(raw[i] == '*' && raw[i+1] == '/') {
				i++
			}
			i++
			continue
		case c == '.' && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '9' && beginsNumber(lastSig):
			out = append(out, '0')
		case c == '{':
			depth++
		case c == '}':
			depth--
		}

		out = append(out, c)
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			lastSig = c
		}

		if depth == 0 {
			return out, true
		}
	}

	return nil, false
}

// beginsNumber reports whether a '.' following this byte starts a new
// numeric literal (".9" after a colon) rather than continuing one ("1.9").
func beginsNumber(prev byte) bool {
	switch prev {
	case ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}
