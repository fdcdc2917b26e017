// Package llm - util.go cleans up raw model output before JSON parsing.
package llm

import "strings"

// CleanJSONBlock strips the wrapping Gemini tends to add around a JSON
// payload: markdown code fences, a conversational preamble ("Here is the
// analysis:"), or trailing chatter after the closing brace. The schema
// validator downstream still rejects anything that is not the expected
// analysis record, so this only has to recover the JSON text itself.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if inner, ok := stripFence(text); ok {
		return inner
	}

	// No fence. If the response leads with prose or trails off after the
	// JSON, carve out the first balanced object or array.
	if extracted := firstJSONValue(text); extracted != "" {
		return extracted
	}

	return text
}

// stripFence removes a leading ```json or ``` fence and its closing marker.
func stripFence(text string) (string, bool) {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text), true
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// A bare language tag may sit on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text), true
	}

	return "", false
}

// firstJSONValue returns the first balanced JSON object or array in text,
// whichever opener appears first. Empty string if neither is found or the
// value never closes.
func firstJSONValue(text string) string {
	objIdx := strings.IndexByte(text, '{')
	arrIdx := strings.IndexByte(text, '[')

	start := objIdx
	if start < 0 || (arrIdx >= 0 && arrIdx < start) {
		start = arrIdx
	}
	if start < 0 {
		return ""
	}

	return scanBalanced(text[start:])
}

// scanBalanced reads a JSON value starting at an opening brace or bracket
// and returns it up to the matching close. Braces inside string literals
// do not count, so values like {"goal": "save {amount}"} survive intact.
func scanBalanced(text string) string {
	open := text[0]
	var clos byte
	switch open {
	case '{':
		clos = '}'
	case '[':
		clos = ']'
	default:
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
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
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case clos:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}

	return ""
}
