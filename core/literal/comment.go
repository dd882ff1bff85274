package literal

import "strings"

// DecodeComment extracts the text of a line or block comment.
//
// Line comments lose the // marker and surrounding whitespace. Block comments
// lose their delimiters and every '*' at either end of the whole block, then
// the leading and trailing blank lines. Surviving lines are kept verbatim,
// interior blank lines included.
func DecodeComment(raw string) (string, bool) {
	if text, ok := strings.CutPrefix(raw, "//"); ok {
		return strings.TrimSpace(text), true
	}

	if len(raw) < 4 || !strings.HasPrefix(raw, "/*") || !strings.HasSuffix(raw, "*/") {
		return "", false
	}

	body := strings.Trim(raw[2:len(raw)-2], "*")
	lines := strings.Split(body, "\n")

	first := 0
	for first < len(lines) && isBlank(lines[first]) {
		first++
	}
	last := len(lines)
	for last > first && isBlank(lines[last-1]) {
		last--
	}

	return strings.Join(lines[first:last], "\n"), true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
