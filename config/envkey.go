package config

import "strings"

// envName builds the environment variable name bound to a key path.
func envName(prefix string, path []string) string {
	tokens := make([]string, 0, len(path)+1)
	if prefix != "" {
		tokens = append(tokens, strings.ToUpper(prefix))
	}
	for _, p := range path {
		tokens = append(tokens, screamingSnake(p))
	}
	return strings.Join(tokens, "_")
}

// screamingSnake turns camelCase, PascalCase, snake_case and kebab-case names into
// SCREAMING_SNAKE_CASE. Consecutive separators collapse into one.
func screamingSnake(in string) string {
	in = strings.TrimSpace(in)

	var sb strings.Builder
	sb.Grow(len(in) + len(in)/3)

	pendingSeparator := false
	for i, b := range []byte(in) {
		switch {
		case b == '_' || b == '-' || b == '.':
			pendingSeparator = sb.Len() > 0
			continue
		case 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			if i > 0 && sb.Len() > 0 && !isBoundary(in[i-1]) {
				pendingSeparator = true
			}
		case 'a' <= b && b <= 'z':
			b -= 'a' - 'A'
		}

		if pendingSeparator {
			sb.WriteByte('_')
			pendingSeparator = false
		}
		sb.WriteByte(b)
	}

	return sb.String()
}

// isBoundary reports whether a word break already precedes the current character,
// so that "ID" or "V2" stay in one word.
func isBoundary(prev byte) bool {
	return ('A' <= prev && prev <= 'Z') || ('0' <= prev && prev <= '9') || prev == '_' || prev == '-' || prev == '.'
}
