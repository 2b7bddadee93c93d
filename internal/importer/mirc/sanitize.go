package mirc

import "strings"

// Placeholder replaces every stray control byte left in the text.
const Placeholder = "&nbsp;"

// isStrayControl reports control bytes other than line feed.
func isStrayControl(b byte) bool {
	return b < 0x20 && b != '\n'
}

// Sanitize replaces every byte in 0x00-0x09 and 0x0B-0x1F with Placeholder.
func Sanitize(text string) string {
	sanitized, _ := sanitize(text)
	return sanitized
}

func sanitize(text string) (string, int) {
	first := strings.IndexFunc(text, func(r rune) bool {
		return r < 0x20 && r != '\n'
	})
	if first == -1 {
		return text, 0
	}

	var builder strings.Builder
	builder.Grow(len(text) + len(Placeholder))
	builder.WriteString(text[:first])

	replaced := 0
	for i := first; i < len(text); i++ {
		if isStrayControl(text[i]) {
			builder.WriteString(Placeholder)
			replaced++
			continue
		}
		builder.WriteByte(text[i])
	}

	return builder.String(), replaced
}
