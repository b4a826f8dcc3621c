package format

import "strings"

// markdownSpecials are the characters that break Telegram Markdown (v1) when
// they appear unescaped inside interpolated user content.
const markdownSpecials = "_*`["

// EscapeMarkdown escapes Markdown control characters in user-provided text so
// it can be embedded into Markdown-formatted messages.
func EscapeMarkdown(text string) string {
	if !strings.ContainsAny(text, markdownSpecials) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 4)
	for _, r := range text {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
