package layout

import "strings"

// Escape escapes characters with special meaning in the inline paragraph
// markup. Every free-text field from the resume record passes through here
// before insertion, so optimizer-supplied text can never open a tag or break
// a link attribute.
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '\'':
			result.WriteString("&#39;")
		case '"':
			result.WriteString("&quot;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
