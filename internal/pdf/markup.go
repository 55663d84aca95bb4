package pdf

import (
	"fmt"
	"strings"
)

// span is a run of paragraph text with uniform formatting.
type span struct {
	text string
	bold bool
	link string
}

// parseMarkup tokenizes the inline paragraph markup produced by the section
// renderers: <b>...</b>, <link href='...'>...</link>, and the five escape
// entities. Free text is escaped before it reaches a paragraph, so a tag that
// does not parse means corrupt block content, which fails the render.
func parseMarkup(text string) ([]span, error) {
	var (
		spans   []span
		current strings.Builder
		bold    bool
		link    string
	)

	flush := func() {
		if current.Len() == 0 {
			return
		}
		spans = append(spans, span{text: current.String(), bold: bold, link: link})
		current.Reset()
	}

	for i := 0; i < len(text); {
		switch text[i] {
		case '<':
			end := strings.IndexByte(text[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated tag at offset %d", i)
			}
			tag := text[i+1 : i+end]
			switch {
			case tag == "b":
				flush()
				bold = true
			case tag == "/b":
				flush()
				bold = false
			case strings.HasPrefix(tag, "link href='") && strings.HasSuffix(tag, "'"):
				flush()
				link = unescapeEntities(strings.TrimSuffix(strings.TrimPrefix(tag, "link href='"), "'"))
			case tag == "/link":
				flush()
				link = ""
			default:
				return nil, fmt.Errorf("unknown tag <%s>", tag)
			}
			i += end + 1
		case '&':
			entity, size := matchEntity(text[i:])
			if size > 0 {
				current.WriteString(entity)
				i += size
			} else {
				current.WriteByte('&')
				i++
			}
		default:
			current.WriteByte(text[i])
			i++
		}
	}
	flush()

	if len(spans) == 0 {
		spans = append(spans, span{})
	}
	return spans, nil
}

var entities = []struct {
	name string
	repl string
}{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&#39;", "'"},
	{"&quot;", `"`},
}

// matchEntity returns the replacement and consumed length for a known entity
// at the start of s, or a zero length when s does not begin with one.
func matchEntity(s string) (string, int) {
	for _, e := range entities {
		if strings.HasPrefix(s, e.name) {
			return e.repl, len(e.name)
		}
	}
	return "", 0
}

func unescapeEntities(s string) string {
	for _, e := range entities {
		s = strings.ReplaceAll(s, e.name, e.repl)
	}
	return s
}
