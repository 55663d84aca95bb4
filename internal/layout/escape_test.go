package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_EmptyString(t *testing.T) {
	assert.Equal(t, "", Escape(""))
}

func TestEscape_NoSpecialCharacters(t *testing.T) {
	text := "Built system handling 1M+ requests/day with 99.9% uptime"
	assert.Equal(t, text, Escape(text))
}

func TestEscape_Ampersand(t *testing.T) {
	assert.Equal(t, "A &amp; B", Escape("A & B"))
}

func TestEscape_AngleBrackets(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;not bold&lt;/b&gt;", Escape("<b>not bold</b>"))
}

func TestEscape_Quotes(t *testing.T) {
	assert.Equal(t, "it&#39;s &quot;quoted&quot;", Escape(`it's "quoted"`))
}

func TestEscape_MultipleSpecialCharacters(t *testing.T) {
	assert.Equal(t, "&lt;&gt;&amp;&#39;&quot;", Escape(`<>&'"`))
}

func TestEscape_UnicodePassesThrough(t *testing.T) {
	text := "résumé with unicode: α β γ"
	assert.Equal(t, text, Escape(text))
}
