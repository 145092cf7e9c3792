package board

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes s safe for text and attribute positions in markup. The
// replacement is a single pass, so entities it introduces are never escaped
// again.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
