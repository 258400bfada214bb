package browser

import (
	"strings"

	"github.com/gobwas/glob"
)

const allURLsPattern = "<all_urls>"

// compileMatchPattern turns a match pattern such as "http://*/ext/abc/*"
// into a glob. '*' matches any run of characters, everything else is literal.
func compileMatchPattern(pattern string) (glob.Glob, error) {
	if pattern == allURLsPattern {
		pattern = "*"
	}

	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = glob.QuoteMeta(p)
	}
	return glob.Compile(strings.Join(parts, "*"))
}
