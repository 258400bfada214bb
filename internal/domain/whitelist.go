package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"
)

// whiteListRegexTimeout bounds a single user supplied regex match
const whiteListRegexTimeout = 100 * time.Millisecond

// whiteListBase returns host+path of rawURL, the string most patterns match against
func whiteListBase(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Host == "" && u.Scheme != "file") {
		return "", fmt.Errorf("%w: %s", ErrInvalidValue, rawURL)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Host + path, nil
}

// matchWhiteListPattern tests one non-empty pattern. Regex patterns use the
// full URL, everything else uses base.
func matchWhiteListPattern(pattern, fullURL, base string) bool {
	if expr, flags, ok := splitRegexPattern(pattern); ok {
		return matchRegexPattern(expr, flags, fullURL)
	}
	if strings.Contains(pattern, "*") {
		return matchWildcardPattern(pattern, base)
	}
	return strings.Contains(base, pattern)
}

// splitRegexPattern recognises the /expr/flags form
func splitRegexPattern(pattern string) (expr, flags string, ok bool) {
	if len(pattern) < 2 || pattern[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(pattern, '/')
	if end <= 0 {
		return "", "", false
	}
	flags = pattern[end+1:]
	for _, f := range flags {
		if f < 'a' || f > 'z' {
			return "", "", false
		}
	}
	return pattern[1:end], flags, true
}

func matchRegexPattern(expr, flags, target string) bool {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		case 'g', 'y', 'd':
			// no effect on a single test
		default:
			return false
		}
	}

	re, err := compileRegex(expr, opts)
	if err != nil {
		return false
	}
	re.MatchTimeout = whiteListRegexTimeout

	matched, err := re.MatchString(target)
	return err == nil && matched
}

// compileRegex retries without ECMAScript mode for option combinations the
// ECMAScript parser refuses
func compileRegex(expr string, opts regexp2.RegexOptions) (re *regexp2.Regexp, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, err = nil, fmt.Errorf("invalid regex: %v", r)
		}
	}()

	re, err = regexp2.Compile(expr, opts)
	if err != nil && opts&regexp2.ECMAScript != 0 {
		re, err = regexp2.Compile(expr, opts&^regexp2.ECMAScript)
	}
	return re, err
}

// matchWildcardPattern treats '*' as any run of characters and everything
// else literally, case-insensitively and anywhere in target
func matchWildcardPattern(pattern, target string) bool {
	parts := strings.Split(strings.ToLower(pattern), "*")
	for i, p := range parts {
		parts[i] = glob.QuoteMeta(p)
	}

	g, err := glob.Compile("*" + strings.Join(parts, "*") + "*")
	if err != nil {
		return false
	}
	return g.Match(strings.ToLower(target))
}
