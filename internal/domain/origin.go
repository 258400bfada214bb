package domain

import (
	"net"
	"net/url"
	"strings"
)

// InstallationIDLength is the length of an installation identifier
const InstallationIDLength = 32

// Origin is the base address the placeholder and options pages are served
// from, e.g. http://127.0.0.1:7878/ext/<installation-id>
type Origin string

// NewOrigin builds the origin for a daemon listening on listenAddr.
// Wildcard hosts are replaced by the loopback address.
func NewOrigin(listenAddr, installationID string) Origin {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		host, port = listenAddr, ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	addr := host
	if port != "" {
		addr = net.JoinHostPort(host, port)
	}
	return Origin("http://" + addr + "/ext/" + installationID)
}

// Page returns the address of a page under the origin
func (o Origin) Page(name string) string {
	return string(o) + "/" + name
}

// PlaceholderPage is the address suspended tabs point at, without fragment
func (o Origin) PlaceholderPage() string {
	return o.Page(PlaceholderPage)
}

// InstallationID returns the id the origin was built for
func (o Origin) InstallationID() string {
	s := string(o)
	return s[strings.LastIndexByte(s, '/')+1:]
}

// PlaceholderMatchPattern matches the placeholder page of this installation
// on any address
func (o Origin) PlaceholderMatchPattern() string {
	return "http://*/ext/" + o.InstallationID() + "/" + PlaceholderPage + "*"
}

// ParseOriginPage splits an address served under an installation origin
// into the installation id and the page path below it
func ParseOriginPage(rawURL string) (installationID, page string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", "", false
	}
	rest, found := strings.CutPrefix(u.Path, "/ext/")
	if !found {
		return "", "", false
	}
	id, page, _ := strings.Cut(rest, "/")
	if !ValidInstallationID(id) {
		return "", "", false
	}
	return id, page, true
}

// IsOriginPage reports whether rawURL is a page of any installation, on any
// address
func IsOriginPage(rawURL string) bool {
	_, _, ok := ParseOriginPage(rawURL)
	return ok
}

// InstallationMatchPattern matches pages of any daemon with the given
// installation id, whatever address it listens on
func InstallationMatchPattern(installationID string) string {
	return "http://*/ext/" + installationID + "/*"
}

// ValidInstallationID reports whether id looks like an installation id
func ValidInstallationID(id string) bool {
	if len(id) != InstallationIDLength {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f')
	}) < 0
}
