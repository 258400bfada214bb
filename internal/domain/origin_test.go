package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrigin(t *testing.T) {
	id := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		addr     string
		expected Origin
	}{
		{"127.0.0.1:7878", Origin("http://127.0.0.1:7878/ext/" + id)},
		{":7878", Origin("http://127.0.0.1:7878/ext/" + id)},
		{"0.0.0.0:80", Origin("http://127.0.0.1:80/ext/" + id)},
		{"localhost", Origin("http://localhost/ext/" + id)},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewOrigin(tt.addr, id))
		})
	}

	o := NewOrigin("127.0.0.1:7878", id)
	assert.Equal(t, testPlaceholder, o.PlaceholderPage())
	assert.Equal(t, "http://*/ext/"+id+"/suspended.html*", o.PlaceholderMatchPattern())
	assert.Equal(t, id, o.InstallationID())
}

func TestValidInstallationID(t *testing.T) {
	assert.True(t, ValidInstallationID("0123456789abcdef0123456789abcdef"))
	assert.False(t, ValidInstallationID("tooShortId"))
	assert.False(t, ValidInstallationID("0123456789ABCDEF0123456789abcdef"))
	assert.False(t, ValidInstallationID("0123456789abcdef0123456789abcdeg"))
}

func TestParseOriginPage(t *testing.T) {
	id := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		name   string
		url    string
		wantID string
		page   string
		ok     bool
	}{
		{"placeholder", "http://127.0.0.1:7878/ext/" + id + "/suspended.html#uri=x", id, "suspended.html", true},
		{"options on other port", "http://localhost:9999/ext/" + id + "/options.html", id, "options.html", true},
		{"origin root", "http://127.0.0.1:7878/ext/" + id, id, "", true},
		{"short id", "http://127.0.0.1:7878/ext/abc/options.html", "", "", false},
		{"not under ext", "https://example.com/ext-docs/" + id + "/page", "", "", false},
		{"nested ext", "https://example.com/blog/ext/" + id + "/page", "", "", false},
		{"other scheme", "chrome://ext/" + id + "/page", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, page, ok := ParseOriginPage(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.ok, IsOriginPage(tt.url))
		})
	}
}
