package browser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// discoverFavicon finds the icon declared by an HTML document, falling back
// to /favicon.ico on the page origin. Non http(s) pages have no icon.
func discoverFavicon(pageURL, html string) string {
	base, err := url.Parse(pageURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") {
		return ""
	}

	fallback := base.Scheme + "://" + base.Host + "/favicon.ico"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fallback
	}

	if b, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := base.Parse(b); err == nil {
			base = ref
		}
	}

	href := ""
	doc.Find("link[rel][href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, rel := range strings.Fields(strings.ToLower(s.AttrOr("rel", ""))) {
			if rel == "icon" {
				href = strings.TrimSpace(s.AttrOr("href", ""))
				return href == ""
			}
		}
		return true
	})
	if href == "" {
		return fallback
	}

	ref, err := base.Parse(href)
	if err != nil {
		return fallback
	}
	return ref.String()
}
