package server

import (
	"embed"
	"html"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
)

//go:embed assets/suspended.html
var suspendedHTML []byte

//go:embed assets/icon.svg
var iconSVG []byte

//go:embed assets/options.html.tmpl
var templates embed.FS

var optionsTemplate = template.Must(template.ParseFS(templates, "assets/options.html.tmpl"))

// titlePolicy strips every tag from page titles
var titlePolicy = bluemonday.StrictPolicy()

// PlaceholderInfo is what the placeholder page renders
type PlaceholderInfo struct {
	URI            string `json:"uri"`
	Title          string `json:"title"`
	Link           string `json:"link"`
	Icon           string `json:"icon"`
	Dim            bool   `json:"dim"`
	Update         bool   `json:"update"`
	ScrollPosition int    `json:"scrollPosition"`
}

// placeholderPage is static. The fragment never reaches the server, so the
// page asks for its own details through placeholderInfo.
func (s *Server) placeholderPage(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", suspendedHTML)
}

func (s *Server) icon(c *gin.Context) {
	c.Header("Cache-Control", "max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", iconSVG)
}

// placeholderInfo decodes the fragment passed in the hash query parameter
func (s *Server) placeholderInfo(c *gin.Context) {
	cfg, err := s.deps.Config.Configuration(c.Request.Context())
	if err != nil {
		logging.Logger.Error("Failed to load configuration", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.describePlaceholder(c.Query("hash"), cfg.FaviconsMode))
}

func (s *Server) describePlaceholder(hash string, mode domain.FaviconMode) PlaceholderInfo {
	target := domain.ParseSuspendedURL("#" + strings.TrimPrefix(hash, "#"))
	icon, dim := target.GetIcon(mode, s.origin.Page("icon.svg"))

	title := strings.TrimSpace(html.UnescapeString(titlePolicy.Sanitize(target.Title)))
	if title == "" {
		title = target.URI
	}

	return PlaceholderInfo{
		URI:            target.URI,
		Title:          title,
		Link:           displayLink(target.URI),
		Icon:           icon,
		Dim:            dim,
		Update:         target.Update,
		ScrollPosition: target.ScrollPosition,
	}
}

// displayLink is the host and path shown under the title
func displayLink(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host + strings.TrimSuffix(u.Path, "/")
}

type optionsField struct {
	Name        string
	Description string
	Kind        domain.FieldKind
	Value       any
}

type optionsSession struct {
	Name string
	Tabs int
	Data string
}

type optionsView struct {
	InstallationID string
	Fields         []optionsField
	WhiteList      []string
	Recent         []optionsSession
	Saved          []optionsSession
}

func (s *Server) optionsPage(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := s.deps.Config.Configuration(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load configuration", "error", err)
		c.String(http.StatusInternalServerError, "failed to load configuration")
		return
	}

	view := optionsView{
		InstallationID: s.origin.InstallationID(),
		WhiteList:      cfg.WhiteList,
	}
	for _, f := range s.deps.Config.Fields(false) {
		if f.Kind == domain.FieldKindStringList {
			continue
		}
		view.Fields = append(view.Fields, optionsField{
			Name:        f.Name,
			Description: f.Description,
			Kind:        f.Kind,
			Value:       f.Get(cfg),
		})
	}

	view.Recent = s.sessionsOf(c, domain.SessionKindRecent)
	view.Saved = s.sessionsOf(c, domain.SessionKindSaved)

	c.Header("Cache-Control", "no-cache")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := optionsTemplate.Execute(c.Writer, view); err != nil {
		logging.Logger.Error("Failed to render options page", "error", err)
	}
}

func (s *Server) sessionsOf(c *gin.Context, kind domain.SessionKind) []optionsSession {
	sessions, err := s.deps.Sessions.List(c.Request.Context(), kind)
	if err != nil {
		logging.Logger.Warn("Failed to list sessions", "kind", kind, "error", err)
		return nil
	}

	result := make([]optionsSession, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, optionsSession{Name: session.Name, Tabs: session.Tabs, Data: session.Data})
	}
	return result
}
