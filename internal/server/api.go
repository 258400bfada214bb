package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/services"
	"github.com/renato0307/tabrest/version"
)

// StatusResponse describes the running daemon
type StatusResponse struct {
	InstallationID string `json:"installationId"`
	Origin         string `json:"origin"`
	Version        string `json:"version"`
}

// SaveSessionRequest names the snapshot to save
type SaveSessionRequest struct {
	Name string `json:"name"`
}

// handleAction answers 200 for every well formed envelope. Failures are
// reported in the body.
func (s *Server) handleAction(c *gin.Context) {
	var env services.ActionEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		c.JSON(http.StatusBadRequest, services.ActionResponse{Error: "invalid request body"})
		return
	}

	resp := s.deps.Actions.Handle(c.Request.Context(), env)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listTabs(c *gin.Context) {
	tabs, err := s.deps.Tabs.ListTabs(c.Request.Context())
	if err != nil {
		logging.Logger.Error("Failed to list tabs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tabs == nil {
		tabs = []services.TabView{}
	}
	c.JSON(http.StatusOK, tabs)
}

func (s *Server) status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		InstallationID: s.origin.InstallationID(),
		Origin:         string(s.origin),
		Version:        version.Version,
	})
}

func (s *Server) saveSession(c *gin.Context) {
	var req SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := s.deps.Sessions.SaveCurrent(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}
