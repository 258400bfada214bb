// Package client talks to a running daemon over its HTTP API
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/server"
	"github.com/renato0307/tabrest/internal/services"
)

const (
	DefaultTimeout = 30 * time.Second

	retryCount   = 2
	retryWait    = 250 * time.Millisecond
	retryMaxWait = 2 * time.Second
)

// Client calls the daemon API
type Client struct {
	resty *resty.Client
}

type apiError struct {
	Error string `json:"error"`
}

// New creates a client for a daemon listening on listenAddr
func New(listenAddr string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL("http://"+listenAddr).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		SetHeader("User-Agent", "tabrest-cli").
		AddRetryCondition(func(resp *resty.Response, _ error) bool {
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})

	return &Client{resty: restyClient}
}

// Action sends one action envelope and returns the daemon's answer
func (c *Client) Action(ctx context.Context, env services.ActionEnvelope) (services.ActionResponse, error) {
	var result services.ActionResponse
	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(env).
		SetResult(&result).
		SetError(&result).
		Post("/api/actions")
	if err := check(resp, err); err != nil && !hasActionError(result) {
		return services.ActionResponse{}, err
	}
	return result, nil
}

// Tabs lists every open tab with its status
func (c *Client) Tabs(ctx context.Context) ([]services.TabView, error) {
	var tabs []services.TabView
	resp, err := c.resty.R().
		SetContext(ctx).
		SetResult(&tabs).
		SetError(&apiError{}).
		Get("/api/tabs")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return tabs, nil
}

// Status describes the running daemon
func (c *Client) Status(ctx context.Context) (server.StatusResponse, error) {
	var status server.StatusResponse
	resp, err := c.resty.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&apiError{}).
		Get("/api/status")
	if err := check(resp, err); err != nil {
		return server.StatusResponse{}, err
	}
	return status, nil
}

// SaveSession saves the current window layout under name
func (c *Client) SaveSession(ctx context.Context, name string) (domain.Session, error) {
	var session domain.Session
	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(server.SaveSessionRequest{Name: name}).
		SetResult(&session).
		SetError(&apiError{}).
		Post("/api/sessions")
	if err := check(resp, err); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func hasActionError(resp services.ActionResponse) bool {
	return resp.Error != ""
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" {
			return fmt.Errorf("%w: %v", domain.ErrDaemonUnreachable, err)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
			return fmt.Errorf("daemon returned %d: %s", resp.StatusCode(), apiErr.Error)
		}
		return fmt.Errorf("daemon returned %d", resp.StatusCode())
	}
	return nil
}
