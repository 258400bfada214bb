package cmd

import (
	"context"

	adapterstorage "github.com/renato0307/tabrest/internal/adapters/storage"
	"github.com/renato0307/tabrest/internal/client"
	"github.com/renato0307/tabrest/internal/config"
	"github.com/renato0307/tabrest/internal/services"
)

// Container holds the dependencies shared by every command. Commands that
// need the browser go through Client; the rest use the store directly.
type Container struct {
	// Services
	SessionService  *services.SessionService
	SettingsService *services.SettingsService

	Client *client.Client
	Store  *adapterstorage.SQLiteRepository
}

// NewContainer opens the store and creates the daemon client
func NewContainer(listenAddr string) (*Container, error) {
	store, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		SessionService:  services.NewSessionService(store, nil, nil),
		SettingsService: services.NewSettingsService(store, store),
		Client:          client.New(listenAddr, client.DefaultTimeout),
		Store:           store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// action sends an action to the daemon and turns a failed answer into an error
func (c *Container) action(env services.ActionEnvelope) (services.ActionResponse, error) {
	resp, err := c.Client.Action(context.Background(), env)
	if err != nil {
		return resp, err
	}
	if !resp.Success {
		return resp, &actionError{message: resp.Error}
	}
	return resp, nil
}

type actionError struct {
	message string
}

func (e *actionError) Error() string {
	return e.message
}
