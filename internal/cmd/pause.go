package cmd

import (
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
)

// PauseCmd pauses automatic suspension for a tab
type PauseCmd struct {
	Tab    int  `arg:"" help:"Tab id (see 'tabrest tabs')"`
	Toggle bool `help:"Flip the current pause state instead"`
}

// Run executes the pause command
func (p *PauseCmd) Run(cli *CLI) error {
	if p.Toggle {
		return togglePause(cli, p.Tab)
	}
	if _, err := cli.Container.action(services.ActionEnvelope{Action: string(domain.ActionPauseTab), TabID: &p.Tab}); err != nil {
		return err
	}
	fmt.Printf("Suspension paused for tab %d\n", p.Tab)
	return nil
}

// UnpauseCmd resumes automatic suspension for a tab
type UnpauseCmd struct {
	Tab    int  `arg:"" help:"Tab id (see 'tabrest tabs')"`
	Toggle bool `help:"Flip the current pause state instead"`
}

// Run executes the unpause command
func (u *UnpauseCmd) Run(cli *CLI) error {
	if u.Toggle {
		return togglePause(cli, u.Tab)
	}
	if _, err := cli.Container.action(services.ActionEnvelope{Action: string(domain.ActionUnpauseTab), TabID: &u.Tab}); err != nil {
		return err
	}
	fmt.Printf("Suspension resumed for tab %d\n", u.Tab)
	return nil
}

func togglePause(cli *CLI, tabID int) error {
	resp, err := cli.Container.action(services.ActionEnvelope{Action: string(domain.ActionTogglePauseTab), TabID: &tabID})
	if err != nil {
		return err
	}
	if paused, _ := resp.Data.(bool); paused {
		fmt.Printf("Suspension paused for tab %d\n", tabID)
	} else {
		fmt.Printf("Suspension resumed for tab %d\n", tabID)
	}
	return nil
}
