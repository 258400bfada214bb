package cmd

import (
	"errors"
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
)

// Scope selects the tabs a suspend or unsuspend command applies to
type Scope struct {
	Tab    int  `arg:"" optional:"" help:"Tab id (see 'tabrest tabs')"`
	Group  bool `help:"Apply to the tab's group" xor:"scope"`
	Window bool `help:"Apply to the tab's window" xor:"scope"`
	All    bool `help:"Apply to every tab" xor:"scope"`
}

func (s Scope) validate() error {
	if !s.All && s.Tab <= 0 {
		return errors.New("a tab id is required unless --all is set")
	}
	return nil
}

// SuspendCmd suspends tabs
type SuspendCmd struct {
	Scope
	Force bool `help:"Ignore suspension rules other than the page type"`
}

// action picks the dispatcher action for the selected scope
func (s *SuspendCmd) action() domain.ActionName {
	switch {
	case s.All && s.Force:
		return domain.ActionSuspendAllForced
	case s.All:
		return domain.ActionSuspendAll
	case s.Window && s.Force:
		return domain.ActionSuspendWindowForced
	case s.Window:
		return domain.ActionSuspendWindow
	case s.Group && s.Force:
		return domain.ActionSuspendGroupForced
	case s.Group:
		return domain.ActionSuspendGroup
	default:
		return domain.ActionSuspendTab
	}
}

// Run executes the suspend command
func (s *SuspendCmd) Run(cli *CLI) error {
	if err := s.validate(); err != nil {
		return err
	}
	return runScoped(cli, s.action(), s.Tab, "Suspended")
}

// UnsuspendCmd restores suspended tabs
type UnsuspendCmd struct {
	Scope
}

func (u *UnsuspendCmd) action() domain.ActionName {
	switch {
	case u.All:
		return domain.ActionUnsuspendAll
	case u.Window:
		return domain.ActionUnsuspendWindow
	case u.Group:
		return domain.ActionUnsuspendGroup
	default:
		return domain.ActionUnsuspendTab
	}
}

// Run executes the unsuspend command
func (u *UnsuspendCmd) Run(cli *CLI) error {
	if err := u.validate(); err != nil {
		return err
	}
	return runScoped(cli, u.action(), u.Tab, "Unsuspended")
}

// ToggleCmd suspends a live tab or restores a suspended one
type ToggleCmd struct {
	Tab int `arg:"" help:"Tab id (see 'tabrest tabs')"`
}

// Run executes the toggle command
func (t *ToggleCmd) Run(cli *CLI) error {
	return runScoped(cli, domain.ActionToggleSuspendTab, t.Tab, "")
}

func runScoped(cli *CLI, action domain.ActionName, tabID int, verb string) error {
	env := services.ActionEnvelope{Action: string(action)}
	if action != domain.ActionSuspendAll && action != domain.ActionSuspendAllForced && action != domain.ActionUnsuspendAll {
		env.TabID = &tabID
	}

	resp, err := cli.Container.action(env)
	if err != nil {
		return err
	}

	// Bulk actions answer with the number of tabs touched
	if count, ok := resp.Data.(float64); ok && verb != "" {
		fmt.Printf("%s %d tab(s)\n", verb, int(count))
	}
	return nil
}
