package domain

// ActionName identifies a command understood by the action dispatcher
type ActionName string

const (
	ActionTabStatus              ActionName = "tab_status"
	ActionOpenLinkInSuspendedTab ActionName = "open_link_in_suspended_tab"
	ActionOpenSettings           ActionName = "open_settings"
	ActionMigrate                ActionName = "migrate"
	ActionTogglePauseTab         ActionName = "toggle_pause_tab"
	ActionPauseTab               ActionName = "pause_tab"
	ActionUnpauseTab             ActionName = "unpause_tab"
	ActionWhitelistDomain        ActionName = "whitelist_domain"
	ActionWhitelistURL           ActionName = "whitelist_url"
	ActionWhitelistRemove        ActionName = "whitelist_remove"
	ActionToggleSuspendTab       ActionName = "toggle_suspend_tab"
	ActionSuspendTab             ActionName = "suspend_tab"
	ActionUnsuspendTab           ActionName = "unsuspend_tab"
	ActionSuspendGroup           ActionName = "suspend_group"
	ActionSuspendGroupForced     ActionName = "suspend_group_forced"
	ActionUnsuspendGroup         ActionName = "unsuspend_group"
	ActionSuspendWindow          ActionName = "suspend_window"
	ActionSuspendWindowForced    ActionName = "suspend_window_forced"
	ActionUnsuspendWindow        ActionName = "unsuspend_window"
	ActionSuspendAll             ActionName = "suspend_all"
	ActionSuspendAllForced       ActionName = "suspend_all_forced"
	ActionUnsuspendAll           ActionName = "unsuspend_all"
	ActionOpenWindow             ActionName = "open_window"
	ActionOpenSession            ActionName = "open_session"
)

// Action describes a dispatcher command
type Action struct {
	Description string
	Name        ActionName
	RequiresTab bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: ActionMigrate, Description: "Re-suspend placeholder tabs of another installation", RequiresTab: false},
	{Name: ActionOpenLinkInSuspendedTab, Description: "Open a link in a new suspended tab", RequiresTab: true},
	{Name: ActionOpenSession, Description: "Open every window of a session", RequiresTab: false},
	{Name: ActionOpenSettings, Description: "Open the options page", RequiresTab: false},
	{Name: ActionOpenWindow, Description: "Open a window from a list of URLs", RequiresTab: false},
	{Name: ActionPauseTab, Description: "Pause suspension for a tab", RequiresTab: true},
	{Name: ActionSuspendAll, Description: "Suspend all eligible tabs", RequiresTab: false},
	{Name: ActionSuspendAllForced, Description: "Suspend all tabs", RequiresTab: false},
	{Name: ActionSuspendGroup, Description: "Suspend eligible tabs of the tab's group", RequiresTab: true},
	{Name: ActionSuspendGroupForced, Description: "Suspend all tabs of the tab's group", RequiresTab: true},
	{Name: ActionSuspendTab, Description: "Suspend a tab", RequiresTab: true},
	{Name: ActionSuspendWindow, Description: "Suspend eligible tabs of the tab's window", RequiresTab: true},
	{Name: ActionSuspendWindowForced, Description: "Suspend all other tabs of the tab's window", RequiresTab: true},
	{Name: ActionTabStatus, Description: "Explain whether a tab can be suspended", RequiresTab: true},
	{Name: ActionTogglePauseTab, Description: "Toggle suspension pause for a tab", RequiresTab: true},
	{Name: ActionToggleSuspendTab, Description: "Suspend or unsuspend a tab", RequiresTab: true},
	{Name: ActionUnpauseTab, Description: "Resume suspension for a tab", RequiresTab: true},
	{Name: ActionUnsuspendAll, Description: "Unsuspend all tabs", RequiresTab: false},
	{Name: ActionUnsuspendGroup, Description: "Unsuspend tabs of the tab's group", RequiresTab: true},
	{Name: ActionUnsuspendTab, Description: "Unsuspend a tab", RequiresTab: true},
	{Name: ActionUnsuspendWindow, Description: "Unsuspend tabs of the tab's window", RequiresTab: true},
	{Name: ActionWhitelistDomain, Description: "Whitelist the tab's domain", RequiresTab: true},
	{Name: ActionWhitelistRemove, Description: "Remove whitelist entries matching the tab", RequiresTab: true},
	{Name: ActionWhitelistURL, Description: "Whitelist the tab's address", RequiresTab: true},
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if string(Actions[i].Name) == name {
			return &Actions[i]
		}
	}
	return nil
}
