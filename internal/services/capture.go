package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

const youtubeWatchPrefix = "https://www.youtube.com/watch"

// pageStateScript reads scroll offset, video time and unsaved form state from
// the main world of a page. Only forms that post are looked at.
const pageStateScript = `(opts) => {
  const videoTime = () => {
    const video = document.querySelector('video.video-stream.html5-main-video');
    return video !== null ? Math.floor(video.currentTime) : null;
  };

  const fieldChanged = () => {
    const fields = document.querySelectorAll(
      'form[method="post" i] input, form[method="post" i] textarea, form[method="post" i] select');
    for (const el of fields) {
      if (el instanceof HTMLInputElement) {
        if (el.type === 'checkbox' || el.type === 'radio') {
          if (el.checked !== el.defaultChecked) return true;
        } else if (el.type === 'file') {
          if (el.files && el.files.length > 0) return true;
        } else if (el.value !== el.defaultValue) {
          return true;
        }
      } else if (el instanceof HTMLTextAreaElement) {
        if (el.value !== el.defaultValue) return true;
      } else if (el instanceof HTMLSelectElement) {
        for (const opt of el.options) {
          if (opt.selected !== opt.defaultSelected) return true;
        }
      }
    }
    return false;
  };

  const root = document.documentElement || document.body || {};
  return {
    scrollPosition: opts.scroll ? Math.floor(root.scrollTop || 0) : 0,
    time: opts.time ? videoTime() : null,
    changedFields: opts.changedFields ? fieldChanged() : false,
  };
}`

// scrollRestoreScript scrolls now and once more after late content loads
const scrollRestoreScript = `(scroll) => {
  document.documentElement.scrollTop = scroll;
  setTimeout(() => { document.documentElement.scrollTop = scroll; }, 500);
}`

type captureOptions struct {
	Scroll        bool `json:"scroll"`
	Time          bool `json:"time"`
	ChangedFields bool `json:"changedFields"`
}

// PageStateCapture reads page state through one-shot script injection
type PageStateCapture struct {
	browser ports.Browser
}

// NewPageStateCapture creates a new PageStateCapture
func NewPageStateCapture(browser ports.Browser) *PageStateCapture {
	return &PageStateCapture{browser: browser}
}

// Capture reads the state of the page shown in tab. Failing to inject
// returns an error wrapping domain.ErrCaptureFailed and nothing else.
func (c *PageStateCapture) Capture(
	ctx context.Context,
	tab domain.Tab,
	cfg *domain.Configuration,
) (domain.PageState, error) {
	allowed, err := c.browser.URLAllowed(ctx, tab.URL)
	if err != nil || !allowed {
		return domain.PageState{}, nil
	}

	opts := captureOptions{
		Scroll:        cfg.RestoreScrollPosition,
		Time:          cfg.MaintainYoutubeTime && strings.HasPrefix(tab.URL, youtubeWatchPrefix),
		ChangedFields: cfg.NeverSuspendUnsavedData,
	}

	raw, err := c.browser.Evaluate(ctx, tab.ID, pageStateScript, opts)
	if err != nil {
		logging.Logger.Debug("Page state capture failed", "tab_id", tab.ID, "error", err)
		return domain.PageState{}, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}

	var state domain.PageState
	if len(raw) == 0 || string(raw) == "null" {
		return state, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.PageState{}, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}
	if state.ScrollPosition < 0 {
		state.ScrollPosition = 0
	}
	return state, nil
}

// RestoreScroll scrolls the page in tab to position
func (c *PageStateCapture) RestoreScroll(ctx context.Context, tabID int, position int) error {
	if _, err := c.browser.Evaluate(ctx, tabID, scrollRestoreScript, position); err != nil {
		return fmt.Errorf("failed to restore scroll position: %w", err)
	}
	return nil
}

// tabProbe memoizes one capture per tab within a decision cycle, so the
// unsaved form check and the suspension share a single injection
type tabProbe struct {
	capture *PageStateCapture
	tab     domain.Tab
	cfg     *domain.Configuration

	done  bool
	state domain.PageState
	err   error
}

func (p *tabProbe) get(ctx context.Context) (domain.PageState, error) {
	if !p.done {
		p.state, p.err = p.capture.Capture(ctx, p.tab, p.cfg)
		p.done = true
	}
	return p.state, p.err
}
