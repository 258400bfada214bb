package browser

const (
	activatedBinding = "__tabrestActivated"
	audibleBinding   = "__tabrestAudible"
)

// initScript runs in every document before its own scripts. It reports tab
// activation and whether any media element is producing sound.
const initScript = `(() => {
  if (window.top !== window) return;
  const audible = () => Array.from(document.querySelectorAll('video, audio'))
    .some(m => !m.paused && !m.ended && !m.muted && m.volume > 0);
  const report = () => { try { window.` + audibleBinding + `(audible()); } catch (e) {} };
  for (const ev of ['play', 'playing', 'pause', 'ended', 'volumechange', 'emptied']) {
    document.addEventListener(ev, report, true);
  }
  document.addEventListener('visibilitychange', () => {
    if (document.visibilityState === 'visible') {
      try { window.` + activatedBinding + `(); } catch (e) {}
    }
  });
})();`
