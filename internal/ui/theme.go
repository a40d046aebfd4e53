package ui

// themeInitScript applies the stored color mode before first paint.
const themeInitScript = `(function(){
  var root=document.documentElement;
  var mode='auto';
  try { mode=localStorage.getItem('explorer-ui-theme')||'auto'; } catch (_) {}
  if(mode!=='light'&&mode!=='dark'){ mode=window.matchMedia('(prefers-color-scheme: dark)').matches?'dark':'light'; }
  root.setAttribute('data-theme',mode);
})();`

const stylesheet = `
:root{--bg:#f5f6fb;--card:#fff;--fg:#111827;--muted:#6b7280;--border:#e5e7eb;--accent:#4f46e5;--bubble:#eef2ff}
[data-theme=dark]{--bg:#030712;--card:#111827;--fg:#f3f4f6;--muted:#9ca3af;--border:#1f2937;--bubble:#1e1b4b}
body{margin:0;padding:1rem;background:var(--bg);color:var(--fg);font-family:system-ui,sans-serif}
.topbar,.panel{max-width:72rem;margin:0 auto 1rem;border:1px solid var(--border);border-radius:1rem;background:var(--card);padding:.75rem 1rem}
.layout{max-width:72rem;margin:0 auto;display:grid;grid-template-columns:1fr 2fr;gap:1rem}
.muted{color:var(--muted);font-size:.8rem}
.asset{display:block;border:1px solid var(--border);border-radius:.75rem;padding:.75rem;margin-bottom:.75rem;color:inherit;text-decoration:none}
.badge{display:inline-block;border:1px solid var(--border);border-radius:999px;padding:0 .5rem;margin:.125rem;font-size:.75rem}
.chip{display:inline-block;border-radius:.375rem;background:var(--bubble);padding:0 .5rem;margin:.125rem;font-size:.75rem}
.msg{white-space:pre-wrap;border:1px solid var(--border);border-radius:.75rem;padding:.5rem .75rem;margin:.5rem 0;max-width:75%}
.msg.user{margin-left:auto;background:var(--bubble)}
.section-title{text-transform:uppercase;font-size:.8rem;letter-spacing:.05em;border-bottom:1px solid var(--border);padding-bottom:.25rem}
input[type=search],input[type=text]{width:75%;padding:.375rem;border:1px solid var(--border);border-radius:.5rem;background:transparent;color:inherit}
button{background:var(--accent);color:#fff;border:0;border-radius:.5rem;padding:.375rem .75rem}
`
