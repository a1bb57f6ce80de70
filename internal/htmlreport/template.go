package htmlreport

import "html/template"

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .ChartRuntime}}<script>{{.ChartRuntime}}</script>{{end}}
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; color: #1f2430; }
  header { background: #232a36; color: #fff; padding: 24px 32px; }
  header h1 { margin: 0 0 4px; font-size: 22px; }
  header p { margin: 0; opacity: 0.75; font-size: 13px; }
  main { max-width: 1100px; margin: 0 auto; padding: 24px 32px 48px; }
  .tabs { margin: 0 0 20px; }
  .tabs button { border: 1px solid #c8ccd4; background: #fff; padding: 8px 18px; cursor: pointer; font-size: 14px; }
  .tabs button.active { background: #2f6fed; border-color: #2f6fed; color: #fff; }
  .tiles { display: flex; flex-wrap: wrap; gap: 12px; margin-bottom: 24px; }
  .tile { background: #fff; border: 1px solid #e2e5ea; border-radius: 6px; padding: 14px 18px; min-width: 140px; }
  .tile .label { font-size: 12px; color: #6b7280; text-transform: uppercase; letter-spacing: 0.04em; }
  .tile .value { font-size: 22px; font-weight: 600; margin-top: 4px; }
  .chart-box { background: #fff; border: 1px solid #e2e5ea; border-radius: 6px; padding: 12px; margin-bottom: 24px; }
  .empty { background: #fff; border: 1px dashed #c8ccd4; border-radius: 6px; padding: 48px; text-align: center; color: #6b7280; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; background: #fff; border: 1px solid #e2e5ea; margin-bottom: 24px; font-size: 13px; }
  th, td { padding: 8px 12px; border-bottom: 1px solid #eceff3; text-align: left; }
  th { background: #f0f2f5; font-weight: 600; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .muted { color: #6b7280; font-size: 13px; margin: -16px 0 24px; }
  details { margin-bottom: 24px; }
  summary { cursor: pointer; font-weight: 600; padding: 8px 0; }
  h2 { font-size: 17px; margin: 28px 0 12px; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>Period: {{.Period}} &middot; Generated {{.Generated}}</p>
</header>
<main>
  <div class="tabs">
    <button id="tab-git" class="active" onclick="showView('git')">Version Control</button>
    <button id="tab-fs" onclick="showView('fs')">Filesystem</button>
  </div>

  <section id="view-git">
    <div class="tiles">
      {{range .GitTiles}}<div class="tile"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>{{end}}
    </div>
    {{if .BaselineTiles}}
    <div class="tiles">
      {{range .BaselineTiles}}<div class="tile"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>{{end}}
    </div>
    {{end}}
    {{if .HasActivity}}
      {{if .ChartRuntime}}
        {{.ActivityChart}}
        {{.VolumeChart}}
      {{else}}
        <div class="empty">Charts omitted: the chart runtime was unavailable when this report was generated.</div>
      {{end}}
      <h2>Commits</h2>
      <table>
        <tr><th>Hash</th><th>Date</th><th>Author</th><th>Subject</th></tr>
        {{range .Commits}}<tr><td><code>{{.Hash}}</code></td><td>{{.When}}</td><td>{{.Author}}</td><td>{{.Subject}}</td></tr>{{end}}
      </table>
      {{if .MoreCommits}}<p class="muted">... and {{.MoreCommits}} more commits in this period.</p>{{end}}
    {{else}}
      <div class="empty">No commits found in this period.</div>
    {{end}}
  </section>

  <section id="view-fs" style="display:none">
    {{if .HasSnapshot}}
      <div class="tiles">
        {{range .FsTiles}}<div class="tile"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>{{end}}
      </div>
      <h2>File Manifest</h2>
      <table>
        <tr><th>Path</th><th>Size</th><th>Lines</th><th>Modified</th></tr>
        {{range .Files}}<tr><td>{{.Path}}</td><td class="num">{{.Size}}</td><td class="num">{{.Lines}}</td><td>{{.Modified}}</td></tr>{{end}}
      </table>
      {{if .MoreFiles}}<p class="muted">... and {{.MoreFiles}} more files.</p>{{end}}
    {{else}}
      <div class="empty">Filesystem scan unavailable for this run.</div>
    {{end}}
  </section>

  <details>
    <summary>Estimation Methodologies</summary>
    <p class="muted" style="margin:8px 0">Version-control basis: {{.GitBasis}} lines &middot; Filesystem basis: {{.FsBasis}} lines</p>
    <table>
      <tr><th>Methodology</th><th>Factor (h/line)</th><th>VC hours</th><th>FS hours</th><th>Notes</th></tr>
      {{range .Methodologies}}
      <tr>
        <td>{{if .Reference}}<a href="{{.Reference}}">{{.Label}}</a>{{else}}{{.Label}}{{end}}</td>
        <td class="num">{{.Factor}}</td>
        <td class="num">{{.GitHours}}</td>
        <td class="num">{{.FsHours}}</td>
        <td>{{.Description}}</td>
      </tr>
      {{end}}
    </table>
  </details>
</main>
<script>
function showView(name) {
  document.getElementById('view-git').style.display = name === 'git' ? '' : 'none';
  document.getElementById('view-fs').style.display = name === 'fs' ? '' : 'none';
  document.getElementById('tab-git').classList.toggle('active', name === 'git');
  document.getElementById('tab-fs').classList.toggle('active', name === 'fs');
}
</script>
</body>
</html>
`))
