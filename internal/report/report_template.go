package report

const reportHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>Cyber Intelligence Weekly</title>
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      margin: 0;
      padding: 0;
      color: #2d2d2d;
      background: #ffffff;
      font-size: 14px;
      line-height: 1.7;
    }

    @page {
      size: A4;
      margin: 40px 50px;
      @bottom-center {
        content: "Page " counter(page) " of " counter(pages);
        font-size: 10px;
        color: #888888;
      }
    }

    .header {
      background-color: #0a0a0a;
      color: #ffffff;
      padding: 20px 30px;
      margin-bottom: 30px;
      border-radius: 4px;
    }

    .header h1 {
      font-weight: 900;
      font-size: 28px;
      margin: 0 0 5px 0;
      letter-spacing: 1px;
    }

    .header .subtitle {
      color: #c8102e;
      font-weight: 600;
      font-size: 14px;
      margin: 0;
    }

    .section {
      margin: 0 30px 28px 30px;
      page-break-inside: avoid;
    }

    .section h2 {
      font-size: 18px;
      border-bottom: 2px solid #0a0a0a;
      padding-bottom: 6px;
      margin-bottom: 14px;
    }

    .summary {
      background: #f5f5f7;
      border-left: 4px solid #0a0a0a;
      padding: 14px 18px;
      border-radius: 4px;
    }

    .entry {
      border: 1px solid #e5e5ea;
      border-radius: 6px;
      padding: 12px 16px;
      margin-bottom: 12px;
    }

    .entry h3 {
      margin: 0 0 6px 0;
      font-size: 15px;
    }

    .entry .meta {
      font-size: 12px;
      color: #6e6e73;
      margin-bottom: 6px;
    }

    .entry .source a {
      color: #0066cc;
      font-size: 12px;
      word-break: break-all;
    }

    .badge {
      display: inline-block;
      padding: 2px 10px;
      font-size: 11px;
      font-weight: 700;
      border-radius: 4px;
      color: #ffffff;
      text-transform: uppercase;
    }

    .sev-critical { background: #c8102e; }
    .sev-high { background: #e8590c; }
    .sev-medium { background: #f0a500; }
    .sev-low { background: #5c7cfa; }

    .empty {
      color: #6e6e73;
      font-style: italic;
    }

    .stats table {
      width: 100%;
      border-collapse: collapse;
    }

    .stats td {
      border: 1px solid #e5e5ea;
      padding: 8px 12px;
    }

    .stats td.value {
      font-weight: 700;
      text-align: right;
    }

    .footer {
      margin: 30px;
      padding-top: 12px;
      border-top: 1px solid #e5e5ea;
      font-size: 11px;
      color: #888888;
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>CYBER INTELLIGENCE WEEKLY</h1>
    <p class="subtitle">{{.Digest.WeekLabel}}</p>
  </div>

  <div class="section">
    <h2>Executive Summary</h2>
    <div class="summary">{{.Digest.ExecutiveSummary}}</div>
  </div>

  <div class="section">
    <h2>Critical Alerts</h2>
    {{if .Digest.CriticalAlerts}}
      {{range .Digest.CriticalAlerts}}
      <div class="entry">
        <h3>{{.Title}}</h3>
        <div class="meta">
          {{if .Severity}}<span class="badge {{severityClass .Severity}}">{{.Severity}}</span>{{end}}
          {{if .CVEIDs}} &nbsp;CVEs: {{joinCVEs .CVEIDs}}{{end}}
        </div>
        <p>{{.Description}}</p>
        <div class="source">{{.SourceName}} &middot; <a href="{{.SourceURL}}">{{.SourceURL}}</a></div>
      </div>
      {{end}}
    {{else}}
      <p class="empty">No significant events reported this week in this category.</p>
    {{end}}
  </div>

  <div class="section">
    <h2>Vulnerabilities &amp; Patches</h2>
    {{if .Digest.VulnerabilitiesAndPatches}}
      {{range .Digest.VulnerabilitiesAndPatches}}
      <div class="entry">
        <h3>{{.Title}}</h3>
        <div class="meta">
          {{if .Severity}}<span class="badge {{severityClass .Severity}}">{{.Severity}}</span>{{end}}
          {{if .CVEIDs}} &nbsp;CVEs: {{joinCVEs .CVEIDs}}{{end}}
        </div>
        <p>{{.Description}}</p>
        <div class="source">{{.SourceName}} &middot; <a href="{{.SourceURL}}">{{.SourceURL}}</a></div>
      </div>
      {{end}}
    {{else}}
      <p class="empty">No significant events reported this week in this category.</p>
    {{end}}
  </div>

  <div class="section">
    <h2>Breaches &amp; Incidents</h2>
    {{if .Digest.BreachesAndIncidents}}
      {{range .Digest.BreachesAndIncidents}}
      <div class="entry">
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        {{if .Impact}}<p><strong>Impact:</strong> {{.Impact}}</p>{{end}}
        <div class="source">{{.SourceName}} &middot; <a href="{{.SourceURL}}">{{.SourceURL}}</a></div>
      </div>
      {{end}}
    {{else}}
      <p class="empty">No significant events reported this week in this category.</p>
    {{end}}
  </div>

  <div class="section">
    <h2>LATAM / Venezuela Intelligence</h2>
    {{if .Digest.LatamIntelligence}}
      {{range .Digest.LatamIntelligence}}
      <div class="entry">
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <div class="source">{{.SourceName}} &middot; <a href="{{.SourceURL}}">{{.SourceURL}}</a></div>
      </div>
      {{end}}
    {{else}}
      <p class="empty">No significant events reported this week in this category.</p>
    {{end}}
  </div>

  {{if .Digest.RecommendedActions}}
  <div class="section">
    <h2>Recommended Actions</h2>
    <ul>
      {{range .Digest.RecommendedActions}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}

  <div class="section stats">
    <h2>Weekly Statistics</h2>
    <table>
      <tr><td>Total items analyzed</td><td class="value">{{.Digest.Stats.TotalItemsAnalyzed}}</td></tr>
      <tr><td>Critical</td><td class="value">{{.Digest.Stats.CriticalCount}}</td></tr>
      <tr><td>High</td><td class="value">{{.Digest.Stats.HighCount}}</td></tr>
      <tr><td>Medium</td><td class="value">{{.Digest.Stats.MediumCount}}</td></tr>
      <tr><td>Sources scraped</td><td class="value">{{.Digest.Stats.SourcesScraped}}</td></tr>
      <tr><td>CVEs identified</td><td class="value">{{.Digest.Stats.CVEsIdentified}}</td></tr>
    </table>
  </div>

  <div class="footer">
    Generated {{.GeneratedAt}} &middot; Verified public sources only. No fabricated content.
  </div>
</body>
</html>
`
