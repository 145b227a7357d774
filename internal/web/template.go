package web

import (
	"fmt"
	"html/template"
	"io"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"pct": func(f float64) string {
		return fmt.Sprintf("%.1f%%", f*100)
	},
	"dur": func(f float64) string {
		return fmt.Sprintf("%.6g", f)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>nev-ttl</title>
<style>
body { font-family: monospace; max-width: 700px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
.links a { margin-right: 1em; }
</style>
</head>
<body>
<h1>{{.Source}}</h1>
<table>
<tr><th>Events</th><td>{{len .Result.Times}}</td></tr>
<tr><th>Time unit</th><td>{{.Result.Unit}}</td></tr>
<tr><th>Span</th><td>{{dur .Result.Span}}</td></tr>
<tr><th>Loaded</th><td>{{.LoadedAt.UTC.Format "2006-01-02 15:04:05"}} UTC</td></tr>
</table>
{{if .Stats}}
<table>
<tr><th>Channel</th><th>Pulses</th><th>Mean width</th><th>Duty cycle</th></tr>
{{range .Stats}}
<tr><td>{{.Channel}}</td><td>{{.Count}}</td><td>{{dur .MeanWidth}}</td><td>{{pct .DutyCycle}}</td></tr>
{{end}}
</table>
{{else}}
<p>No pulses on any channel.</p>
{{end}}
<p class="links"><a href="/pulses.json">pulses.json</a><a href="/chart">chart</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, view View) {
	// Template errors on a fixed template are programming errors; keep
	// the handler simple.
	_ = indexTmpl.Execute(w, view)
}
