package output

import (
	"html/template"
	"io"
)

type htmlRenderer struct{}

func (htmlRenderer) Render(w io.Writer, reports []Report) error {
	return reportPage.Execute(w, reports)
}

var reportPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>apcheck report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
caption { text-align: left; font-weight: bold; padding: 0.6rem 0; }
.valid { color: #2a7d2a; }
.severity-critical, .severity-must { color: #b02a2a; }
.severity-should { color: #b07d2a; }
.severity-minor, .severity-info { color: #666; }
</style>
</head>
<body>
<h1>Validation report</h1>
{{range .}}
<table>
<caption>{{.Source}}{{if .Valid}} <span class="valid">valid</span>{{end}}</caption>
{{if not .Valid}}
<tr><th>Severity</th><th>Fault</th><th>Narrative</th></tr>
{{range .Faults}}
<tr><td class="severity-{{.Severity}}">{{.Severity}}</td><td>{{.Code}}</td><td>{{.Narrative}}</td></tr>
{{end}}
{{end}}
</table>
{{end}}
</body>
</html>
`))
