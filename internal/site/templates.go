package site

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>promptdeck — prompt engineering examples</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { border-bottom: 2px solid #eee; padding-bottom: .5rem; }
h2 { text-transform: capitalize; margin-top: 2rem; }
li { margin: .4rem 0; }
.difficulty { color: #777; font-size: .85em; }
a { color: #1a6fb5; text-decoration: none; }
a:hover { text-decoration: underline; }
</style>
</head>
<body>
<h1>Prompt Engineering Examples</h1>
{{range .}}
<h2>{{.Name}}</h2>
<ul>
{{range .Examples}}
<li><a href="{{.Slug}}.html">{{.Title}}</a> <span class="difficulty">{{.Difficulty}}</span><br>{{.Summary}}</li>
{{end}}
</ul>
{{end}}
</body>
</html>
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Example.Title}} — promptdeck</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { border-bottom: 2px solid #eee; padding-bottom: .5rem; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; border-radius: 6px; }
code { background: #f6f8fa; padding: .1rem .3rem; border-radius: 3px; }
.meta { color: #777; }
.score { font-size: 1.2em; font-weight: bold; }
.strengths li { color: #1a7f37; }
.improvements li { color: #9a6700; }
.pitfalls li { color: #b35900; }
a { color: #1a6fb5; text-decoration: none; }
</style>
</head>
<body>
<p><a href="index.html">&larr; all examples</a></p>
<h1>{{.Example.Title}}</h1>
<p class="meta">{{.Example.Category}} &middot; {{.Example.Difficulty}}</p>
<p>{{.Example.Summary}}</p>

<h2>Template</h2>
<pre>{{.Example.Template}}</pre>
{{if .Variables}}
<p class="meta">Variables: {{range $i, $v := .Variables}}{{if $i}}, {{end}}<code>{{"{"}}{{$v}}{{"}"}}</code>{{end}}</p>
{{end}}

<h2>Quality score: <span class="score">{{.Score.Score}}/100</span></h2>
{{if .Score.Strengths}}
<ul class="strengths">
{{range .Score.Strengths}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
{{if .Score.Improvements}}
<ul class="improvements">
{{range .Score.Improvements}}<li>{{.}}</li>
{{end}}</ul>
{{end}}

{{.BodyHTML}}

{{if .Example.Pitfalls}}
<h2>Pitfalls</h2>
<ul class="pitfalls">
{{range .Example.Pitfalls}}<li>{{.}}</li>
{{end}}</ul>
{{end}}

{{if .Example.Checklist}}
<h2>Checklist</h2>
<ul>
{{range .Example.Checklist}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`
