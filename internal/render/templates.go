// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

// builtinLayouts defines the default page templates. A layouts
// directory can override any of them by template name.
const builtinLayouts = `
{{define "head"}}
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
{{end}}

{{define "default"}}<!DOCTYPE html>
<html lang="en">
<head>
{{template "head" .}}
<title>{{.Title}}{{if .SiteTitle}} - {{.SiteTitle}}{{end}}</title>
</head>
<body>
<main>
{{.Content}}
</main>
</body>
</html>
{{end}}

{{define "post"}}<!DOCTYPE html>
<html lang="en">
<head>
{{template "head" .}}
<title>{{.Title}}{{if .SiteTitle}} - {{.SiteTitle}}{{end}}</title>
</head>
<body>
<article>
<header>
<h1>{{.Title}}</h1>
<p>
{{if .Author}}<span class="author">{{.Author}}</span>{{end}}
{{if not .Date.IsZero}}<time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "January 2, 2006"}}</time>{{end}}
</p>
{{if .Categories}}<ul class="categories">{{range .Categories}}<li>{{.}}</li>{{end}}</ul>{{end}}
</header>
{{.Content}}
</article>
</body>
</html>
{{end}}

{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.SiteTitle}}</title>
</head>
<body>
<h1>{{.SiteTitle}}</h1>
<ul class="posts">
{{range .Entries}}
<li>
<a href="{{.URL}}">{{.Title}}</a>
{{if not .Date.IsZero}}<time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "2006-01-02"}}</time>{{end}}
{{if .Author}}<span class="author">{{.Author}}</span>{{end}}
</li>
{{end}}
</ul>
</body>
</html>
{{end}}
`
