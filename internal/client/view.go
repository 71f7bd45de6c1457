package client

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// Page is the data rendered into the article view.
type Page struct {
	Articles    []Article
	Fallback    bool
	RefreshedAt time.Time
}

// Renderer turns a Page into the server-rendered article view.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compiles the view template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("articles").Funcs(template.FuncMap{
		"formatDate":     formatDate,
		"formatComments": formatComments,
		"shortDate":      shortDate,
		"excerpt":        excerpt,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse view template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the article view for page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	return nil
}

// formatDate renders a timestamp the way the cards show publish times,
// e.g. "January 15, 2024, 10:30 AM".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006, 3:04 PM")
}

// shortDate renders the created-at footer, e.g. "1/15/2024".
func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// formatComments pluralizes the comment badge.
func formatComments(count int) string {
	switch count {
	case 0:
		return "No comments"
	case 1:
		return "1 comment"
	default:
		return fmt.Sprintf("%d comments", count)
	}
}

// excerpt truncates long-form content for the card body.
func excerpt(s string) string {
	const max = 300
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Article Hub</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #eef2ff; color: #1f2937; }
.container { max-width: 56rem; margin: 0 auto; padding: 1.5rem; }
header { text-align: center; margin-bottom: 2rem; }
header h1 { font-size: 2.25rem; margin-bottom: .25rem; }
header p { color: #4b5563; }
.toolbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1.5rem; }
.toolbar h2 { font-size: 1.5rem; color: #374151; margin: 0; }
.toolbar form { margin: 0; }
.card { background: #fff; border-left: 4px solid #3b82f6; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); padding: 1.25rem; margin-bottom: 1.5rem; }
.card h3 { margin: 0 0 .5rem; font-size: 1.25rem; }
.meta { color: #6b7280; font-size: .875rem; display: flex; gap: 1rem; flex-wrap: wrap; }
.badge { background: #dbeafe; color: #1e40af; border-radius: 9999px; padding: .25rem .75rem; font-size: .8rem; float: right; }
.content { margin-top: 1rem; line-height: 1.6; color: #374151; }
.footer { margin-top: 1rem; padding-top: 1rem; border-top: 1px solid #f3f4f6; font-size: .75rem; color: #9ca3af; }
.empty { text-align: center; padding: 3rem 0; color: #6b7280; }
.notice { background: #fef3c7; color: #92400e; border-radius: .5rem; padding: .75rem 1rem; margin-bottom: 1.5rem; font-size: .875rem; }
</style>
</head>
<body>
<div class="container">
<header>
<h1>&#128240; Article Hub</h1>
<p>Discover amazing articles from our community</p>
</header>
{{if .Fallback}}<div class="notice">Showing sample articles &mdash; the article service is currently unreachable.</div>{{end}}
<div class="toolbar">
<h2>Latest Articles ({{len .Articles}})</h2>
<form method="post" action="/refresh"><button type="submit">&#128260; Refresh</button></form>
</div>
{{if not .Articles}}
<div class="empty">
<h3>No articles yet</h3>
<p>Be the first to share your thoughts!</p>
</div>
{{else}}
{{range .Articles}}
<div class="card">
<span class="badge">&#128172; {{formatComments .CommentCount}}</span>
<h3>{{.Title}}</h3>
<div class="meta">
<span>&#128100; {{.Author}}</span>
<span>&#128197; {{formatDate .PublishTime}}</span>
</div>
<p class="content">{{excerpt .Content}}</p>
<div class="footer">Created: {{shortDate .CreatedAt}}</div>
</div>
{{end}}
{{end}}
<div class="footer" style="text-align:center">Last refreshed {{formatDate .RefreshedAt}}</div>
</div>
</body>
</html>
`
