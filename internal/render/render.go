// Package render projects search state into HTML. Grid is a pure function
// of the result list; it keeps no state and renders nothing for an empty
// list. html/template provides contextual escaping for titles and URLs.
package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/allanninal/recipe-finder/internal/models"
)

// PageData is everything the single page needs: the echoed query text, the
// inline error line (empty when there is none), and the current results.
type PageData struct {
	Query   string
	Error   string
	Recipes []models.Recipe
}

const gridHTML = `{{define "grid"}}{{if .}}<section class="results">
  <h2>Recipes You Can Make</h2>
  <div class="recipe-grid">
{{range .}}    <article class="recipe-card">
      <img src="{{.Image}}" alt="{{.Title}}">
      <strong>{{.Title}}</strong>
    </article>
{{end}}  </div>
</section>{{end}}{{end}}`

const pageHTML = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Recipe Finder</title>
  <style>
    body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
    .search-form { display: flex; gap: 0.5rem; }
    .search-form input { flex: 1; padding: 0.5rem; }
    .error { color: #b00020; }
    .recipe-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 1rem; }
    .recipe-card img { width: 100%; height: auto; }
  </style>
</head>
<body>
  <h1>Recipe Finder</h1>
  <form class="search-form" action="/search" method="get">
    <input type="text" name="ingredients" value="{{.Query}}" placeholder="Enter ingredients (e.g. chicken, rice)">
    <button type="submit">Search</button>
  </form>
{{if .Error}}  <p class="error">{{.Error}}</p>
{{end}}{{template "grid" .Recipes}}
</body>
</html>{{end}}`

var templates = template.Must(template.New("render").Parse(gridHTML + pageHTML))

// Grid renders the result grid for the given recipes, in order, one card per
// recipe showing the image at its given URL and the title as emphasized
// text. An empty list yields the empty string: no heading, no container.
// Cards carry no identity beyond their position in the sequence.
func Grid(recipes []models.Recipe) (template.HTML, error) {
	if len(recipes) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "grid", recipes); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Page renders the full single page: search form, optional inline error,
// and the grid.
func Page(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}
