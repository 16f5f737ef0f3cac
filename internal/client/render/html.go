package render

import (
	"html/template"
	"io"
)

var cardsTemplate = template.Must(template.New("cards").Parse(`
{{- define "card" -}}
<div class="recipe-card" data-id="{{.ID}}">
  <img src="{{.ImageURL}}" alt="{{.Title}}">
  <div class="recipe-card-body">
    <h3>{{.Title}}</h3>
    <p class="description">{{.Description}}</p>
    <div class="meta">
      <span class="creator">{{.ByText}}</span>
      <span data-likes-count="{{.ID}}">{{.LikesText}}</span>
    </div>
    <div class="actions">
      <button class="view-details-btn">{{.DetailsLabel}}</button>
      {{- if .ShowToggles}}
      <button class="save-recipe-btn">{{.SaveLabel}}</button>
      <button class="like-recipe-btn" aria-pressed="{{.Liked}}" aria-label="{{.LikeAriaLabel}}">{{.LikeLabel}}</button>
      {{- end}}
    </div>
    {{- if .ShowOwnerControls}}
    <div class="owner-actions">
      <button class="edit-recipe-btn">Edit</button>
      <button class="delete-recipe-btn">Delete</button>
    </div>
    {{- end}}
  </div>
  <div class="recipe-card-details{{if not .Expanded}} hidden{{end}}">
    <h4>Ingredients:</h4>
    <ul>
      {{- range .Ingredients}}
      <li><label><input type="checkbox"><span>{{.}}</span></label></li>
      {{- else}}
      <li>No ingredients listed.</li>
      {{- end}}
    </ul>
    <h4>Instructions:</h4>
    <p class="instructions">{{.Instructions}}</p>
  </div>
</div>
{{- end -}}
{{- if .Cards}}{{range .Cards}}{{template "card" .}}
{{end}}{{else}}<p class="empty-message">{{.Empty}}</p>
{{end -}}
`))

// HTML writes cards as an HTML fragment, one .recipe-card per card.
func HTML(w io.Writer, cards []Card, empty string) error {
	return cardsTemplate.Execute(w, struct {
		Cards []Card
		Empty string
	}{cards, empty})
}
