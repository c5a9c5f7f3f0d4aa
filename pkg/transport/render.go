package transport

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/theme"
	"github.com/pazarplus/toastkit/pkg/toast"
	"github.com/pazarplus/toastkit/pkg/transition"
)

// regionHTML renders one position bucket. The region element carries a
// stable ID so DataStar can morph it in place; toasts inside carry the
// accessibility attributes and the directional transition class for their
// current phase.
const regionHTML = `<div id="toast-region-{{.Position}}" class="toast-region toast-region-{{.Position}}">
{{- range .Toasts}}
  <div id="toast-{{.ID}}" class="toast toast-{{.Variant}} {{.Transition}}"
    role="{{.Role}}" aria-live="{{.AriaLive}}"{{if .Title}} aria-labelledby="toast-{{.ID}}-title"{{end}}
    tabindex="0"
    style="background-color: {{.Background}}; transition-delay: {{.StaggerMS}}ms"
    data-on-keydown="evt.key === 'Escape' &amp;&amp; @delete('/toasts/{{.ID}}?reason=escape')"
    data-on-mouseenter="@post('/toasts/{{.ID}}/pause')"
    data-on-mouseleave="@post('/toasts/{{.ID}}/resume')">
    <span class="toast-icon" aria-hidden="true" style="color: {{.IconColor}}">{{.Icon}}</span>
    <div class="toast-body">
      {{- if .Title}}
      <strong id="toast-{{.ID}}-title" class="toast-title">{{.Title}}</strong>
      {{- end}}
      <span class="toast-message">{{.Message}}</span>
    </div>
    <button type="button" class="toast-close" aria-label="{{.CloseLabel}}"
      data-on-click="@delete('/toasts/{{.ID}}')">&times;</button>
    {{- if .ShowProgress}}
    <div class="toast-progress" style="width: {{.Progress}}%; background-color: {{.ProgressColor}}"></div>
    {{- end}}
  </div>
{{- end}}
</div>`

var regionTmpl = template.Must(template.New("toast-region").Parse(regionHTML))

type toastView struct {
	ID            string
	Title         string
	Message       string
	Variant       string
	Role          string
	AriaLive      string
	CloseLabel    string
	Icon          string
	Background    template.CSS
	IconColor     template.CSS
	ProgressColor template.CSS
	Transition    string
	StaggerMS     int64
	Progress      string
	ShowProgress  bool
}

type regionView struct {
	Position string
	Toasts   []toastView
}

// renderRegion produces the HTML fragment for one position bucket.
func renderRegion(th *theme.Theme, pos toast.Position, items []stack.Item) (string, error) {
	view := regionView{Position: pos.String()}
	for _, item := range items {
		n := item.Notification
		style := th.Style(n.Variant)

		tok := transition.Enter(n.Position)
		var stagger int64
		if item.Phase.Leaving() {
			tok = transition.Exit(n.Position)
		} else {
			stagger = transition.Stagger(n.StackIndex).Milliseconds()
		}

		view.Toasts = append(view.Toasts, toastView{
			ID:            n.ID,
			Title:         n.Title,
			Message:       n.Message,
			Variant:       n.Variant.String(),
			Role:          style.Role,
			AriaLive:      style.AriaLive,
			CloseLabel:    style.CloseLabel,
			Icon:          style.Icon,
			Background:    template.CSS(style.Palette.Background),
			IconColor:     template.CSS(style.Palette.Icon),
			ProgressColor: template.CSS(style.Palette.Progress),
			Transition:    tok.String(),
			StaggerMS:     stagger,
			Progress:      fmt.Sprintf("%.1f", item.Progress),
			ShowProgress:  n.ShowProgress && !n.Persistent(),
		})
	}

	var b strings.Builder
	if err := regionTmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("transport: render region %s: %w", pos, err)
	}
	return b.String(), nil
}
