package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/characterforge/characterforge/internal/rulebook"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"signed":     signed,
	"abilitymod": abilityMod,
}).ParseFS(templateFS, "templates/*.html"))

// signed formats a bonus the way sheets print them: "+2", "-1", "+0".
func signed(n int) string {
	return fmt.Sprintf("%+d", n)
}

func abilityMod(score int) string {
	return signed(rulebook.AbilityModifier(score))
}

// render executes a page template. Pages are buffered so a mid-render
// failure can still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if msg := r.URL.Query().Get("ok"); msg != "" {
		data["FlashOK"] = msg
	}
	if msg := r.URL.Query().Get("error"); msg != "" {
		data["FlashError"] = msg
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
