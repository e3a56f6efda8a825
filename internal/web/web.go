package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/avanekar/PdfChatAPI/internal/adapter/utils"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	pages  = template.Must(template.ParseFS(templateFS, "templates/*.html"))
	logger = logger_i.NewLogger("Web")
)

// HomePageHandler serves the upload page. All business rules live behind
// the JSON API; the page just drives it.
func HomePageHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "home.html", nil)
}

func ChatPageHandler(w http.ResponseWriter, r *http.Request) {
	chatID := utils.GetChiURLParam(r, "chatID")
	if chatID == "" {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}
	renderPage(w, "chat.html", map[string]string{"ChatID": chatID})
}

func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("Error rendering page", "page", name, "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}
