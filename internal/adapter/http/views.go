package httpadapter

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"emerald-console/internal/adapter/usecase"
	"emerald-console/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("console").Funcs(template.FuncMap{
	"townName":  townName,
	"idString":  func(id int64) string { return strconv.FormatInt(id, 10) },
	"timestamp": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05") },
}).ParseFS(templateFS, "templates/*.html"))

// pageData is what the page template renders.
type pageData struct {
	Shell   usecase.ShellView
	Seller  *domain.Seller
	Product *domain.Product

	// ShowActivity switches the page to the activity log.
	ShowActivity  bool
	Activity      []domain.Activity
	ActivityError string
}

func newPageData(v usecase.ShellView) pageData {
	data := pageData{Shell: v}
	if s, ok := domain.SelectedSeller(v.Nav); ok {
		data.Seller = &s
	}
	if p, ok := domain.SelectedProduct(v.Nav); ok {
		data.Product = &p
	}
	return data
}

func pageComponent(data pageData) templ.Component {
	return templ.FromGoHTML(templates.Lookup("page"), data)
}

func suggestionsComponent(v usecase.KeywordSearchView) templ.Component {
	return templ.FromGoHTML(templates.Lookup("suggestions"), v)
}

func townName(towns []domain.Town, id *int64) string {
	if id == nil {
		return "Any"
	}
	for _, t := range towns {
		if t.ID == *id {
			return t.Name
		}
	}
	return "#" + strconv.FormatInt(*id, 10)
}
