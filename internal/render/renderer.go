// Package render turns board state into the kiosk HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"airport-transfer-board/internal/domain/entity"
)

// ErrorMessage replaces the table when the datasets could not be loaded
const ErrorMessage template.HTML = `<p style="color:red;text-align:center;">Error loading data.</p>`

// Screen names used by the page template
const (
	ScreenHome   = "home"
	ScreenSearch = "search"
)

// Search outcomes used by the page template
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// TableView is one page of the active dataset
type TableView struct {
	Rows        []entity.Booking
	CurrentPage int
	TotalPages  int
}

// PageView is the whole kiosk document
type PageView struct {
	Title          string
	Screen         string
	Container      template.HTML
	RefreshSeconds int
	Search         SearchView
}

type SearchView struct {
	Query          string
	LegendVisible  bool
	ResultVisible  bool
	Outcome        string
	Booking        *entity.Booking
	DatasetTitle   string
	ContactMessage string
	QRImageURL     string
}

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	t, err := template.New("board").Parse(tmplTable + tmplPage)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: t}, nil
}

// RenderTable renders the table and, for multi-page datasets, the page caption
func (r *HTMLRenderer) RenderTable(v TableView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "table", v); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (r *HTMLRenderer) ErrorMessage() template.HTML {
	return ErrorMessage
}

func (r *HTMLRenderer) RenderPage(w io.Writer, v PageView) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
