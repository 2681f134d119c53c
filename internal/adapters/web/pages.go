package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/richtext"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/posts/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome     = "home.html"
	pagePost     = "post.html"
	pageNotFound = "notfound.html"
	pageError    = "error.html"
)

// Site holds what every page shows regardless of content.
type Site struct {
	Name     string
	Location *time.Location
}

// Pages renders the site's HTML pages.
type Pages struct {
	site      Site
	renderer  *richtext.Renderer
	templates map[string]*template.Template
}

// NewPages parses the embedded templates.
func NewPages(site Site, renderer *richtext.Renderer) (*Pages, error) {
	if site.Location == nil {
		site.Location = time.UTC
	}
	p := &Pages{
		site:      site,
		renderer:  renderer,
		templates: make(map[string]*template.Template),
	}
	for _, page := range []string{pageHome, pagePost, pageNotFound, pageError} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		p.templates[page] = tmpl
	}
	return p, nil
}

type layoutData struct {
	SiteName string
	Title    string
	Preview  bool
}

// PostItem is a list entry on the home page.
type PostItem struct {
	UID       string
	Path      string
	Title     string
	Subtitle  string
	Author    string
	Date      string
	Published bool
}

type homeData struct {
	layoutData
	Posts    []PostItem
	NextPage string
	TimeZone string
}

type sectionData struct {
	Heading string
	Body    template.HTML
}

type neighborData struct {
	Path  string
	Title string
}

type postData struct {
	layoutData
	Title       string
	BannerURL   string
	Date        string
	Published   bool
	Author      string
	ReadingTime int
	Sections    []sectionData
	Previous    *neighborData
	Next        *neighborData
}

type messageData struct {
	layoutData
	Message string
}

// RenderHome writes the home page for a first page of posts.
func (p *Pages) RenderHome(w io.Writer, list *domain.PostList, preview bool) error {
	data := homeData{
		layoutData: p.layout("Home", preview),
		Posts:      make([]PostItem, 0, len(list.Results)),
		NextPage:   string(list.NextPage),
		TimeZone:   p.site.Location.String(),
	}
	for _, post := range list.Results {
		data.Posts = append(data.Posts, PostItem{
			UID:       post.UID,
			Path:      domain.PostPath(post.UID),
			Title:     post.Title,
			Subtitle:  post.Subtitle,
			Author:    post.Author,
			Date:      FormatDate(post.PublicationDate, p.site.Location),
			Published: post.IsPublished(),
		})
	}
	return p.execute(w, pageHome, data)
}

// RenderPost writes a post page.
func (p *Pages) RenderPost(w io.Writer, view *application.PostView, preview bool) error {
	post := view.Post
	data := postData{
		layoutData:  p.layout(post.Title, preview),
		Title:       post.Title,
		BannerURL:   post.BannerURL,
		Date:        FormatDate(post.PublicationDate, p.site.Location),
		Published:   post.IsPublished(),
		Author:      post.Author,
		ReadingTime: view.ReadingTime,
		Sections:    make([]sectionData, 0, len(post.Content)),
		Previous:    toNeighbor(view.Previous),
		Next:        toNeighbor(view.Next),
	}
	for _, block := range post.Content {
		data.Sections = append(data.Sections, sectionData{
			Heading: block.Heading,
			Body:    p.renderer.AsHTML(block.Body),
		})
	}
	return p.execute(w, pagePost, data)
}

// RenderNotFound writes the 404 page.
func (p *Pages) RenderNotFound(w io.Writer, preview bool) error {
	return p.execute(w, pageNotFound, messageData{
		layoutData: p.layout("Página não encontrada", preview),
		Message:    "Página não encontrada",
	})
}

// RenderError writes a generic failure page.
func (p *Pages) RenderError(w io.Writer, message string, preview bool) error {
	return p.execute(w, pageError, messageData{
		layoutData: p.layout("Erro", preview),
		Message:    message,
	})
}

func (p *Pages) layout(title string, preview bool) layoutData {
	return layoutData{SiteName: p.site.Name, Title: title, Preview: preview}
}

func (p *Pages) execute(w io.Writer, page string, data any) error {
	if err := p.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}

func toNeighbor(n *domain.NeighborPost) *neighborData {
	if n == nil {
		return nil
	}
	return &neighborData{Path: domain.PostPath(n.UID), Title: n.Title}
}
