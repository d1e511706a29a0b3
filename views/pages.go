// Package views renders the gallery pages as templ components.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/showcase/gallery"
	"github.com/eringen/showcase/propstable"
)

// htmlWriter accumulates the first write error so page bodies can be
// written without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func layout(site SiteConfig, meta PageMeta, jsonLD string, body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		title := site.Name
		if meta.Title != "" {
			title = meta.Title + " | " + site.Name
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		h.raw("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(title)
		h.raw("</title>")
		if meta.Description != "" {
			h.raw("<meta name=\"description\"")
			h.attr("content", meta.Description)
			h.raw(">")
		}
		if meta.URL != "" {
			h.raw("<link rel=\"canonical\"")
			h.attr("href", meta.URL)
			h.raw("><meta property=\"og:url\"")
			h.attr("content", meta.URL)
			h.raw(">")
		}
		h.raw("<meta property=\"og:title\"")
		h.attr("content", title)
		h.raw("><meta property=\"og:type\"")
		h.attr("content", ogType)
		h.raw(">")
		if jsonLD != "" {
			h.raw("<script type=\"application/ld+json\">" + jsonLD + "</script>")
		}
		h.raw("<link rel=\"stylesheet\" href=\"/public/styles.css\"></head><body><main class=\"container\">")
		body(h)
		h.raw("</main></body></html>")
		return h.err
	})
}

// Overview renders the featured hero followed by one grid per category.
func Overview(p OverviewPage) templ.Component {
	return layout(p.Site, p.Meta, ItemListJsonLD(p.Site, p.Groups), func(h *htmlWriter) {
		if p.Featured != nil {
			featured(h, *p.Featured)
		}
		if len(p.Groups) == 0 {
			h.raw("<p class=\"empty\">No examples found.</p>")
		}
		for _, g := range p.Groups {
			h.raw("<section class=\"category\"")
			h.attr("id", g.Category)
			h.raw("><h2 class=\"mt-20\">")
			h.text(CategoryHeading(g.Category))
			h.raw("</h2><div class=\"content-grid\">")
			for _, e := range g.Examples {
				card(h, e)
			}
			h.raw("</div></section>")
		}
	})
}

func featured(h *htmlWriter, f Featured) {
	h.raw("<section class=\"featured\"><a class=\"group\"")
	h.attr("href", ExampleLink(f.Route))
	h.raw("><div class=\"preview\"><img width=\"1024\" height=\"768\"")
	h.attr("src", f.ImageURL)
	h.attr("alt", f.Title+" Example Preview")
	h.raw("></div><div><h2>")
	h.text(f.Title)
	h.raw("</h2><p class=\"light\">")
	h.text(f.Description)
	h.raw("</p><span class=\"link\">See example</span></div></a></section>")
}

func card(h *htmlWriter, e gallery.Example) {
	h.raw("<a class=\"content-grid-item\"")
	h.attr("href", ExampleLink(e.Route))
	h.raw("><div class=\"preview\"><img loading=\"lazy\"")
	h.attr("src", e.ImageURL)
	h.attr("alt", e.Title())
	h.raw("></div><span class=\"kicker\">")
	h.text(Kicker(e.Category))
	h.raw("</span><h3>")
	h.text(e.Title())
	if e.IsPro() {
		h.raw(" <span class=\"badge-pro\">Pro</span>")
	}
	h.raw("</h3><p class=\"light\">")
	h.text(e.Description())
	h.raw("</p><span class=\"link\">See example</span></a>")
}

// Example renders one example with its document body.
func Example(p ExamplePage) templ.Component {
	return layout(p.Site, p.Meta, "", func(h *htmlWriter) {
		e := p.Example
		h.raw("<article class=\"example\"><span class=\"kicker\">")
		h.text(Kicker(e.Category))
		h.raw("</span><h1>")
		h.text(e.Title())
		if e.IsPro() {
			h.raw(" <span class=\"badge-pro\">Pro</span>")
		}
		h.raw("</h1><img class=\"preview\"")
		h.attr("src", e.ImageURL)
		h.attr("alt", e.Title())
		h.raw("><div class=\"prose\">")
		h.component(Markdown(e.Body))
		h.raw("</div></article>")
	})
}

// Hook renders a hook's params and returns tables.
func Hook(p HookPage) templ.Component {
	return layout(p.Site, p.Meta, "", func(h *htmlWriter) {
		h.raw("<article class=\"reference\"><h1><code>")
		h.text(p.Hook)
		h.raw("</code></h1>")
		propsTable(h, p.Table)
		h.raw("</article>")
	})
}

func propsTable(h *htmlWriter, t propstable.Table) {
	for _, s := range t.Sections() {
		if s.Title != "" {
			h.raw("<h2>")
			h.text(s.Title)
			h.raw("</h2>")
		}
		h.raw("<table class=\"props\"><thead><tr><th>Name</th><th>Type</th></tr></thead><tbody>")
		for _, r := range s.Rows {
			h.raw("<tr><td><code>")
			h.text(r.Name)
			h.raw("</code></td><td><code>")
			h.text(r.Type)
			h.raw("</code>")
			if r.Description != "" {
				h.raw("<div class=\"description\">")
				h.component(Markdown(r.Description))
				h.raw("</div>")
			}
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table>")
	}
}

// AdminLogin renders the admin password form.
func AdminLogin(site SiteConfig, showError bool, csrfToken string) templ.Component {
	return layout(site, PageMeta{Title: "Admin"}, "", func(h *htmlWriter) {
		h.raw("<form class=\"admin-login\" method=\"post\" action=\"/admin/login/\">")
		if showError {
			h.raw("<p class=\"error\">Invalid password.</p>")
		}
		h.raw("<input type=\"hidden\" name=\"_csrf\"")
		h.attr("value", csrfToken)
		h.raw("><label>Password <input type=\"password\" name=\"password\" autofocus></label>")
		h.raw("<button type=\"submit\">Log in</button></form>")
	})
}

// AdminDashboard renders the index status and the reindex action.
func AdminDashboard(p AdminDashboardPage) templ.Component {
	return layout(p.Site, PageMeta{Title: "Admin"}, "", func(h *htmlWriter) {
		h.raw("<section class=\"admin\"><h1>Example index</h1>")
		if p.Message != "" {
			h.raw("<p class=\"message\">")
			h.text(p.Message)
			h.raw("</p>")
		}
		h.raw("<dl><dt>Indexed examples</dt><dd>")
		h.text(strconv.Itoa(p.Examples))
		h.raw("</dd><dt>Last indexed</dt><dd>")
		if p.LastIndexed == "" {
			h.raw("never")
		} else {
			h.text(p.LastIndexed)
		}
		h.raw("</dd></dl><form method=\"post\" action=\"/admin/reindex/\"><input type=\"hidden\" name=\"_csrf\"")
		h.attr("value", p.CSRFToken)
		h.raw("><button type=\"submit\">Reindex</button></form>")
		h.raw("<form method=\"post\" action=\"/admin/logout/\"><input type=\"hidden\" name=\"_csrf\"")
		h.attr("value", p.CSRFToken)
		h.raw("><button type=\"submit\">Log out</button></form></section>")
	})
}

// NotFound renders the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return layout(site, PageMeta{Title: "Not found"}, "", func(h *htmlWriter) {
		h.raw("<h1>404</h1><p>This page does not exist. <a href=\"/examples/\">Browse examples</a>.</p>")
	})
}

// ServerError renders the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return layout(site, PageMeta{Title: "Error"}, "", func(h *htmlWriter) {
		h.raw("<h1>Something went wrong</h1><p>Please try again later.</p>")
	})
}
