// Package components renders the landing page sections with gomponents.
package components

import (
	"launchpad/internal/web/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint: revive
)

func Layout(site content.Site, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(site.Title)),
				Meta(Name("description"), Content(site.Description)),

				Meta(g.Attr("property", "og:title"), Content(site.Title)),
				Meta(g.Attr("property", "og:description"), Content(site.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("page"),
				g.Group(body),

				Div(ID("toasts"), Class("toasts"), g.Attr("aria-live", "polite")),
				Script(Src("/static/js/site.js"), Defer()),
			),
		),
	})
}

// Logo is the brand mark linking back to the top of the page.
func Logo(site content.Site) g.Node {
	return A(
		Class("logo"),
		Href("#home"),
		Span(Class("logo-mark"), g.Attr("aria-hidden", "true")),
		Span(g.Text(site.Brand)),
	)
}

// SectionHeading is the centered title and lead shared by most sections.
func SectionHeading(title, lead string) g.Node {
	return g.Group([]g.Node{
		H2(Class("section-title"), g.Text(title)),
		P(Class("section-lead"), g.Text(lead)),
	})
}

// ToastButton raises an illustrative toast when clicked.
func ToastButton(label, variant string, toast content.Toast) g.Node {
	return Button(
		Type("button"),
		Class("btn btn-lg btn-"+variant),
		g.Attr("data-toast-title", toast.Title),
		g.Attr("data-toast-description", toast.Description),
		g.Text(label),
	)
}

// ScrollTop is the fixed back-to-top button.
func ScrollTop() g.Node {
	return Div(
		Class("scroll-top"),
		Button(
			Type("button"),
			Class("btn btn-outline btn-icon"),
			g.Attr("aria-label", "Back to top"),
			g.Attr("data-scroll-to", "home"),
			g.Text("↑"),
		),
	)
}
