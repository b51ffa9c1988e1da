package components

import (
	"launchpad/internal/web/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint: revive
)

func Navbar(site content.Site, items []content.NavItem) g.Node {
	return Header(
		Class("navbar"),
		Nav(
			Class("navbar-body"),
			Logo(site),
			Ul(
				Class("nav-items"),
				g.Group(g.Map(items, func(item content.NavItem) g.Node {
					return Li(A(Href(item.Link), g.Text(item.Name)))
				})),
			),
			A(Class("btn btn-primary nav-cta"), Href("#contact"), g.Text("Get early access")),
			Button(
				Type("button"),
				ID("nav-toggle"),
				Class("nav-toggle"),
				g.Attr("aria-label", "Toggle menu"),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", "false"),
				Span(), Span(), Span(),
			),
		),
		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden", ""),
			g.Group(g.Map(items, func(item content.NavItem) g.Node {
				return A(Class("mobile-link"), Href(item.Link), g.Text(item.Name))
			})),
			A(Class("btn btn-primary btn-block mobile-link"), Href("#contact"), g.Text("Get early access")),
		),
	)
}
