package components

import (
	"launchpad/internal/web/content"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint: revive
)

func Hero(site content.Site) g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		Div(Class("hero-waves"), g.Attr("aria-hidden", "true")),
		Div(
			Class("container narrow hero-body"),
			P(Class("eyebrow"), g.Text("Introducing")),
			H1(Class("hero-title"), g.Text(site.Product)),
			P(
				Class("hero-lead"),
				g.Textf("Launch your startup landing page in hours, not weeks. %s gives you a beautiful, "+
					"conversion-focused template with subtle motion and a wavy hero that feels alive.", site.Product),
			),
			Div(
				Class("hero-actions"),
				ToastButton("Get Early Access", "primary", content.EarlyAccessToast(site)),
				ToastButton("Watch Demo", "outline", content.DemoToast(site)),
			),
		),
	)
}

func About(site content.Site, paragraphs []string) g.Node {
	return Section(
		ID("about"),
		Class("section"),
		Div(
			Class("container about"),
			Div(
				Class("about-media"),
				Img(
					Src("/static/img/founders.svg"),
					Alt("Founders collaborating in a modern workspace"),
				),
			),
			Div(
				Class("about-copy"),
				H2(Class("section-title"), g.Text("About "+site.Brand)),
				g.Group(g.Map(paragraphs, func(p string) g.Node {
					return P(Class("muted"), g.Text(p))
				})),
			),
		),
	)
}

func FeatureGrid(features []content.Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, Div(
			Class("card feature-card"),
			Div(Class("feature-index"), g.Text(strconv.Itoa(i+1))),
			H3(Class("card-title"), g.Text(f.Title)),
			P(Class("muted"), g.Text(f.Description)),
		))
	}

	return Section(
		ID("features"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeading("Features", "Everything you need to launch a credible landing page in record time."),
			Div(Class("grid grid-3"), g.Group(cards)),
		),
	)
}

func Pricing(plans []content.PricingPlan) g.Node {
	return Section(
		ID("pricing"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeading("Pricing", "Simple, transparent plans designed for early-stage startups."),
			Div(Class("grid grid-3"), g.Group(g.Map(plans, pricingCard))),
		),
	)
}

func pricingCard(plan content.PricingPlan) g.Node {
	class, variant := "card plan", "outline"
	if plan.MostPopular {
		class, variant = "card plan plan-popular", "primary"
	}

	return Div(
		Class(class),
		Div(
			Class("plan-header"),
			Span(Class("plan-name"), g.Text(plan.Name)),
			g.If(plan.MostPopular, Span(Class("badge"), g.Text("Popular"))),
		),
		Div(
			Class("plan-price"),
			Span(Class("price"), g.Text(plan.Price)),
			Span(Class("per"), g.Text("/month")),
		),
		P(Class("muted"), g.Text(plan.Description)),
		A(Class("btn btn-block btn-"+variant), Href("#contact"), g.Text("Get Started")),
		Ul(
			Class("checklist"),
			g.Group(g.Map(plan.Features, func(item string) g.Node {
				return Li(Span(Class("check"), g.Attr("aria-hidden", "true"), g.Text("✓")), Span(g.Text(item)))
			})),
		),
	)
}

func FAQ(site content.Site, items []content.FAQItem) g.Node {
	return Section(
		ID("faq"),
		Class("section"),
		Div(
			Class("container narrow"),
			SectionHeading("Frequently asked questions",
				"Everything you need to know before you launch with "+site.Brand+"."),
			Div(
				Class("accordion"),
				g.Group(g.Map(items, func(item content.FAQItem) g.Node {
					return Details(
						Class("accordion-item"),
						g.Attr("name", "faq"),
						Summary(g.Text(item.Question)),
						P(Class("muted"), g.Text(item.Answer)),
					)
				})),
			),
		),
	)
}

// Contact renders the inquiry form. The script posts it as JSON to endpoint.
func Contact(endpoint string) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		Div(
			Class("container narrow"),
			SectionHeading("Contact us", "Tell us a bit about your startup and we'll get back to you."),
			Div(
				Class("card"),
				g.El("form",
					ID("contact-form"),
					Class("form"),
					Method("post"),
					Action(endpoint),
					g.Attr("data-endpoint", endpoint),
					Div(
						Class("grid grid-2"),
						field("name", "Name", Input(ID("name"), Name("name"), Type("text"), Placeholder("Alex Founder"))),
						field("email", "Email", Input(ID("email"), Name("email"), Type("email"), Placeholder("you@example.com"))),
					),
					field("message", "Tell us about your startup", Textarea(
						ID("message"),
						Name("message"),
						g.Attr("rows", "5"),
						Placeholder("What are you building and how can we help?"),
					)),
					Div(
						Class("form-actions"),
						Button(Type("submit"), Class("btn btn-primary"), g.Text("Send message")),
					),
				),
			),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(
		Class("field"),
		Label(For(id), g.Text(label)),
		control,
	)
}

func PageFooter(site content.Site, year int) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-body"),
			P(g.Textf("© %d %s. All rights reserved.", year, site.Brand)),
			Div(
				Class("footer-links"),
				A(Href("#home"), g.Text("Back to top")),
				A(Class("hide-sm"), Href("#contact"), g.Text("Contact")),
			),
		),
	)
}
