// Package content holds the static copy rendered on the landing page.
package content

// Site is the per-deployment part of the page copy.
type Site struct {
	// Brand is the company name shown in the navbar, about section and footer.
	Brand string
	// Product is the product announced in the hero.
	Product string
	// Title is the document title.
	Title string
	// Description is the meta description.
	Description string
}

// DefaultSite is the copy used when nothing is configured.
var DefaultSite = Site{ //nolint: gochecknoglobals
	Brand:       "LaunchPad",
	Product:     "KNOX AI",
	Title:       "KNOX AI - Launch your startup landing page in hours",
	Description: "A beautiful, conversion-focused landing page template for early-stage startups.",
}

// WithDefaults fills empty fields from DefaultSite.
func (s Site) WithDefaults() Site {
	if s.Brand == "" {
		s.Brand = DefaultSite.Brand
	}
	if s.Product == "" {
		s.Product = DefaultSite.Product
	}
	if s.Title == "" {
		s.Title = DefaultSite.Title
	}
	if s.Description == "" {
		s.Description = DefaultSite.Description
	}

	return s
}

type NavItem struct {
	Name string
	Link string
}

type Feature struct {
	Title       string
	Description string
}

type PricingPlan struct {
	Name        string
	Price       string
	Description string
	Features    []string
	MostPopular bool
}

type FAQItem struct {
	Question string
	Answer   string
}

// Toast is an illustrative notification raised by a button.
type Toast struct {
	Title       string
	Description string
}

//nolint: gochecknoglobals
var (
	NavItems = []NavItem{
		{Name: "Home", Link: "#home"},
		{Name: "About", Link: "#about"},
		{Name: "Features", Link: "#features"},
		{Name: "Pricing", Link: "#pricing"},
		{Name: "FAQ", Link: "#faq"},
		{Name: "Contact", Link: "#contact"},
	}

	Features = []Feature{
		{
			Title:       "Launch-ready in hours",
			Description: "Spin up a polished landing page in an afternoon instead of weeks. Focus on your product, not pixel-pushing.",
		},
		{
			Title:       "Built for early-stage founders",
			Description: "Validate ideas quickly, capture email signups, and share a credible link with investors and early adopters.",
		},
		{
			Title:       "Beautiful by default",
			Description: "Designed with modern UI best practices so your startup looks professional from day one.",
		},
	}

	PricingPlans = []PricingPlan{
		{
			Name:        "Starter",
			Price:       "$0",
			Description: "Perfect for validating a new idea and collecting your first signups.",
			Features:    []string{"1 landing page", "Basic analytics", "Email capture"},
		},
		{
			Name:        "Growth",
			Price:       "$29",
			Description: "For founders starting to scale traffic and run experiments.",
			Features:    []string{"Unlimited pages", "A/B testing", "Priority support"},
			MostPopular: true,
		},
		{
			Name:        "Scale",
			Price:       "$79",
			Description: "For teams that need a polished presence and serious reliability.",
			Features:    []string{"Custom domains", "Team access", "Advanced insights"},
		},
	}

	FAQ = []FAQItem{
		{
			Question: "Do I need to know how to code to use LaunchPad?",
			Answer: "Nope. LaunchPad is built so non-technical founders can launch a credible landing page by " +
				"editing copy and a few settings. You can always hand it to a developer later if you want to customize it further.",
		},
		{
			Question: "Can I use LaunchPad for more than one idea?",
			Answer: "Yes. You can duplicate the layout, swap in new copy and images, and reuse it for as many " +
				"experiments or startup ideas as you like.",
		},
		{
			Question: "How long does it take to launch my first page?",
			Answer: "Most founders ship a solid first version in an afternoon. The structure, sections, and " +
				"components are already in place, so you're mainly focusing on your message.",
		},
		{
			Question: "What happens when I'm ready to grow beyond a simple landing page?",
			Answer: "LaunchPad is a plain Go service rendering server-side HTML, so your developer can extend it " +
				"into a full marketing site or product without rebuilding from scratch.",
		},
	}

	About = []string{
		"LaunchPad is a starter-friendly landing page kit for founders who want to ship quickly without hiring " +
			"a designer or developer. It gives you a clean, conversion-focused layout that looks great on day one " +
			"and grows with your product.",
		"Whether you're validating a new idea, opening a private beta, or preparing for your first investor " +
			"meetings, LaunchPad helps you tell a clear story, capture interest, and launch with confidence.",
	}
)

// EarlyAccessToast is shown by the hero's primary button.
func EarlyAccessToast(site Site) Toast {
	return Toast{
		Title:       "You're on the early access list.",
		Description: "We'll email you as soon as " + site.Product + " opens the beta.",
	}
}

// DemoToast is shown by the hero's secondary button.
func DemoToast(site Site) Toast {
	return Toast{
		Title:       "Demo coming soon",
		Description: "We're putting the final touches on the " + site.Product + " walkthrough.",
	}
}
