// Package site holds the static portfolio content served to the client-side
// sections (About, Projects, Resume, Contacts).
package site

// Section identifies one scrollable page section.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Sections lists the page sections in display order.
func Sections() []Section {
	return []Section{
		{ID: "about", Label: "About"},
		{ID: "projects", Label: "Projects"},
		{ID: "resume", Label: "Resume"},
		{ID: "contacts", Label: "Contacts"},
	}
}

// ProjectLinks holds the outbound links for a project card.
type ProjectLinks struct {
	Demo string `json:"demo,omitempty"`
	Repo string `json:"repo,omitempty"`
}

// ProjectDetails holds the expanded accordion content for a project.
type ProjectDetails struct {
	Problem      string   `json:"problem,omitempty"`
	Architecture string   `json:"architecture,omitempty"`
	Decisions    []string `json:"decisions,omitempty"`
}

// ProjectMedia holds display assets for a project card.
type ProjectMedia struct {
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	OneLiner   string         `json:"oneLiner"`
	Stack      []string       `json:"stack"`
	Highlights []string       `json:"highlights"`
	Links      ProjectLinks   `json:"links"`
	Details    ProjectDetails `json:"details"`
	Media      ProjectMedia   `json:"media"`
}

var projects = []Project{
	{
		Slug:     "salon-booking",
		Title:    "Booking & Management System",
		OneLiner: "Role-based booking, schedules, and stylist galleries in one app.",
		Stack:    []string{"Next.js (App Router)", "TypeScript", "Prisma", "PostgreSQL", "RBAC"},
		Highlights: []string{
			"Built admin/stylist/customer dashboards with RBAC-protected routes.",
			"Prevented double-bookings via server-side conflict checks.",
			"Unified booking + gallery + management into a single deployable app.",
		},
		Links: ProjectLinks{
			Demo: "https://example.com",
			Repo: "https://github.com/you/salon-booking",
		},
		Details: ProjectDetails{
			Problem:      "Salon needed a single system for bookings, galleries, and role-separated workflows.",
			Architecture: "Server actions for mutations, Prisma for data layer, PostgreSQL schema enforcing consistency.",
			Decisions: []string{
				"Chose Next.js to consolidate FE/BE and deployment.",
				"Added RBAC early to avoid privilege leakage during feature growth.",
			},
		},
		Media: ProjectMedia{Thumbnail: "/images/salon.png"},
	},
	{
		Slug:     "contact-relay",
		Title:    "Contact Relay Service",
		OneLiner: "Bot-resistant contact form backend with rate limiting and email delivery.",
		Stack:    []string{"Go", "chi", "Redis", "SendGrid", "Cloudflare Turnstile"},
		Highlights: []string{
			"Layered abuse defenses: honeypot, sliding-window rate limit, captcha verification.",
			"Fail-open limiter keeps the contact path available when Redis is down.",
			"Silent honeypot discard denies bots any detection feedback.",
		},
		Links: ProjectLinks{
			Repo: "https://github.com/you/contact-relay",
		},
		Details: ProjectDetails{
			Problem:      "Public contact forms attract automated spam; naive forms either block humans or flood the inbox.",
			Architecture: "Stateless HTTP handler orchestrating Redis, Turnstile, and SendGrid behind capability interfaces.",
			Decisions: []string{
				"Returned success on honeypot hits so bots cannot distinguish detection from delivery.",
				"Kept validation a shared pure function usable from both form and trust boundary.",
			},
		},
		Media: ProjectMedia{Thumbnail: "/images/relay.png"},
	},
	{
		Slug:     "trail-tracker",
		Title:    "Trail Tracker",
		OneLiner: "GPX route uploads with elevation profiles and shareable trail pages.",
		Stack:    []string{"SvelteKit", "TypeScript", "PostGIS", "Mapbox"},
		Highlights: []string{
			"Parsed and simplified GPX tracks server-side for fast map rendering.",
			"Generated elevation profiles from raw track points.",
			"Shareable public pages with OpenGraph previews.",
		},
		Links: ProjectLinks{
			Demo: "https://example.com/trails",
			Repo: "https://github.com/you/trail-tracker",
		},
		Details: ProjectDetails{
			Problem:      "Sharing hiking routes meant exporting screenshots; no interactive view existed.",
			Architecture: "PostGIS for spatial queries, track simplification at upload time, static map tiles at view time.",
			Decisions: []string{
				"Simplified tracks on write rather than read to keep pages fast.",
			},
		},
		Media: ProjectMedia{Thumbnail: "/images/trails.png"},
	},
}

// Projects returns the portfolio entries in display order.
func Projects() []Project {
	return projects
}

// ProjectBySlug returns the project with the given slug, or false.
func ProjectBySlug(slug string) (Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// ResumeURL is where the downloadable resume lives.
const ResumeURL = "/resume.pdf"
