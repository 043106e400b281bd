// Package seed holds the fixed starter content loaded into an empty
// database. The datasets are intentionally small and stable so seeding
// stays deterministic across environments.
package seed

import "atelier/internal/domain/models"

func walkthrough(url string) *string { return &url }

var Projects = []models.Project{
	{
		Title:       "Villa Serenity",
		Caption:     "A coastal retreat where raw linen meets travertine",
		ImageURL:    "/images/projects/villa-serenity.jpg",
		Category:    "Residential",
		Location:    "Lisbon, Portugal",
		Year:        2024,
		IsFeatured:  true,
		VisionTitle: "Light as the primary material",
		FullDescription: models.StringList{
			"The brief asked for a family home that would feel permanently on holiday. We stripped the villa back to its 1960s bones and rebuilt every sightline around the Atlantic horizon.",
			"Travertine floors run uninterrupted from the entry to the terrace, while raw linen drapery softens the afternoon glare without blocking it.",
			"Custom oak joinery hides the everyday clutter of a household of five, leaving the architecture to speak.",
		},
		Palette: models.StringList{"#F4EFE6", "#C8B8A6", "#8A7968", "#3E3A34"},
		Gallery: models.StringList{
			"/images/projects/villa-serenity-01.jpg",
			"/images/projects/villa-serenity-02.jpg",
			"/images/projects/villa-serenity-03.jpg",
		},
		WalkthroughURL: walkthrough("https://vimeo.com/atelier/villa-serenity"),
	},
	{
		Title:       "The Ledger House",
		Caption:     "A converted bank hall turned private residence",
		ImageURL:    "/images/projects/ledger-house.jpg",
		Category:    "Adaptive Reuse",
		Location:    "Vienna, Austria",
		Year:        2023,
		IsFeatured:  true,
		VisionTitle: "Keeping the weight, losing the formality",
		FullDescription: models.StringList{
			"A century-old banking hall with six-metre ceilings became a home for a collector couple. The original brass teller screens were restored and repurposed as room dividers.",
			"We inserted a freestanding walnut volume for the bedrooms, leaving the vaulted hall as one continuous living landscape.",
		},
		Palette: models.StringList{"#1F2A33", "#B08D57", "#E8E3DA", "#6E7B85"},
		Gallery: models.StringList{
			"/images/projects/ledger-house-01.jpg",
			"/images/projects/ledger-house-02.jpg",
		},
	},
	{
		Title:       "Atelier Nord Showroom",
		Caption:     "A retail space designed to feel like a private apartment",
		ImageURL:    "/images/projects/atelier-nord.jpg",
		Category:    "Commercial",
		Location:    "Copenhagen, Denmark",
		Year:        2023,
		IsFeatured:  false,
		VisionTitle: "Commerce disguised as hospitality",
		FullDescription: models.StringList{
			"A furniture brand wanted customers to linger, not browse. Every piece for sale is staged in a fully lived-in vignette, down to the books on the shelves.",
			"Lime-washed walls and underfloor heating make the space read as domestic, while concealed track lighting does the retail work.",
		},
		Palette: models.StringList{"#EDE8E0", "#A6A299", "#4C4A45", "#D9C6A5"},
		Gallery: models.StringList{
			"/images/projects/atelier-nord-01.jpg",
			"/images/projects/atelier-nord-02.jpg",
			"/images/projects/atelier-nord-03.jpg",
			"/images/projects/atelier-nord-04.jpg",
		},
	},
}

var Services = []models.Service{
	{
		Title:            "Full Interior Design",
		ShortDescription: "Concept to completion for residential projects",
		LongDescription:  "Our signature service covers every stage of a residential interior, from the first spatial studies through procurement, site supervision and final styling. One senior designer leads the project end to end.",
		Features: models.FeatureList{
			{Title: "Spatial planning", Detail: "Full layout studies with two revision rounds"},
			{Title: "FF&E procurement", Detail: "Trade pricing passed through at cost plus fee"},
			{Title: "Site supervision", Detail: "Weekly visits during the build phase"},
		},
		ImageURL: "/images/services/full-design.jpg",
		Details: models.ServiceDetails{
			Included:    []string{"Concept boards", "Technical drawings", "Lighting plan", "Procurement", "Styling day"},
			Approach:    "We begin with a two-hour immersion session in your current home to understand how you actually live, then build the concept around observed habits rather than stated preferences.",
			Materials:   "Natural and repairable first. We default to solid timber, stone, wool and linen, and specify synthetics only where performance demands it.",
			Timeline:    "Four to nine months depending on scope",
			SuitableFor: "Full renovations, new builds and significant extensions",
		},
	},
	{
		Title:            "Design Consultation",
		ShortDescription: "A focused session to unlock a stalled space",
		LongDescription:  "A half-day working session in your home with one of our senior designers. You leave with a prioritised action plan, a palette direction and a shopping list you can execute yourself.",
		Features: models.FeatureList{
			{Title: "On-site session", Detail: "Up to four hours in your space"},
			{Title: "Action plan", Detail: "Written summary delivered within five days"},
		},
		ImageURL: "/images/services/consultation.jpg",
		Details: models.ServiceDetails{
			Included:    []string{"Walkthrough", "Palette direction", "Furniture placement plan", "Sourcing list"},
			Approach:    "Short, intense and honest. We tell you what to keep, what to move and what to let go of.",
			Materials:   "Recommendations drawn from retail-available pieces so nothing requires trade accounts.",
			Timeline:    "One session plus a five-day written follow-up",
			SuitableFor: "Single rooms, rental refreshes and pre-sale staging",
		},
	},
	{
		Title:            "Commercial Spaces",
		ShortDescription: "Hospitality and retail interiors that earn their keep",
		LongDescription:  "We design restaurants, showrooms and boutique offices where the interior is part of the business model. Every decision is weighed against dwell time, flow and maintenance cost.",
		Features: models.FeatureList{
			{Title: "Brand translation", Detail: "Identity expressed in material and light"},
			{Title: "Durability spec", Detail: "Contract-grade finishes rated for the traffic"},
			{Title: "Phased delivery", Detail: "Stay open while we build"},
		},
		ImageURL: "/images/services/commercial.jpg",
		Details: models.ServiceDetails{
			Included:    []string{"Concept", "Technical package", "Contractor tender support", "Opening styling"},
			Approach:    "We prototype key moments at full scale before committing the budget, so the signature gestures are tested, not guessed.",
			Materials:   "Contract-grade throughout, specified for a ten-year service life.",
			Timeline:    "Three to twelve months depending on scale",
			SuitableFor: "Restaurants, showrooms and boutique offices",
		},
	},
}

var BlogPosts = []models.BlogPost{
	{
		Slug:        "the-case-for-slower-renovations",
		Title:       "The Case for Slower Renovations",
		Excerpt:     "Why the best rooms in our portfolio took the longest to finish, and what waiting actually buys you.",
		FullContent: "Every client arrives with a deadline, and nearly every project that we are proudest of missed it. Not through mismanagement, but because somewhere mid-build the space revealed something the drawings could not: a shaft of afternoon light worth reorienting a kitchen for, a load-bearing wall whose removal opened a view nobody had modelled.\n\nSlowness is not indecision. It is the discipline of leaving room in the programme for the building to talk back. We now write a four-week contingency into every schedule and label it honestly: listening time.\n\nThe rooms that come out of that process share a quality we struggle to name in proposals but clients recognise instantly on walkthrough day. Nothing feels forced. Nothing is there because the deadline demanded a decision.",
		Quote:       "Slowness is not indecision. It is the discipline of leaving room for the building to talk back.",
		QuoteAuthor: "Marta Eriksen",
		Category:    "Process",
		Date:        "2025-03-14",
		Author:      "Marta Eriksen",
		ImageURL:    "/images/blog/slower-renovations.jpg",
		ReadTime:    "6 min read",
		Tags:        models.StringList{"process", "renovation", "philosophy"},
	},
	{
		Slug:        "choosing-stone-that-ages-well",
		Title:       "Choosing Stone That Ages Well",
		Excerpt:     "Patina is a feature, not a defect. A short field guide to the stones we specify again and again.",
		FullContent: "Clients often ask for stone that will look the same in twenty years. We gently push back: the stones worth living with are the ones that improve. Travertine softens at the edges where hands touch it. Belgian bluestone darkens into a deep charcoal wherever feet pass daily.\n\nThe stones to avoid are not the soft ones but the pretenders: resin-bound composites that chip rather than wear, and polished finishes that record every scratch as damage instead of absorbing it as character.\n\nOur rule of thumb on site: if a dropped key would leave a mark you would photograph rather than repair, the material belongs in the scheme.",
		Quote:       "If a dropped key leaves a mark you would photograph rather than repair, the material belongs in the scheme.",
		QuoteAuthor: "Tomas Lindqvist",
		Category:    "Materials",
		Date:        "2025-01-28",
		Author:      "Tomas Lindqvist",
		ImageURL:    "/images/blog/stone-guide.jpg",
		ReadTime:    "4 min read",
		Tags:        models.StringList{"materials", "stone", "guides"},
	},
	{
		Slug:        "lighting-before-furniture",
		Title:       "Lighting Before Furniture",
		Excerpt:     "The single biggest upgrade most homes are missing costs less than a sofa.",
		FullContent: "When budgets tighten, lighting is the first line cut and the one we fight hardest to keep. A mediocre sofa under three well-placed light sources reads as considered. An exceptional sofa under a single ceiling pendant reads as a showroom after closing time.\n\nWe layer every room three ways: ambient light bounced off ceilings, task light where hands work, and accent light that gives the eye somewhere to rest after dark. None of the three needs to be expensive. All three need to be dimmable.\n\nIf you do one thing to a room this year, replace the switch with a dimmer and move a floor lamp into the darkest corner. The furniture can wait.",
		Quote:       "An exceptional sofa under a single ceiling pendant reads as a showroom after closing time.",
		QuoteAuthor: "Marta Eriksen",
		Category:    "Advice",
		Date:        "2024-11-09",
		Author:      "Marta Eriksen",
		ImageURL:    "/images/blog/lighting-first.jpg",
		ReadTime:    "5 min read",
		Tags:        models.StringList{"lighting", "advice", "budget"},
	},
}
