// Package seed supplies the static fixtures the application boots from.
// Nothing here persists; every new session starts from these values.
package seed

import (
	"github.com/example/modernblog/internal/model"
	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

// Initial returns the starting snapshot: the seed posts, no products yet
// (the bootstrap dispatches SetProducts separately), an empty cart, no
// user, empty search query.
func Initial() state.State {
	return state.State{Posts: Posts()}
}

// NewStore creates a fully bootstrapped per-session store.
func NewStore() *state.Store {
	store := state.New(Initial())
	store.Dispatch(state.SetProducts{Products: Products()})
	return store
}

// Posts returns the seed blog posts, newest first.
func Posts() []model.Post {
	return []model.Post{
		{
			ID:      "1",
			Title:   "The Future of Web Design: AI-Powered Interfaces",
			Excerpt: "Explore how artificial intelligence is revolutionizing web design and creating more intuitive user experiences.",
			Content: "AI is transforming the way we design and interact with websites. From personalized user experiences to automated design systems, discover the latest innovations in AI-powered web design.",
			Author: model.Author{
				ID:     "author1",
				Name:   "Sarah Chen",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80",
				Bio:    "Senior UI/UX Designer specializing in AI-powered interfaces",
				Social: map[string]string{
					"twitter":  "https://twitter.com/sarahchen",
					"linkedin": "https://linkedin.com/in/sarahchen",
				},
			},
			Image:     "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80",
			Tags:      []string{"AI", "Design Trends", "UX Design"},
			Category:  "Web Design",
			CreatedAt: "2024-03-15T10:00:00Z",
		},
		{
			ID:      "2",
			Title:   "Building Sustainable Digital Products",
			Excerpt: "A practical look at reducing the environmental footprint of the software we ship.",
			Content: "Sustainability is no longer optional. From greener hosting to leaner front-ends, here is how product teams are cutting the carbon cost of their digital products without sacrificing user experience.",
			Author: model.Author{
				ID:     "author2",
				Name:   "Marcus Webb",
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80",
				Bio:    "Engineering lead writing about sustainable software",
				Social: map[string]string{
					"github": "https://github.com/marcuswebb",
				},
			},
			Image:     "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?auto=format&fit=crop&q=80",
			Tags:      []string{"Sustainability", "Engineering"},
			Category:  "Technology",
			CreatedAt: "2024-03-10T09:00:00Z",
		},
		{
			ID:      "3",
			Title:   "Minimalism in Modern E-Commerce",
			Excerpt: "Why the most successful storefronts are the ones that show less.",
			Content: "Cluttered category pages and aggressive pop-ups are losing to calm, focused shopping experiences. We break down the design decisions behind minimalist storefronts that convert.",
			Author: model.Author{
				ID:     "author3",
				Name:   "Elena Rodriguez",
				Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80",
				Bio:    "Design writer and e-commerce consultant",
				Social: map[string]string{
					"twitter": "https://twitter.com/elenarodriguez",
				},
			},
			Image:     "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80",
			Tags:      []string{"Design Trends", "E-Commerce"},
			Category:  "Web Design",
			CreatedAt: "2024-03-05T14:30:00Z",
		},
		{
			ID:      "4",
			Title:   "Remote Work and the Creative Process",
			Excerpt: "How distributed teams keep the creative spark alive across time zones.",
			Content: "Creativity thrives on collaboration, and collaboration looks different when your team spans three continents. These are the rituals and tools that keep distributed creative teams in sync.",
			Author: model.Author{
				ID:     "author2",
				Name:   "Marcus Webb",
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80",
				Bio:    "Engineering lead writing about sustainable software",
				Social: map[string]string{
					"github": "https://github.com/marcuswebb",
				},
			},
			Image:     "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80",
			Tags:      []string{"Remote Work", "Productivity"},
			Category:  "Lifestyle",
			CreatedAt: "2024-02-28T08:15:00Z",
		},
	}
}

// Products returns the seed catalogue.
func Products() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Name:        "Minimalist Desk Lamp",
			Description: "Warm LED desk lamp with touch dimming and a weighted aluminum base.",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?auto=format&fit=crop&q=80",
			Category:    "Home Office",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "p2",
			Name:        "Linen Notebook Set",
			Description: "Three dotted notebooks bound in natural linen, 120gsm paper.",
			Price:       24.50,
			Image:       "https://images.unsplash.com/photo-1531346878377-a5be20888e57?auto=format&fit=crop&q=80",
			Category:    "Stationery",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          "p3",
			Name:        "Wireless Mechanical Keyboard",
			Description: "Low-profile mechanical keyboard with hot-swappable switches and USB-C.",
			Price:       129.00,
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?auto=format&fit=crop&q=80",
			Category:    "Electronics",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "p4",
			Name:        "Ceramic Pour-Over Set",
			Description: "Hand-glazed ceramic dripper and carafe for slow mornings.",
			Price:       58.00,
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&q=80",
			Category:    "Kitchen",
			InStock:     false,
			Featured:    false,
		},
		{
			ID:          "p5",
			Name:        "Canvas Weekender Bag",
			Description: "Waxed canvas travel bag with leather handles and a laptop sleeve.",
			Price:       89.95,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&q=80",
			Category:    "Accessories",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "p6",
			Name:        "Recycled Wool Throw",
			Description: "Soft herringbone throw woven from recycled wool.",
			Price:       65.00,
			Image:       "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?auto=format&fit=crop&q=80",
			Category:    "Home Office",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          "p7",
			Name:        "Smart Water Bottle",
			Description: "Insulated bottle that tracks hydration and glows as a reminder.",
			Price:       39.00,
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?auto=format&fit=crop&q=80",
			Category:    "Accessories",
			InStock:     false,
			Featured:    false,
		},
		{
			ID:          "p8",
			Name:        "Desktop Monitor Stand",
			Description: "Solid oak monitor riser with a cable channel and phone slot.",
			Price:       45.00,
			Image:       "https://images.unsplash.com/photo-1593062096033-9a26b09da705?auto=format&fit=crop&q=80",
			Category:    "Home Office",
			InStock:     true,
			Featured:    false,
		},
	}
}

// Slides returns the hero slide deck shown on the home page.
func Slides() []view.Slide {
	return []view.Slide{
		{
			ID:       1,
			Title:    "Discover Your Next Favorite Read",
			Subtitle: "Curated collection of thought-provoking articles",
			Image:    "https://images.unsplash.com/photo-1519681393784-d120267933ba?auto=format&fit=crop&q=80",
			CTA:      view.SlideCTA{Text: "Start Reading", Link: "/blog"},
		},
		{
			ID:       2,
			Title:    "Premium Quality Products",
			Subtitle: "Handpicked items for your lifestyle",
			Image:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80",
			CTA:      view.SlideCTA{Text: "Shop Now", Link: "/shop"},
		},
		{
			ID:       3,
			Title:    "Join Our Community",
			Subtitle: "Connect with like-minded individuals",
			Image:    "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80",
			CTA:      view.SlideCTA{Text: "Sign Up", Link: "/login"},
		},
	}
}
