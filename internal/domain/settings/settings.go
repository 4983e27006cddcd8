package settings

// DocumentID is the singleton settings document.
const DocumentID = "site_config"

// Site is the public branding configuration: the hero image shown on the
// listing view and whether the contrast overlay is drawn on top of it.
type Site struct {
	HeroImage       string `json:"hero_image"`
	ShowHeroOverlay bool   `json:"show_hero_overlay"`
}

// Default is served until an admin saves the settings document.
func Default() Site {
	return Site{
		HeroImage:       "https://images.unsplash.com/photo-1556761175-b413da4baf72?auto=format&fit=crop&q=80&w=2070",
		ShowHeroOverlay: true,
	}
}
