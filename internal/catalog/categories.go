package catalog

// categoryInfos maps every Category to its display metadata. Coverage is
// verified by New, so a category added to Categories without an entry here
// fails catalog construction rather than rendering a blank marker.
var categoryInfos = map[Category]CategoryInfo{
	CategoryMonument: {
		Label:       "Monumentos",
		Color:       "#b45309",
		MarkerColor: "#f59e0b",
		Icon:        "landmark",
		Description: "Cartões-postais e mirantes icônicos da cidade.",
	},
	CategoryBeach: {
		Label:       "Praias",
		Color:       "#0369a1",
		MarkerColor: "#38bdf8",
		Icon:        "umbrella-beach",
		Description: "As praias que definem o Rio, da areia ao calçadão.",
	},
	CategoryCarnival: {
		Label:       "Carnaval",
		Color:       "#7e22ce",
		MarkerColor: "#c084fc",
		Icon:        "music",
		Description: "Palcos do maior espetáculo da Terra.",
	},
	CategoryHistorical: {
		Label:       "Histórico",
		Color:       "#92400e",
		MarkerColor: "#d97706",
		Icon:        "building-columns",
		Description: "Centros, escadarias e bondes que contam a história carioca.",
	},
	CategoryFood: {
		Label:       "Gastronomia",
		Color:       "#15803d",
		MarkerColor: "#4ade80",
		Icon:        "utensils",
		Description: "Feiras, botequins e confeitarias centenárias.",
	},
	CategoryFavela: {
		Label:       "Favelas",
		Color:       "#be123c",
		MarkerColor: "#fb7185",
		Icon:        "mountain-city",
		Description: "Comunidades com vistas e cultura que só o Rio tem.",
	},
	CategoryBloco: {
		Label:       "Blocos",
		Color:       "#a21caf",
		MarkerColor: "#e879f9",
		Icon:        "drum",
		Description: "Blocos de rua que arrastam multidões no Carnaval.",
	},
}

// Info returns the display metadata for a category.
// The second return is false for categories the catalog does not know.
func Info(c Category) (CategoryInfo, bool) {
	info, ok := categoryInfos[c]
	return info, ok
}
