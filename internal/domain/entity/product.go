package entity

// Product is the catalog record as it appears in the products document and in
// client-side snapshots (cart entries, wishlist entries). Timestamps are kept
// as the ISO strings the store writes so snapshots round-trip verbatim.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

const (
	CategoryGames       = "Games"
	CategoryMovies      = "Movies"
	CategoryAnime       = "Anime"
	CategoryTech        = "Tech"
	CategoryAccessories = "Accessories"
	CategorySoftware    = "Software"
)

// Categories is the fixed set the storefront navigation and the admin product
// form offer.
var Categories = []string{
	CategoryGames,
	CategoryMovies,
	CategoryAnime,
	CategoryTech,
	CategoryAccessories,
	CategorySoftware,
}
