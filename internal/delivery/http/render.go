package http

import "github.com/Darlene250/amazon-explorer/internal/domain"

// Display fallbacks matching the card and modal copy.
const (
	fallbackPrice       = "See Price"
	fallbackRating      = "No Rating"
	fallbackDescription = "No description available."

	// descriptionLimit trims long product descriptions for the overlay.
	descriptionLimit = 500
)

// Card is the display representation of one product in the results grid.
type Card struct {
	ASIN   string `json:"asin"`
	Title  string `json:"title"`
	Price  string `json:"price"`
	Rating string `json:"rating"`
	Photo  string `json:"photo"`
}

// Detail is the display representation of the product details overlay.
type Detail struct {
	ASIN        string `json:"asin"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// RenderCards projects a product list into cards. Pure: no state, no I/O.
func RenderCards(products []domain.Product) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, RenderCard(p))
	}
	return cards
}

// RenderCard projects one product into its card representation.
func RenderCard(p domain.Product) Card {
	card := Card{
		ASIN:   p.ASIN(),
		Title:  p.Title(),
		Price:  p.Price(),
		Rating: p.StarRating(),
		Photo:  p.Photo(),
	}
	if card.Price == "" {
		card.Price = fallbackPrice
	}
	if card.Rating == "" {
		card.Rating = fallbackRating
	}
	return card
}

// RenderDetail projects a product detail into its overlay representation.
func RenderDetail(d domain.ProductDetail) Detail {
	detail := Detail{
		ASIN:        d.ASIN(),
		Title:       d.Title(),
		Price:       d.Price(),
		Photo:       d.Photo(),
		Description: d.Description(),
		URL:         d.URL(),
	}
	if detail.Price == "" {
		detail.Price = "N/A"
	}
	if detail.Description == "" {
		detail.Description = fallbackDescription
	}
	if len(detail.Description) > descriptionLimit {
		detail.Description = detail.Description[:descriptionLimit] + "..."
	}
	return detail
}
