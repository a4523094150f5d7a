package domain

// Product is a single search result from the Amazon API. The API's product
// schema is not validated beyond the fields the UI renders, so the struct is
// an opaque pass-through map with typed accessors for those fields.
type Product map[string]interface{}

// ProductDetail is the full product record returned by the details endpoint,
// passed through in the same opaque form as Product.
type ProductDetail map[string]interface{}

func stringField(m map[string]interface{}, field string) string {
	v, _ := m[field].(string)
	return v
}

// ASIN returns the product's Amazon Standard Identification Number.
func (p Product) ASIN() string { return stringField(p, "asin") }

// Title returns the product title.
func (p Product) Title() string { return stringField(p, "product_title") }

// Price returns the display price, empty when the API omitted it.
func (p Product) Price() string { return stringField(p, "product_price") }

// StarRating returns the star rating string, empty when absent.
func (p Product) StarRating() string { return stringField(p, "product_star_rating") }

// Photo returns the product image URL.
func (p Product) Photo() string { return stringField(p, "product_photo") }

func (d ProductDetail) ASIN() string { return stringField(d, "asin") }
func (d ProductDetail) Title() string { return stringField(d, "product_title") }
func (d ProductDetail) Price() string { return stringField(d, "product_price") }
func (d ProductDetail) Photo() string { return stringField(d, "product_photo") }

func (d ProductDetail) Description() string { return stringField(d, "product_description") }
func (d ProductDetail) URL() string { return stringField(d, "product_url") }

// SearchQuery holds the semantic parameters of one search submission.
type SearchQuery struct {
	Query    string `json:"query" binding:"required"`
	Country  string `json:"country"`
	SortBy   string `json:"sortBy"`
	MinPrice string `json:"minPrice,omitempty"`
	MaxPrice string `json:"maxPrice,omitempty"`
}

// CacheParams returns the parameter set that defines cache equivalence for
// this query. Two queries with equal parameter sets share a cache entry.
func (q SearchQuery) CacheParams() map[string]string {
	return map[string]string{
		"query":    q.Query,
		"country":  q.Country,
		"sortBy":   q.SortBy,
		"minPrice": q.MinPrice,
		"maxPrice": q.MaxPrice,
	}
}

// SearchResponse is the envelope returned by the Amazon search endpoint.
type SearchResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    *SearchData `json:"data,omitempty"`
}

// SearchData holds the product list inside a search response.
type SearchData struct {
	Products []Product `json:"products"`
}

// DetailsResponse is the envelope returned by the product details endpoint.
type DetailsResponse struct {
	Data ProductDetail `json:"data,omitempty"`
}
