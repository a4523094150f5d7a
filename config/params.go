package config

// Country is a supported Amazon marketplace.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Countries are the marketplaces offered in the country dropdown.
var Countries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "CA", Name: "Canada"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "JP", Name: "Japan"},
	{Code: "IN", Name: "India"},
	{Code: "MX", Name: "Mexico"},
	{Code: "AU", Name: "Australia"},
}

// SortOptions are the orderings the search endpoint accepts.
var SortOptions = []string{
	"RELEVANCE",
	"LOWEST_PRICE",
	"HIGHEST_PRICE",
	"REVIEWS",
	"NEWEST",
	"BEST_SELLERS",
}

// IsSupportedCountry reports whether code is a known marketplace code.
func IsSupportedCountry(code string) bool {
	for _, c := range Countries {
		if c.Code == code {
			return true
		}
	}
	return false
}

// IsSupportedSort reports whether option is a known sort order.
func IsSupportedSort(option string) bool {
	for _, s := range SortOptions {
		if s == option {
			return true
		}
	}
	return false
}
