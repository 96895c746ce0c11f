package service

// Pricing for a prospective engagement, in whole currency units. Conversion
// to cents happens only at the payment boundary.
const (
	PerPageRate    = 400
	BackendAddOn   = 1500
	MaxDirectPages = 5
)

// Quote is the computed price for a web-development engagement.
type Quote struct {
	PageCount      int
	IncludeBackend bool
	// PagesBilled caps at MaxDirectPages; larger sites are quoted manually.
	PagesBilled int
	Total       int64
	// CustomQuoteRequired means checkout must be refused and the client
	// pointed at the contact form instead.
	CustomQuoteRequired bool
}

// CalculateQuote prices a site of pageCount pages with an optional backend.
// Page counts above MaxDirectPages are priced as the cap and flagged for a
// custom quote. pageCount is assumed >= 1; the route layer validates that.
func CalculateQuote(pageCount int, includeBackend bool) Quote {
	pagesBilled := pageCount
	if pagesBilled > MaxDirectPages {
		pagesBilled = MaxDirectPages
	}
	total := int64(PerPageRate * pagesBilled)
	if includeBackend {
		total += BackendAddOn
	}
	return Quote{
		PageCount:           pageCount,
		IncludeBackend:      includeBackend,
		PagesBilled:         pagesBilled,
		Total:               total,
		CustomQuoteRequired: pageCount > MaxDirectPages,
	}
}
