package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateQuote(t *testing.T) {
	tests := []struct {
		name           string
		pageCount      int
		includeBackend bool
		wantTotal      int64
		wantCustom     bool
	}{
		{"single page", 1, false, 400, false},
		{"single page with backend", 1, true, 1900, false},
		{"three pages with backend", 3, true, 2700, false},
		{"five pages", 5, false, 2000, false},
		{"five pages with backend", 5, true, 3500, false},
		{"six pages capped", 6, false, 2000, true},
		{"twenty pages capped with backend", 20, true, 3500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := CalculateQuote(tt.pageCount, tt.includeBackend)
			assert.Equal(t, tt.wantTotal, q.Total)
			assert.Equal(t, tt.wantCustom, q.CustomQuoteRequired)
		})
	}
}

func TestCalculateQuoteLinearUpToCap(t *testing.T) {
	for pages := 1; pages <= MaxDirectPages; pages++ {
		q := CalculateQuote(pages, false)
		assert.Equal(t, int64(PerPageRate*pages), q.Total)
		assert.False(t, q.CustomQuoteRequired)
		assert.Equal(t, pages, q.PagesBilled)

		withBackend := CalculateQuote(pages, true)
		assert.Equal(t, q.Total+BackendAddOn, withBackend.Total)
	}
}

func TestCalculateQuoteCapBillsFivePages(t *testing.T) {
	q := CalculateQuote(12, false)
	assert.Equal(t, MaxDirectPages, q.PagesBilled)
	assert.Equal(t, CalculateQuote(5, false).Total, q.Total)
}
