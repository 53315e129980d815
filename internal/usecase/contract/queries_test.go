package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	testCases := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
	}{
		{"defaults for zero values", 0, 0, 1, 50},
		{"negative page", -3, 10, 1, 10},
		{"limit above cap", 2, 500, 2, 50},
		{"valid values pass through", 3, 25, 3, 25},
		{"limit at cap", 1, 100, 1, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := normalizePagination(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}
