package params

import (
	"testing"

	"mentorhub/core/constants"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       QueryParams
		wantPage int
		wantSize int
	}{
		{"defaults pass through", QueryParams{PageNumber: 2, PageSize: 25}, 2, 25},
		{"zero page clamps to first", QueryParams{PageNumber: 0, PageSize: 25}, 1, 25},
		{"negative page clamps to first", QueryParams{PageNumber: -3, PageSize: 25}, 1, 25},
		{"zero size gets default", QueryParams{PageNumber: 1, PageSize: 0}, 1, constants.DefaultPageSize},
		{"oversize clamps to max", QueryParams{PageNumber: 1, PageSize: constants.MaxPageSize + 1}, 1, constants.MaxPageSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.PageNumber != tc.wantPage {
				t.Errorf("PageNumber = %d, want %d", got.PageNumber, tc.wantPage)
			}
			if got.PageSize != tc.wantSize {
				t.Errorf("PageSize = %d, want %d", got.PageSize, tc.wantSize)
			}
		})
	}
}
