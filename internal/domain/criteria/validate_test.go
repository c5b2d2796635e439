package criteria

import (
	"reflect"
	"testing"
)

func TestValidateBrands(t *testing.T) {
	catalog := []string{"Apple", "Lenovo", "Dell"}

	tests := []struct {
		name       string
		intended   IntendedBrands
		wantStatus BrandValidationStatus
		wantBrands []string
		wantExcl   []string
	}{
		{
			name:       "no brands at all",
			intended:   IntendedBrands{},
			wantStatus: NoBrandSpecified,
		},
		{
			name:       "all matched",
			intended:   IntendedBrands{Brands: []string{"apple", "LENOVO"}},
			wantStatus: BrandMatched,
			wantBrands: []string{"Apple", "Lenovo"},
		},
		{
			name:       "partial match",
			intended:   IntendedBrands{Brands: []string{"Apple", "Samsung"}},
			wantStatus: BrandPartial,
			wantBrands: []string{"Apple"},
		},
		{
			name:       "none matched",
			intended:   IntendedBrands{Brands: []string{"Samsung", "Nokia"}},
			wantStatus: BrandNotFound,
		},
		{
			name:       "only excludes",
			intended:   IntendedBrands{ExcludeBrands: []string{"dell"}},
			wantStatus: NoBrandSpecified,
			wantExcl:   []string{"Dell"},
		},
		{
			name: "unknown exclude never changes status",
			intended: IntendedBrands{
				Brands:        []string{"Apple"},
				ExcludeBrands: []string{"Samsung"},
			},
			wantStatus: BrandMatched,
			wantBrands: []string{"Apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateBrands(tt.intended, catalog)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if !reflect.DeepEqual(got.Brands, tt.wantBrands) {
				t.Errorf("Brands = %v, want %v", got.Brands, tt.wantBrands)
			}
			if !reflect.DeepEqual(got.ExcludeBrands, tt.wantExcl) {
				t.Errorf("ExcludeBrands = %v, want %v", got.ExcludeBrands, tt.wantExcl)
			}
		})
	}
}

func TestValidateBrands_EmptyCatalog(t *testing.T) {
	got := ValidateBrands(IntendedBrands{Brands: []string{"Apple"}}, nil)
	if got.Status != BrandNotFound {
		t.Errorf("Status = %q, want %q", got.Status, BrandNotFound)
	}
}
