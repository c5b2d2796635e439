package criteria

// BrandValidation is the result of grounding intended brands against the
// catalog vocabulary.
type BrandValidation struct {
	Status        BrandValidationStatus
	Brands        []string
	ExcludeBrands []string
}

// ValidateBrands reconciles raw brand intent with the brands the catalog
// actually offers. Matching is case-insensitive and the catalog's canonical
// casing wins on match. Exclude-brands are matched the same way but never
// affect the status: they are a pure filter refinement.
//
// Status rules, derived from the include side only:
//   - no include- or exclude-brands at all → NoBrandSpecified
//   - include-brands named, none match     → BrandNotFound
//   - every include-brand matches          → BrandMatched
//   - otherwise                            → BrandPartial
func ValidateBrands(intended IntendedBrands, available []string) BrandValidation {
	if intended.Empty() {
		return BrandValidation{Status: NoBrandSpecified}
	}

	matched := MatchAgainst(intended.Brands, available)
	matchedExclude := MatchAgainst(intended.ExcludeBrands, available)

	var status BrandValidationStatus
	switch {
	case len(intended.Brands) == 0:
		// Only exclude-brands were named.
		status = NoBrandSpecified
	case len(matched) == 0:
		status = BrandNotFound
	case allKnown(intended.Brands, available):
		status = BrandMatched
	default:
		status = BrandPartial
	}

	return BrandValidation{
		Status:        status,
		Brands:        matched,
		ExcludeBrands: matchedExclude,
	}
}

// allKnown reports whether every value appears in the known list,
// case-insensitively.
func allKnown(values, known []string) bool {
	for _, v := range values {
		if len(MatchAgainst([]string{v}, known)) == 0 {
			return false
		}
	}
	return true
}
