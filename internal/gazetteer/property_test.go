package gazetteer_test

import (
	"testing"

	"github.com/vnaddress/resolver/internal/gazetteer"
	"github.com/vnaddress/resolver/internal/loader"
	"github.com/vnaddress/resolver/internal/noise"
)

func buildPropertyTestResolver(t *testing.T) *gazetteer.Resolver {
	t.Helper()
	provinces, err := loader.LoadNames("../../testdata/list_province.txt")
	if err != nil {
		t.Fatalf("load provinces: %v", err)
	}
	districts, err := loader.LoadNames("../../testdata/list_district.txt")
	if err != nil {
		t.Fatalf("load districts: %v", err)
	}
	wards, err := loader.LoadNames("../../testdata/list_ward.txt")
	if err != nil {
		t.Fatalf("load wards: %v", err)
	}
	records, err := loader.LoadReferenceRecords("../../testdata/reference.txt")
	if err != nil {
		t.Fatalf("load reference: %v", err)
	}
	return gazetteer.NewResolver(provinces, districts, wards, records)
}

func testPropertyRecords(t *testing.T) []gazetteer.ReferenceRecord {
	t.Helper()
	records, err := loader.LoadReferenceRecords("../../testdata/reference.txt")
	if err != nil {
		t.Fatalf("load reference: %v", err)
	}
	return records
}

// Invariant 4: diacritic-stripped robustness. Stripping combining marks
// from every character of a clean reference rendering (but keeping its
// casing and punctuation intact, as noise.RemoveAccents does) still
// resolves to the same triple.
func TestResolveDiacriticStrippedRobustness(t *testing.T) {
	r := buildPropertyTestResolver(t)
	for _, rec := range testPropertyRecords(t) {
		clean := rec.Ward + ", " + rec.District + ", " + rec.Province
		stripped := noise.RemoveAccents(clean)
		ward, district, province := r.Resolve(stripped)
		if ward != rec.Ward || district != rec.District || province != rec.Province {
			t.Errorf("Resolve(%q) [accents stripped from %q] = (%q, %q, %q), want (%q, %q, %q)",
				stripped, clean, ward, district, province, rec.Ward, rec.District, rec.Province)
		}
	}
}
