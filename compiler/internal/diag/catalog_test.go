package diag

import "testing"

func TestCatalogLookup(t *testing.T) {
	ce, ok := Lookup("resolve", "unknown_name")
	if !ok {
		t.Fatalf("resolve/unknown_name missing from catalog")
	}
	if ce.ID != "GCE0001" || ce.Title == "" {
		t.Fatalf("unexpected entry: %+v", ce)
	}
	if _, ok := Lookup("type", "mismatch"); !ok {
		t.Fatalf("type/mismatch missing from catalog")
	}
	if _, ok := Lookup("nope", "mismatch"); ok {
		t.Fatalf("unknown domain should not resolve")
	}
}

func TestMustLookupFallback(t *testing.T) {
	ce := MustLookup("type", "does_not_exist", "GTE9999", "placeholder")
	if ce.ID != "GTE9999" || ce.Title != "placeholder" {
		t.Fatalf("fallback not used: %+v", ce)
	}
	ce = MustLookup("lint", "unused", "X", "x")
	if ce.ID != "GLW0001" {
		t.Fatalf("catalog entry not preferred: %+v", ce)
	}
}
