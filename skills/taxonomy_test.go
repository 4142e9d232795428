package skills

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestLoadMissingFileFallsBack(t *testing.T) {
	tax, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected informational error for missing file")
	}
	if tax == nil {
		t.Fatal("fallback taxonomy must always be usable")
	}
	if len(tax.Technical) == 0 || len(tax.Soft) == 0 {
		t.Error("fallback taxonomy should be the built-in default")
	}
}

func TestLoadInvalidJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := Load(path)
	if err == nil {
		t.Error("expected informational error for invalid JSON")
	}
	if tax == nil || len(tax.Technical) == 0 {
		t.Error("fallback taxonomy should be the built-in default")
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tax.json")
	content := `{
		"technical": {"languages": ["Elm"]},
		"soft": ["Patience"],
		"industry_specific": {"farming": ["Irrigation"]}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(tax.Technical["languages"]) != 1 || tax.Technical["languages"][0] != "Elm" {
		t.Errorf("technical: got %v", tax.Technical)
	}
	if len(tax.Soft) != 1 || tax.Soft[0] != "Patience" {
		t.Errorf("soft: got %v", tax.Soft)
	}
}

func TestLoadEmptyTaxonomyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := Load(path)
	if err == nil {
		t.Error("expected informational error for empty taxonomy")
	}
	if len(tax.Technical) == 0 {
		t.Error("fallback taxonomy should be the built-in default")
	}
}

func TestCategoryOrderingIsSorted(t *testing.T) {
	tax := DefaultTaxonomy()

	cats := tax.TechnicalCategories()
	if !sort.StringsAreSorted(cats) {
		t.Errorf("technical categories not sorted: %v", cats)
	}
	if len(cats) != 6 {
		t.Errorf("expected 6 technical categories, got %v", cats)
	}

	industries := tax.Industries()
	if !sort.StringsAreSorted(industries) {
		t.Errorf("industries not sorted: %v", industries)
	}
	if len(industries) != 4 {
		t.Errorf("expected 4 industries, got %v", industries)
	}
}
