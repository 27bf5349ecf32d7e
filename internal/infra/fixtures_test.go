package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedData(t *testing.T) {
	dir := t.TempDir()

	writeFixture(t, dir, "businesses.json", `[
		{"id":0,"name":"Cafe","address":"1 Main","city":"X","state":"Y","zip":"00000",
		 "phone":"555","category":"food","subcategory":"cafe","ownerid":1}
	]`)
	writeFixture(t, dir, "reviews.json", `[
		{"id":0,"userid":10,"businessid":0,"dollars":2,"stars":4.5,"review":"fine"}
	]`)
	// photos.json intentionally absent

	seed, err := LoadSeedData(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(seed.Businesses) != 1 || seed.Businesses[0].Name != "Cafe" {
		t.Fatalf("unexpected businesses: %+v", seed.Businesses)
	}
	if len(seed.Reviews) != 1 || seed.Reviews[0].Stars != 4.5 {
		t.Fatalf("unexpected reviews: %+v", seed.Reviews)
	}
	if len(seed.Photos) != 0 {
		t.Fatalf("missing fixture must yield an empty collection, got %+v", seed.Photos)
	}
}

func TestLoadSeedDataRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "businesses.json", `{not json`)

	if _, err := LoadSeedData(dir); err == nil {
		t.Fatal("expected an error for malformed fixture")
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}
