package locations

import "testing"

func TestAll_Size(t *testing.T) {
	if got := len(All()); got != 24 {
		t.Errorf("catalog size = %d, want 24", got)
	}
}

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[int]string)
	for _, loc := range All() {
		if prev, ok := seen[loc.ID]; ok {
			t.Errorf("duplicate id %d: %q and %q", loc.ID, prev, loc.Name)
		}
		seen[loc.ID] = loc.Name
		if loc.Name == "" {
			t.Errorf("location %d has empty name", loc.ID)
		}
		if loc.Icon == "" {
			t.Errorf("location %d has empty icon", loc.ID)
		}
	}
}

func TestByID(t *testing.T) {
	loc, ok := ByID(1)
	if !ok {
		t.Fatal("ByID(1) not found")
	}
	if loc.Name != "Beach" {
		t.Errorf("ByID(1).Name = %q, want %q", loc.Name, "Beach")
	}

	if _, ok := ByID(999); ok {
		t.Error("ByID(999) should not be found")
	}
}

func TestRandom_InCatalog(t *testing.T) {
	for i := 0; i < 100; i++ {
		loc := Random()
		got, ok := ByID(loc.ID)
		if !ok || got.Name != loc.Name {
			t.Fatalf("Random() returned entry not in catalog: %+v", loc)
		}
	}
}

func TestRandom_CoversCatalog(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[Random().ID] = true
	}
	// 2000 uniform draws over 24 entries miss a given entry with
	// probability (23/24)^2000, effectively never.
	if len(seen) != 24 {
		t.Errorf("Random() covered %d of 24 locations", len(seen))
	}
}
