package seed

import "testing"

func TestCandidates_TenUniqueIDs(t *testing.T) {
	list := Candidates()
	if len(list) != 10 {
		t.Fatalf("expected 10 candidates, got %d", len(list))
	}
	seen := make(map[string]string)
	for _, c := range list {
		if c.ID == "" {
			t.Fatalf("%s has empty id", c.Name)
		}
		if other, ok := seen[c.ID]; ok {
			t.Errorf("%s and %s share id %s", c.Name, other, c.ID)
		}
		seen[c.ID] = c.Name
	}
}

func TestCandidates_StableAcrossCalls(t *testing.T) {
	a, b := Candidates(), Candidates()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("candidate %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCandidates_FreshCopy(t *testing.T) {
	a := Candidates()
	a[0].Price = 999
	if Candidates()[0].Price == 999 {
		t.Error("mutating a returned list changed the seed")
	}
}

func TestCandidates_KnownValues(t *testing.T) {
	list := Candidates()
	first, last := list[0], list[len(list)-1]
	if first.Name != "Survivor" || first.Price != 12 || first.Strength != 6 || first.Agility != 4 {
		t.Errorf("unexpected first seed: %+v", first)
	}
	if last.Name != "Leader" || last.Price != 22 || last.Strength != 7 || last.Agility != 6 {
		t.Errorf("unexpected last seed: %+v", last)
	}
}
