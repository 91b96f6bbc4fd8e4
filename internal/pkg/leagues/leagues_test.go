package leagues

import "testing"

func TestGet(t *testing.T) {
	l, ok := Get("eredivisie")
	if !ok {
		t.Fatal("eredivisie missing from registry")
	}
	if l.Country != "Netherlands" || l.Priority != 1 {
		t.Errorf("eredivisie = %+v", l)
	}
	if _, ok := Get("mls"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestByPriority(t *testing.T) {
	top := ByPriority(1, 1)
	all := ByPriority(1, 2)
	if len(top) == 0 || len(all) <= len(top) {
		t.Fatalf("priority filter broken: top=%d all=%d", len(top), len(all))
	}
	for _, l := range top {
		if l.Priority != 1 {
			t.Errorf("league %s has priority %d in top set", l.Key, l.Priority)
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Errorf("leagues not sorted: %s before %s", all[i-1].Key, all[i].Key)
		}
	}
}

func TestProviderIdentifiers(t *testing.T) {
	for _, l := range ByPriority(1, 2) {
		if l.PinnacleID == 0 {
			t.Errorf("%s missing pinnacle id", l.Key)
		}
		if l.JacksPath == "" {
			t.Errorf("%s missing jacks path", l.Key)
		}
		if l.TotoID == "" {
			t.Errorf("%s missing toto id", l.Key)
		}
	}
}

func TestByCountry(t *testing.T) {
	nl := ByCountry("Netherlands")
	if len(nl) != 2 {
		t.Fatalf("dutch leagues = %d, want 2", len(nl))
	}
	for _, l := range nl {
		if l.Country != "Netherlands" {
			t.Errorf("league %s country = %s", l.Key, l.Country)
		}
	}
}
