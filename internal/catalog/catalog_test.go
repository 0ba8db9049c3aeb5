package catalog

import (
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()

	want := []string{"paris-1889", "cretace", "florence-1504"}
	got := c.Slugs()

	if len(got) != len(want) {
		t.Fatalf("unexpected catalog size: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slug %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestBySlug(t *testing.T) {
	c := Default()

	dest, ok := c.BySlug("cretace")
	if !ok {
		t.Fatal("expected to find cretace")
	}
	if dest.Name != "Crétacé" {
		t.Fatalf("unexpected name: %s", dest.Name)
	}
	if dest.Price == "" || len(dest.Activities) == 0 || len(dest.Warnings) == 0 {
		t.Fatal("destination record is incomplete")
	}

	if _, ok := c.BySlug("atlantide"); ok {
		t.Fatal("unexpected destination for unknown slug")
	}
}

func TestNewRejectsDuplicateSlugs(t *testing.T) {
	_, err := New([]Destination{
		{Slug: "paris-1889"},
		{Slug: "paris-1889"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate slug")
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if _, err := New([]Destination{{Slug: ""}}); err == nil {
		t.Fatal("expected error for empty slug")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()

	all := c.All()
	all[0].Slug = "mutated"

	if got := c.Slugs()[0]; got != "paris-1889" {
		t.Fatalf("catalog mutated through All(): %s", got)
	}
}
