package nav

import (
	"reflect"
	"testing"

	"atelier-cli/internal/model"
)

func fixtureCategories() []model.Category {
	return []model.Category{
		{ID: 10, Name: "Objets"},
		{ID: 11, Name: "Appartements"},
		{ID: 12, Name: "Hôtels & Restaurants"},
	}
}

func fixtureWorks() []model.Work {
	return []model.Work{
		{ID: 1, Title: "Chair", Category: &model.Category{ID: 10, Name: "Objets"}},
		{ID: 2, Title: "Table", Category: &model.Category{ID: 11, Name: "Appartements"}},
		{ID: 3, Title: "Bar", CategoryID: 12},
		{ID: 4, Title: "Orphan", CategoryID: 99},
	}
}

func idsOf(works []model.Work) []int64 {
	out := make([]int64, 0, len(works))
	for _, w := range works {
		out = append(out, w.ID)
	}
	return out
}

func TestDeriveVisible_KnownSlug(t *testing.T) {
	t.Parallel()

	got := DeriveVisible(fixtureWorks(), fixtureCategories(), "objets")
	if want := []int64{1}; !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("objets filter = %v, want %v", idsOf(got), want)
	}

	// Flat categoryId resolution also participates in filtering.
	got = DeriveVisible(fixtureWorks(), fixtureCategories(), "hotels-et-restaurants")
	if want := []int64{3}; !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("hotels filter = %v, want %v", idsOf(got), want)
	}
}

func TestDeriveVisible_AllAndEmpty(t *testing.T) {
	t.Parallel()

	works := fixtureWorks()
	for _, slug := range []string{"", "all", "  "} {
		got := DeriveVisible(works, fixtureCategories(), slug)
		if len(got) != len(works) {
			t.Fatalf("slug %q: expected all %d works, got %d", slug, len(works), len(got))
		}
	}
}

func TestDeriveVisible_UnknownSlugFailsOpen(t *testing.T) {
	t.Parallel()

	works := fixtureWorks()
	got := DeriveVisible(works, fixtureCategories(), "no-such-category")
	if len(got) != len(works) {
		t.Fatalf("unknown slug must behave like all: got %d of %d works", len(got), len(works))
	}
}

func TestDeriveVisible_UnresolvableCategoryExcluded(t *testing.T) {
	t.Parallel()

	got := DeriveVisible(fixtureWorks(), fixtureCategories(), "appartements")
	for _, w := range got {
		if w.ID == 4 {
			t.Fatalf("work with unresolvable category must not match a non-all filter")
		}
	}
}

func TestDeriveVisible_UnionReconstructsStore(t *testing.T) {
	t.Parallel()

	works := fixtureWorks()[:3] // drop the orphan, which only "all" can show
	cats := fixtureCategories()

	seen := map[int64]bool{}
	for _, c := range cats {
		for _, w := range DeriveVisible(works, cats, model.Slugify(c.Name)) {
			seen[w.ID] = true
		}
	}
	if len(seen) != len(works) {
		t.Fatalf("union over known slugs = %d works, want %d", len(seen), len(works))
	}
}

func TestLocation_RoundTrip(t *testing.T) {
	t.Parallel()

	works := fixtureWorks()
	cats := fixtureCategories()

	// Selecting X, encoding the location, re-parsing it, and re-deriving must
	// yield the same set as selecting X directly.
	direct := DeriveVisible(works, cats, "objets")
	loc := ParseLocation(Location{CategorySlug: "objets"}.String())
	viaLocation := DeriveVisible(works, cats, loc.CategorySlug)
	if !reflect.DeepEqual(idsOf(direct), idsOf(viaLocation)) {
		t.Fatalf("round-trip mismatch: %v vs %v", idsOf(direct), idsOf(viaLocation))
	}
}

func TestLocation_AllDropsParameter(t *testing.T) {
	t.Parallel()

	if s := (Location{CategorySlug: "all"}).String(); s != "/gallery" {
		t.Fatalf("all must drop the category parameter, got %q", s)
	}
	if s := (Location{}).String(); s != "/gallery" {
		t.Fatalf("zero location must encode bare, got %q", s)
	}
	if s := (Location{CategorySlug: "objets"}).String(); s != "/gallery?category=objets" {
		t.Fatalf("unexpected encoding %q", s)
	}
}

func TestParseLocation_Lenient(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/gallery?category=objets", "objets"},
		{"/gallery?category=all", ""},
		{"/gallery", ""},
		{"", ""},
		{"?category=hotels-et-restaurants", "hotels-et-restaurants"},
		{"://bad url", ""},
	}
	for _, tc := range cases {
		if got := ParseLocation(tc.in).CategorySlug; got != tc.want {
			t.Errorf("ParseLocation(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHistory_BackForward(t *testing.T) {
	t.Parallel()

	h := NewHistory(Location{})
	h.Push(Location{CategorySlug: "objets"})
	h.Push(Location{CategorySlug: "appartements"})

	if loc, ok := h.Back(); !ok || loc.CategorySlug != "objets" {
		t.Fatalf("back = %v/%v, want objets", loc, ok)
	}
	if loc, ok := h.Back(); !ok || !loc.IsAll() {
		t.Fatalf("back = %v/%v, want all", loc, ok)
	}
	if _, ok := h.Back(); ok {
		t.Fatalf("back past the first entry must report false")
	}
	if loc, ok := h.Forward(); !ok || loc.CategorySlug != "objets" {
		t.Fatalf("forward = %v/%v, want objets", loc, ok)
	}
}

func TestHistory_PushIsIdempotentAndClearsForward(t *testing.T) {
	t.Parallel()

	h := NewHistory(Location{})
	h.Push(Location{CategorySlug: "objets"})
	h.Push(Location{CategorySlug: "objets"}) // reselecting the active filter
	if _, ok := h.Back(); !ok {
		t.Fatalf("expected exactly one pushed entry")
	}
	if _, ok := h.Back(); ok {
		t.Fatalf("idempotent push must not grow history")
	}

	// A push after going back discards the forward stack.
	h.Push(Location{CategorySlug: "appartements"})
	if _, ok := h.Forward(); ok {
		t.Fatalf("forward stack must be cleared by push")
	}
}
