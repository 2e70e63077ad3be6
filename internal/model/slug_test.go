package model

import "testing"

func TestSlugify_NormalizesDiacriticsAndAmpersand(t *testing.T) {
	t.Parallel()

	got := Slugify("Hôtels & Restaurants")
	want := "hotels-et-restaurants"
	if got != want {
		t.Fatalf("Slugify(%q) = %q, want %q", "Hôtels & Restaurants", got, want)
	}

	// Case and accents must not change the slug.
	if other := Slugify("HOTELS & RESTAURANTS"); other != got {
		t.Fatalf("expected case-insensitive slug, got %q vs %q", other, got)
	}
}

func TestSlugify_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Objets", "objets"},
		{"Appartements", "appartements"},
		{"  Hôtels   &  Restaurants  ", "hotels-et-restaurants"},
		{"Éléphant d'or", "elephant-dor"},
		{"&", "et"},
		{"", ""},
		{"---", ""},
		{"Café 2024", "cafe-2024"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	in := "Hôtels & Restaurants"
	first := Slugify(in)
	for i := 0; i < 5; i++ {
		if got := Slugify(in); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}
