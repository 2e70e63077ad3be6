package model

import (
	"errors"
	"testing"
)

func TestImageMIME(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mime string
		ok   bool
	}{
		{"photo.jpg", "image/jpeg", true},
		{"photo.JPEG", "image/jpeg", true},
		{"photo.png", "image/png", true},
		{"photo.PNG", "image/png", true},
		{"photo.gif", "", false},
		{"photo.webp", "", false},
		{"photo", "", false},
	}
	for _, tc := range cases {
		mime, ok := ImageMIME(tc.name)
		if mime != tc.mime || ok != tc.ok {
			t.Errorf("ImageMIME(%q) = %q/%v, want %q/%v", tc.name, mime, ok, tc.mime, tc.ok)
		}
	}
}

func TestCheckImage(t *testing.T) {
	t.Parallel()

	if err := CheckImage("ok.png", MaxImageBytes); err != nil {
		t.Fatalf("exactly at the ceiling must pass: %v", err)
	}
	if err := CheckImage("big.png", MaxImageBytes+1); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
	if err := CheckImage("anim.gif", 10); !errors.Is(err, ErrImageType) {
		t.Fatalf("expected ErrImageType, got %v", err)
	}
}
