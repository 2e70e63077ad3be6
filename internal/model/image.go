package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the upload size ceiling.
const MaxImageBytes = 4 * 1024 * 1024

var (
	ErrImageType     = errors.New("image must be jpeg or png")
	ErrImageTooLarge = fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
)

// ImageMIME maps a file name to its accepted MIME type. Exactly two raster
// formats are accepted; anything else returns ok=false.
func ImageMIME(name string) (mime string, ok bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	}
	return "", false
}

// CheckImage validates an upload candidate by name and size. It is the
// client-side precondition gate: a violation here means the create is
// suppressed without a network call.
func CheckImage(name string, size int64) error {
	if _, ok := ImageMIME(name); !ok {
		return ErrImageType
	}
	if size > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
