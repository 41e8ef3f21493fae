package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataURL is returned when an uploaded image is not a valid
// base64 data URL.
var ErrInvalidDataURL = errors.New("invalid data URL")

// DecodeDataURL decodes a base64 image data URL (the format signature pads
// and logo uploads arrive in) into raw bytes and a file extension.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	meta, payload, found := strings.Cut(dataURL, ",")
	if !found || !strings.HasPrefix(meta, "data:") {
		return nil, "", ErrInvalidDataURL
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("%w: not base64 encoded", ErrInvalidDataURL)
	}

	mime := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	var ext string
	switch mime {
	case "image/png":
		ext = ".png"
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/svg+xml":
		ext = ".svg"
	default:
		return nil, "", fmt.Errorf("%w: unsupported media type %q", ErrInvalidDataURL, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return data, ext, nil
}
