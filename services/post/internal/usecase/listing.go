package usecase

import (
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const MaxImages = 5

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ListingInput is the editable part of a listing as submitted by the form.
type ListingInput struct {
	Brand           string
	GarmentType     string
	Color           string
	SizeFit         string
	BrandSocialLink string
	BrandWebsite    string
	Description     string
}

// ImageUpload defers opening the file until every check has passed.
type ImageUpload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

func (u ImageUpload) Ext() string {
	return strings.ToLower(filepath.Ext(u.Filename))
}

// ResolvedContentType falls back to the extension when the client sent none.
func (u ImageUpload) ResolvedContentType() string {
	if u.ContentType != "" && u.ContentType != "application/octet-stream" {
		return u.ContentType
	}
	return imageTypes[u.Ext()]
}

// Normalize trims every field.
func (in ListingInput) Normalize() ListingInput {
	return ListingInput{
		Brand:           strings.TrimSpace(in.Brand),
		GarmentType:     strings.TrimSpace(in.GarmentType),
		Color:           strings.TrimSpace(in.Color),
		SizeFit:         strings.TrimSpace(in.SizeFit),
		BrandSocialLink: strings.TrimSpace(in.BrandSocialLink),
		BrandWebsite:    strings.TrimSpace(in.BrandWebsite),
		Description:     strings.TrimSpace(in.Description),
	}
}

func (in ListingInput) Validate() error {
	if in.Brand == "" || in.GarmentType == "" || in.Color == "" {
		return ErrMissingFields
	}

	limits := []struct {
		value string
		max   int
	}{
		{in.Brand, 100},
		{in.GarmentType, 100},
		{in.Color, 50},
		{in.SizeFit, 100},
		{in.BrandSocialLink, 490},
		{in.BrandWebsite, 490},
		{in.Description, 2000},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return ErrFieldTooLong
		}
	}
	return nil
}

// ValidateImages checks the count and formats of a new listing's images.
func ValidateImages(images []ImageUpload) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	if len(images) > MaxImages {
		return ErrTooManyImages
	}
	for _, img := range images {
		if _, ok := imageTypes[img.Ext()]; !ok {
			return ErrInvalidImage
		}
	}
	return nil
}

// NormalizeURL trims the link, maps empty to nil and adds https:// when no
// http(s) scheme is present.
func NormalizeURL(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		trimmed = "https://" + trimmed
	}
	return &trimmed
}
