package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want *string
	}{
		{"", nil},
		{"   ", nil},
		{"instagram.com/brand", strPtr("https://instagram.com/brand")},
		{"  brand.com ", strPtr("https://brand.com")},
		{"http://brand.com", strPtr("http://brand.com")},
		{"HTTPS://Brand.com", strPtr("HTTPS://Brand.com")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeURL(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestValidateImages(t *testing.T) {
	assert.ErrorIs(t, ValidateImages(nil), ErrNoImages)
	assert.ErrorIs(t, ValidateImages(images("1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg")), ErrTooManyImages)
	assert.ErrorIs(t, ValidateImages(images("scan.bmp")), ErrInvalidImage)
	assert.NoError(t, ValidateImages(images("1.jpg", "2.PNG", "3.webp", "4.jpeg", "5.gif")))
}

func TestListingInput_Validate(t *testing.T) {
	valid := ListingInput{Brand: "Margiela", GarmentType: "Jacket", Color: "Black"}
	assert.NoError(t, valid.Validate())

	missing := ListingInput{Brand: "Margiela", GarmentType: " ", Color: "Black"}.Normalize()
	assert.ErrorIs(t, missing.Validate(), ErrMissingFields)

	long := valid
	long.Description = strings.Repeat("x", 2001)
	assert.ErrorIs(t, long.Validate(), ErrFieldTooLong)
}

func TestImageUpload_ResolvedContentType(t *testing.T) {
	assert.Equal(t, "image/png", ImageUpload{Filename: "a.PNG"}.ResolvedContentType())
	assert.Equal(t, "image/jpeg", ImageUpload{Filename: "a.jpg", ContentType: "application/octet-stream"}.ResolvedContentType())
	assert.Equal(t, "image/webp", ImageUpload{Filename: "a.jpg", ContentType: "image/webp"}.ResolvedContentType())
}

func strPtr(s string) *string {
	return &s
}
