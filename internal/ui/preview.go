package ui

import (
	"image/color"

	"github.com/eliukblau/pixterm/pkg/ansimage"
)

const previewRows = 12

// preview is the rendered image of one screenshot
type preview struct {
	path    string
	content string
	err     error
}

// renderPreview draws the image at path with half-block characters, fitted
// into width columns and previewRows rows
func renderPreview(path string, width int) (string, error) {
	// each row holds two pixels without dithering
	img, err := ansimage.NewScaledFromFile(path, 2*previewRows, width, color.Black,
		ansimage.ScaleModeFit, ansimage.NoDithering)
	if err != nil {
		return "", err
	}
	return img.Render(), nil
}
