package main

import (
	"embed"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
)

//go:embed media/*.bmp
var media embed.FS

func loadChargingIcon() (image.Image, error) {
	r, err := media.Open("media/charging.bmp")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode charging icon: %w", err)
	}

	b := img.Bounds()
	if b.Dx() != iconWidth || b.Dy() != iconHeight {
		return nil, fmt.Errorf("charging icon is %dx%d, want %dx%d", b.Dx(), b.Dy(), iconWidth, iconHeight)
	}
	return img, nil
}
