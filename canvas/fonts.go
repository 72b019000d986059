package canvas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type FontKey int

const (
	FontRegular14 FontKey = iota
	FontBold24
)

func (k FontKey) String() string {
	switch k {
	case FontRegular14:
		return "regular-14"
	case FontBold24:
		return "bold-24"
	default:
		return "INVALID"
	}
}

type fontSpec struct {
	ttf  []byte
	size float64
}

var fontSpecs = map[FontKey]fontSpec{
	FontRegular14: {ttf: goregular.TTF, size: 14},
	FontBold24:    {ttf: gobold.TTF, size: 24},
}

func loadFaces() (map[FontKey]font.Face, error) {
	faces := make(map[FontKey]font.Face, len(fontSpecs))
	for k, spec := range fontSpecs {
		f, err := opentype.Parse(spec.ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", k, err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    spec.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %s: %w", k, err)
		}
		faces[k] = face
	}
	return faces, nil
}
