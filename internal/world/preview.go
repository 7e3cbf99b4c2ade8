package world

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/marc-cr1810/deepbound/internal/content"
)

var previewBackground = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

const previewTintWeight = 0.22

// TintFunc supplies an optional per-column overlay color in 0..255 space,
// blended into solid cells. Returning false leaves the column untinted.
type TintFunc func(worldX int) (mgl64.Vec3, bool)

// RenderPreview draws the chunks into a side-view image, one pixel per
// cell. World y grows upward and image y grows downward, so rows flip.
// Air stays background; solid and water cells take the registry color of
// their tile, shaded darker with depth.
func RenderPreview(chunks []*Chunk, reg *content.Registry, tint TintFunc) *image.NRGBA {
	if len(chunks) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	minC, maxC := chunks[0].Coord, chunks[0].Coord
	for _, ch := range chunks[1:] {
		if ch.Coord.X < minC.X {
			minC.X = ch.Coord.X
		}
		if ch.Coord.X > maxC.X {
			maxC.X = ch.Coord.X
		}
		if ch.Coord.Y < minC.Y {
			minC.Y = ch.Coord.Y
		}
		if ch.Coord.Y > maxC.Y {
			maxC.Y = ch.Coord.Y
		}
	}
	width := (maxC.X - minC.X + 1) * ChunkSize
	height := (maxC.Y - minC.Y + 1) * ChunkSize

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	for _, ch := range chunks {
		ox, oy := ch.Origin()
		for ly := 0; ly < ChunkSize; ly++ {
			wy := oy + ly
			py := height - 1 - (wy - minC.Y*ChunkSize)
			for lx := 0; lx < ChunkSize; lx++ {
				id := ch.Tile(lx, ly)
				if id == content.Air {
					continue
				}
				wx := ox + lx
				px := wx - minC.X*ChunkSize

				tile := reg.Tile(id)
				base := mgl64.Vec3{
					float64(tile.Color[0]),
					float64(tile.Color[1]),
					float64(tile.Color[2]),
				}
				alt := float64(wy-minC.Y*ChunkSize) / float64(height)

				var shaded mgl64.Vec3
				if id == content.Water {
					shaded = base.Mul(0.75 + 0.25*alt)
				} else {
					shaded = base.Mul(0.6 + 0.4*alt)
					if tint != nil {
						if tc, ok := tint(wx); ok {
							shaded = shaded.Mul(1 - previewTintWeight).Add(tc.Mul(previewTintWeight))
						}
					}
				}
				img.SetNRGBA(px, py, color.NRGBA{
					R: channel(shaded.X()),
					G: channel(shaded.Y()),
					B: channel(shaded.Z()),
					A: 255,
				})
			}
		}
	}
	return img
}

// WritePreviewPNG encodes the image to a PNG file at path.
func WritePreviewPNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

// ParseHexColor decodes a "#rrggbb" string into a 0..255 vector.
func ParseHexColor(s string) (mgl64.Vec3, bool) {
	if len(s) != 7 || s[0] != '#' {
		return mgl64.Vec3{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{
		float64(v >> 16 & 0xFF),
		float64(v >> 8 & 0xFF),
		float64(v & 0xFF),
	}, true
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
