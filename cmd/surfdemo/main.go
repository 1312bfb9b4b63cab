// Command surfdemo renders a test card with fogleman/gg, runs it
// through the surf transforms, and writes one PNG per result.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/gogpu/surf"
)

func main() {
	var (
		size   = flag.Int("size", 256, "test card size in pixels")
		outdir = flag.String("outdir", ".", "output directory")
	)
	flag.Parse()

	card, err := surf.FromImage(testCard(*size))
	if err != nil {
		log.Fatalf("Failed to build test card: %v", err)
	}

	results := []struct {
		name string
		run  func() (*surf.Surface, error)
	}{
		{"card.png", func() (*surf.Surface, error) { return card, nil }},
		{"flip_h.png", func() (*surf.Surface, error) { return card.Flip(true, false) }},
		{"flip_v.png", func() (*surf.Surface, error) { return card.Flip(false, true) }},
		{"flip_hv.png", func() (*surf.Surface, error) { return card.Flip(true, true) }},
		{"zoom_2x.png", func() (*surf.Surface, error) { return card.Zoom(surf.Uniform(2), true) }},
		{"zoom_mirror.png", func() (*surf.Surface, error) { return card.Zoom(surf.PerAxis(-1, 0.5), false) }},
		{"rotozoom_30.png", func() (*surf.Surface, error) { return card.Rotozoom(30, surf.Uniform(1), true) }},
		{"rotozoom_45_squash.png", func() (*surf.Surface, error) { return card.Rotozoom(45, surf.PerAxis(1, 0.75), true) }},
	}

	for _, r := range results {
		s, err := r.run()
		if err != nil {
			log.Fatalf("Failed to produce %s: %v", r.name, err)
		}
		path := filepath.Join(*outdir, r.name)
		if err := save(path, s); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
		log.Printf("Saved %s (%dx%d)\n", path, s.Width(), s.Height())
	}
}

// testCard draws an asymmetric pattern so flips and rotations are easy
// to tell apart.
func testCard(n int) image.Image {
	f := float64(n)
	dc := gg.NewContext(n, n)

	dc.SetRGB(0.12, 0.14, 0.2)
	dc.Clear()

	dc.SetRGBA(0.9, 0.35, 0.3, 1)
	dc.DrawCircle(f*0.35, f*0.4, f*0.25)
	dc.Fill()

	dc.SetRGBA(0.3, 0.8, 0.9, 0.9)
	dc.DrawRectangle(f*0.5, f*0.55, f*0.4, f*0.3)
	dc.Fill()

	// Corner marker so orientation is unambiguous.
	dc.SetRGB(1, 0.9, 0.2)
	dc.DrawRectangle(0, 0, f*0.12, f*0.12)
	dc.Fill()

	return dc.Image()
}

func save(path string, s *surf.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s)
}
