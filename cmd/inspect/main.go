package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"softraster/internal/asset"
	"softraster/internal/export"
	"softraster/internal/postprocess"
)

func main() {
	out := flag.String("o", "", "Re-encode the (single) input to this path; the format follows the extension")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-o out.ppm] image...")
		os.Exit(2)
	}
	if *out != "" && flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -o needs exactly one input")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := inspect(path, *out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(path, out string) error {
	img, err := asset.Load(path)
	if err != nil {
		return err
	}
	c, err := img.Canvas()
	if err != nil {
		return err
	}
	n := export.ToNRGBA(c)
	s := postprocess.Measure(n)

	fmt.Printf("%s: %dx%d\n", path, img.Width, img.Height)
	if b := postprocess.OpaqueBounds(n); b.Empty() {
		fmt.Println("  Visible: none")
	} else {
		fmt.Printf("  Visible: %v (%dx%d)\n", b, b.Dx(), b.Dy())
	}
	fmt.Printf("  Alpha: %d opaque, %d translucent, %d transparent\n", s.Opaque, s.Translucent, s.Transparent)
	fmt.Printf("  Mean RGBA: %.1f %.1f %.1f %.1f\n", s.Mean[0], s.Mean[1], s.Mean[2], s.Mean[3])

	if out == "" {
		return nil
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	if format == "tif" {
		format = "tiff"
	}
	if err := export.Save(out, c, export.Options{Format: format}); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", out)
	return nil
}
