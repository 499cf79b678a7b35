// Command png2go converts a PNG image into Go source holding its packed
// pixels, for builds that cannot use go:embed.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"sowon/internal/ui/atlas"
)

const pixelsPerLine = 8

var errIdentifier = errors.New("not a valid Go identifier")

func main() {
	pkg := flag.String("pkg", "main", "package name of the generated file")
	name := flag.String("name", "digits", "prefix of the generated identifiers")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: png2go [-pkg name] [-name ident] FILE.png\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if err := convert(os.Stdout, os.Stderr, flag.Arg(0), *pkg, *name); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func convert(out, warn io.Writer, path, pkg, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	exact, err := packsExactly(img)
	if err != nil {
		return err
	}
	if !exact {
		fmt.Fprintf(warn, "WARNING: %s has more than 8 bits per channel, output is truncated\n", path)
	}

	writer := bufio.NewWriter(out)
	if err := generate(writer, img, filepath.Base(path), pkg, name); err != nil {
		return err
	}
	return writer.Flush()
}

// packsExactly reports whether the image survives a round trip through the
// packed 32-bit format the generated file uses.
func packsExactly(img image.Image) (bool, error) {
	bounds := img.Bounds()
	unpacked, err := atlas.Unpack(atlas.Pack(img), bounds.Dx(), bounds.Dy())
	if err != nil {
		return false, fmt.Errorf("check packed pixels: %w", err)
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r1, g1, b1, a1 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r2, g2, b2, a2 := unpacked.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false, nil
			}
		}
	}
	return true, nil
}

func generate(out io.Writer, img image.Image, source, pkg, name string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("package %q: %w", pkg, errIdentifier)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("name %q: %w", name, errIdentifier)
	}

	bounds := img.Bounds()
	pixels := atlas.Pack(img)

	fmt.Fprintf(out, "// Code generated by png2go from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(out, "package %s\n\n", pkg)
	fmt.Fprintf(out, "const (\n\t%sWidth  = %d\n\t%sHeight = %d\n)\n\n", name, bounds.Dx(), name, bounds.Dy())
	fmt.Fprintf(out, "// %sPixels is row-major RGBA with red in the low byte.\n", name)
	fmt.Fprintf(out, "var %sPixels = []uint32{\n", name)
	for i, pixel := range pixels {
		if i%pixelsPerLine == 0 {
			fmt.Fprint(out, "\t")
		}
		fmt.Fprintf(out, "0x%08x,", pixel)
		if i%pixelsPerLine == pixelsPerLine-1 || i == len(pixels)-1 {
			fmt.Fprint(out, "\n")
		} else {
			fmt.Fprint(out, " ")
		}
	}
	_, err := fmt.Fprint(out, "}\n")
	return err
}
