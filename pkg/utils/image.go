package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"golang.design/x/clipboard"
)

// CopyImage copies the given image to the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())
	return nil
}

// SaveImage writes the given image to filename as a PNG.
func SaveImage(img image.Image, filename string) error {
	if len(filename) < 4 || filename[len(filename)-4:] != ".png" {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
