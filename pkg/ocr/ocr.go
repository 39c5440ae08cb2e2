// Package ocr wraps Tesseract recognition of receipt photographs. It
// preprocesses the image for print contrast and returns positioned text
// blocks in reading order, ready for line segmentation.
package ocr

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"recu/pkg/receipt"
)

// Engine recognizes text blocks in a receipt image. Implementations must be
// safe for concurrent use; the service constructs one Engine at startup and
// shares it across requests.
type Engine interface {
	Recognize(path string) ([]receipt.TextBlock, error)
	Version() string
}

// Tesseract is the gosseract-backed Engine. Each Recognize call uses its own
// client, so a single Tesseract value serves concurrent requests.
type Tesseract struct {
	languages []string
}

// NewTesseract builds an engine for the given Tesseract language codes,
// defaulting to French plus English.
func NewTesseract(languages ...string) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"fra", "eng"}
	}
	return &Tesseract{languages: languages}
}

// Recognize preprocesses the image and runs Tesseract, returning one block
// per recognized text line with its bounding box corners. An image with no
// recognizable text yields an empty slice, not an error.
func (t *Tesseract) Recognize(path string) ([]receipt.TextBlock, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	prep := Preprocess(img)

	tmpFile, err := os.CreateTemp("", "receipt-ocr-*.png")
	if err != nil {
		return nil, fmt.Errorf("temp image: %w", err)
	}
	tmp := tmpFile.Name()
	_ = tmpFile.Close()
	defer os.Remove(tmp)
	if err := imaging.Save(prep, tmp); err != nil {
		return nil, fmt.Errorf("save preprocessed image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(t.languages...)
	client.SetImage(tmp)
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	blocks := make([]receipt.TextBlock, 0, len(boxes))
	for _, bb := range boxes {
		text := strings.TrimSpace(bb.Word)
		if text == "" {
			continue
		}
		blocks = append(blocks, receipt.TextBlock{
			Text:        text,
			TopLeft:     bb.Box.Min,
			TopRight:    image.Pt(bb.Box.Max.X, bb.Box.Min.Y),
			BottomRight: bb.Box.Max,
			BottomLeft:  image.Pt(bb.Box.Min.X, bb.Box.Max.Y),
		})
	}
	log.Printf("OCR %s: %d text lines", path, len(blocks))
	return blocks, nil
}

// Version reports the underlying Tesseract version, or "" when the engine is
// unavailable.
func (t *Tesseract) Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
