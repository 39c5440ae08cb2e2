package receipt

import (
	"image"
	"strings"
)

// TextBlock is a single OCR recognition result: the recognized text and the
// four corners of its bounding box in image coordinates.
type TextBlock struct {
	Text        string
	TopLeft     image.Point
	TopRight    image.Point
	BottomRight image.Point
	BottomLeft  image.Point
}

// SegmentBlocks joins OCR blocks into logical lines. Blocks are consumed in
// recognition order; a newline is emitted whenever a block starts below the
// bottom of the previous one, otherwise fragments of the same visual row are
// separated by a single space. A single block spanning several printed rows
// still comes out as one line.
func SegmentBlocks(blocks []TextBlock) string {
	var b strings.Builder
	lastBottom := 0
	haveBottom := false
	for _, blk := range blocks {
		if haveBottom && blk.TopLeft.Y > lastBottom {
			b.WriteByte('\n')
		}
		b.WriteString(blk.Text)
		b.WriteByte(' ')
		lastBottom = blk.BottomLeft.Y
		haveBottom = true
	}
	return b.String()
}
