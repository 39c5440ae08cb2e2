package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Preprocess prepares a receipt photo for recognition: grayscale, a 2x
// upscale so small print survives thresholding, a mild blur to knock down
// sensor noise, then a mean adaptive threshold to flatten uneven lighting.
func Preprocess(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	gray = imaging.Resize(gray, gray.Bounds().Dx()*2, 0, imaging.Linear)
	gray = imaging.Blur(gray, 0.6)
	return adaptiveThreshold(gray, 31, 2)
}

// adaptiveThreshold binarizes against the mean luminance of a window around
// each pixel, minus a small bias. window is forced odd, minimum 3.
func adaptiveThreshold(img image.Image, window, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	lum := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lum[y*w+x] = luminance(img, img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
		}
	}
	// summed-area table over the luminance plane
	sat := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += lum[y*w+x]
			if y == 0 {
				sat[y*w+x] = rowSum
			} else {
				sat[y*w+x] = sat[(y-1)*w+x] + rowSum
			}
		}
	}

	half := window / 2
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := clamp(x-half, 0, w-1), clamp(y-half, 0, h-1)
			x1, y1 := clamp(x+half, 0, w-1), clamp(y+half, 0, h-1)
			sum := sat[y1*w+x1] - sat[y0*w+x1] - sat[y1*w+x0] + sat[y0*w+x0]
			mean := sum / ((x1 - x0 + 1) * (y1 - y0 + 1))
			th := mean - bias
			if th < 0 {
				th = 0
			}
			if lum[y*w+x] < th {
				out.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return out
}

func luminance(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return int((r + g + b) / 3 >> 8)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
