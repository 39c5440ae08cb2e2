package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recu/pkg/ocr"
	"recu/pkg/receipt"
)

// Shared collaborators, constructed once at startup and reused across
// requests. Neither holds mutable state, so handlers use them concurrently
// without locking.
var (
	engine ocr.Engine
	pipe   *receipt.Pipeline
)

func main() {
	// Auto-load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	engine = ocr.NewTesseract(ocrLanguages()...)
	pipe = receipt.NewPipeline(nil)
	if os.Getenv("MATCH_DATE_PATTERNS") == "1" {
		pipe.MatchDatePatterns = true
	}

	r := gin.Default()
	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("receipt service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// ocrLanguages reads OCR_LANGUAGES as a comma-separated list of Tesseract
// language codes (e.g. "fra,eng").
func ocrLanguages() []string {
	raw := os.Getenv("OCR_LANGUAGES")
	if raw == "" {
		return nil
	}
	var langs []string
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
