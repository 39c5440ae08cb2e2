// Command receiptwatch processes every receipt image dropped into a
// directory: new files are OCRed, run through the extraction pipeline, and
// the structured record is written next to the image as <name>.receipt.json.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"recu/pkg/ocr"
	"recu/pkg/receipt"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", "", "directory to watch for receipt images (default WATCH_DIR)")
	workers := flag.Int("workers", 2, "concurrent OCR workers")
	datePatterns := flag.Bool("date-patterns", false, "use day/month/year date matching instead of the legacy heuristic")
	flag.Parse()

	if *dir == "" {
		*dir = os.Getenv("WATCH_DIR")
	}
	if *dir == "" {
		log.Fatal("no directory given: pass -dir or set WATCH_DIR")
	}

	engine := ocr.NewTesseract()
	pipe := receipt.NewPipeline(nil)
	pipe.MatchDatePatterns = *datePatterns

	fileCh := make(chan string, 1024)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				processFile(*dir, name, engine, pipe)
			}
		}()
	}

	// Existing files first, then watch for new ones.
	for _, name := range listImageFiles(*dir) {
		fileCh <- name
	}
	if err := watchDirectory(*dir, fileCh); err != nil {
		log.Fatalf("watch %s: %v", *dir, err)
	}
	wg.Wait()
}

// processFile runs one image through OCR and the pipeline and writes the
// JSON sidecar. Failures are logged and skipped; the watcher keeps running.
func processFile(dir, name string, engine ocr.Engine, pipe *receipt.Pipeline) {
	full := filepath.Join(dir, name)
	sidecar := full + ".receipt.json"
	if _, err := os.Stat(sidecar); err == nil {
		log.Printf("skip %s: already processed", name)
		return
	}

	blocks, err := engine.Recognize(full)
	if err != nil {
		log.Printf("ocr error %s: %v", name, err)
		return
	}
	rec := pipe.ParseBlocks(blocks)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Printf("marshal %s: %v", name, err)
		return
	}
	if err := os.WriteFile(sidecar, data, 0644); err != nil {
		log.Printf("write %s: %v", sidecar, err)
		return
	}
	log.Printf("processed %s merchant=%q amount=%.2f category=%s items=%d",
		name, rec.Merchant, rec.Amount, rec.Category, len(rec.Items))
}

// watchDirectory forwards debounced create events for supported images into
// fileCh. It blocks until the watcher fails.
func watchDirectory(dir string, fileCh chan<- string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("watching %s (debounced) ...", dir)

	// debounce map of pending files: a file is forwarded once its create
	// event has been quiet long enough for the write to settle
	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				close(fileCh)
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				name := filepath.Base(ev.Name)
				if !isSupportedExt(name) {
					continue
				}
				pending[name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > 300*time.Millisecond {
					fileCh <- name
					delete(pending, name)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				close(fileCh)
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	return out
}

func isSupportedExt(name string) bool {
	// sidecars are our own output, never inputs
	if strings.HasSuffix(name, ".receipt.json") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}
