package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 20 * time.Second}

// fetchImage resolves an image reference. A "data:image/..." URI is decoded
// in place; anything else is fetched over HTTP, with https:// prepended when
// the reference carries no scheme.
func fetchImage(ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "data:image") {
		idx := strings.IndexByte(ref, ',')
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		data, err := base64.StdEncoding.DecodeString(ref[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("decode base64 image: %w", err)
		}
		return data, nil
	}

	if u, err := url.Parse(ref); err != nil || u.Scheme == "" {
		ref = "https://" + ref
	}
	log.Printf("downloading image from %s", snippet(ref, 80))
	resp, err := httpClient.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}

// snippet shortens s for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
