package main

import (
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func setupRoutes(r *gin.Engine) {
	r.Use(corsMiddleware())
	r.GET("/", homeHandler)
	r.GET("/test", testHandler)
	r.GET("/health", healthHandler)
	r.POST("/process", processHandler)
}

// corsMiddleware applies the service's permissive CORS policy: any origin,
// GET/POST/OPTIONS, and the headers browser clients send with image
// payloads.
func corsMiddleware() gin.HandlerFunc {
	policy := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept"},
		ExposedHeaders: []string{"Content-Type", "X-Requested-With"},
	})
	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       "Receipt processing server is running",
		"server_status": "online",
	})
}

func testHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       "Server is healthy",
		"server_status": "online",
	})
}

func healthHandler(c *gin.Context) {
	tess := "unavailable"
	if engine.Version() != "" {
		tess = "available"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"message":          "Server is healthy",
		"server_status":    "online",
		"server_ip":        serverIP(),
		"client_ip":        c.ClientIP(),
		"tesseract_status": tess,
	})
}

// processHandler accepts {"image_url": ...} where the value is either an
// http(s) URL or a base64 data URI, runs OCR and the extraction pipeline,
// and returns the structured receipt record.
func processHandler(c *gin.Context) {
	var req struct {
		ImageURL string `json:"image_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no image_url provided"})
		return
	}

	data, err := fetchImage(req.ImageURL)
	if err != nil {
		log.Printf("image fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "image download failed"})
		return
	}

	tmp, err := os.CreateTemp("", "receipt-upload-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "temp file failed"})
		return
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "temp file failed"})
		return
	}
	_ = tmp.Close()

	blocks, err := engine.Recognize(tmpName)
	if err != nil {
		log.Printf("ocr failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "text extraction failed"})
		return
	}

	rec := pipe.ParseBlocks(blocks)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// serverIP resolves the host's primary address for health reporting.
func serverIP() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	return addrs[0]
}
