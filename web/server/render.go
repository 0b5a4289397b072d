package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int64   `json:"totalSamples"`
	TotalTiles       int     `json:"totalTiles"`
	SamplesPerPixel  int     `json:"samplesPerPixel"`
	SamplesPerSecond float64 `json:"samplesPerSecond"`
}

var renderCounter atomic.Int64

// handleRender renders a built-in scene and returns it as PNG, or as JSON with
// the encoded image, statistics and console output
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	consoleChan := make(chan ConsoleMessage, 64)
	logger := NewWebLogger(renderID, consoleChan)

	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.CameraConfig, logger)
	frame, stats, err := raytracer.Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	if req.Format == "json" {
		imageData, err := imageToBase64PNG(frame.RGBA())
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     sceneObj.Name,
			Width:     frame.Width,
			Height:    frame.Height,
			ImageData: imageData,
			Stats: Stats{
				TotalPixels:      stats.TotalPixels,
				TotalSamples:     int64(stats.TotalSamples),
				TotalTiles:       stats.TotalTiles,
				SamplesPerPixel:  stats.SamplesPerPixel,
				SamplesPerSecond: stats.SamplesPerSecond(),
			},
			Console:   drainConsole(consoleChan),
			ElapsedMs: stats.Elapsed.Milliseconds(),
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame.RGBA()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Time", stats.Elapsed.Round(time.Millisecond).String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] Failed to write response: %v", renderID, err)
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
