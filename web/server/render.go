package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/imaging"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/renderer"
)

// RenderResult is the final event of a streamed render
type RenderResult struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// handleRender renders a scene and streams progress lines followed by the
// finished image as Server-Sent Events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	camera, _, err := s.createCamera(req, webLogger)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	// The render runs to completion even if the client leaves
	startTime := time.Now()
	done := make(chan renderer.RenderStats, 1)
	go func() {
		done <- camera.RenderImage()
	}()

	for {
		select {
		case msg := <-consoleChan:
			if err := s.sendConsoleMessage(w, msg); err != nil {
				return
			}
		case stats := <-done:
			s.flushConsole(w, consoleChan)
			s.sendResult(w, req, camera.Writer(), stats, time.Since(startTime))
			return
		case <-ctx.Done():
			return
		}
	}
}

// handleImage renders a scene and responds with the PNG
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	camera, _, err := s.createCamera(req, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats := camera.RenderImage()

	var buf bytes.Buffer
	if err := camera.Writer().EncodePNG(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Rays", fmt.Sprint(stats.TotalRays))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return nil
	}
	return s.sendSSEEvent(w, "console", string(data))
}

// flushConsole sends the console messages already queued
func (s *Server) flushConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			if err := s.sendConsoleMessage(w, msg); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (s *Server) sendResult(w http.ResponseWriter, req *RenderRequest, writer *imaging.Writer, stats renderer.RenderStats, elapsed time.Duration) {
	imageData, err := imageToBase64PNG(writer)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	data, err := json.Marshal(RenderResult{
		Scene:     req.Scene,
		Width:     writer.Width(),
		Height:    writer.Height(),
		ImageData: imageData,
		Stats:     newStats(stats),
		ElapsedMs: elapsed.Milliseconds(),
	})
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(writer *imaging.Writer) (string, error) {
	var buf bytes.Buffer
	if err := writer.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
