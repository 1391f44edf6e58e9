package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/integrator"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/renderer"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/scene"
)

// Request limits shared by the render, image and inspect endpoints
const (
	minSize          = 16
	maxSize          = 2000
	maxAntiAliasing  = 17
	defaultScene     = "sphere-lights"
	progressInterval = 0.25 // Seconds between progress lines
	useSceneAperture = -1.0
)

// Server handles web requests for the ray tracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene        string  `json:"scene"`        // Scene ID (e.g., "soft-shadows")
	Width        int     `json:"width"`        // Image width
	Height       int     `json:"height"`       // Image height
	AntiAliasing int     `json:"antiAliasing"` // Grid side per pixel, 0 for one ray
	Aperture     float64 `json:"aperture"`     // Focal distance, negative for the scene's own
	Shadows      string  `json:"shadows"`      // "none", "hard" or "soft"
	Seed         int64   `json:"seed"`         // Jitter seed
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	TotalRays   int     `json:"totalRays"`
	AverageRays float64 `json:"averageRays"`
	Workers     int     `json:"workers"`
	Luminance   float64 `json:"luminance"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels: stats.TotalPixels,
		TotalRays:   stats.TotalRays,
		AverageRays: stats.AverageRays,
		Workers:     stats.Workers,
		Luminance:   stats.Luminance,
	}
}

// Handler returns the routes served by Start
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// The root lists the available scenes
	mux.HandleFunc("/{$}", s.handleScenes)

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := scene.Load(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.Camera
	response := map[string]interface{}{
		"scene": sceneName,
		"name":  sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"aperture": config.Aperture,
			"shadows":  integrator.ShadowNone.String(),
		},
		"limits": map[string]interface{}{
			"width":        map[string]int{"min": minSize, "max": maxSize},
			"height":       map[string]int{"min": minSize, "max": maxSize},
			"antiAliasing": map[string]int{"min": 0, "max": maxAntiAliasing},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters. Width and height default to
// the scene's own resolution.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Shadows: query.Get("shadows")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}
	if req.Shadows == "" {
		req.Shadows = integrator.ShadowNone.String()
	}
	if _, err := integrator.ParseShadowMode(req.Shadows); err != nil {
		return nil, err
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.AntiAliasing, err = parseIntParam(query, "aa", 0, 0, maxAntiAliasing); err != nil {
		return nil, err
	}
	if req.Aperture, err = parseFloatParam(query, "aperture", useSceneAperture, 0, 1e6); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", renderer.DefaultSeed, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	if req.Width*req.Height > 800*600 && req.AntiAliasing > 5 {
		log.Printf("Render warning: Large image with antialiasing may render slowly")
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createCamera loads the requested scene and builds a camera rendering it on
// all cores. A nil logger keeps the render silent.
func (s *Server) createCamera(req *RenderRequest, logger core.Logger) (*renderer.Camera, scene.Scene, error) {
	sceneObj, err := scene.Load(req.Scene)
	if err != nil {
		return nil, scene.Scene{}, err
	}
	if sceneObj, err = sceneObj.Preprocess(); err != nil {
		return nil, scene.Scene{}, err
	}
	shadows, err := integrator.ParseShadowMode(req.Shadows)
	if err != nil {
		return nil, scene.Scene{}, err
	}

	builder := renderer.NewCameraBuilder().
		WithSceneCamera(sceneObj.Camera).
		WithRayTracer(integrator.NewSimpleRayTracer(sceneObj, integrator.Config{Shadows: shadows})).
		WithAntiAliasing(req.AntiAliasing).
		WithMultithreading(-1).
		WithSeed(req.Seed)
	if req.Width > 0 && req.Height > 0 {
		builder = builder.WithResolution(req.Width, req.Height)
	}
	if req.Aperture >= 0 {
		builder = builder.WithApertureDistance(req.Aperture)
	}
	if logger != nil {
		builder = builder.WithLogger(logger).WithDebugPrint(progressInterval)
	}

	camera, err := builder.Build()
	if err != nil {
		return nil, scene.Scene{}, err
	}
	return camera, sceneObj, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
