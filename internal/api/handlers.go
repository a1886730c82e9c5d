package api

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/VoidMesh/noise/internal/config"
	"github.com/VoidMesh/noise/internal/presets"
	"github.com/VoidMesh/noise/visualizer"
)

type Handler struct {
	render         config.RenderConfig
	requestTimeout time.Duration
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		render:         cfg.Render,
		requestTimeout: cfg.Server.RequestTimeout,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type PresetResponse struct {
	Name  string `json:"name"`
	Dim   int    `json:"dim"`
	Shape []int  `json:"shape"`
	File  string `json:"file"`
}

type SampleResponse struct {
	Preset string    `json:"preset"`
	Seed   uint64    `json:"seed"`
	Coords []float64 `json:"coords"`
	// Value is null when the pipeline yields NaN
	Value *float64 `json:"value"`
}

func newPresetResponse(p presets.Preset) PresetResponse {
	return PresetResponse{
		Name:  p.Name,
		Dim:   p.Dim,
		Shape: p.Shape,
		File:  p.File(),
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "voidmesh-noise",
		"version":   "1.0.0",
		"presets":   len(presets.Names()),
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	all := presets.All()
	response := make([]PresetResponse, len(all))
	for i, p := range all {
		response[i] = newPresetResponse(p)
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPreset(w, r)
	if !ok {
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, newPresetResponse(p))
}

// RenderPreset writes the preset as PNG, or GIF for 4D presets. Every axis
// gets the requested size.
func (h *Handler) RenderPreset(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPreset(w, r)
	if !ok {
		return
	}

	seed, err := parseSeed(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid seed", err)
		return
	}

	size, err := queryInt(r, "size", h.render.DefaultSize)
	if err != nil || size <= 0 {
		h.renderError(w, r, http.StatusBadRequest, "size must be a positive integer", err)
		return
	}

	upscale, err := queryInt(r, "upscale", 1)
	if err != nil || upscale < 1 || upscale > h.render.MaxUpscale {
		h.renderError(w, r, http.StatusBadRequest, "upscale out of range", err)
		return
	}

	shape := make([]int, p.Dim)
	pixels := 1
	for i := range shape {
		shape[i] = size
		pixels *= size
		if pixels > h.render.MaxPixels {
			h.renderError(w, r, http.StatusBadRequest, "requested render is too large", nil)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	buf, err := p.Render(ctx, seed, shape, h.render.Workers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.renderError(w, r, http.StatusServiceUnavailable, "render timed out", err)
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, "failed to render preset", err)
		return
	}

	var out bytes.Buffer
	if err := visualizer.FromBuffer(buf).WithUpscale(upscale).Encode(&out); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to encode image", err)
		return
	}

	log.Debug("rendered preset image", "preset", p.Name, "seed", seed, "size", size, "bytes", out.Len(), "duration", time.Since(start))

	contentType := "image/png"
	if p.Dim == 4 {
		contentType = "image/gif"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes())
}

// SamplePreset evaluates the preset at the comma separated coords.
func (h *Handler) SamplePreset(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPreset(w, r)
	if !ok {
		return
	}

	seed, err := parseSeed(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid seed", err)
		return
	}

	coords, err := parseCoords(r.URL.Query().Get("coords"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid coords", err)
		return
	}

	value, err := p.Sample(seed, coords)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "wrong number of coordinates", err)
		return
	}

	response := SampleResponse{Preset: p.Name, Seed: seed, Coords: coords}
	if !math.IsNaN(value) {
		response.Value = &value
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) lookupPreset(w http.ResponseWriter, r *http.Request) (presets.Preset, bool) {
	name := chi.URLParam(r, "name")
	p, err := presets.Lookup(name)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "preset not found", nil)
		return presets.Preset{}, false
	}
	return p, true
}

func parseSeed(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return presets.DefaultSeed, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func parseCoords(raw string) ([]float64, error) {
	if raw == "" {
		return nil, errors.New("no coordinates given")
	}
	parts := strings.Split(raw, ",")
	coords := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("coordinates must be finite")
		}
		coords[i] = v
	}
	return coords, nil
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
