// Package api serves the sort tracing endpoints.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kellegous/stepsort/config"
	"github.com/kellegous/stepsort/internal"
	"github.com/kellegous/stepsort/metrics"
	"github.com/kellegous/stepsort/mux"
	"github.com/kellegous/stepsort/sorts"
)

// Paths of the endpoints served by the API.
const (
	SortPath        = "/api/sort"
	RandomPath      = "/api/random-array"
	AlgorithmsPath  = "/api/algorithms"
	maxRequestBytes = 1 << 20
)

// SortRequest is the body of a request to SortPath.
type SortRequest struct {
	Array     []int  `json:"array" validate:"maxitems"`
	Algorithm string `json:"algorithm" validate:"max=64"`
}

// RandomRequest holds the query parameters of a request to RandomPath.
type RandomRequest struct {
	Size int `json:"size" validate:"gte=0,maxitems"`
	Min  int `json:"min_val" validate:"gte=-1000000000,lte=1000000000"`
	Max  int `json:"max_val" validate:"gte=-1000000000,lte=1000000000,gtefield=Min"`
}

// RandomResponse is the body returned from RandomPath.
type RandomResponse struct {
	Array []int `json:"array"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the API for a single configuration.
type Handler struct {
	Ctx    *config.Context
	Engine *sorts.Engine

	validate *validator.Validate

	// intn returns a value in [0, n), rand.IntN unless replaced in tests.
	intn func(n int) int
}

// New creates a Handler for the given configuration.
func New(ctx *config.Context) *Handler {
	e := &sorts.Engine{
		Fallback:      ctx.DefaultAlgorithm,
		MaxValueRange: ctx.MaxValueRange,
	}

	return &Handler{
		Ctx:      ctx,
		Engine:   e,
		validate: newValidator(ctx.MaxArraySize),
		intn:     rand.IntN,
	}
}

// Setup adds the API handlers to the mux.Builder.
func Setup(ctx *config.Context, mb *mux.Builder) {
	h := New(ctx)
	m := mb.ForHost(ctx.Host)

	m.HandleMethods(SortPath,
		internal.AddSecurityHeadersFunc(ctx.Info, h.serveSort),
		http.MethodPost)
	m.HandleMethods(RandomPath,
		internal.AddSecurityHeadersFunc(ctx.Info, h.serveRandom),
		http.MethodGet)
	m.HandleMethods(AlgorithmsPath,
		internal.AddSecurityHeadersFunc(ctx.Info, h.serveAlgorithms),
		http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("unable to write response",
			zap.Error(err))
	}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, endpoint, reason, msg string) {
	metrics.ObserveRejected(endpoint, reason)
	zap.L().Info("request rejected",
		zap.String("id", internal.RequestID(r.Context())),
		zap.String("endpoint", endpoint),
		zap.String("reason", reason),
		zap.String("error", msg))
	writeJSON(w, http.StatusBadRequest, &errorResponse{Error: msg})
}

// Generate returns size values drawn from [lo, hi] using intn.
func Generate(size, lo, hi int, intn func(n int) int) []int {
	arr := make([]int, size)
	for i := range arr {
		arr[i] = lo + intn(hi-lo+1)
	}
	return arr
}

func (h *Handler) serveSort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest

	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := d.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		h.reject(w, r, "sort", "decode", fmt.Sprintf("invalid request: %s", err))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.reject(w, r, "sort", "validate", describe(err, h.Ctx.MaxArraySize))
		return
	}

	alg, known := h.Engine.Resolve(req.Algorithm)
	if !known {
		zap.L().Info("unknown algorithm, falling back",
			zap.String("id", internal.RequestID(r.Context())),
			zap.String("requested", req.Algorithm),
			zap.String("algorithm", alg.Name))
	}

	start := time.Now()
	steps, err := alg.Run(req.Array, h.Engine.MaxValueRange)
	elapsed := time.Since(start)
	if errors.Is(err, sorts.ErrRange) {
		h.reject(w, r, "sort", "range", err.Error())
		return
	} else if err != nil {
		zap.L().Error("unable to trace",
			zap.String("id", internal.RequestID(r.Context())),
			zap.String("algorithm", alg.Name),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: "internal error"})
		return
	}

	metrics.ObserveTrace(alg.Name, !known, len(steps), elapsed)
	zap.L().Debug("traced",
		zap.String("id", internal.RequestID(r.Context())),
		zap.String("algorithm", alg.Name),
		zap.Int("size", len(req.Array)),
		zap.Int("steps", len(steps)),
		zap.Duration("elapsed", elapsed))

	writeJSON(w, http.StatusOK, steps)
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func (h *Handler) serveRandom(w http.ResponseWriter, r *http.Request) {
	var req RandomRequest
	var err error

	if req.Size, err = intParam(r, "size", h.Ctx.Random.Size); err != nil {
		h.reject(w, r, "random", "decode", err.Error())
		return
	}

	if req.Min, err = intParam(r, "min_val", h.Ctx.Random.Min); err != nil {
		h.reject(w, r, "random", "decode", err.Error())
		return
	}

	if req.Max, err = intParam(r, "max_val", h.Ctx.Random.Max); err != nil {
		h.reject(w, r, "random", "decode", err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.reject(w, r, "random", "validate", describe(err, h.Ctx.MaxArraySize))
		return
	}

	writeJSON(w, http.StatusOK, &RandomResponse{
		Array: Generate(req.Size, req.Min, req.Max, h.intn),
	})
}

func (h *Handler) serveAlgorithms(w http.ResponseWriter, r *http.Request) {
	fallback, _ := h.Engine.Resolve("")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"algorithms": sorts.All(),
		"default":    fallback.Name,
	})
}
