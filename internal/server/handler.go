package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/haavikko/sananmuunnos/internal/config"
	"github.com/haavikko/sananmuunnos/internal/metrics"
	"github.com/haavikko/sananmuunnos/pkg/envelope"
	"github.com/haavikko/sananmuunnos/pkg/headswap"
)

// Handler serves the word transform endpoint. The transform is
// deterministic, so results for repeated payloads are served from an
// LRU cache keyed by the decoded input text.
type Handler struct {
	logger       *zap.Logger
	collector    *metrics.Collector
	cache        *lru.Cache[string, string]
	maxBodyBytes int64
}

// NewHandler creates a handler. The cache is disabled when cfg.Cache
// says so; collector may not be nil.
func NewHandler(cfg config.Config, collector *metrics.Collector, logger *zap.Logger) (*Handler, error) {
	h := &Handler{
		logger:       logger.With(zap.String("component", "transform_handler")),
		collector:    collector,
		maxBodyBytes: cfg.Server.MaxBodyBytes,
	}

	if cfg.Cache.Enabled {
		cache, err := lru.New[string, string](cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
		h.cache = cache
	}
	return h, nil
}

// Routes returns the full route table. Non-POST methods on the
// transform route get a 405 from the mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /transform", h.handleTransform)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (h *Handler) handleTransform(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reply(w, r, http.StatusRequestEntityTooLarge, []byte("request body too large"), start, len(body))
			return
		}
		h.reply(w, r, http.StatusBadRequest, []byte("could not read request body"), start, len(body))
		return
	}

	text, err := envelope.Decode(body)
	if err != nil {
		var inputErr *envelope.InputError
		if errors.As(err, &inputErr) {
			h.logger.Debug("rejected payload", zap.Error(err), zap.Int("bytes", len(body)))
			h.reply(w, r, http.StatusBadRequest, []byte("a JSON-quoted UTF-8 string is required"), start, len(body))
			return
		}
		h.internalError(w, r, err, start, len(body))
		return
	}

	out, err := h.transform(text)
	if err != nil {
		// A logic fault is a bug in the transition table, never the
		// caller's fault.
		h.internalError(w, r, err, start, len(body))
		return
	}

	encoded, err := envelope.Encode(out)
	if err != nil {
		h.internalError(w, r, err, start, len(body))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	h.reply(w, r, http.StatusOK, encoded, start, len(body))
}

// transform runs the head-swap transform, consulting the cache first.
func (h *Handler) transform(text string) (string, error) {
	if h.cache != nil {
		if out, ok := h.cache.Get(text); ok {
			h.collector.CacheHit()
			return out, nil
		}
		h.collector.CacheMiss()
	}

	out, err := headswap.TransformString(text)
	if err != nil {
		return "", err
	}

	if h.cache != nil {
		h.cache.Add(text, out)
	}
	return out, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, start time.Time, requestBytes int) {
	h.logger.Error("transform failed", zap.Error(err))
	h.reply(w, r, http.StatusInternalServerError, []byte("could not process the request"), start, requestBytes)
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request, status int, body []byte, start time.Time, requestBytes int) {
	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(status)
	w.Write(body)

	h.collector.ObserveRequest(r.Method, r.URL.Path, strconv.Itoa(status), time.Since(start), requestBytes, len(body))
	h.logger.Debug("request served",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)
}

// CacheLen returns the number of cached transform results, 0 when the
// cache is disabled.
func (h *Handler) CacheLen() int {
	if h.cache == nil {
		return 0
	}
	return h.cache.Len()
}
