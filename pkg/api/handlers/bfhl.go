package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/api/types"
	"bfhl-hq/bfhl/pkg/classify"
	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/telemetry/metrics"
	"bfhl-hq/bfhl/pkg/telemetry/tracing"
)

// allowedMethods is sent in the Allow header of 405 responses.
const allowedMethods = "GET, POST"

// Settings is the reloadable state of a BFHLHandler.
type Settings struct {
	Identity      types.Identity
	OperationCode int
	MaxBodyBytes  int64
	Classifier    *classify.Classifier
}

// SettingsFromConfig builds handler settings from cfg.
func SettingsFromConfig(cfg *config.Config) (*Settings, error) {
	policy, err := classify.ParsePolicy(cfg.Classifier.NumericPolicy)
	if err != nil {
		return nil, err
	}
	classifier, err := classify.New(policy)
	if err != nil {
		return nil, err
	}

	maxBody := cfg.API.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = api.DefaultMaxBodyBytes
	}

	return &Settings{
		Identity: types.Identity{
			UserID:     cfg.Identity.UserID,
			Email:      cfg.Identity.Email,
			RollNumber: cfg.Identity.RollNumber,
		},
		OperationCode: cfg.API.OperationCode,
		MaxBodyBytes:  maxBody,
		Classifier:    classifier,
	}, nil
}

// BFHLHandler serves the classification endpoint.
//
// POST classifies the "data" array of the request body and answers with the
// success envelope. GET answers with the operation code. Any other method
// receives 405.
//
// Settings can be swapped at runtime with Apply; in-flight requests keep
// the settings they started with.
type BFHLHandler struct {
	settings atomic.Pointer[Settings]
	metrics  *metrics.Collector
	tracer   *tracing.Tracer
	logger   *slog.Logger
}

// NewBFHLHandler creates a handler from cfg. collector and tracer may be nil.
func NewBFHLHandler(cfg *config.Config, collector *metrics.Collector, tracer *tracing.Tracer, logger *slog.Logger) (*BFHLHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := &BFHLHandler{
		metrics: collector,
		tracer:  tracer,
		logger:  logger,
	}
	if err := h.Apply(cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Apply replaces the handler settings with those derived from cfg. On error
// the current settings are kept.
func (h *BFHLHandler) Apply(cfg *config.Config) error {
	s, err := SettingsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to apply handler settings: %w", err)
	}
	h.settings.Store(s)
	return nil
}

// Settings returns the settings currently in effect.
func (h *BFHLHandler) Settings() *Settings {
	return h.settings.Load()
}

// ServeHTTP implements http.Handler.
func (h *BFHLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleClassify(w, r)
	case http.MethodGet:
		h.handleOperationCode(w, r)
	default:
		w.Header().Set("Allow", allowedMethods)
		api.WriteStatus(w, http.StatusMethodNotAllowed)
	}
}

func (h *BFHLHandler) handleOperationCode(w http.ResponseWriter, _ *http.Request) {
	s := h.settings.Load()
	api.WriteJSONResponse(w, http.StatusOK, &types.OperationResponse{OperationCode: s.OperationCode})
}

func (h *BFHLHandler) handleClassify(w http.ResponseWriter, r *http.Request) {
	s := h.settings.Load()
	ctx := r.Context()

	tokens, err := api.ParseClassifyRequest(r, s.MaxBodyBytes)
	if err != nil {
		reason := api.FailureReason(err)
		if reason != "" {
			h.metrics.RecordValidationFailure(reason)
			h.logger.InfoContext(ctx, "rejected classification request",
				"reason", reason,
				"error", err,
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to read classification request", "error", err)
		}
		api.WriteError(w, err)
		return
	}

	var res classify.Result
	if h.tracer != nil {
		_, span := h.tracer.Start(ctx, "classify")
		res = s.Classifier.Classify(tokens)
		tracing.SetClassificationAttributes(span, res, len(tokens), s.Classifier.Policy())
		span.End()
	} else {
		res = s.Classifier.Classify(tokens)
	}

	h.metrics.RecordClassification(res, len(tokens))
	h.logger.DebugContext(ctx, "classified tokens",
		"tokens", len(tokens),
		"numbers", len(res.Numbers),
		"alphabets", len(res.Alphabets),
	)

	api.WriteJSONResponse(w, http.StatusOK, api.AssembleEnvelope(s.Identity, res))
}
