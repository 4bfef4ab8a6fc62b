package server

import (
	"context"
	"fmt"

	"bfhl-hq/bfhl/pkg/config"
)

// ApplyConfig validates cfg and swaps the reloadable handler settings:
// identity, operation code, numeric policy and body limit. Listener,
// middleware and telemetry settings take effect only after a restart.
func (s *Server) ApplyConfig(cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		s.telemetry.Metrics.RecordConfigReload(false)
		return err
	}
	if err := s.bfhl.Apply(cfg); err != nil {
		s.telemetry.Metrics.RecordConfigReload(false)
		return err
	}

	if cfg.Server.ListenAddress != s.config.Server.ListenAddress {
		s.logger.Warn("listen address change requires a restart",
			"current", s.config.Server.ListenAddress,
			"configured", cfg.Server.ListenAddress,
		)
	}

	prev := config.GetConfig()
	if prev == nil {
		prev = s.config
	}

	config.SetConfig(cfg)
	s.telemetry.Metrics.RecordConfigReload(true)
	s.logger.Info("handler settings updated",
		"changed", changedSettings(prev, cfg),
		"user_id", cfg.Identity.UserID,
		"operation_code", cfg.API.OperationCode,
		"numeric_policy", cfg.Classifier.NumericPolicy,
	)
	return nil
}

// changedSettings lists the reloadable settings that differ between prev
// and next.
func changedSettings(prev, next *config.Config) []string {
	var changed []string
	if prev.Identity != next.Identity {
		changed = append(changed, "identity")
	}
	if prev.API.OperationCode != next.API.OperationCode {
		changed = append(changed, "operation_code")
	}
	if prev.API.MaxBodyBytes != next.API.MaxBodyBytes {
		changed = append(changed, "max_body_bytes")
	}
	if prev.Classifier.NumericPolicy != next.Classifier.NumericPolicy {
		changed = append(changed, "numeric_policy")
	}
	return changed
}

// WatchConfig reloads path on change and applies the result until ctx is
// cancelled. Invalid files are logged and the current settings kept.
func (s *Server) WatchConfig(ctx context.Context, path string) error {
	w, err := config.NewWatcher(path, s.config.Reload.Debounce, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	return w.Watch(ctx, func(cfg *config.Config, err error) {
		if err != nil {
			s.telemetry.Metrics.RecordConfigReload(false)
			return
		}
		if err := s.ApplyConfig(cfg); err != nil {
			s.logger.Error("rejected reloaded configuration", "error", err)
		}
	})
}
