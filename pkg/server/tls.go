package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"bfhl-hq/bfhl/pkg/config"
)

// expiryWarningDays is the threshold below which certificate expiry is
// logged as a warning.
const expiryWarningDays = 30

// NewTLSConfig builds the server tls.Config. The certificate is served
// through reloader so renewals on disk are picked up without a restart.
// It returns nil when TLS is disabled.
func NewTLSConfig(cfg config.TLSConfig, reloader *CertificateReloader) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if reloader == nil {
		return nil, fmt.Errorf("certificate reloader is required when TLS is enabled")
	}

	// #nosec G402 - MinVersion is validated to 1.2 or 1.3
	return &tls.Config{
		MinVersion:     parseTLSVersion(cfg.MinVersion),
		GetCertificate: reloader.GetCertificateFunc(),
	}, nil
}

func parseTLSVersion(v string) uint16 {
	if v == "1.2" {
		return tls.VersionTLS12
	}
	return tls.VersionTLS13
}

// CertificateReloader holds the serving certificate and reloads it when the
// certificate or key file changes on disk.
type CertificateReloader struct {
	certFile string
	keyFile  string
	interval time.Duration
	logger   *slog.Logger

	mu       sync.RWMutex
	cert     *tls.Certificate
	certTime time.Time
	keyTime  time.Time
}

// NewCertificateReloader loads the certificate pair once and returns a
// reloader for it. A non-positive interval disables periodic reloading.
func NewCertificateReloader(certFile, keyFile string, interval time.Duration, logger *slog.Logger) (*CertificateReloader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &CertificateReloader{
		certFile: certFile,
		keyFile:  keyFile,
		interval: interval,
		logger:   logger,
	}
	if err := r.reload(); err != nil {
		return nil, err
	}
	r.logCertificateInfo()
	return r, nil
}

// Run checks the files every interval until ctx is done.
func (r *CertificateReloader) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !r.needsReload() {
				continue
			}
			if err := r.reload(); err != nil {
				r.logger.Error("failed to reload certificate",
					"error", err,
					"cert_file", r.certFile,
					"key_file", r.keyFile,
				)
				continue
			}
			r.logger.Info("certificate reloaded", "cert_file", r.certFile)
			r.logCertificateInfo()
		case <-ctx.Done():
			return
		}
	}
}

func (r *CertificateReloader) needsReload() bool {
	certInfo, err := os.Stat(r.certFile)
	if err != nil {
		return false
	}
	keyInfo, err := os.Stat(r.keyFile)
	if err != nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return certInfo.ModTime().After(r.certTime) || keyInfo.ModTime().After(r.keyTime)
}

func (r *CertificateReloader) reload() error {
	certInfo, err := os.Stat(r.certFile)
	if err != nil {
		return fmt.Errorf("certificate file not found: %s: %w", r.certFile, err)
	}
	keyInfo, err := os.Stat(r.keyFile)
	if err != nil {
		return fmt.Errorf("key file not found: %s: %w", r.keyFile, err)
	}

	cert, err := tls.LoadX509KeyPair(r.certFile, r.keyFile)
	if err != nil {
		return fmt.Errorf("failed to load certificate: %w", err)
	}
	if err := validateCertificate(&cert); err != nil {
		return fmt.Errorf("certificate validation failed: %w", err)
	}

	r.mu.Lock()
	r.cert = &cert
	r.certTime = certInfo.ModTime()
	r.keyTime = keyInfo.ModTime()
	r.mu.Unlock()
	return nil
}

// Certificate returns the current certificate.
func (r *CertificateReloader) Certificate() *tls.Certificate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cert
}

// GetCertificateFunc returns a function for tls.Config.GetCertificate.
func (r *CertificateReloader) GetCertificateFunc() func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		return r.Certificate(), nil
	}
}

func (r *CertificateReloader) logCertificateInfo() {
	cert := r.Certificate()
	if cert == nil || cert.Leaf == nil {
		return
	}

	leaf := cert.Leaf
	days := int(time.Until(leaf.NotAfter).Hours() / 24)
	attrs := []any{
		"subject", leaf.Subject.CommonName,
		"expires_in_days", days,
		"expires_at", leaf.NotAfter.Format(time.RFC3339),
	}
	if days < expiryWarningDays {
		r.logger.Warn("certificate expiring soon", attrs...)
		return
	}
	r.logger.Info("certificate loaded", attrs...)
}

// validateCertificate rejects certificates outside their validity window
// and fills cert.Leaf.
func validateCertificate(cert *tls.Certificate) error {
	if len(cert.Certificate) == 0 {
		return fmt.Errorf("certificate chain is empty")
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return fmt.Errorf("failed to parse certificate: %w", err)
	}

	now := time.Now()
	if now.Before(leaf.NotBefore) {
		return fmt.Errorf("certificate is not yet valid (valid from %s)", leaf.NotBefore.Format(time.RFC3339))
	}
	if now.After(leaf.NotAfter) {
		return fmt.Errorf("certificate expired on %s", leaf.NotAfter.Format(time.RFC3339))
	}

	cert.Leaf = leaf
	return nil
}
