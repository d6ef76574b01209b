package datafeed

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
)

// newTLSConfig builds the client trust settings.
//
// With verification on, the system pool is extended with the certificates in
// cfg.CABundlePath, if any. Turning verification off requires the explicit
// InsecureSkipVerify setting and is logged as a warning.
func newTLSConfig(cfg config.ClientFeed, log *logger.Logger) (*tls.Config, error) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if cfg.InsecureSkipVerify {
		log.Warn().Msg("TLS certificate verification is disabled; use only against development endpoints")
		tlsCfg.InsecureSkipVerify = true //nolint:gosec // explicit opt-in
		return tlsCfg, nil
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}

	if cfg.CABundlePath != "" {
		pem, err := os.ReadFile(cfg.CABundlePath)
		if err != nil {
			return nil, fmt.Errorf("read ca bundle: %w", err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("ca bundle " + cfg.CABundlePath + " contains no certificates")
		}
	}

	tlsCfg.RootCAs = pool
	return tlsCfg, nil
}
