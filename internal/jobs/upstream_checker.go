// Package jobs holds background tasks that run alongside the HTTP
// server.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"numlookup/internal/config"
)

var upstreamUp = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "numlookup_upstream_up",
		Help: "Whether the upstream service answered the last reachability probe",
	},
	[]string{"tier"},
)

// UpstreamChecker periodically probes the three lookup services so
// operators can tell an upstream outage from a service fault.
type UpstreamChecker struct {
	cfg      *config.Config
	interval time.Duration
	client   *http.Client
}

// NewUpstreamChecker creates a new upstream checker.
func NewUpstreamChecker(cfg *config.Config, interval time.Duration) *UpstreamChecker {
	return &UpstreamChecker{
		cfg:      cfg,
		interval: interval,
		client: &http.Client{
			Timeout: cfg.UpstreamTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the probe loop. It blocks until the context is
// cancelled.
func (u *UpstreamChecker) Start(ctx context.Context) {
	slog.Info("upstream checker started", "interval", u.interval)

	// Run immediately on start
	u.checkAll(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("upstream checker stopped")
			return
		case <-ticker.C:
			u.checkAll(ctx)
		}
	}
}

// checkAll probes each upstream once and records the outcome.
func (u *UpstreamChecker) checkAll(ctx context.Context) {
	targets := map[string]string{
		"mobile_info":  u.cfg.MobileInfoURL,
		"aadhaar_info": u.cfg.AadhaarInfoURL,
		"family_info":  u.cfg.FamilyInfoURL,
	}

	for tier, target := range targets {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if u.probe(ctx, target) {
			upstreamUp.WithLabelValues(tier).Set(1)
		} else {
			upstreamUp.WithLabelValues(tier).Set(0)
			slog.Warn("upstream unreachable", "tier", tier)
		}
	}
}

// probe performs a HEAD request against the upstream base URL. Any HTTP
// response counts as reachable.
func (u *UpstreamChecker) probe(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", "numlookup/1.0")

	resp, err := u.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return true
}
