// Package sourceverify checks that a webhook actually originates from the
// chat-bot service it claims to, using reverse DNS.
package sourceverify

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	cleanupInterval = 300 * time.Second
	checkValidity   = 3600 * time.Second
)

type checkedIP struct {
	checkedAt time.Time
	pass      bool
}

// NightbotVerifier verifies that a request comes from nightbot.net: the
// client IP's PTR record must end in .nightbot.net. and that hostname must
// resolve back to the same IP. Results are cached per IP for an hour.
type NightbotVerifier struct {
	realIPHeader string
	logger       *zap.SugaredLogger

	mu        sync.Mutex
	checked   map[string]checkedIP
	lastSweep time.Time

	lookupAddr func(ctx context.Context, ip string) ([]string, error)
	lookupHost func(ctx context.Context, host string) ([]string, error)
	now        func() time.Time
}

func NewNightbotVerifier(realIPHeader string, logger *zap.SugaredLogger) *NightbotVerifier {
	return &NightbotVerifier{
		realIPHeader: realIPHeader,
		logger:       logger,
		checked:      make(map[string]checkedIP),
		lookupAddr:   net.DefaultResolver.LookupAddr,
		lookupHost:   net.DefaultResolver.LookupHost,
		now:          time.Now,
	}
}

// Verify reports whether the request's client IP belongs to Nightbot.
func (v *NightbotVerifier) Verify(r *http.Request) bool {
	ip := ""

	if v.realIPHeader != "" {
		ip = r.Header.Get(v.realIPHeader)
	}

	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)

		if err != nil {
			ip = r.RemoteAddr
		} else {
			ip = host
		}
	}

	return v.verifyIP(r.Context(), ip)
}

func (v *NightbotVerifier) verifyIP(ctx context.Context, ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sweep()

	if entry, ok := v.checked[ip]; ok {
		return entry.pass
	}

	pass := v.checkIP(ctx, ip)

	v.checked[ip] = checkedIP{checkedAt: v.now(), pass: pass}

	return pass
}

func (v *NightbotVerifier) sweep() {
	if v.lastSweep.Add(cleanupInterval).After(v.now()) {
		return
	}

	for ip, entry := range v.checked {
		if entry.checkedAt.Add(checkValidity).Before(v.now()) {
			delete(v.checked, ip)
		}
	}

	v.lastSweep = v.now()
}

func (v *NightbotVerifier) checkIP(ctx context.Context, ip string) bool {
	names, err := v.lookupAddr(ctx, ip)

	if err != nil || len(names) == 0 {
		v.logger.With(zap.String("ip", ip)).Infof("PTR lookup failed: %v", err)
		return false
	}

	name := names[0]

	if !strings.HasSuffix(name, ".nightbot.net.") {
		return false
	}

	addrs, err := v.lookupHost(ctx, name)

	if err != nil {
		v.logger.With(zap.String("ip", ip), zap.String("host", name)).Infof("Forward lookup failed: %s", err.Error())
		return false
	}

	for _, addr := range addrs {
		if addr == ip {
			return true
		}
	}

	return false
}
