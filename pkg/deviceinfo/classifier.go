package deviceinfo

import (
	"log/slog"

	"github.com/dmitrymomot/deviceinfo/pkg/logger"
)

// Classifier turns user agent strings into DeviceInfo records.
// It holds no per-call state and is safe for concurrent use.
type Classifier struct {
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used to report recovered step failures.
// Nil keeps the default, which resolves to slog.Default at call time.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Classifier configured by opts.
func New(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = New()

// Classify classifies ua with the default classifier.
func Classify(ua string) DeviceInfo {
	return defaultClassifier.Classify(ua)
}

// Classify never fails. Unmatched tokens leave their fields at the Default
// values and a failing step only resets the fields it owns.
func (c *Classifier) Classify(ua string) DeviceInfo {
	info := Default()

	if platform, ok := platformToken(ua); ok {
		res := detectOS(platform)
		if res.err != nil {
			c.warn(ua, "os detection failed", res.err)
			res.os, res.version = OSUnknown, VersionUnknown
		}
		info.OS, info.OSVersion, info.Device = res.os, res.version, res.device
	}

	if candidate, ok := browserSignature(ua); ok {
		browser, version, err := formatBrowser(candidate)
		if err != nil {
			c.warn(ua, "browser detection failed", err)
		}
		info.Browser, info.BrowserVersion = browser, version
	}

	info.Engine = detectEngine(ua)

	// Safari's public version follows the OS release, not its own token.
	if info.Browser == BrowserSafari {
		info.BrowserVersion = info.OSVersion
	}

	return info
}

func (c *Classifier) warn(ua, msg string, err error) {
	log := c.logger
	if log == nil {
		log = slog.Default()
	}
	log.Warn(msg,
		logger.Component("deviceinfo"),
		logger.UserAgent(ua),
		logger.Error(err),
	)
}
