package deviceinfo

import "strings"

// detectEngine inspects the whole user agent. WebKit is the fallback for every
// WebKit/Blink derived browser.
func detectEngine(ua string) EngineType {
	switch {
	case strings.Contains(ua, "Trident"):
		return EngineTrident
	case strings.Contains(ua, "Firefox"):
		return EngineGecko
	case strings.Contains(ua, "Presto"):
		return EnginePresto
	default:
		return EngineWebKit
	}
}
