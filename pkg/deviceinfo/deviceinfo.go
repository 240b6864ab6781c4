package deviceinfo

import (
	"fmt"
	"log/slog"
)

// DeviceInfo is the classification of a single user agent.
type DeviceInfo struct {
	Browser        Browser    `json:"browser"`
	BrowserVersion string     `json:"browserVersion"`
	OS             OSType     `json:"os"`
	OSVersion      string     `json:"osVersion"`
	Device         DeviceType `json:"device"`
	Engine         EngineType `json:"engine"`
}

// Default returns the record produced for an input nothing could be learned from.
func Default() DeviceInfo {
	return DeviceInfo{
		Browser: BrowserUnknown,
		OS:      OSUnknown,
		Device:  DeviceUnknown,
		Engine:  EngineWebKit,
	}
}

// IsPC reports whether the device is a desktop or laptop.
func (d DeviceInfo) IsPC() bool { return d.Device == DevicePC }

// IsMobile reports whether the device is a phone.
func (d DeviceInfo) IsMobile() bool { return d.Device == DeviceMobile }

// IsTablet reports whether the device is a tablet.
func (d DeviceInfo) IsTablet() bool { return d.Device == DeviceTablet }

// IsUnknown reports whether neither browser, OS nor device were recognised.
func (d DeviceInfo) IsUnknown() bool {
	return d.Browser == BrowserUnknown && d.OS == OSUnknown && d.Device == DeviceUnknown
}

// String returns a short human-readable identifier such as
// "Chrome/115.0.0.0 (Windows 10.0, PC)".
func (d DeviceInfo) String() string {
	if d.IsUnknown() {
		return "Unknown device"
	}

	browser := "Unknown browser"
	if d.Browser != BrowserUnknown {
		browser = withVersion(string(d.Browser), d.BrowserVersion, "/")
	}

	os := "Unknown OS"
	if d.OS != OSUnknown {
		os = withVersion(string(d.OS), d.OSVersion, " ")
	}

	return fmt.Sprintf("%s (%s, %s)", browser, os, d.Device)
}

func withVersion(name, version, sep string) string {
	if version == "" || version == VersionUnknown {
		return name
	}
	return name + sep + version
}

// LogValue groups the record's fields when it is passed to slog.
func (d DeviceInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("browser", string(d.Browser)),
		slog.String("browser_version", d.BrowserVersion),
		slog.String("os", string(d.OS)),
		slog.String("os_version", d.OSVersion),
		slog.String("device", string(d.Device)),
		slog.String("engine", string(d.Engine)),
	)
}
