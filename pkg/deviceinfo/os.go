package deviceinfo

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// product/version followed by the parenthesised platform block, e.g. "Mozilla/5.0 (...)"
	platformRegex = regexp.MustCompile(`^[a-zA-Z]+/\d+\.\d+\s?\(([a-zA-Z\d\s:;./_-]+)\)`)

	windowsNTRegex      = regexp.MustCompile(`NT\s(\d+\.\d+)`)
	macVersionRegex     = regexp.MustCompile(`X\s((\d+(_|\.))+\d+)`)
	iOSVersionRegex     = regexp.MustCompile(`((\d+_)+\d+)`)
	androidVersionRegex = regexp.MustCompile(`Android\s((\d+\.?)+\d?)`)
	linuxRegex          = regexp.MustCompile(`Linux\s[a-z\d_]+`)
)

// NT kernel versions that have a marketing name. Anything else is reported as is.
var windowsVersions = map[string]string{
	"6.3": "8.1",
	"6.2": "8",
	"6.1": "7",
	"5.2": "XP",
	"5.1": "XP",
}

// osResult is the outcome of the OS pass. On err the caller keeps device and
// downgrades os/version.
type osResult struct {
	os      OSType
	version string
	device  DeviceType
	err     error
}

// platformToken returns the content of the leading platform block.
func platformToken(ua string) (string, bool) {
	m := platformRegex.FindStringSubmatch(ua)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// detectOS infers OS family, version and device category from a platform block.
// Branches are checked in priority order; the first hit wins.
func detectOS(platform string) osResult {
	folded := lowerASCII(platform)
	switch {
	case strings.Contains(folded, "windows"):
		return osResult{os: OSWindows, version: windowsVersion(platform), device: DevicePC}

	case strings.HasPrefix(folded, "macintosh"):
		version := VersionUnknown
		if m := macVersionRegex.FindStringSubmatch(platform); len(m) > 1 {
			version = strings.ReplaceAll(m[1], "_", ".")
		}
		return osResult{os: OSMacintosh, version: version, device: DevicePC}

	case strings.HasPrefix(folded, "ipad"):
		return appleMobile(platform, OSIPad, DeviceTablet)

	case strings.HasPrefix(folded, "iphone"):
		return appleMobile(platform, OSIPhone, DeviceMobile)

	case strings.Contains(platform, "Android"):
		version := VersionUnknown
		if m := androidVersionRegex.FindStringSubmatch(platform); len(m) > 1 {
			version = m[1]
		}
		return osResult{os: OSAndroid, version: version, device: DeviceMobile}

	case linuxRegex.MatchString(platform):
		return osResult{os: OSLinux, version: VersionUnknown, device: DeviceUnknown}
	}

	return osResult{os: OSUnknown, version: VersionUnknown, device: DeviceUnknown}
}

func windowsVersion(platform string) string {
	m := windowsNTRegex.FindStringSubmatch(platform)
	if len(m) < 2 {
		return VersionUnknown
	}
	if name, ok := windowsVersions[m[1]]; ok {
		return name
	}
	return m[1]
}

// appleMobile handles iPad and iPhone blocks. Unlike Macintosh, a missing
// version segment is a failure: the family is known but the record is not trusted.
func appleMobile(platform string, os OSType, device DeviceType) osResult {
	m := iOSVersionRegex.FindStringSubmatch(platform)
	if len(m) < 2 {
		return osResult{
			os:      os,
			version: VersionUnknown,
			device:  device,
			err:     fmt.Errorf("%w: %s in %q", ErrMissingOSVersion, os, platform),
		}
	}
	return osResult{os: os, version: strings.ReplaceAll(m[1], "_", "."), device: device}
}

// lowerASCII folds A-Z only. strings.ToLower and (?i) also map non-ASCII runes
// such as the Kelvin sign onto k.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, s)
}
