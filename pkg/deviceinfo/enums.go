package deviceinfo

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// String returns the literal value.
func (o OSType) String() string { return string(o) }

// String returns the literal value.
func (d DeviceType) String() string { return string(d) }

// String returns the literal value.
func (e EngineType) String() string { return string(e) }

// String returns the literal value.
func (b Browser) String() string { return string(b) }

// Valid reports whether o is one of the OS constants.
func (o OSType) Valid() bool { return slices.Contains(osTypes, o) }

// Valid reports whether d is one of the device constants.
func (d DeviceType) Valid() bool { return slices.Contains(deviceTypes, d) }

// Valid reports whether e is one of the engine constants.
func (e EngineType) Valid() bool { return slices.Contains(engineTypes, e) }

// Valid reports whether b is one of the browser constants.
func (b Browser) Valid() bool { return slices.Contains(browsers, b) }

// ParseOSType resolves s to an OSType ignoring case, so "iphone" and "IPHONE" both yield OSIPhone.
func ParseOSType(s string) (OSType, error) { return parseEnum(s, osTypes) }

// ParseDeviceType resolves s to a DeviceType ignoring case.
func ParseDeviceType(s string) (DeviceType, error) { return parseEnum(s, deviceTypes) }

// ParseEngineType resolves s to an EngineType ignoring case.
func ParseEngineType(s string) (EngineType, error) { return parseEnum(s, engineTypes) }

// ParseBrowser resolves s to a Browser ignoring case.
func ParseBrowser(s string) (Browser, error) { return parseEnum(s, browsers) }

// UnmarshalText parses text with ParseOSType.
func (o *OSType) UnmarshalText(text []byte) error {
	v, err := ParseOSType(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// UnmarshalText parses text with ParseDeviceType.
func (d *DeviceType) UnmarshalText(text []byte) error {
	v, err := ParseDeviceType(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalText parses text with ParseEngineType.
func (e *EngineType) UnmarshalText(text []byte) error {
	v, err := ParseEngineType(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// UnmarshalText parses text with ParseBrowser.
func (b *Browser) UnmarshalText(text []byte) error {
	v, err := ParseBrowser(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// parseEnum compares case-folded forms. A Caser keeps state between calls,
// so a fresh one is built per lookup.
func parseEnum[T ~string](s string, values []T) (T, error) {
	fold := cases.Fold()
	key := fold.String(strings.TrimSpace(s))
	for _, v := range values {
		if fold.String(string(v)) == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknownValue, s)
}
