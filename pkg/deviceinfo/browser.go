package deviceinfo

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// tokenPattern ties a detection token (itself a regular expression) to a browser.
type tokenPattern struct {
	browser   Browser
	name      *regexp.Regexp // token alone, applied to a parsed candidate name
	signature *regexp.Regexp // token followed by a version, applied to a raw candidate
}

func newTokenPattern(token string, browser Browser) tokenPattern {
	return tokenPattern{
		browser:   browser,
		name:      regexp.MustCompile(token),
		signature: regexp.MustCompile(token + `(/|\s)(\d+\.)+\d+`),
	}
}

// browserTokens is ordered: name resolution takes the first hit.
var browserTokens = []tokenPattern{
	newTokenPattern("MicroMessenger", BrowserMicroMessenger),
	newTokenPattern("UCBrowser", BrowserUCBrowser),
	newTokenPattern(tridentToken, BrowserIE),
	newTokenPattern("Edge?", BrowserEdge),
	newTokenPattern("OPR", BrowserOpera),
	newTokenPattern("Firefox", BrowserFirefox),
	newTokenPattern("Chrome", BrowserChrome),
	newTokenPattern("Safari", BrowserSafari),
}

const tridentToken = "Trident"

// Trident token version to the Internet Explorer release that ships it.
var ieVersions = map[string]string{
	"4.0": "8",
	"5.0": "9",
	"6.0": "10",
	"7.0": "11",
}

// Pieces of a "name/version" pair. Case-insensitivity is spelled out as
// ASCII classes: (?i) would also fold U+212A and U+017F into k and s.
const (
	pairName      = `[a-zA-Z\d]+`
	pairSeparator = `(?:/|\s)`
	pairVersion   = `(?:\d+\.)+\d+`
)

var (
	candidateRegex = regexp.MustCompile(pairName + pairSeparator + pairVersion)
	signatureRegex = regexp.MustCompile(`(` + pairName + `)` + pairSeparator + `(` + pairVersion + `)`)
)

// browserSignature picks the "name/version" pair that identifies the browser.
//
// Chromium based browsers append their own token after "Chrome/x Safari/y",
// so when the last known token is not Safari the list is reversed and the
// trailing, most specific token wins. When Safari is last the first token
// (Chrome, UCBrowser, ...) is kept.
func browserSignature(ua string) (string, bool) {
	var candidates []string
	for _, c := range candidateRegex.FindAllString(ua, -1) {
		if isKnownSignature(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	if len(candidates) > 1 && !strings.HasPrefix(candidates[len(candidates)-1], "Safari") {
		slices.Reverse(candidates)
	}
	return candidates[0], true
}

func isKnownSignature(candidate string) bool {
	for _, p := range browserTokens {
		if p.signature.MatchString(candidate) {
			return true
		}
	}
	return false
}

// formatBrowser splits a candidate into browser and reported version.
// Candidates come from candidateRegex, which is built from the same pieces,
// so the malformed branch only fires for input that did not come from it.
func formatBrowser(candidate string) (Browser, string, error) {
	m := signatureRegex.FindStringSubmatch(candidate)
	if len(m) < 3 {
		return BrowserUnknown, VersionUnknown, fmt.Errorf("%w: %q", ErrMalformedCandidate, candidate)
	}
	name, version := m[1], m[2]

	browser := lookupBrowser(name)
	if name == tridentToken {
		ie, ok := ieVersions[version]
		if !ok {
			ie = VersionUnknown
		}
		version = ie
	}
	return browser, version, nil
}

func lookupBrowser(name string) Browser {
	for _, p := range browserTokens {
		if p.name.MatchString(name) {
			return p.browser
		}
	}
	return BrowserUnknown
}
