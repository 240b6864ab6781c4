// Package deviceinfo classifies HTTP User-Agent strings into a small, fixed
// description of the client: operating system and version, device category,
// rendering engine and browser name and version.
//
// It is not a device database. A handful of regular expressions run over the
// input once and anything they do not recognise is reported as Unknown, so
// Classify is total: every string, including the empty one, yields a fully
// populated DeviceInfo.
//
// # Architecture
//
// Classification is split in independent passes that share the same input:
//
//	┌──────────┐  platform block  ┌─────────┐
//	│ Classify │─────────────────▶│  os.go  │──────┐
//	└──────────┘                  └─────────┘      │
//	     │      name/version pairs ┌────────────┐  ├──► DeviceInfo
//	     ├────────────────────────▶│ browser.go │──┤
//	     │                         └────────────┘  │
//	     │       whole string      ┌───────────┐   │
//	     └────────────────────────▶│ engine.go │───┘
//	                               └───────────┘
//
// The OS pass reads the leading "Product/x.y (...)" block. The browser pass
// collects every "name/version" pair, keeps the known ones and picks one:
// when the last known pair is not Safari the list is reversed so that a
// trailing Edg/ or OPR/ token beats the Chrome/ token it follows. Finally the
// engine is derived from the whole string and, for Safari, the browser version
// is replaced with the OS version.
//
// # Usage
//
//	info := deviceinfo.Classify(r.UserAgent())
//	if info.IsMobile() {
//	    // serve mobile assets
//	}
//	slog.Info("request", "device", info)
//
// A Classifier with a dedicated logger:
//
//	c := deviceinfo.New(deviceinfo.WithLogger(log))
//	info := c.Classify(ua)
//
// As HTTP middleware:
//
//	mux := http.NewServeMux()
//	handler := deviceinfo.Middleware(mux)
//
//	// inside a handler
//	info, ok := deviceinfo.FromContext(r.Context())
//
// # Error Handling
//
// Classify never returns an error. A step that fails internally, such as an
// iPhone platform block without a version, is logged at WARN level and only
// the fields owned by that step fall back to Unknown. The sentinel errors in
// errors.go are what gets logged; ErrUnknownValue is returned by the Parse*
// helpers.
package deviceinfo
