package deviceinfo

// OSType is the operating system family.
type OSType string

const (
	OSWindows   OSType = "Windows"
	OSMacintosh OSType = "Macintosh"
	OSIPad      OSType = "iPad"
	OSIPhone    OSType = "iPhone"
	OSAndroid   OSType = "Android"
	OSLinux     OSType = "Linux"
	OSUnknown   OSType = "Unknown"
)

// DeviceType is the coarse device category.
type DeviceType string

const (
	DevicePC      DeviceType = "PC"
	DeviceMobile  DeviceType = "Mobile"
	DeviceTablet  DeviceType = "Tablet"
	DeviceUnknown DeviceType = "Unknown"
)

// EngineType is the rendering engine family. There is no unknown member:
// anything that is not Trident, Gecko or Presto is reported as WebKit.
type EngineType string

const (
	EngineTrident EngineType = "Trident"
	EngineGecko   EngineType = "Gecko"
	EnginePresto  EngineType = "Presto"
	EngineWebKit  EngineType = "WebKit"
)

// Browser is the browser brand.
type Browser string

const (
	BrowserMicroMessenger Browser = "MicroMessenger"
	BrowserUCBrowser      Browser = "UCBrowser"
	BrowserIE             Browser = "IE"
	BrowserEdge           Browser = "Edge"
	BrowserOpera          Browser = "Opera"
	BrowserFirefox        Browser = "Firefox"
	BrowserChrome         Browser = "Chrome"
	BrowserSafari         Browser = "Safari"
	BrowserUnknown        Browser = "Unknown"
)

// VersionUnknown is reported when a family was recognised but its version was not.
const VersionUnknown = "Unknown"

var (
	osTypes     = []OSType{OSWindows, OSMacintosh, OSIPad, OSIPhone, OSAndroid, OSLinux, OSUnknown}
	deviceTypes = []DeviceType{DevicePC, DeviceMobile, DeviceTablet, DeviceUnknown}
	engineTypes = []EngineType{EngineTrident, EngineGecko, EnginePresto, EngineWebKit}
	browsers    = []Browser{
		BrowserMicroMessenger, BrowserUCBrowser, BrowserIE, BrowserEdge, BrowserOpera,
		BrowserFirefox, BrowserChrome, BrowserSafari, BrowserUnknown,
	}
)
