package parser

// OS is a detected operating system.
type OS struct {
	Name            string `json:"name"`
	Code            string `json:"code,omitempty"`
	Version         string `json:"version,omitempty"`
	CPUArchitecture string `json:"cpu_architecture,omitempty"`
	Family          string `json:"family,omitempty"`
}

// Browser is a detected browser.
type Browser struct {
	Name          string `json:"name"`
	Code          string `json:"code,omitempty"`
	Family        string `json:"family,omitempty"`
	Version       string `json:"version,omitempty"`
	Engine        string `json:"engine,omitempty"`
	EngineVersion string `json:"engine_version,omitempty"`
}

// ClientType categorises a client application.
type ClientType string

const (
	ClientBrowser     ClientType = "browser"
	ClientFeedReader  ClientType = "feed reader"
	ClientMobileApp   ClientType = "mobile app"
	ClientMediaPlayer ClientType = "mediaplayer"
	ClientPIM         ClientType = "pim"
	ClientLibrary     ClientType = "library"
)

// Client is a detected client application.
type Client struct {
	Type    ClientType `json:"type"`
	Name    string     `json:"name"`
	Version string     `json:"version,omitempty"`
}

// DeviceType is the form factor of a device. The empty value means unknown.
type DeviceType string

const (
	DeviceUnknown             DeviceType = ""
	DeviceDesktop             DeviceType = "desktop"
	DeviceSmartphone          DeviceType = "smartphone"
	DeviceTablet              DeviceType = "tablet"
	DeviceFeaturePhone        DeviceType = "feature phone"
	DeviceConsole             DeviceType = "console"
	DeviceTV                  DeviceType = "tv"
	DeviceCarBrowser          DeviceType = "car browser"
	DeviceSmartDisplay        DeviceType = "smart display"
	DeviceCamera              DeviceType = "camera"
	DevicePortableMediaPlayer DeviceType = "portable media player"
	DevicePhablet             DeviceType = "phablet"
	DeviceSmartSpeaker        DeviceType = "smart speaker"
	DeviceWearable            DeviceType = "wearable"
	DevicePeripheral          DeviceType = "peripheral"
)

var deviceTypes = map[string]DeviceType{
	string(DeviceDesktop):             DeviceDesktop,
	string(DeviceSmartphone):          DeviceSmartphone,
	string(DeviceTablet):              DeviceTablet,
	string(DeviceFeaturePhone):        DeviceFeaturePhone,
	string(DeviceConsole):             DeviceConsole,
	string(DeviceTV):                  DeviceTV,
	string(DeviceCarBrowser):          DeviceCarBrowser,
	string(DeviceSmartDisplay):        DeviceSmartDisplay,
	string(DeviceCamera):              DeviceCamera,
	string(DevicePortableMediaPlayer): DevicePortableMediaPlayer,
	string(DevicePhablet):             DevicePhablet,
	string(DeviceSmartSpeaker):        DeviceSmartSpeaker,
	string(DeviceWearable):            DeviceWearable,
	string(DevicePeripheral):          DevicePeripheral,
}

// ParseDeviceType maps a corpus device type to a DeviceType. The empty string
// is valid and yields DeviceUnknown.
func ParseDeviceType(s string) (DeviceType, bool) {
	if s == "" {
		return DeviceUnknown, true
	}
	t, ok := deviceTypes[s]
	return t, ok
}

// IsMobile reports whether t is a handheld form factor.
func (t DeviceType) IsMobile() bool {
	switch t {
	case DeviceSmartphone, DeviceTablet, DeviceFeaturePhone, DevicePhablet,
		DevicePortableMediaPlayer, DeviceWearable, DeviceCamera:
		return true
	}
	return false
}

// Brand is a device manufacturer.
type Brand struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Device is a detected physical device. Brand and Model may be empty.
type Device struct {
	Type  DeviceType `json:"type,omitempty"`
	Brand *Brand     `json:"brand,omitempty"`
	Model string     `json:"model,omitempty"`
}

// Producer is the organisation behind a bot.
type Producer struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Bot is a detected crawler or automated agent.
type Bot struct {
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	URL      string    `json:"url,omitempty"`
	Producer *Producer `json:"producer,omitempty"`
}
