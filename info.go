package uadetector

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/uadetector/pkg/parser"
)

type (
	OS         = parser.OS
	Browser    = parser.Browser
	Client     = parser.Client
	ClientType = parser.ClientType
	Device     = parser.Device
	DeviceType = parser.DeviceType
	Brand      = parser.Brand
	Bot        = parser.Bot
	Producer   = parser.Producer
)

// Info is the composite detection result. A nil field means nothing was
// detected for that category.
type Info struct {
	IsBot   bool     `json:"is_bot"`
	OS      *OS      `json:"os,omitempty"`
	Browser *Browser `json:"browser,omitempty"`
	Client  *Client  `json:"client,omitempty"`
	Device  *Device  `json:"device,omitempty"`
	Bot     *Bot     `json:"bot,omitempty"`
}

// Found reports whether any category matched.
func (i Info) Found() bool {
	return i.IsBot || i.OS != nil || i.Browser != nil || i.Client != nil || i.Device != nil
}

// DeviceType returns the detected form factor, DeviceUnknown when none.
func (i Info) DeviceType() DeviceType {
	if i.Device == nil {
		return parser.DeviceUnknown
	}
	return i.Device.Type
}

// IsMobile returns true for handheld devices: smartphones, tablets, phablets and similar.
func (i Info) IsMobile() bool { return i.DeviceType().IsMobile() }

// IsDesktop returns true if the device is a desktop or laptop computer
func (i Info) IsDesktop() bool { return i.DeviceType() == parser.DeviceDesktop }

// IsTablet returns true if the device is a tablet
func (i Info) IsTablet() bool { return i.DeviceType() == parser.DeviceTablet }

// IsTV returns true if the device is a TV
func (i Info) IsTV() bool { return i.DeviceType() == parser.DeviceTV }

// IsConsole returns true if the device is a gaming console
func (i Info) IsConsole() bool { return i.DeviceType() == parser.DeviceConsole }

// clone returns a deep copy so cached values are never shared with callers.
func (i Info) clone() Info {
	out := Info{IsBot: i.IsBot}
	if i.OS != nil {
		v := *i.OS
		out.OS = &v
	}
	if i.Browser != nil {
		v := *i.Browser
		out.Browser = &v
	}
	if i.Client != nil {
		v := *i.Client
		out.Client = &v
	}
	if i.Device != nil {
		v := *i.Device
		if v.Brand != nil {
			b := *v.Brand
			v.Brand = &b
		}
		out.Device = &v
	}
	if i.Bot != nil {
		v := *i.Bot
		if v.Producer != nil {
			p := *v.Producer
			v.Producer = &p
		}
		out.Bot = &v
	}
	return out
}

// ShortIdentifier returns a short human-readable label.
// Format: Browser/Version (OS, device type), or "Bot: Name" for bots.
func (i Info) ShortIdentifier() string {
	if i.IsBot {
		return "Bot: " + formatBotName(i.Bot)
	}

	name, ver := i.clientLabel()
	osName := formatOSName(i.OS)
	deviceType := formatDeviceType(i.DeviceType())

	if name == "" && i.OS == nil && i.DeviceType() == parser.DeviceUnknown {
		return "Unknown device"
	}

	// Only the client is unknown
	if name == "" {
		return fmt.Sprintf("%s %s", osName, deviceType)
	}

	if i.OS == nil && i.DeviceType() == parser.DeviceUnknown {
		return fmt.Sprintf("%s/%s", name, formatVersion(ver))
	}
	return fmt.Sprintf("%s/%s (%s, %s)", name, formatVersion(ver), osName, deviceType)
}

func (i Info) clientLabel() (string, string) {
	switch {
	case i.Browser != nil:
		return i.Browser.Name, i.Browser.Version
	case i.Client != nil:
		return i.Client.Name, i.Client.Version
	}
	return "", ""
}

func formatBotName(b *Bot) string {
	if b == nil || b.Name == "" {
		return "Unknown Bot"
	}
	// Lower-case corpus names read better title-cased.
	if b.Name == strings.ToLower(b.Name) {
		return cases.Title(language.English).String(b.Name)
	}
	return b.Name
}

func formatOSName(os *OS) string {
	if os == nil || os.Name == "" {
		return "Unknown OS"
	}
	if os.Version == "" {
		return os.Name
	}
	return os.Name + " " + os.Version
}

// formatVersion keeps long versions readable
func formatVersion(v string) string {
	if v == "" {
		return "?"
	}
	if len(v) > 10 && strings.Contains(v, ".") {
		return strings.TrimRight(v[:10], ".")
	}
	return v
}

func formatDeviceType(t DeviceType) string {
	if t == parser.DeviceUnknown {
		return "unknown"
	}
	return string(t)
}
