package uadetector

import (
	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/parser"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

var (
	chromeMobile  = pattern.MustCompileRaw(`Chrome/[.0-9]* (?:Mobile|eliboM)`, true)
	chromeTablet  = pattern.MustCompileRaw(`Chrome/[.0-9]* (?!Mobile)`, true)
	androidTablet = pattern.MustCompileRaw(`Android(?: [.0-9]+)?; Tablet;|Tablet(?! PC)|-tablet$`, true)
	androidMobile = pattern.MustCompileRaw(`Android(?: [.0-9]+)?; Mobile;|-mobile$`, true)
	touchToken    = pattern.MustCompile(`Touch`)
	windowsRT     = pattern.MustCompile(`ARM;`)
	tvToken       = pattern.MustCompileRaw(`Opera TV Store|OMI/|SmartTV|Smart-TV|HbbTV|Andr0id|(?:Android(?: UHD)?|Google) TV|\(lite\) TV|BRAVIA| TV$`, true)
)

// OS families whose devices default to desktop.
var desktopFamilies = map[string]struct{}{
	"Windows":   {},
	"Mac":       {},
	"GNU/Linux": {},
	"Chrome OS": {},
	"Unix":      {},
}

var appleFamilies = map[string]struct{}{
	"iOS": {},
	"Mac": {},
}

// refineDevice fills the device type and brand when device rules left them
// unknown. Detected values are never overridden.
func refineDevice(ua string, hints clienthints.Hints, reg *registry.Set, os *OS, browser *Browser, device *Device) *Device {
	d := parser.Device{}
	if device != nil {
		d = *device
	}

	if d.Brand == nil && os != nil {
		if _, ok := appleFamilies[os.Family]; ok {
			if name, ok := reg.Brands.Name("AP"); ok {
				d.Brand = &Brand{Code: "AP", Name: name}
			}
		}
	}

	if d.Type == parser.DeviceUnknown {
		d.Type = guessDeviceType(ua, hints, reg, os, browser)
	}

	if d.Type == parser.DeviceUnknown && d.Brand == nil && d.Model == "" {
		return nil
	}
	return &d
}

func guessDeviceType(ua string, hints clienthints.Hints, reg *registry.Set, os *OS, browser *Browser) DeviceType {
	isAndroid := os != nil && os.Family == "Android"

	if isAndroid && browser != nil && browser.Family == "Chrome" {
		switch {
		case chromeMobile.MatchString(ua):
			return parser.DeviceSmartphone
		case chromeTablet.MatchString(ua):
			return parser.DeviceTablet
		}
	}

	if isAndroid && os.Code == "AND" && os.Version != "" {
		switch {
		case version.Compare(os.Version, "3") < 0:
			return parser.DeviceSmartphone
		case version.Compare(os.Version, "4") < 0:
			return parser.DeviceTablet
		}
	}

	if androidTablet.MatchString(ua) {
		return parser.DeviceTablet
	}
	if androidMobile.MatchString(ua) || hints.Mobile {
		return parser.DeviceSmartphone
	}

	if os != nil && os.Code == "WIN" && version.Compare(os.Version, "8") >= 0 &&
		touchToken.MatchString(ua) && !windowsRT.MatchString(ua) {
		return parser.DeviceTablet
	}

	if tvToken.MatchString(ua) {
		return parser.DeviceTV
	}

	if os != nil {
		if _, ok := desktopFamilies[os.Family]; ok {
			if browser == nil || !reg.IsMobileOnlyBrowser(browser.Code) {
				return parser.DeviceDesktop
			}
		}
	}
	return parser.DeviceUnknown
}
