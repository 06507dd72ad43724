package registry

import (
	"errors"
	"slices"
)

// Set bundles every built-in table the parsers consult.
type Set struct {
	OS              *Registry
	OSFamilies      *Families
	Browsers        *Registry
	BrowserFamilies *Families
	Brands          *Registry
	Engines         []string
	// MobileOnlyBrowsers holds browser codes that never run on a desktop.
	MobileOnlyBrowsers map[string]struct{}
}

// HasEngine reports whether name is a known rendering engine.
func (s *Set) HasEngine(name string) bool {
	return slices.Contains(s.Engines, name)
}

// IsMobileOnlyBrowser reports whether the browser code is mobile-only.
func (s *Set) IsMobileOnlyBrowser(code string) bool {
	_, ok := s.MobileOnlyBrowsers[code]
	return ok
}

var osEntries = []Entry{
	{"WIN", "Windows"},
	{"WPH", "Windows Phone"},
	{"AND", "Android"},
	{"FIR", "Fire OS"},
	{"HAR", "HarmonyOS"},
	{"IOS", "iOS"},
	{"WAS", "watchOS"},
	{"ATV", "tvOS"},
	{"MAC", "Mac"},
	{"COS", "Chrome OS"},
	{"LIN", "GNU/Linux"},
	{"UBT", "Ubuntu"},
	{"FED", "Fedora"},
	{"DEB", "Debian"},
	{"TIZ", "Tizen"},
	{"WOS", "webOS"},
	{"KOS", "KaiOS"},
	{"BLB", "BlackBerry OS"},
	{"BSD", "FreeBSD"},
	{"FUC", "Fuchsia"},
}

var osAliases = map[string]string{
	"Mac OS X":    "MAC",
	"macOS":       "MAC",
	"OS X":        "MAC",
	"Linux":       "LIN",
	"Chromium OS": "COS",
	"Harmony OS":  "HAR",
}

var osFamilies = map[string][]string{
	"Android":        {"AND", "FIR", "HAR"},
	"iOS":            {"IOS", "WAS", "ATV"},
	"Mac":            {"MAC"},
	"Windows":        {"WIN"},
	"Windows Mobile": {"WPH"},
	"Chrome OS":      {"COS"},
	"GNU/Linux":      {"LIN", "UBT", "FED", "DEB"},
	"Other Mobile":   {"TIZ", "WOS", "KOS", "FUC"},
	"BlackBerry":     {"BLB"},
	"Unix":           {"BSD"},
}

var browserEntries = []Entry{
	{"PS", "Microsoft Edge"},
	{"SB", "Samsung Browser"},
	{"UC", "UC Browser"},
	{"YA", "Yandex Browser"},
	{"VI", "Vivaldi"},
	{"OI", "Opera Mini"},
	{"OP", "Opera"},
	{"CI", "Chrome Mobile iOS"},
	{"CR", "Chromium"},
	{"CM", "Chrome Mobile"},
	{"CH", "Chrome"},
	{"FM", "Firefox Mobile"},
	{"FF", "Firefox"},
	{"IM", "IE Mobile"},
	{"IE", "Internet Explorer"},
	{"AN", "Android Browser"},
	{"MF", "Mobile Safari"},
	{"SF", "Safari"},
}

var browserAliases = map[string]string{
	"Google Chrome":    "CH",
	"Edge":             "PS",
	"Samsung Internet": "SB",
	"Yandex":           "YA",
	"MSIE":             "IE",
}

var browserFamilies = map[string][]string{
	"Chrome":            {"CH", "CM", "CI", "CR", "SB", "YA", "VI", "PS"},
	"Firefox":           {"FF", "FM"},
	"Internet Explorer": {"IE", "IM"},
	"Opera":             {"OP", "OI"},
	"Safari":            {"SF", "MF"},
	"Android Browser":   {"AN"},
}

var mobileOnlyBrowsers = []string{"CM", "CI", "FM", "IM", "MF", "OI", "AN", "SB"}

var brandEntries = []Entry{
	{"AP", "Apple"},
	{"SA", "Samsung"},
	{"GO", "Google"},
	{"HU", "Huawei"},
	{"XI", "Xiaomi"},
	{"HT", "HTC"},
	{"SO", "Sony"},
	{"NK", "Nokia"},
	{"MS", "Microsoft"},
	{"NT", "Nintendo"},
	{"AZ", "Amazon"},
	{"LG", "LG"},
	{"OE", "OnePlus"},
	{"MR", "Motorola"},
	{"OP", "OPPO"},
	{"VV", "Vivo"},
	{"DL", "Dell"},
	{"AC", "Acer"},
	{"AS", "Asus"},
	{"LE", "Lenovo"},
	{"TS", "Toshiba"},
	{"MD", "Medion"},
	{"MI", "MSI"},
	{"GW", "Gateway"},
	{"FU", "Fujitsu"},
	{"HP", "HP"},
}

var brandAliases = map[string]string{
	"Sony Ericsson":   "SO",
	"Hewlett-Packard": "HP",
}

var engines = []string{
	"WebKit",
	"Blink",
	"Trident",
	"Gecko",
	"Clecko",
	"Presto",
	"Edge",
	"KHTML",
	"NetFront",
	"Goanna",
}

// NewDefault builds the built-in tables.
func NewDefault() (*Set, error) {
	osReg, err := New("os", osEntries, osAliases)
	if err != nil {
		return nil, err
	}
	osFam, err := NewFamilies(osReg, osFamilies)
	if err != nil {
		return nil, err
	}
	browserReg, err := New("browser", browserEntries, browserAliases)
	if err != nil {
		return nil, err
	}
	browserFam, err := NewFamilies(browserReg, browserFamilies)
	if err != nil {
		return nil, err
	}
	brandReg, err := New("brand", brandEntries, brandAliases)
	if err != nil {
		return nil, err
	}

	mobileOnly := make(map[string]struct{}, len(mobileOnlyBrowsers))
	for _, code := range mobileOnlyBrowsers {
		if _, ok := browserReg.Name(code); !ok {
			return nil, errors.Join(ErrUnknownCode, errors.New("mobile-only browser "+code))
		}
		mobileOnly[code] = struct{}{}
	}

	return &Set{
		OS:                 osReg,
		OSFamilies:         osFam,
		Browsers:           browserReg,
		BrowserFamilies:    browserFam,
		Brands:             brandReg,
		Engines:            slices.Clone(engines),
		MobileOnlyBrowsers: mobileOnly,
	}, nil
}
