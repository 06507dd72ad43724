package clienthints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dunglas/httpsfv"
)

// Recognized hint headers.
const (
	HeaderUA              = "Sec-CH-UA"
	HeaderFullVersionList = "Sec-CH-UA-Full-Version-List"
	HeaderFullVersion     = "Sec-CH-UA-Full-Version"
	HeaderPlatform        = "Sec-CH-UA-Platform"
	HeaderPlatformVersion = "Sec-CH-UA-Platform-Version"
	HeaderModel           = "Sec-CH-UA-Model"
	HeaderMobile          = "Sec-CH-UA-Mobile"
	HeaderArch            = "Sec-CH-UA-Arch"
	HeaderBitness         = "Sec-CH-UA-Bitness"
)

// Headers lists every recognized hint header, e.g. for Accept-CH.
func Headers() []string {
	return []string{
		HeaderUA,
		HeaderFullVersionList,
		HeaderFullVersion,
		HeaderPlatform,
		HeaderPlatformVersion,
		HeaderModel,
		HeaderMobile,
		HeaderArch,
		HeaderBitness,
	}
}

// Brand is one entry of a brand list.
type Brand struct {
	Name    string
	Version string
}

// Hints holds decoded client hints. The zero value means no hints.
type Hints struct {
	// Brands comes from Sec-CH-UA-Full-Version-List, or Sec-CH-UA when the
	// full list is absent.
	Brands          []Brand
	FullVersion     string
	Platform        string
	PlatformVersion string
	Model           string
	Mobile          bool
	Arch            string
	Bitness         string
}

// IsZero reports whether no hint was provided.
func (h Hints) IsZero() bool {
	return len(h.Brands) == 0 && h.FullVersion == "" && h.Platform == "" &&
		h.PlatformVersion == "" && h.Model == "" && !h.Mobile && h.Arch == "" && h.Bitness == ""
}

// FromMap decodes hints keyed by header name.
func FromMap(m map[string]string) Hints {
	if len(m) == 0 {
		return Hints{}
	}
	raw := make(map[string]string, len(m))
	for k, v := range m {
		raw[strings.ToLower(k)] = v
	}
	return parse(func(name string) string { return raw[strings.ToLower(name)] })
}

// FromHeader decodes hints from request headers.
func FromHeader(h http.Header) Hints {
	if len(h) == 0 {
		return Hints{}
	}
	return parse(func(name string) string { return strings.Join(h.Values(name), ", ") })
}

func parse(get func(string) string) Hints {
	h := Hints{
		FullVersion:     sfString(get(HeaderFullVersion)),
		Platform:        sfString(get(HeaderPlatform)),
		PlatformVersion: sfString(get(HeaderPlatformVersion)),
		Model:           sfString(get(HeaderModel)),
		Mobile:          sfBool(get(HeaderMobile)),
		Arch:            sfString(get(HeaderArch)),
		Bitness:         sfString(get(HeaderBitness)),
	}

	h.Brands = brands(get(HeaderFullVersionList))
	if len(h.Brands) == 0 {
		h.Brands = brands(get(HeaderUA))
	}
	return h
}

func sfString(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	item, err := httpsfv.UnmarshalItem([]string{v})
	if err != nil {
		return strings.TrimSpace(strings.Trim(v, `"`))
	}
	switch val := item.Value.(type) {
	case string:
		return strings.TrimSpace(val)
	case httpsfv.Token:
		return string(val)
	}
	return ""
}

func sfBool(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	item, err := httpsfv.UnmarshalItem([]string{v})
	if err != nil {
		return v == "?1" || strings.EqualFold(v, "true")
	}
	b, ok := item.Value.(bool)
	return ok && b
}

func brands(v string) []Brand {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	list, err := httpsfv.UnmarshalList([]string{v})
	if err != nil {
		return nil
	}

	var out []Brand
	for _, member := range list {
		item, ok := member.(httpsfv.Item)
		if !ok {
			continue
		}
		name, ok := item.Value.(string)
		if !ok || isGrease(name) {
			continue
		}
		b := Brand{Name: strings.TrimSpace(name)}
		if item.Params != nil {
			if ver, ok := item.Params.Get("v"); ok {
				if s, ok := ver.(string); ok {
					b.Version = s
				}
			}
		}
		out = append(out, b)
	}
	return out
}

func isGrease(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "not") && strings.Contains(lower, "brand")
}

// Key returns a stable textual form of h for use in cache keys. Every value
// is length-prefixed, so distinct hints never share a key.
func (h Hints) Key() string {
	if h.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(h.Brands)))
	b.WriteByte('#')
	for _, br := range h.Brands {
		writeField(&b, br.Name)
		writeField(&b, br.Version)
	}
	mobile := "?0"
	if h.Mobile {
		mobile = "?1"
	}
	for _, part := range []string{h.FullVersion, h.Platform, h.PlatformVersion, h.Model, mobile, h.Arch, h.Bitness} {
		writeField(&b, part)
	}
	return b.String()
}

func writeField(b *strings.Builder, v string) {
	b.WriteString(strconv.Itoa(len(v)))
	b.WriteByte(':')
	b.WriteString(v)
}
