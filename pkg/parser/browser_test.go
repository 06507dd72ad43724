package parser_test

import (
	"testing"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserParser(t *testing.T) {
	t.Parallel()
	p := parsers(t).Browser

	tests := []struct {
		name     string
		ua       string
		expected parser.Browser
	}{
		{
			name:     "Chrome",
			ua:       uaChromeWindows,
			expected: parser.Browser{Name: "Chrome", Code: "CH", Family: "Chrome", Version: "91.0.4472.124", Engine: "Blink", EngineVersion: "91.0.4472.124"},
		},
		{
			name:     "Chrome Mobile",
			ua:       uaChromePixel,
			expected: parser.Browser{Name: "Chrome Mobile", Code: "CM", Family: "Chrome", Version: "91.0.4472.124", Engine: "Blink", EngineVersion: "91.0.4472.124"},
		},
		{
			name:     "Firefox with Gecko rv version",
			ua:       uaFirefoxUbuntu,
			expected: parser.Browser{Name: "Firefox", Code: "FF", Family: "Firefox", Version: "89.0", Engine: "Gecko", EngineVersion: "89.0"},
		},
		{
			name:     "Safari",
			ua:       uaSafariMac,
			expected: parser.Browser{Name: "Safari", Code: "SF", Family: "Safari", Version: "14.1.1", Engine: "WebKit", EngineVersion: "605.1.15"},
		},
		{
			name:     "Mobile Safari",
			ua:       uaSafariIPhone,
			expected: parser.Browser{Name: "Mobile Safari", Code: "MF", Family: "Safari", Version: "14.0", Engine: "WebKit", EngineVersion: "605.1.15"},
		},
		{
			name:     "Android Browser",
			ua:       uaHTCDesire,
			expected: parser.Browser{Name: "Android Browser", Code: "AN", Family: "Android Browser", Version: "4.0", Engine: "WebKit", EngineVersion: "533.1"},
		},
		{
			name:     "Internet Explorer 11",
			ua:       uaIEDell,
			expected: parser.Browser{Name: "Internet Explorer", Code: "IE", Family: "Internet Explorer", Version: "11.0", Engine: "Trident", EngineVersion: "7.0"},
		},
		{
			name:     "legacy Edge",
			ua:       uaXbox,
			expected: parser.Browser{Name: "Microsoft Edge", Code: "PS", Family: "Chrome", Version: "18.19041", Engine: "Edge", EngineVersion: "18.19041"},
		},
		{
			name:     "Samsung Browser",
			ua:       uaSamsung,
			expected: parser.Browser{Name: "Samsung Browser", Code: "SB", Family: "Chrome", Version: "14.0", Engine: "Blink", EngineVersion: "87.0.4280.141"},
		},
		{
			name:     "Opera before Blink",
			ua:       "Opera/12.16 (Windows NT 6.1; WOW64) Presto/2.12.388",
			expected: parser.Browser{Name: "Opera", Code: "OP", Family: "Opera", Version: "12.16", Engine: "Presto", EngineVersion: "2.12.388"},
		},
		{
			name:     "Opera engine switches by version",
			ua:       "Opera/15.0 (Windows NT 6.1)",
			expected: parser.Browser{Name: "Opera", Code: "OP", Family: "Opera", Version: "15.0", Engine: "Blink"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := p.Parse(tt.ua, clienthints.Hints{})
			require.True(t, ok)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestBrowserParserNoMatch(t *testing.T) {
	t.Parallel()
	p := parsers(t).Browser

	for _, ua := range []string{"", "curl/7.68.0", uaCFNetwork, uaDiscordbot} {
		got, ok := p.Parse(ua, clienthints.Hints{})
		assert.False(t, ok, ua)
		assert.Nil(t, got)
	}
}

func TestBrowserParserHints(t *testing.T) {
	t.Parallel()
	p := parsers(t).Browser

	fullList := []clienthints.Brand{
		{Name: "Chromium", Version: "118.0.5993.88"},
		{Name: "Google Chrome", Version: "118.0.5993.88"},
	}

	t.Run("full version replaces reduced UA version", func(t *testing.T) {
		t.Parallel()
		got, ok := p.Parse(uaReducedChrome, clienthints.Hints{Brands: fullList})
		require.True(t, ok)
		assert.Equal(t, parser.Browser{
			Name: "Chrome Mobile", Code: "CM", Family: "Chrome",
			Version: "118.0.5993.88", Engine: "Blink", EngineVersion: "118.0.5993.88",
		}, *got)
	})

	t.Run("specific brand overrides UA name", func(t *testing.T) {
		t.Parallel()
		got, ok := p.Parse(uaChromeWindows, clienthints.Hints{Brands: []clienthints.Brand{
			{Name: "Chromium", Version: "118.0.2088.46"},
			{Name: "Microsoft Edge", Version: "118.0.2088.46"},
		}})
		require.True(t, ok)
		assert.Equal(t, "Microsoft Edge", got.Name)
		assert.Equal(t, "PS", got.Code)
		assert.Equal(t, "118.0.2088.46", got.Version)
	})

	t.Run("hints alone", func(t *testing.T) {
		t.Parallel()
		got, ok := p.Parse("", clienthints.Hints{Brands: fullList})
		require.True(t, ok)
		assert.Equal(t, parser.Browser{
			Name: "Chrome", Code: "CH", Family: "Chrome",
			Version: "118.0.5993.88", Engine: "Blink", EngineVersion: "118.0.5993.88",
		}, *got)
	})

	t.Run("unknown brands are ignored", func(t *testing.T) {
		t.Parallel()
		got, ok := p.Parse(uaFirefoxUbuntu, clienthints.Hints{Brands: []clienthints.Brand{{Name: "Acme Browser", Version: "1"}}})
		require.True(t, ok)
		assert.Equal(t, "Firefox", got.Name)
	})
}

func TestEngineParser(t *testing.T) {
	t.Parallel()
	p := parsers(t).Engine

	ua := "Mozilla/5.0 (compatible; Konqueror/4.5; Linux) KHTML/4.5.5 (like Gecko)"
	assert.Equal(t, "KHTML", p.Parse(ua))
	assert.Equal(t, "4.5.5", p.Version(ua, "KHTML"))

	assert.Equal(t, "Blink", p.Parse(uaChromeWindows))
	assert.Equal(t, "Gecko", p.Parse(uaFirefoxUbuntu))
	assert.Empty(t, p.Parse("curl/7.68.0"))

	assert.Empty(t, p.Version(uaChromeWindows, "Servo"))
	assert.Empty(t, p.Version("Mozilla/5.0 (Android 11; Mobile; rv:89.0) Gecko/89.0 Firefox/89.0", "Gecko"), "Gecko needs a date stamp")
}
