package parser_test

import (
	"testing"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientParser(t *testing.T) {
	t.Parallel()
	p := parsers(t).Client

	tests := []struct {
		name     string
		ua       string
		expected parser.Client
	}{
		{"feed reader", "Feedly/1.0 (+http://www.feedly.com/fetcher.html; like FeedFetcher-Google)", parser.Client{Type: parser.ClientFeedReader, Name: "Feedly", Version: "1.0"}},
		{"mobile app wins over browser", "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAN/FBIOS;FBAV/305.0.0.35.114;FBBV/270076310]", parser.Client{Type: parser.ClientMobileApp, Name: "Facebook", Version: "305.0.0.35.114"}},
		{"templated app name", "Microsoft Office Word/2.50.1 (iOS)", parser.Client{Type: parser.ClientMobileApp, Name: "Microsoft Word", Version: "2.50.1"}},
		{"media player", "VLC/3.0.11 LibVLC/3.0.11", parser.Client{Type: parser.ClientMediaPlayer, Name: "VLC", Version: "3.0.11"}},
		{"pim", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:78.0) Gecko/20100101 Thunderbird/78.10.0", parser.Client{Type: parser.ClientPIM, Name: "Thunderbird", Version: "78.10.0"}},
		{"browser", uaChromeWindows, parser.Client{Type: parser.ClientBrowser, Name: "Chrome", Version: "91.0.4472.124"}},
		{"library", "curl/7.68.0", parser.Client{Type: parser.ClientLibrary, Name: "curl", Version: "7.68.0"}},
		{"library name from group", "python-urllib3/1.26.5", parser.Client{Type: parser.ClientLibrary, Name: "python-urllib3", Version: "1.26.5"}},
		{"underscore version", "Java/1.8.0_151", parser.Client{Type: parser.ClientLibrary, Name: "Java", Version: "1.8.0.151"}},
		{"CFNetwork", uaCFNetwork, parser.Client{Type: parser.ClientLibrary, Name: "CFNetwork", Version: "673.0.3"}},
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

func TestClientParserWithBrowser(t *testing.T) {
	t.Parallel()
	ps := parsers(t)

	browser, ok := ps.Browser.Parse(uaSafariMac, clienthints.Hints{})
	require.True(t, ok)

	got, ok := ps.Client.ParseWithBrowser(uaSafariMac, browser)
	require.True(t, ok)
	assert.Equal(t, parser.Client{Type: parser.ClientBrowser, Name: "Safari", Version: "14.1.1"}, *got)

	_, ok = ps.Client.ParseWithBrowser(uaSafariMac, nil)
	assert.False(t, ok, "a nil browser skips the browser category")
}

func TestClientParserNoMatch(t *testing.T) {
	t.Parallel()
	p := parsers(t).Client

	got, ok := p.Parse("", clienthints.Hints{})
	assert.False(t, ok)
	assert.Nil(t, got)
}
