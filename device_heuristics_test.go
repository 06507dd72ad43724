package uadetector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetector/pkg/parser"
)

func TestDeviceTypeHeuristics(t *testing.T) {
	t.Parallel()
	det := detector(t)

	tests := []struct {
		name  string
		ua    string
		hints map[string]string
		want  parser.DeviceType
	}{
		{"Android Chrome with Mobile token", uaReducedChrome, nil, parser.DeviceSmartphone},
		{"Android Chrome without Mobile token", uaChromeTablet, nil, parser.DeviceTablet},
		{
			"Android 3 is a tablet",
			"Mozilla/5.0 (Linux; U; Android 3.2; en-us; Unknown Build/HTK75D) AppleWebKit/534.13 (KHTML, like Gecko) Version/4.0 Safari/534.13",
			nil,
			parser.DeviceTablet,
		},
		{
			"Windows touch is a tablet",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; Trident/7.0; Touch; rv:11.0) like Gecko",
			nil,
			parser.DeviceTablet,
		},
		{
			"TV token",
			"HbbTV/1.2.1 (;Panasonic;VIERA 2014;3.101;0071-3103 2000-0000;)",
			nil,
			parser.DeviceTV,
		},
		{
			"mobile hint",
			"",
			map[string]string{"Sec-CH-UA-Platform": `"Android"`, "Sec-CH-UA-Mobile": "?1"},
			parser.DeviceSmartphone,
		},
		{"desktop OS family", uaChromeWindows, nil, parser.DeviceDesktop},
		{"rule type is kept", uaHTCDesire, nil, parser.DeviceSmartphone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, ok := det.Detect(tt.ua, tt.hints)
			require.True(t, ok)
			require.NotNil(t, info.Device)
			assert.Equal(t, tt.want, info.Device.Type)
		})
	}
}

func TestDeviceHeuristicsLeaveUnknown(t *testing.T) {
	t.Parallel()

	info, ok := detector(t).Detect("curl/7.68.0", nil)
	require.True(t, ok)
	assert.Nil(t, info.Device)
	assert.Equal(t, parser.DeviceUnknown, info.DeviceType())
}
