package ruleset_test

import (
	"slices"
	"testing"

	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; U; Android 2.3.3; en-us; HTC_DesireS_S510e Build/GRI40) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (compatible; Discordbot/2.0; +https://discordapp.com)",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"Safari/9537.73.11 CFNetwork/673.0.3 Darwin/13.0.0 (x86_64) (MacBookAir6,2)",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; MDDRJS; rv:11.0) like Gecko",
	"curl/7.68.0",
	"python-requests/2.25.1",
	"Mozilla/5.0 (Linux; Android 10; SM-A515F) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36",
	"Mozilla/5.0 (PlayStation 4 3.11) AppleWebKit/537.73 (KHTML, like Gecko)",
	"Mozilla/5.0 (Nintendo Switch; WifiWebAuthApplet) AppleWebKit/606.4 (KHTML, like Gecko) NF/6.0.1.15.4 NintendoBrowser/5.1.0.20393",
	"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54",
	"VLC/3.0.11 LibVLC/3.0.11",
	"Thunderbird/78.10.0",
	"",
	"12345",
	"sprd-Foo/1.0",
	"Mozilla/5.0 (Linux; Android 6.0; Nexu\u017f 5 Build/MRA58N)",
	"Mozilla/5.0 (\u212aHTML, like Gecko) \u017fafari/537.36",
}

func TestMatchFirstWins(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New("test", []ruleset.Definition[string]{
		{Regex: `Chrome/(\d+)`, Result: "first"},
		{Regex: `Chrome`, Result: "second"},
		{Regex: `Firefox`, Result: "third"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, "test", set.Name())

	rule, groups, ok := set.Match("Mozilla/5.0 Chrome/91.0")
	require.True(t, ok)
	assert.Equal(t, "first", rule.Result)
	assert.Equal(t, "91", groups.Group(1))

	rule, _, ok = set.Match("Chrome")
	require.True(t, ok)
	assert.Equal(t, "second", rule.Result)

	_, _, ok = set.Match("Safari/605")
	assert.False(t, ok)
}

func TestBoundaryApplies(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New("test", []ruleset.Definition[string]{{Regex: `bot`, Result: "bot"}})
	require.NoError(t, err)

	_, _, ok := set.Match("Cubot-phone")
	assert.False(t, ok)
	_, _, ok = set.Match("xbot")
	assert.False(t, ok)
	_, _, ok = set.Match("a bot")
	assert.True(t, ok)
	_, _, ok = set.Match("BOT")
	assert.True(t, ok)
}

func TestNewRejectsInvalidRule(t *testing.T) {
	t.Parallel()

	_, err := ruleset.New("broken", []ruleset.Definition[int]{
		{Regex: `ok`, Result: 1},
		{Regex: `(unclosed`, Result: 2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ruleset.ErrInvalidRule)
}

func TestMixedEnginesShareCaseFolding(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New("devices", []ruleset.Definition[string]{
		{Regex: `Nexus (\d+)`, Result: "nexus"},
		{Regex: `SAMSUNG(?! ?Browser)`, Result: "samsung"},
	})
	require.NoError(t, err)
	require.True(t, set.Combined().Extended())

	for _, r := range set.Rules() {
		assert.True(t, r.Pattern.Extended(), "%s rule runs on the gate's engine", r.Result)
	}

	for _, ua := range []string{
		"Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N)",
		"Mozilla/5.0 (Linux; Android 6.0; Nexu\u017f 5 Build/MRA58N)",
		"Mozilla/5.0 (Linux; SAMSUNG SM-G991B)",
	} {
		_, _, scanned := set.Scan(ua)
		assert.Equal(t, scanned, set.Prefilter(ua), "%q", ua)
	}

	rule, groups, ok := set.Match("Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N)")
	require.True(t, ok)
	assert.Equal(t, "nexus", rule.Result)
	assert.Equal(t, "5", groups.Group(1))
}

func TestStdlibSetStaysOnStdlib(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New("plain", []ruleset.Definition[string]{
		{Regex: `Nexus`, Result: "nexus"},
		{Regex: `Pixel`, Result: "pixel"},
	})
	require.NoError(t, err)
	assert.False(t, set.Combined().Extended())
	for _, r := range set.Rules() {
		assert.False(t, r.Pattern.Extended())
	}
}

func TestEmptySet(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New[string]("empty", nil)
	require.NoError(t, err)
	assert.Nil(t, set.Combined())
	assert.False(t, set.Prefilter("anything"))

	_, _, ok := set.Match("anything")
	assert.False(t, ok)
}

func TestRulesIteratesInOrder(t *testing.T) {
	t.Parallel()

	set, err := ruleset.New("order", []ruleset.Definition[int]{
		{Regex: `a`, Result: 0},
		{Regex: `b`, Result: 1},
		{Regex: `c`, Result: 2},
	})
	require.NoError(t, err)

	var got []int
	for i, r := range set.Rules() {
		assert.Equal(t, i, r.Result)
		got = append(got, r.Result)
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	got = got[:0]
	for _, r := range set.Rules() {
		got = append(got, r.Result)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, got)
}

// corpusSets builds one set per regex category of the embedded corpus.
func corpusSets(tb testing.TB) []*ruleset.Set[string] {
	tb.Helper()

	c, err := corpus.Embedded()
	require.NoError(tb, err)

	groups := map[string][]string{}
	for _, r := range c.Bots {
		groups["bots"] = append(groups["bots"], r.Regex)
	}
	for _, r := range c.OS {
		groups["os"] = append(groups["os"], r.Regex)
	}
	for _, r := range c.Browsers {
		groups["browsers"] = append(groups["browsers"], r.Regex)
	}
	for _, r := range c.Engines {
		groups["engines"] = append(groups["engines"], r.Regex)
	}
	for _, r := range slices.Concat(c.FeedReaders, c.MobileApps, c.MediaPlayers, c.PIM, c.Libraries) {
		groups["clients"] = append(groups["clients"], r.Regex)
	}
	for _, r := range c.Devices {
		groups["devices"] = append(groups["devices"], r.Regex)
	}

	var sets []*ruleset.Set[string]
	for name, regexes := range groups {
		defs := make([]ruleset.Definition[string], 0, len(regexes))
		for _, re := range regexes {
			defs = append(defs, ruleset.Definition[string]{Regex: re, Result: re})
		}
		set, err := ruleset.New(name, defs)
		require.NoError(tb, err, name)
		sets = append(sets, set)
	}
	return sets
}

func TestPrefilterAgreesWithScan(t *testing.T) {
	t.Parallel()

	for _, set := range corpusSets(t) {
		for _, ua := range sampleAgents {
			_, _, scanned := set.Scan(ua)
			if scanned {
				assert.True(t, set.Prefilter(ua), "%s: prefilter rejected %q", set.Name(), ua)
			}
			_, _, matched := set.Match(ua)
			assert.Equal(t, scanned, matched, "%s: %q", set.Name(), ua)
		}
	}
}

func FuzzPrefilterAgreesWithScan(f *testing.F) {
	for _, ua := range sampleAgents {
		f.Add(ua)
	}
	sets := corpusSets(f)

	f.Fuzz(func(t *testing.T, ua string) {
		for _, set := range sets {
			_, _, scanned := set.Scan(ua)
			if scanned && !set.Prefilter(ua) {
				t.Fatalf("%s: prefilter rejected %q which rule scan accepts", set.Name(), ua)
			}
		}
	})
}
