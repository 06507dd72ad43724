package registry_test

import (
	"testing"

	"github.com/dmitrymomot/uadetector/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	entries := []registry.Entry{{Code: "AA", Name: "Alpha"}, {Code: "BB", Name: "Beta"}}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		r, err := registry.New("test", entries, map[string]string{"First": "AA"})
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
		assert.Equal(t, "test", r.Kind())
	})

	tests := []struct {
		name    string
		entries []registry.Entry
		aliases map[string]string
		err     error
	}{
		{"empty code", []registry.Entry{{Code: "", Name: "Alpha"}}, nil, registry.ErrEmptyEntry},
		{"empty name", []registry.Entry{{Code: "AA", Name: ""}}, nil, registry.ErrEmptyEntry},
		{"duplicate code", []registry.Entry{{Code: "AA", Name: "Alpha"}, {Code: "AA", Name: "Other"}}, nil, registry.ErrDuplicateCode},
		{"duplicate name", []registry.Entry{{Code: "AA", Name: "Alpha"}, {Code: "BB", Name: "Alpha"}}, nil, registry.ErrDuplicateName},
		{"case-only duplicate", []registry.Entry{{Code: "AA", Name: "Alpha"}, {Code: "BB", Name: "ALPHA"}}, nil, registry.ErrDuplicateName},
		{"alias to unknown code", entries, map[string]string{"Gamma": "GG"}, registry.ErrUnknownCode},
		{"alias shadows canonical", entries, map[string]string{"Beta": "AA"}, registry.ErrAliasCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := registry.New("test", tt.entries, tt.aliases)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r, err := registry.New("os", []registry.Entry{
		{Code: "MAC", Name: "Mac"},
		{Code: "LIN", Name: "GNU/Linux"},
	}, map[string]string{"macOS": "MAC", "Linux": "LIN"})
	require.NoError(t, err)

	code, ok := r.Code("Mac")
	assert.True(t, ok)
	assert.Equal(t, "MAC", code)

	code, ok = r.Code("macOS")
	assert.True(t, ok)
	assert.Equal(t, "MAC", code)

	_, ok = r.Code("MACOS")
	assert.False(t, ok, "Code is case-sensitive")

	code, ok = r.CodeFold("MACOS")
	assert.True(t, ok)
	assert.Equal(t, "MAC", code)

	name, ok := r.Canonical("linux")
	assert.True(t, ok)
	assert.Equal(t, "GNU/Linux", name)

	_, ok = r.Name("WIN")
	assert.False(t, ok)

	_, ok = r.Canonical("Windows")
	assert.False(t, ok)
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	r, err := registry.New("os", []registry.Entry{{Code: "AND", Name: "Android"}, {Code: "FIR", Name: "Fire OS"}}, nil)
	require.NoError(t, err)

	f, err := registry.NewFamilies(r, map[string][]string{"Android": {"AND", "FIR"}})
	require.NoError(t, err)

	family, ok := f.Family("FIR")
	assert.True(t, ok)
	assert.Equal(t, "Android", family)
	assert.Equal(t, []string{"Android"}, f.Names())

	_, err = registry.NewFamilies(r, map[string][]string{"Android": {"XXX"}})
	assert.ErrorIs(t, err, registry.ErrUnknownCode)

	_, err = registry.NewFamilies(r, map[string][]string{"A": {"AND"}, "B": {"AND"}})
	assert.ErrorIs(t, err, registry.ErrDuplicateCode)
}

func TestNewDefault(t *testing.T) {
	t.Parallel()

	set, err := registry.NewDefault()
	require.NoError(t, err)

	for _, reg := range []*registry.Registry{set.OS, set.Browsers, set.Brands} {
		t.Run(reg.Kind(), func(t *testing.T) {
			t.Parallel()
			for _, e := range reg.Entries() {
				name, ok := reg.Name(e.Code)
				require.True(t, ok, e.Code)
				assert.Equal(t, e.Name, name)

				code, ok := reg.Code(e.Name)
				require.True(t, ok, e.Name)
				assert.Equal(t, e.Code, code)
			}
			for alias, code := range reg.Aliases() {
				got, ok := reg.Code(alias)
				require.True(t, ok, alias)
				assert.Equal(t, code, got)
			}
		})
	}

	t.Run("every os has a family", func(t *testing.T) {
		t.Parallel()
		for _, e := range set.OS.Entries() {
			_, ok := set.OSFamilies.Family(e.Code)
			assert.True(t, ok, e.Name)
		}
	})

	t.Run("client hint platforms resolve", func(t *testing.T) {
		t.Parallel()
		for _, platform := range []string{"Android", "Chrome OS", "Chromium OS", "iOS", "Linux", "macOS", "Windows", "Fuchsia"} {
			_, ok := set.OS.CodeFold(platform)
			assert.True(t, ok, platform)
		}
	})

	assert.True(t, set.HasEngine("Blink"))
	assert.False(t, set.HasEngine("Servo"))
	assert.True(t, set.IsMobileOnlyBrowser("CM"))
	assert.False(t, set.IsMobileOnlyBrowser("CH"))
}

func TestNewDefaultIsFresh(t *testing.T) {
	t.Parallel()

	a, err := registry.NewDefault()
	require.NoError(t, err)
	b, err := registry.NewDefault()
	require.NoError(t, err)

	a.Engines[0] = "mutated"
	assert.Equal(t, "WebKit", b.Engines[0])
}
