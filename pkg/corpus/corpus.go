package corpus

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// File names of a corpus directory.
const (
	FileBots            = "bots.yml"
	FileOS              = "oss.yml"
	FileBrowsers        = "browsers.yml"
	FileEngines         = "browser_engines.yml"
	FileFeedReaders     = "feed_readers.yml"
	FileMobileApps      = "mobile_apps.yml"
	FileMediaPlayers    = "mediaplayers.yml"
	FilePIM             = "pim.yml"
	FileLibraries       = "libraries.yml"
	FileDevices         = "devices.yml"
	FileVendorFragments = "vendorfragments.yml"
)

//go:embed regexes/*.yml
var embedded embed.FS

// FS returns the embedded corpus as a flat file system.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "regexes")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return sub
}

// Embedded decodes the corpus compiled into the binary.
func Embedded() (*Corpus, error) {
	return Load(FS())
}

// Load reads and validates every corpus file from fsys.
func Load(fsys fs.FS) (*Corpus, error) {
	c := &Corpus{}

	loaders := []struct {
		file string
		load func([]byte) error
	}{
		{FileBots, func(b []byte) error { return decodeList(b, &c.Bots) }},
		{FileOS, func(b []byte) error { return decodeList(b, &c.OS) }},
		{FileBrowsers, func(b []byte) error { return decodeList(b, &c.Browsers) }},
		{FileEngines, func(b []byte) error { return decodeList(b, &c.Engines) }},
		{FileFeedReaders, func(b []byte) error { return decodeList(b, &c.FeedReaders) }},
		{FileMobileApps, func(b []byte) error { return decodeList(b, &c.MobileApps) }},
		{FileMediaPlayers, func(b []byte) error { return decodeList(b, &c.MediaPlayers) }},
		{FilePIM, func(b []byte) error { return decodeList(b, &c.PIM) }},
		{FileLibraries, func(b []byte) error { return decodeList(b, &c.Libraries) }},
		{FileDevices, func(b []byte) error { return decodeDevices(b, &c.Devices) }},
		{FileVendorFragments, func(b []byte) error { return decodeVendorFragments(b, &c.VendorFragments) }},
	}

	for _, l := range loaders {
		data, err := fs.ReadFile(fsys, l.file)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrReadFile, l.file), err)
		}
		if err := l.load(data); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrDecodeFile, l.file), err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeList[T any](data []byte, out *[]T) error {
	return yaml.Unmarshal(data, out)
}

// root returns the top-level node of a single YAML document.
func root(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, ErrInvalidShape
	}
	return doc.Content[0], nil
}

func decodeDevices(data []byte, out *[]DeviceRule) error {
	node, err := root(data)
	if err != nil || node == nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: devices must be a mapping keyed by brand", ErrInvalidShape)
	}

	rules := make([]DeviceRule, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var rule DeviceRule
		if err := node.Content[i+1].Decode(&rule); err != nil {
			return fmt.Errorf("brand %q: %w", node.Content[i].Value, err)
		}
		rule.Brand = node.Content[i].Value
		rules = append(rules, rule)
	}
	*out = rules
	return nil
}

func decodeVendorFragments(data []byte, out *[]VendorFragment) error {
	node, err := root(data)
	if err != nil || node == nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: vendor fragments must be a mapping keyed by brand", ErrInvalidShape)
	}

	frags := make([]VendorFragment, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		frag := VendorFragment{Brand: node.Content[i].Value}
		if err := node.Content[i+1].Decode(&frag.Regexes); err != nil {
			return fmt.Errorf("brand %q: %w", frag.Brand, err)
		}
		frags = append(frags, frag)
	}
	*out = frags
	return nil
}
