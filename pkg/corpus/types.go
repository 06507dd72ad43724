package corpus

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Producer is the organisation operating a bot.
type Producer struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// BotRule identifies a crawler or automated agent.
type BotRule struct {
	Regex    string    `yaml:"regex"`
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	URL      string    `yaml:"url"`
	Producer *Producer `yaml:"producer"`
}

// VersionRule refines the version of a matched OS rule.
type VersionRule struct {
	Regex   string `yaml:"regex"`
	Version string `yaml:"version"`
}

// OSRule identifies an operating system.
type OSRule struct {
	Regex    string        `yaml:"regex"`
	Name     string        `yaml:"name"`
	Version  string        `yaml:"version"`
	Versions []VersionRule `yaml:"versions"`
}

// EngineVersion selects Engine for browser versions at or above From.
type EngineVersion struct {
	From   string
	Engine string
}

// EngineSpec is a browser's engine: a default plus version-keyed overrides
// in declaration order.
type EngineSpec struct {
	Default  string
	Versions []EngineVersion
}

// UnmarshalYAML decodes the versions mapping in document order.
func (e *EngineSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: engine must be a mapping at line %d", ErrInvalidShape, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "default":
			if err := val.Decode(&e.Default); err != nil {
				return err
			}
		case "versions":
			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("%w: engine versions must be a mapping at line %d", ErrInvalidShape, val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				var engine string
				if err := val.Content[j+1].Decode(&engine); err != nil {
					return err
				}
				e.Versions = append(e.Versions, EngineVersion{From: val.Content[j].Value, Engine: engine})
			}
		}
	}
	return nil
}

// BrowserRule identifies a browser.
type BrowserRule struct {
	Regex   string      `yaml:"regex"`
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	Engine  *EngineSpec `yaml:"engine"`
}

// EngineRule identifies a rendering engine.
type EngineRule struct {
	Regex string `yaml:"regex"`
	Name  string `yaml:"name"`
}

// ClientRule identifies a non-browser client.
type ClientRule struct {
	Regex   string `yaml:"regex"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	URL     string `yaml:"url"`
}

// ModelRule refines the model of a matched device rule. Brand and Device,
// when set, override the parent rule.
type ModelRule struct {
	Regex  string `yaml:"regex"`
	Model  string `yaml:"model"`
	Brand  string `yaml:"brand"`
	Device string `yaml:"device"`
}

// DeviceRule identifies devices of one brand.
type DeviceRule struct {
	Brand  string      `yaml:"-"`
	Regex  string      `yaml:"regex"`
	Device string      `yaml:"device"`
	Model  string      `yaml:"model"`
	Models []ModelRule `yaml:"models"`
}

// VendorFragment lists tokens that identify a brand when no device rule
// matched.
type VendorFragment struct {
	Brand   string
	Regexes []string
}

// Corpus is a fully decoded rule corpus.
type Corpus struct {
	Bots            []BotRule
	OS              []OSRule
	Browsers        []BrowserRule
	Engines         []EngineRule
	FeedReaders     []ClientRule
	MobileApps      []ClientRule
	MediaPlayers    []ClientRule
	PIM             []ClientRule
	Libraries       []ClientRule
	Devices         []DeviceRule
	VendorFragments []VendorFragment
}
