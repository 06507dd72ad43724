package parser

import (
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

// Parsers bundles every category parser built from one corpus.
type Parsers struct {
	Bot     *BotParser
	OS      *OSParser
	Engine  *EngineParser
	Browser *BrowserParser
	Client  *ClientParser
	Device  *DeviceParser
}

// New builds all parsers from c and reg. Any invalid rule aborts construction.
// The options apply to every rule set.
func New(c *corpus.Corpus, reg *registry.Set, opts ...ruleset.Option) (*Parsers, error) {
	bot, err := NewBotParser(c.Bots, opts...)
	if err != nil {
		return nil, err
	}
	osParser, err := NewOSParser(c.OS, reg, opts...)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngineParser(c.Engines, reg, opts...)
	if err != nil {
		return nil, err
	}
	browser, err := NewBrowserParser(c.Browsers, engine, reg, opts...)
	if err != nil {
		return nil, err
	}
	client, err := NewClientParser(c, browser, opts...)
	if err != nil {
		return nil, err
	}
	device, err := NewDeviceParser(c.Devices, c.VendorFragments, reg, opts...)
	if err != nil {
		return nil, err
	}

	return &Parsers{
		Bot:     bot,
		OS:      osParser,
		Engine:  engine,
		Browser: browser,
		Client:  client,
		Device:  device,
	}, nil
}
