package parser

import (
	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

type clientCategory struct {
	typ   ClientType
	rules *ruleset.Set[corpus.ClientRule]
}

// ClientParser detects the client application. Categories are tried in a
// fixed order and the first match wins: feed readers, mobile apps, media
// players, PIM clients, browsers, libraries.
type ClientParser struct {
	browser    *BrowserParser
	categories []clientCategory
}

// NewClientParser compiles the client categories of c. The browser category
// is served by browser.
func NewClientParser(c *corpus.Corpus, browser *BrowserParser, opts ...ruleset.Option) (*ClientParser, error) {
	order := []struct {
		typ   ClientType
		rules []corpus.ClientRule
	}{
		{ClientFeedReader, c.FeedReaders},
		{ClientMobileApp, c.MobileApps},
		{ClientMediaPlayer, c.MediaPlayers},
		{ClientPIM, c.PIM},
		{ClientBrowser, nil},
		{ClientLibrary, c.Libraries},
	}

	p := &ClientParser{browser: browser}
	for _, cat := range order {
		if cat.typ == ClientBrowser {
			p.categories = append(p.categories, clientCategory{typ: ClientBrowser})
			continue
		}
		defs := make([]ruleset.Definition[corpus.ClientRule], 0, len(cat.rules))
		for _, r := range cat.rules {
			defs = append(defs, ruleset.Definition[corpus.ClientRule]{Regex: r.Regex, Result: r})
		}
		set, err := ruleset.New(string(cat.typ), defs, opts...)
		if err != nil {
			return nil, err
		}
		p.categories = append(p.categories, clientCategory{typ: cat.typ, rules: set})
	}
	return p, nil
}

// Parse detects the client, running the browser parser itself.
func (p *ClientParser) Parse(ua string, hints clienthints.Hints) (*Client, bool) {
	browser, _ := p.browser.Parse(ua, hints)
	return p.ParseWithBrowser(ua, browser)
}

// ParseWithBrowser detects the client reusing an already detected browser;
// a nil browser skips the browser category.
func (p *ClientParser) ParseWithBrowser(ua string, browser *Browser) (*Client, bool) {
	for _, cat := range p.categories {
		if cat.typ == ClientBrowser {
			if browser != nil {
				return &Client{Type: ClientBrowser, Name: browser.Name, Version: browser.Version}, true
			}
			continue
		}

		rule, groups, ok := cat.rules.Match(ua)
		if !ok {
			continue
		}
		name, ok := pattern.Resolve(rule.Result.Name, groups)
		if !ok {
			continue
		}
		ver, _ := pattern.ResolveVersion(rule.Result.Version, groups)
		return &Client{Type: cat.typ, Name: name, Version: ver}, true
	}
	return nil, false
}
