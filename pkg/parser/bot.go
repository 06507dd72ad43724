package parser

import (
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

// BotParser detects crawlers and automated agents.
type BotParser struct {
	rules *ruleset.Set[corpus.BotRule]
}

// NewBotParser compiles the bot rules.
func NewBotParser(rules []corpus.BotRule, opts ...ruleset.Option) (*BotParser, error) {
	defs := make([]ruleset.Definition[corpus.BotRule], 0, len(rules))
	for _, r := range rules {
		defs = append(defs, ruleset.Definition[corpus.BotRule]{Regex: r.Regex, Result: r})
	}
	set, err := ruleset.New("bots", defs, opts...)
	if err != nil {
		return nil, err
	}
	return &BotParser{rules: set}, nil
}

// Parse returns the first bot rule matching ua whose name resolves. A rule
// whose name template stays empty for ua is passed over.
func (p *BotParser) Parse(ua string) (*Bot, bool) {
	rule, groups, ok := p.rules.Match(ua)
	if !ok {
		return nil, false
	}

	name, ok := pattern.Resolve(rule.Result.Name, groups)
	if !ok {
		if rule, name, ok = p.firstNamed(ua); !ok {
			return nil, false
		}
	}

	def := rule.Result
	bot := &Bot{Name: name, Category: def.Category, URL: def.URL}
	if def.Producer != nil && (def.Producer.Name != "" || def.Producer.URL != "") {
		bot.Producer = &Producer{Name: def.Producer.Name, URL: def.Producer.URL}
	}
	return bot, true
}

func (p *BotParser) firstNamed(ua string) (ruleset.Rule[corpus.BotRule], string, bool) {
	for _, r := range p.rules.Rules() {
		groups, ok := r.Pattern.FindGroups(ua)
		if !ok {
			continue
		}
		if name, ok := pattern.Resolve(r.Result.Name, groups); ok {
			return r, name, true
		}
	}
	return ruleset.Rule[corpus.BotRule]{}, "", false
}
