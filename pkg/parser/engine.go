package parser

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

// geckoVersion reads the rv: token that accompanies a date-stamped Gecko or
// Clecko token.
var geckoVersion = pattern.MustCompileRaw(`[ ](?:rv[: ]([0-9.]+)).*(?:g|cl)ecko/[0-9]{8,10}`, true)

// EngineParser detects the rendering engine when the browser rule names none.
type EngineParser struct {
	rules    *ruleset.Set[string]
	versions map[string]*pattern.Pattern
}

// NewEngineParser compiles the engine rules and one version pattern per
// known engine.
func NewEngineParser(rules []corpus.EngineRule, reg *registry.Set, opts ...ruleset.Option) (*EngineParser, error) {
	defs := make([]ruleset.Definition[string], 0, len(rules))
	for i, r := range rules {
		if !reg.HasEngine(r.Name) {
			return nil, fmt.Errorf("%w: engine rule #%d %q", ErrUnknownEngine, i, r.Name)
		}
		defs = append(defs, ruleset.Definition[string]{Regex: r.Regex, Result: r.Name})
	}
	set, err := ruleset.New("browser engines", defs, opts...)
	if err != nil {
		return nil, err
	}

	versions := make(map[string]*pattern.Pattern, len(reg.Engines))
	for _, engine := range reg.Engines {
		switch engine {
		case "Gecko", "Clecko":
			versions[engine] = geckoVersion
			continue
		}
		token := regexp.QuoteMeta(engine)
		if engine == "Blink" {
			token = `Chr[o0]me|Chromium|Cronet`
		}
		p, err := pattern.CompileRaw(fmt.Sprintf(`(?:%[1]s)\s*[/_]?\s*(\d+\.\d[.\d]*)|(?:%[1]s)\s*[/_]?\s*(\d{1,7})(?:\D|$)`, token), true)
		if err != nil {
			return nil, err
		}
		versions[engine] = p
	}

	return &EngineParser{rules: set, versions: versions}, nil
}

// Parse returns the engine name for ua, or "".
func (p *EngineParser) Parse(ua string) string {
	rule, _, ok := p.rules.Match(ua)
	if !ok {
		return ""
	}
	return rule.Result
}

// Version returns the version of engine as announced in ua, or "".
func (p *EngineParser) Version(ua, engine string) string {
	re, ok := p.versions[engine]
	if !ok {
		return ""
	}
	groups, ok := re.FindGroups(ua)
	if !ok {
		return ""
	}
	v := groups.Group(1)
	if v == "" {
		v = groups.Group(2)
	}
	v, _ = pattern.ResolveVersion(v, nil)
	return v
}
