package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

const chromiumCode = "CR"

type browserEntry struct {
	name    string
	code    string
	version string
	engine  *corpus.EngineSpec
}

// BrowserParser detects the browser together with its engine.
type BrowserParser struct {
	rules   *ruleset.Set[browserEntry]
	engines *EngineParser
	reg     *registry.Set
}

// NewBrowserParser compiles the browser rules. Literal browser names must be
// known to reg.Browsers and every engine named by a rule to reg.Engines.
func NewBrowserParser(rules []corpus.BrowserRule, engines *EngineParser, reg *registry.Set, opts ...ruleset.Option) (*BrowserParser, error) {
	defs := make([]ruleset.Definition[browserEntry], 0, len(rules))
	for i, r := range rules {
		e := browserEntry{name: r.Name, version: r.Version, engine: r.Engine}
		if !strings.Contains(r.Name, "$") {
			code, ok := reg.Browsers.Code(r.Name)
			if !ok {
				return nil, fmt.Errorf("%w: browser rule #%d %q", ErrUnknownName, i, r.Name)
			}
			e.code = code
			e.name, _ = reg.Browsers.Name(code)
		}
		if r.Engine != nil {
			for _, engine := range engineNames(r.Engine) {
				if !reg.HasEngine(engine) {
					return nil, fmt.Errorf("%w: browser rule #%d %q engine %q", ErrUnknownEngine, i, r.Name, engine)
				}
			}
		}
		defs = append(defs, ruleset.Definition[browserEntry]{Regex: r.Regex, Result: e})
	}

	set, err := ruleset.New("browsers", defs, opts...)
	if err != nil {
		return nil, err
	}
	return &BrowserParser{rules: set, engines: engines, reg: reg}, nil
}

func engineNames(spec *corpus.EngineSpec) []string {
	var out []string
	if spec.Default != "" {
		out = append(out, spec.Default)
	}
	for _, v := range spec.Versions {
		if v.Engine != "" {
			out = append(out, v.Engine)
		}
	}
	return out
}

// Parse detects the browser from ua and the brand hints.
func (p *BrowserParser) Parse(ua string, hints clienthints.Hints) (*Browser, bool) {
	res := p.parseUserAgent(ua)
	res = p.mergeHints(res, hints)
	if res == nil {
		return nil, false
	}
	if res.Code != "" {
		res.Family, _ = p.reg.BrowserFamilies.Family(res.Code)
	}
	return res, true
}

func (p *BrowserParser) parseUserAgent(ua string) *Browser {
	rule, groups, ok := p.rules.Match(ua)
	if !ok {
		return nil
	}
	e := rule.Result

	res := &Browser{Name: e.name, Code: e.code}
	if e.code == "" {
		name, ok := pattern.Resolve(e.name, groups)
		if !ok {
			return nil
		}
		res.Name = name
		if code, ok := p.reg.Browsers.CodeFold(name); ok {
			res.Code = code
			res.Name, _ = p.reg.Browsers.Name(code)
		} else {
			p.rules.Logger().Debug("resolved name not in registry",
				logger.Category("browsers"), slog.String("name", name))
		}
	}
	res.Version, _ = pattern.ResolveVersion(e.version, groups)

	res.Engine = engineFor(e.engine, res.Version)
	if res.Engine == "" {
		res.Engine = p.engines.Parse(ua)
	}
	if res.Engine != "" {
		res.EngineVersion = p.engines.Version(ua, res.Engine)
	}
	return res
}

// engineFor picks the engine of a browser version: the default, overridden by
// every version entry the browser version reaches.
func engineFor(spec *corpus.EngineSpec, browserVersion string) string {
	if spec == nil {
		return ""
	}
	engine := spec.Default
	for _, v := range spec.Versions {
		if version.Compare(browserVersion, v.From) >= 0 {
			engine = v.Engine
		}
	}
	return engine
}

// pickBrand returns the first recognised non-Chromium brand, or Chromium when
// it is the only one recognised.
func (p *BrowserParser) pickBrand(brands []clienthints.Brand) (clienthints.Brand, string, bool) {
	var (
		fallback     clienthints.Brand
		fallbackCode string
	)
	for _, b := range brands {
		code, ok := p.reg.Browsers.CodeFold(b.Name)
		if !ok {
			continue
		}
		if code != chromiumCode {
			return b, code, true
		}
		if fallbackCode == "" {
			fallback, fallbackCode = b, code
		}
	}
	return fallback, fallbackCode, fallbackCode != ""
}

// mergeHints applies the brand hints. The hint brand names the browser unless
// it is the generic brand of the UA browser's family (Chromium, or the family
// name itself), in which case the more specific UA name is kept. A hinted
// version always wins.
func (p *BrowserParser) mergeHints(ua *Browser, hints clienthints.Hints) *Browser {
	brand, code, ok := p.pickBrand(hints.Brands)
	if !ok {
		return ua
	}
	name, _ := p.reg.Browsers.Name(code)
	hintFamily, _ := p.reg.BrowserFamilies.Family(code)

	ver := brand.Version
	if hints.FullVersion != "" && !strings.Contains(ver, ".") {
		ver = hints.FullVersion
	}

	if ua == nil {
		return &Browser{Name: name, Code: code, Version: ver, Engine: "Blink", EngineVersion: p.chromiumVersion(hints)}
	}

	res := *ua
	uaFamily, _ := p.reg.BrowserFamilies.Family(ua.Code)
	generic := code == chromiumCode || name == hintFamily
	if !(generic && uaFamily != "" && uaFamily == hintFamily) {
		res.Name, res.Code = name, code
	}
	if ver != "" {
		res.Version = ver
	}
	if res.Engine == "Blink" {
		if cv := p.chromiumVersion(hints); cv != "" {
			res.EngineVersion = cv
		}
	}
	return &res
}

func (p *BrowserParser) chromiumVersion(hints clienthints.Hints) string {
	for _, b := range hints.Brands {
		if code, ok := p.reg.Browsers.CodeFold(b.Name); ok && code == chromiumCode {
			return b.Version
		}
	}
	return ""
}
