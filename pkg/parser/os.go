package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

type osEntry struct {
	name     string
	code     string
	version  string
	versions *ruleset.Set[string]
}

// CPU architecture rules, most specific first.
var cpuArchDefs = []ruleset.Definition[string]{
	{Regex: `arm[ _;)ev]|.*arm$|.*arm64|aarch64|Apple ?TV|Watch ?OS|Watch1,[12]`, Result: "ARM"},
	{Regex: `loongarch64`, Result: "LoongArch64"},
	{Regex: `mips`, Result: "MIPS"},
	{Regex: `sh4`, Result: "SuperH"},
	{Regex: `sparc64`, Result: "SPARC64"},
	{Regex: `x64|x86_64|amd64|x86-64|WOW64|Win64`, Result: "x64"},
	{Regex: `.+32bit|.+win32|(?:i[0-9]|x)86|i86pc`, Result: "x86"},
}

// OSParser detects the operating system.
type OSParser struct {
	rules *ruleset.Set[osEntry]
	arch  *ruleset.Set[string]
	reg   *registry.Set
}

// NewOSParser compiles the OS rules. Literal names must be known to reg.OS.
func NewOSParser(rules []corpus.OSRule, reg *registry.Set, opts ...ruleset.Option) (*OSParser, error) {
	defs := make([]ruleset.Definition[osEntry], 0, len(rules))
	for i, r := range rules {
		e := osEntry{name: r.Name, version: r.Version}
		if !strings.Contains(r.Name, "$") {
			code, ok := reg.OS.Code(r.Name)
			if !ok {
				return nil, fmt.Errorf("%w: os rule #%d %q", ErrUnknownName, i, r.Name)
			}
			e.code = code
			e.name, _ = reg.OS.Name(code)
		}
		if len(r.Versions) > 0 {
			vdefs := make([]ruleset.Definition[string], 0, len(r.Versions))
			for _, v := range r.Versions {
				vdefs = append(vdefs, ruleset.Definition[string]{Regex: v.Regex, Result: v.Version})
			}
			set, err := ruleset.New(fmt.Sprintf("os %q versions", r.Name), vdefs, opts...)
			if err != nil {
				return nil, err
			}
			e.versions = set
		}
		defs = append(defs, ruleset.Definition[osEntry]{Regex: r.Regex, Result: e})
	}

	set, err := ruleset.New("os", defs, opts...)
	if err != nil {
		return nil, err
	}
	arch, err := ruleset.New("cpu architecture", cpuArchDefs, opts...)
	if err != nil {
		return nil, err
	}
	return &OSParser{rules: set, arch: arch, reg: reg}, nil
}

// Parse detects the OS from ua, merged with hints when they name a known
// platform.
func (p *OSParser) Parse(ua string, hints clienthints.Hints) (*OS, bool) {
	res := p.parseUserAgent(ua)
	res = p.mergeHints(res, hints)
	if res == nil {
		return nil, false
	}

	if res.Code != "" {
		res.Family, _ = p.reg.OSFamilies.Family(res.Code)
	}
	res.CPUArchitecture = p.cpuArchitecture(ua, hints)
	return res, true
}

func (p *OSParser) parseUserAgent(ua string) *OS {
	rule, groups, ok := p.rules.Match(ua)
	if !ok {
		return nil
	}
	e := rule.Result

	res := &OS{Name: e.name, Code: e.code}
	if e.code == "" {
		name, ok := pattern.Resolve(e.name, groups)
		if !ok {
			return nil
		}
		res.Name = name
		if code, ok := p.reg.OS.CodeFold(name); ok {
			res.Code = code
			res.Name, _ = p.reg.OS.Name(code)
		} else {
			p.rules.Logger().Debug("resolved name not in registry",
				logger.Category("os"), slog.String("name", name))
		}
	}

	if e.versions != nil {
		if vr, vgroups, ok := e.versions.Match(ua); ok {
			res.Version, _ = pattern.ResolveVersion(vr.Result, vgroups)
			return res
		}
	}
	res.Version, _ = pattern.ResolveVersion(e.version, groups)
	return res
}

// mergeHints applies the platform hints field by field. A recognised hint
// platform supplies the name, unless the UA named a more specific OS of the
// same family. The hint version wins; otherwise the UA version survives only
// when both sources agree on the family.
func (p *OSParser) mergeHints(ua *OS, hints clienthints.Hints) *OS {
	if hints.Platform == "" {
		return ua
	}
	code, ok := p.reg.OS.CodeFold(hints.Platform)
	if !ok {
		return ua
	}
	name, _ := p.reg.OS.Name(code)
	hintFamily, _ := p.reg.OSFamilies.Family(code)

	res := &OS{Name: name, Code: code, Version: hintVersion(code, hints.PlatformVersion)}
	if ua == nil {
		return res
	}

	uaFamily, _ := p.reg.OSFamilies.Family(ua.Code)
	sameFamily := uaFamily != "" && uaFamily == hintFamily
	if sameFamily && ua.Name != name {
		res.Name, res.Code = ua.Name, ua.Code
	}
	if res.Version == "" && sameFamily {
		res.Version = ua.Version
	}
	return res
}

// hintVersion normalises Sec-CH-UA-Platform-Version. Windows reports an
// internal platform version that is mapped onto the marketing release.
func hintVersion(code, v string) string {
	v = strings.TrimSpace(v)
	if code != "WIN" {
		return v
	}

	major, rest, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return ""
	}
	switch {
	case n >= 13:
		return "11"
	case n >= 1:
		return "10"
	}
	switch minor, _, _ := strings.Cut(rest, "."); minor {
	case "1":
		return "7"
	case "2":
		return "8"
	case "3":
		return "8.1"
	}
	return ""
}

func (p *OSParser) cpuArchitecture(ua string, hints clienthints.Hints) string {
	if arch := hintArchitecture(hints); arch != "" {
		return arch
	}
	rule, _, ok := p.arch.Match(ua)
	if !ok {
		return ""
	}
	return rule.Result
}

func hintArchitecture(hints clienthints.Hints) string {
	arch := strings.ToLower(hints.Arch)
	switch {
	case arch == "":
		return ""
	case strings.Contains(arch, "arm"):
		return "ARM"
	case strings.Contains(arch, "loongarch64"):
		return "LoongArch64"
	case strings.Contains(arch, "mips"):
		return "MIPS"
	case strings.Contains(arch, "sh4"):
		return "SuperH"
	case strings.Contains(arch, "sparc64"):
		return "SPARC64"
	case strings.Contains(arch, "x64"), strings.Contains(arch, "x86") && hints.Bitness == "64":
		return "x64"
	case strings.Contains(arch, "x86"):
		return "x86"
	}
	return ""
}
