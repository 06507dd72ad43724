package parser

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
)

type modelEntry struct {
	pattern *pattern.Pattern
	model   string
	brand   *Brand
	typ     DeviceType
}

type deviceEntry struct {
	brand  Brand
	typ    DeviceType
	model  string
	models []modelEntry
}

// DeviceParser detects brand, model and form factor.
type DeviceParser struct {
	rules   *ruleset.Set[deviceEntry]
	vendors *ruleset.Set[Brand]
}

// NewDeviceParser compiles device rules and vendor fragments. Brands must be
// known to reg.Brands and device types must be valid.
func NewDeviceParser(devices []corpus.DeviceRule, fragments []corpus.VendorFragment, reg *registry.Set, opts ...ruleset.Option) (*DeviceParser, error) {
	brandOf := func(name string) (Brand, error) {
		code, ok := reg.Brands.Code(name)
		if !ok {
			return Brand{}, fmt.Errorf("%w: %q", ErrUnknownBrand, name)
		}
		canonical, _ := reg.Brands.Name(code)
		return Brand{Code: code, Name: canonical}, nil
	}
	typeOf := func(s string) (DeviceType, error) {
		t, ok := ParseDeviceType(s)
		if !ok {
			return DeviceUnknown, fmt.Errorf("%w: %q", ErrUnknownDeviceType, s)
		}
		return t, nil
	}

	defs := make([]ruleset.Definition[deviceEntry], 0, len(devices))
	for _, d := range devices {
		brand, err := brandOf(d.Brand)
		if err != nil {
			return nil, err
		}
		typ, err := typeOf(d.Device)
		if err != nil {
			return nil, fmt.Errorf("brand %q: %w", d.Brand, err)
		}
		e := deviceEntry{brand: brand, typ: typ, model: d.Model}

		for j, m := range d.Models {
			p, err := pattern.Compile(m.Regex)
			if err != nil {
				return nil, fmt.Errorf("%w: brand %q model #%d: %w", ErrInvalidModelRule, d.Brand, j, err)
			}
			me := modelEntry{pattern: p, model: m.Model}
			if me.typ, err = typeOf(m.Device); err != nil {
				return nil, fmt.Errorf("brand %q model #%d: %w", d.Brand, j, err)
			}
			if m.Brand != "" {
				b, err := brandOf(m.Brand)
				if err != nil {
					return nil, fmt.Errorf("brand %q model #%d: %w", d.Brand, j, err)
				}
				me.brand = &b
			}
			e.models = append(e.models, me)
		}
		defs = append(defs, ruleset.Definition[deviceEntry]{Regex: d.Regex, Result: e})
	}

	rules, err := ruleset.New("devices", defs, opts...)
	if err != nil {
		return nil, err
	}

	var vdefs []ruleset.Definition[Brand]
	for _, f := range fragments {
		brand, err := brandOf(f.Brand)
		if err != nil {
			return nil, fmt.Errorf("vendor fragment: %w", err)
		}
		for _, re := range f.Regexes {
			vdefs = append(vdefs, ruleset.Definition[Brand]{Regex: re + `[^a-z0-9]+`, Result: brand})
		}
	}
	vendors, err := ruleset.New("vendor fragments", vdefs, opts...)
	if err != nil {
		return nil, err
	}

	return &DeviceParser{rules: rules, vendors: vendors}, nil
}

// Parse detects the device. A full device rule always takes precedence over
// a vendor fragment; the Sec-CH-UA-Model hint fills a missing model.
func (p *DeviceParser) Parse(ua string, hints clienthints.Hints) (*Device, bool) {
	d := p.parseDevice(ua)
	if d == nil {
		d = p.parseVendor(ua)
	}

	if model := strings.TrimSpace(hints.Model); model != "" {
		if d == nil {
			d = &Device{}
		}
		if d.Model == "" {
			d.Model = model
		}
	}
	if d == nil {
		return nil, false
	}
	return d, true
}

func (p *DeviceParser) parseDevice(ua string) *Device {
	rule, groups, ok := p.rules.Match(ua)
	if !ok {
		return nil
	}
	e := rule.Result

	brand := e.brand
	d := &Device{Type: e.typ, Brand: &brand}
	d.Model, _ = pattern.ResolveModel(e.model, groups)

	for _, m := range e.models {
		mgroups, ok := m.pattern.FindGroups(ua)
		if !ok {
			continue
		}
		d.Model, _ = pattern.ResolveModel(m.model, mgroups)
		if m.brand != nil {
			b := *m.brand
			d.Brand = &b
		}
		if m.typ != DeviceUnknown {
			d.Type = m.typ
		}
		break
	}
	return d
}

func (p *DeviceParser) parseVendor(ua string) *Device {
	rule, _, ok := p.vendors.Match(ua)
	if !ok {
		return nil
	}
	brand := rule.Result
	return &Device{Brand: &brand}
}
