// Package parser implements the per-category User-Agent parsers.
//
// Each parser wraps one or more ruleset.Set values built from a corpus and
// the registry tables, then layers category refinement on top of the shared
// first-match engine:
//
//   - BotParser: a single ordered scan yielding name, category, url and producer.
//   - OSParser: OS name and version (with nested version rules), CPU
//     architecture, family, merged field by field with client hints.
//   - BrowserParser: browser name, version and family, engine from the rule's
//     engine spec or the EngineParser, and engine version.
//   - ClientParser: feed readers, mobile apps, media players, PIM clients,
//     browsers and libraries, tried in that order.
//   - DeviceParser: brand-keyed device rules with model variants, falling back
//     to vendor fragments for brand-only matches.
//
// Literal names in the corpus are checked against the registries when a
// parser is built; an unknown name is an initialization error. Templated
// names are normalised at parse time and keep an empty code when unknown.
//
// Parsers hold no mutable state and are safe for concurrent use. Versions are
// returned untruncated.
package parser
