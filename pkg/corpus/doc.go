// Package corpus loads the YAML rule corpus that drives detection.
//
// A corpus is a directory of YAML files, one per category:
//
//	bots.yml             bot rules with category, url and producer
//	oss.yml              operating systems, with optional nested versions
//	browsers.yml         browsers, with an optional engine spec
//	browser_engines.yml  rendering engines
//	feed_readers.yml     feed reader clients
//	mobile_apps.yml      mobile application clients
//	mediaplayers.yml     media player clients
//	pim.yml              personal information manager clients
//	libraries.yml        HTTP libraries and tools
//	devices.yml          device rules keyed by brand, with model sub-rules
//	vendorfragments.yml  brand-identifying tokens keyed by brand
//
// Declaration order is detection priority. Sequences are decoded as-is and
// mappings (devices.yml, vendorfragments.yml, engine version maps) are walked
// through yaml.Node so order survives decoding.
//
// Embedded returns the corpus compiled into the binary; Load reads one from
// any fs.FS, for example os.DirFS of an override directory. Loading fails fast
// on missing files, malformed YAML and rules that lack a required field.
//
// Rule fragments use the shared regex dialect of the pattern package. The
// optional look-around constructs are supported; backreferences are not.
package corpus
