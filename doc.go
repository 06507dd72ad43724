// Package uadetector classifies HTTP User-Agent strings, optionally combined
// with User-Agent Client Hints, into operating system, browser, client
// application, device and bot facts.
//
// Classification is rule driven. Each category (bots, operating systems,
// browsers, engines, client applications, devices) has an ordered rule list
// loaded from YAML. Rules are scanned in declaration order behind a combined
// pre-filter and the first match wins; name and version templates are filled
// from the capture groups of the matching rule.
//
// # Usage
//
//	det, err := uadetector.New(
//	    uadetector.WithVersionTruncation(version.Minor),
//	    uadetector.WithCache(cache.NewLRU[uadetector.Info](10_000)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	info, ok := det.Detect(r.UserAgent(), map[string]string{
//	    "Sec-CH-UA-Platform": `"Windows"`,
//	})
//	if ok && info.IsBot {
//	    // ...
//	}
//
// # Bots
//
// A bot match sets IsBot and Bot, and the remaining categories are still
// detected, since crawlers frequently announce a real OS or device.
// WithSkipBotDetection disables bot rules entirely.
//
// # Client hints
//
// A recognized Sec-CH-UA-Platform supplies the operating system name and
// family. The User-Agent name is kept when it is more specific within the
// same family, and the hinted platform version wins over the User-Agent one.
// The same field-by-field merge applies to browsers through
// Sec-CH-UA-Full-Version-List and to device models through Sec-CH-UA-Model.
//
// # HTTP
//
// Middleware stores the Info of each request in its context; InfoFromContext
// reads it back and LogExtractor exposes it to the logger package.
//
// # Configuration
//
// LoadConfig reads UADETECTOR_* environment variables (and optional .env
// files) and Config.Options turns them into options, including an LRU or a
// Redis result cache.
//
// Detection never returns an error. Missing categories are nil fields and the
// boolean result is false when nothing matched.
package uadetector
