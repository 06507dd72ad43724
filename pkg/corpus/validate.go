package corpus

import (
	"errors"
	"fmt"
)

func missing(file string, i int, field string) error {
	return fmt.Errorf("%w: %s rule #%d has no %s", ErrMissingField, file, i, field)
}

// Validate checks that every rule carries its required fields.
func (c *Corpus) Validate() error {
	var errs []error

	for i, r := range c.Bots {
		if r.Regex == "" {
			errs = append(errs, missing(FileBots, i, "regex"))
		}
		if r.Name == "" {
			errs = append(errs, missing(FileBots, i, "name"))
		}
	}

	for i, r := range c.OS {
		if r.Regex == "" {
			errs = append(errs, missing(FileOS, i, "regex"))
		}
		if r.Name == "" {
			errs = append(errs, missing(FileOS, i, "name"))
		}
		for j, v := range r.Versions {
			if v.Regex == "" {
				errs = append(errs, fmt.Errorf("%w: %s rule #%d version #%d has no regex", ErrMissingField, FileOS, i, j))
			}
		}
	}

	for i, r := range c.Browsers {
		if r.Regex == "" {
			errs = append(errs, missing(FileBrowsers, i, "regex"))
		}
		if r.Name == "" {
			errs = append(errs, missing(FileBrowsers, i, "name"))
		}
	}

	for i, r := range c.Engines {
		if r.Regex == "" {
			errs = append(errs, missing(FileEngines, i, "regex"))
		}
		if r.Name == "" {
			errs = append(errs, missing(FileEngines, i, "name"))
		}
	}

	clients := []struct {
		file  string
		rules []ClientRule
	}{
		{FileFeedReaders, c.FeedReaders},
		{FileMobileApps, c.MobileApps},
		{FileMediaPlayers, c.MediaPlayers},
		{FilePIM, c.PIM},
		{FileLibraries, c.Libraries},
	}
	for _, cat := range clients {
		for i, r := range cat.rules {
			if r.Regex == "" {
				errs = append(errs, missing(cat.file, i, "regex"))
			}
			if r.Name == "" {
				errs = append(errs, missing(cat.file, i, "name"))
			}
		}
	}

	for i, r := range c.Devices {
		if r.Brand == "" {
			errs = append(errs, missing(FileDevices, i, "brand"))
		}
		if r.Regex == "" {
			errs = append(errs, missing(FileDevices, i, "regex"))
		}
		for j, m := range r.Models {
			if m.Regex == "" {
				errs = append(errs, fmt.Errorf("%w: %s brand %q model #%d has no regex", ErrMissingField, FileDevices, r.Brand, j))
			}
		}
	}

	for i, v := range c.VendorFragments {
		if v.Brand == "" {
			errs = append(errs, missing(FileVendorFragments, i, "brand"))
		}
		for j, re := range v.Regexes {
			if re == "" {
				errs = append(errs, fmt.Errorf("%w: %s brand %q fragment #%d is empty", ErrMissingField, FileVendorFragments, v.Brand, j))
			}
		}
	}

	return errors.Join(errs...)
}
