package translation

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
)

// CurrentFormatVersion is written into exported catalogs
const CurrentFormatVersion = "1.0.0"

// supportedFormat is the range of catalog format versions this build reads
const supportedFormat = "^1"

// Entry is one translated concept in a catalog
type Entry struct {
	Category Category `toml:"category" yaml:"category" json:"category"`
	Key      string   `toml:"key" yaml:"key" json:"key"`
	Label    string   `toml:"label" yaml:"label" json:"label"`
}

// Catalog is an ordered list of entries in one locale.
// Entry order matters: it breaks ties between equally short matches.
type Catalog struct {
	FormatVersion string  `toml:"format_version" yaml:"format_version" json:"format_version"`
	Locale        string  `toml:"locale" yaml:"locale" json:"locale"`
	Entries       []Entry `toml:"entry" yaml:"entries" json:"entries"`
}

// CheckFormatVersion verifies the catalog's format version is readable.
// An empty version is treated as CurrentFormatVersion.
func (c *Catalog) CheckFormatVersion() error {
	declared := c.FormatVersion
	if declared == "" {
		declared = CurrentFormatVersion
	}

	version, err := semver.NewVersion(declared)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupportedCatalogVersion, "format_version %q is not a semantic version", declared)
	}

	constraint, err := semver.NewConstraint(supportedFormat)
	if err != nil {
		return errors.AssertionFailedf("bad catalog format constraint %q: %v", supportedFormat, err)
	}

	if !constraint.Check(version) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedCatalogVersion, "format_version %s", version),
			"this build reads catalogs matching %s", supportedFormat,
		)
	}
	return nil
}

// Validate checks the format version and every entry.
// Entries of categories no predicate exists for are allowed but logged.
func (c *Catalog) Validate() error {
	if err := c.CheckFormatVersion(); err != nil {
		return err
	}

	seen := make(map[Translatable]int, len(c.Entries))
	for i, entry := range c.Entries {
		switch {
		case entry.Category == "":
			return errors.NewInvalidCatalogError("entry %d has no category", i)
		case entry.Key == "":
			return errors.NewInvalidCatalogError("entry %d has no key", i)
		case Normalize(entry.Label) == "":
			return errors.NewInvalidCatalogError("entry %d (%s) has no label", i, entry.Key)
		}

		id := Translatable{Category: entry.Category, Key: entry.Key}
		if previous, ok := seen[id]; ok {
			return errors.NewInvalidCatalogError("entry %d duplicates entry %d (%s %s)", i, previous, entry.Category, entry.Key)
		}
		seen[id] = i

		if !entry.Category.IsKnown() {
			logger.Warnw("Catalog entry has unsupported category",
				logger.FieldCategory, string(entry.Category),
				"key", entry.Key,
			)
		}
	}
	return nil
}

// CountByCategory returns how many entries each category has
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, entry := range c.Entries {
		counts[entry.Category]++
	}
	return counts
}

// Filter returns a copy of the catalog holding only entries of category
func (c *Catalog) Filter(category Category) *Catalog {
	filtered := &Catalog{FormatVersion: c.FormatVersion, Locale: c.Locale}
	for _, entry := range c.Entries {
		if entry.Category == category {
			filtered.Entries = append(filtered.Entries, entry)
		}
	}
	return filtered
}
