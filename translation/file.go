package translation

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/teranos/itemquery/errors"
)

// LoadCatalogFile reads and validates a TOML catalog:
//
//	format_version = "1.0.0"
//	locale = "en_us"
//
//	[[entry]]
//	category = "material"
//	key = "minecraft:diamond_sword"
//	label = "Diamond Sword"
func LoadCatalogFile(path string) (*Catalog, error) {
	var catalog Catalog
	meta, err := toml.DecodeFile(path, &catalog)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrNotFound, err.Error())
		}
		return nil, errors.Wrapf(errors.ErrInvalidCatalog, "decode %s: %v", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.WithHint(
			errors.NewInvalidCatalogError("%s: unknown key %s", path, undecoded[0].String()),
			"entries take category, key and label",
		)
	}

	if err := catalog.Validate(); err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}

	return &catalog, nil
}

// ExportCatalog writes the catalog as TOML, readable by LoadCatalogFile
func ExportCatalog(w io.Writer, catalog *Catalog) error {
	out := *catalog
	if out.FormatVersion == "" {
		out.FormatVersion = CurrentFormatVersion
	}

	enc := gotoml.NewEncoder(w)
	enc.SetIndentTables(false)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encode catalog")
	}
	return nil
}
