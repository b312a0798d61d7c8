package item

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/itemquery/errors"
)

// Inventory is an ordered list of item stacks, e.g. a chest or a player's bag
type Inventory struct {
	Name  string `yaml:"name" json:"name"`
	Items []Item `yaml:"items" json:"items"`
}

// LoadInventory reads an inventory from a YAML file:
//
//	name: storage
//	items:
//	  - material: minecraft:diamond_sword
//	    amount: 1
//	    enchantments:
//	      minecraft:sharpness: 5
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrNotFound, err.Error())
		}
		return nil, errors.Wrapf(err, "open inventory %s", path)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		return nil, errors.Wrapf(err, "inventory %s", path)
	}
	return inv, nil
}

// DecodeInventory reads an inventory from YAML, rejecting unknown fields
func DecodeInventory(r io.Reader) (*Inventory, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var inv Inventory
	if err := dec.Decode(&inv); err != nil {
		if err == io.EOF {
			return &inv, nil
		}
		return nil, errors.Wrap(err, "decode inventory")
	}

	for i := range inv.Items {
		if inv.Items[i].Material == "" {
			return nil, errors.Newf("item %d has no material", i)
		}
		if inv.Items[i].Amount == 0 {
			inv.Items[i].Amount = 1
		}
	}
	return &inv, nil
}
