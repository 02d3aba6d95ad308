package device

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Catalogue is a set of device kinds, indexed by name and prefab hash.
type Catalogue struct {
	kinds  []*Kind
	byName map[string]*Kind
	byHash map[int64]*Kind
}

// tomlCatalogue is the TOML layout, one [[device]] table per kind.
type tomlCatalogue struct {
	Device []*Kind `toml:"device"`
}

// Add a kind to the catalogue. A zero hash is replaced by Hash(name).
func (cat *Catalogue) Add(kind *Kind) (err error) {
	if kind == nil {
		err = &ErrKind{Err: ErrKindNameless}
		return
	}

	if len(kind.Name) == 0 {
		err = ErrKindNameless
		return
	}

	if cat.byName == nil {
		cat.byName = make(map[string]*Kind)
		cat.byHash = make(map[int64]*Kind)
	}

	if _, ok := cat.byName[kind.Name]; ok {
		err = &ErrKind{Name: kind.Name, Err: ErrKindDuplicate}
		return
	}

	if kind.Hash == 0 {
		kind.Hash = Hash(kind.Name)
	}

	cat.kinds = append(cat.kinds, kind)
	cat.byName[kind.Name] = kind
	cat.byHash[kind.Hash] = kind

	return
}

// Len returns the number of kinds.
func (cat *Catalogue) Len() int {
	return len(cat.kinds)
}

// Kinds returns the kinds in load order.
func (cat *Catalogue) Kinds() []*Kind {
	return slices.Clone(cat.kinds)
}

// Lookup finds a kind by name.
func (cat *Catalogue) Lookup(name string) (kind *Kind, ok bool) {
	kind, ok = cat.byName[name]
	return
}

// ByHash finds a kind by prefab hash.
func (cat *Catalogue) ByHash(hash int64) (kind *Kind, ok bool) {
	kind, ok = cat.byHash[hash]
	return
}

// New creates a device of the named kind.
func (cat *Catalogue) New(name string) (dev *Device, err error) {
	kind, ok := cat.Lookup(name)
	if !ok {
		err = &ErrKind{Name: name, Err: ErrKindMissing}
		return
	}

	dev = New(kind)
	return
}

// LoadCatalogue decodes a catalogue in the given format, "json" or "toml".
func LoadCatalogue(r io.Reader, format string) (cat *Catalogue, err error) {
	var kinds []*Kind

	switch strings.ToLower(format) {
	case "json":
		err = json.NewDecoder(r).Decode(&kinds)
	case "toml":
		var doc tomlCatalogue
		_, err = toml.NewDecoder(r).Decode(&doc)
		kinds = doc.Device
	default:
		err = ErrFormat
	}
	if err != nil {
		return
	}

	cat = &Catalogue{}
	for _, kind := range kinds {
		err = cat.Add(kind)
		if err != nil {
			cat = nil
			return
		}
	}

	return
}

// LoadCatalogueFile loads a catalogue, choosing the format by file extension.
func LoadCatalogueFile(path string) (cat *Catalogue, err error) {
	defer func() {
		if err != nil {
			err = &ErrCatalogue{Path: path, Err: err}
		}
	}()

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	cat, err = LoadCatalogue(inf, format)
	return
}
