package device

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogueJson = `[
  {"name": "StructureBattery", "hash": -400115994, "params": [
    {"kind": "Read", "name": "Charge"},
    {"kind": "ReadWrite", "name": "On"}
  ]},
  {"name": "StructureLightLong", "params": [
    {"kind": "ReadWrite", "name": "On"},
    {"kind": "Write", "name": "Color"}
  ]}
]`

const catalogueToml = `
[[device]]
name = "StructureBattery"
hash = -400115994
params = [
  { kind = "Read", name = "Charge" },
  { kind = "ReadWrite", name = "On" },
]

[[device]]
name = "StructureLightLong"

[[device.params]]
kind = "ReadWrite"
name = "On"

[[device.params]]
kind = "Write"
name = "Color"
`

func checkCatalogue(t *testing.T, cat *Catalogue) {
	assert := assert.New(t)

	assert.Equal(2, cat.Len())

	battery, ok := cat.Lookup("StructureBattery")
	assert.True(ok)
	assert.Equal(int64(-400115994), battery.Hash)
	assert.Equal([]ParameterDecl{{PERM_READ, "Charge"}, {PERM_READ_WRITE, "On"}}, battery.Params)

	light, ok := cat.ByHash(Hash("StructureLightLong"))
	assert.True(ok)
	assert.Equal("StructureLightLong", light.Name)
	assert.Equal([]ParameterDecl{{PERM_READ_WRITE, "On"}, {PERM_WRITE, "Color"}}, light.Params)

	dev, err := cat.New("StructureLightLong")
	assert.NoError(err)
	assert.NoError(dev.Write("Color", 3))

	_, err = cat.New("StructureMissing")
	assert.ErrorIs(err, ErrKindMissing)

	kinds := cat.Kinds()
	assert.Equal("StructureBattery", kinds[0].Name)
	assert.Equal("StructureLightLong", kinds[1].Name)
}

func TestLoadCatalogue_Json(t *testing.T) {
	require := require.New(t)

	cat, err := LoadCatalogue(strings.NewReader(catalogueJson), "json")
	require.NoError(err)
	checkCatalogue(t, cat)
}

func TestLoadCatalogue_Toml(t *testing.T) {
	require := require.New(t)

	cat, err := LoadCatalogue(strings.NewReader(catalogueToml), "TOML")
	require.NoError(err)
	checkCatalogue(t, cat)
}

func TestLoadCatalogue_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadCatalogue(strings.NewReader(""), "ron")
	assert.ErrorIs(err, ErrFormat)

	_, err = LoadCatalogue(strings.NewReader(`[{"name": "A"}, {"name": "A"}]`), "json")
	assert.ErrorIs(err, ErrKindDuplicate)

	_, err = LoadCatalogue(strings.NewReader(`[{"hash": 5}]`), "json")
	assert.ErrorIs(err, ErrKindNameless)

	_, err = LoadCatalogue(strings.NewReader(`[null]`), "json")
	assert.ErrorIs(err, ErrKindNameless)

	_, err = LoadCatalogue(strings.NewReader(`[{"name": "A"}, null]`), "json")
	assert.ErrorIs(err, ErrKindNameless)

	assert.ErrorIs((&Catalogue{}).Add(nil), ErrKindNameless)

	_, err = LoadCatalogue(strings.NewReader(`[{"name": "A", "params": [{"kind": "Maybe", "name": "X"}]}]`), "json")
	assert.Error(err)
}

func TestLoadCatalogueFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()

	json_path := filepath.Join(dir, "devices.json")
	require.NoError(os.WriteFile(json_path, []byte(catalogueJson), 0o644))
	cat, err := LoadCatalogueFile(json_path)
	require.NoError(err)
	checkCatalogue(t, cat)

	toml_path := filepath.Join(dir, "devices.toml")
	require.NoError(os.WriteFile(toml_path, []byte(catalogueToml), 0o644))
	cat, err = LoadCatalogueFile(toml_path)
	require.NoError(err)
	checkCatalogue(t, cat)

	_, err = LoadCatalogueFile(filepath.Join(dir, "missing.json"))
	var cerr *ErrCatalogue
	assert.ErrorAs(err, &cerr)
	assert.ErrorIs(err, os.ErrNotExist)
}
