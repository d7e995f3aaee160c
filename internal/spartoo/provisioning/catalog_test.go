package provisioning

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/fr_xml_provisionning.xml")
	require.NoError(t, err)
	return data
}

func zipFixture(t *testing.T, entry string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(entry)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func fixtureFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"fr_xml_provisionning.zip": {Data: zipFixture(t, "fr_xml_provisionning.xml", readFixture(t))},
	}
}

func TestLoad_Fixture(t *testing.T) {
	c, err := Load(fixtureFS(t), "FR")
	require.NoError(t, err)

	assert.Equal(t, "fr", c.Language())
	assert.Equal(t, []string{"FR", "IT", "DE"}, c.Countries())
	assert.Len(t, c.Sexes(), 3)
	assert.Equal(t, Color{Code: "7", Name: "Rouge"}, c.Colors()[2])
	assert.Len(t, c.Compositions(), 3)
	assert.Equal(t, []string{"H", "F"}, c.Categories()[0].Genders)
	assert.Equal(t, "Chaussures", c.Categories()[0].ProductTypeName)
	assert.Len(t, c.Selections(), 2)
	assert.Equal(t, []ExtraInfo{{ID: "1", Name: "Hauteur de tige"}}, c.ExtraInfos())
	assert.Len(t, c.OrderStatuses(), 2)
	assert.Len(t, c.ReturnStatuses(), 1)
	assert.Equal(t, []Currency{{Name: "Euro", Code: "EUR"}}, c.Currencies())
	assert.Equal(t, []InvoiceType{{ID: "1", Name: "Facture"}}, c.InvoiceTypes())

	sizes := c.Sizes()
	require.Len(t, sizes, 3)
	assert.Equal(t, []string{"101"}, sizes[0].Restrictions)
	assert.Empty(t, sizes[2].Restrictions)
}

func TestLoad_MissingLanguage(t *testing.T) {
	_, err := Load(fixtureFS(t), "xx")

	var loadErr *CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, loadErr.Missing)
	assert.Contains(t, err.Error(), "language xx")
}

func TestLoad_MalformedXML(t *testing.T) {
	fsys := fstest.MapFS{
		"it_xml_provisionning.zip": {Data: zipFixture(t, "it_xml_provisionning.xml", []byte("<provisionning><colors>"))},
	}

	_, err := Load(fsys, "IT")

	var loadErr *CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.False(t, loadErr.Missing)
	assert.Equal(t, "it_xml_provisionning.zip", loadErr.Path)
}

func TestLoad_NotAZip(t *testing.T) {
	fsys := fstest.MapFS{"de_xml_provisionning.zip": {Data: []byte("plain text")}}

	_, err := Load(fsys, "de")

	var loadErr *CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.False(t, loadErr.Missing)
}

func TestLoad_WrongEntry(t *testing.T) {
	fsys := fstest.MapFS{
		"es_xml_provisionning.zip": {Data: zipFixture(t, "other.xml", readFixture(t))},
	}

	_, err := Load(fsys, "es")

	var loadErr *CatalogLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestCatalog_Membership(t *testing.T) {
	c, err := Parse(bytes.NewReader(readFixture(t)), "fr")
	require.NoError(t, err)

	assert.True(t, c.HasCountry("IT"))
	assert.False(t, c.HasCountry("ES"))
	assert.True(t, c.HasSex("F"))
	assert.False(t, c.HasSex("X"))
	assert.True(t, c.HasColor("7"))
	assert.False(t, c.HasColor("99"))
	assert.True(t, c.HasComposition("12"))
	assert.True(t, c.HasCategory("205"))
	assert.False(t, c.HasCategory("999"))
	assert.True(t, c.HasSelection("2"))
	assert.True(t, c.HasSize("TU"))
	assert.False(t, c.HasSize("XXL"))
}

func TestCatalog_SizeAllowedFor(t *testing.T) {
	c, err := Parse(bytes.NewReader(readFixture(t)), "fr")
	require.NoError(t, err)

	assert.True(t, c.SizeAllowedFor("38", "101"))
	assert.False(t, c.SizeAllowedFor("38", "310"))
	assert.True(t, c.SizeAllowedFor("TU", "310"))
	assert.False(t, c.SizeAllowedFor("XXL", "101"))
}

func TestCatalog_ProductStylesWithSizeRestrictions(t *testing.T) {
	c, err := Parse(bytes.NewReader(readFixture(t)), "fr")
	require.NoError(t, err)

	assert.Equal(t, []string{"101", "310"}, c.ProductStylesWithSizeRestrictions())
}

func TestCatalog_RepeatedReadsAreStable(t *testing.T) {
	c, err := Parse(bytes.NewReader(readFixture(t)), "fr")
	require.NoError(t, err)

	first := c.Categories()
	first[0].Code = "mutated"
	first[0].Genders[0] = "mutated"

	assert.Equal(t, c.Categories(), c.Categories())
	assert.Equal(t, "101", c.Categories()[0].Code)
	assert.Equal(t, "H", c.Categories()[0].Genders[0])
}

func TestNew_CopiesTables(t *testing.T) {
	tables := Tables{Colors: []Color{{Code: "1", Name: "Noir"}}}
	c := New("FR", tables)

	tables.Colors[0].Code = "2"

	assert.True(t, c.HasColor("1"))
	assert.Equal(t, "1", c.Colors()[0].Code)
	assert.Equal(t, "fr", c.Language())
}
