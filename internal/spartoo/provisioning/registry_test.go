package provisioning

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLanguageFS(t *testing.T) fstest.MapFS {
	t.Helper()
	fr := []byte(`<provisionning><languages>
		<language><code>FR</code></language>
		<language><code>BE</code></language>
	</languages></provisionning>`)
	it := []byte(`<provisionning><languages>
		<language><code>FR</code></language>
	</languages></provisionning>`)
	return fstest.MapFS{
		"fr_xml_provisionning.zip": {Data: zipFixture(t, "fr_xml_provisionning.xml", fr)},
		"it_xml_provisionning.zip": {Data: zipFixture(t, "it_xml_provisionning.xml", it)},
	}
}

func TestRegistry_SwitchDiscardsPreviousTables(t *testing.T) {
	r := NewRegistry(twoLanguageFS(t), nil)
	assert.Nil(t, r.Current())

	fr, err := r.Switch("FR")
	require.NoError(t, err)
	assert.True(t, r.Current().HasCountry("BE"))

	_, err = r.Switch("IT")
	require.NoError(t, err)
	assert.False(t, r.Current().HasCountry("BE"))
	assert.True(t, r.Current().HasCountry("FR"))

	// a reader still holding the old catalog keeps its own view
	assert.True(t, fr.HasCountry("BE"))
}

func TestRegistry_LoadsOncePerLanguage(t *testing.T) {
	r := NewRegistry(twoLanguageFS(t), nil)

	a, err := r.Get("fr")
	require.NoError(t, err)
	b, err := r.Get("FR")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Nil(t, r.Current())
}

func TestRegistry_FailedSwitchKeepsCurrent(t *testing.T) {
	r := NewRegistry(twoLanguageFS(t), nil)
	_, err := r.Switch("fr")
	require.NoError(t, err)

	_, err = r.Switch("pl")
	require.Error(t, err)
	assert.Equal(t, "fr", r.Current().Language())
}

func TestRegistry_Install(t *testing.T) {
	r := NewRegistry(fstest.MapFS{}, nil)
	c := New("EN", Tables{Languages: []Language{{Code: "EN"}}})

	r.Install(c)

	assert.Same(t, c, r.Current())
	got, err := r.Get("en")
	require.NoError(t, err)
	assert.Same(t, c, got)
}
