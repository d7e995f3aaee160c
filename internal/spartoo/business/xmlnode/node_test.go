package xmlnode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_SkipsEmptyAttributes(t *testing.T) {
	n := Element("product",
		Text("reference_partenaire", "REF-1"),
		Text("product_description", ""),
		Int("product_quantity", 0),
		Float("product_price", 0),
		Bool("sales", false),
		CData("product_name", ""),
		Int("color_id", 3),
	)

	assert.Equal(t, []string{"reference_partenaire", "color_id"}, n.ChildNames())
}

func TestIndexed_StopsAtLimit(t *testing.T) {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = "https://cdn.example.com/" + string(rune('a'+i)) + ".jpg"
	}

	n := Indexed("photos", "url", urls, 8)

	require.Len(t, n.Children, 8)
	assert.Equal(t, "url1", n.Children[0].Name)
	assert.Equal(t, "url8", n.Children[7].Name)
	assert.Equal(t, urls[7], n.Children[7].Text)
}

func TestIndexed_Short(t *testing.T) {
	n := Indexed("photos", "url", []string{"a", "b", "c"}, 8)
	assert.Equal(t, []string{"url1", "url2", "url3"}, n.ChildNames())

	assert.Nil(t, Indexed("photos", "url", nil, 8))
}

func TestRepeated_NoLimit(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

	n := Repeated("selections", "selection", values)

	require.Len(t, n.Children, 12)
	for i, c := range n.Children {
		assert.Equal(t, "selection", c.Name)
		assert.Equal(t, values[i], c.Text)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "59.9", FormatFloat(59.9))
	assert.Equal(t, "60", FormatFloat(60))
	assert.Equal(t, "0.5", FormatFloat(0.5))
}

func TestDocument_CDataAndIndent(t *testing.T) {
	root := Element("root",
		Element("products",
			Element("product",
				Text("reference_partenaire", "REF-1"),
				CData("product_name", "Boots <Winter> & Co"),
			),
		),
	)

	out, err := Document(root)
	require.NoError(t, err)

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <products>
    <product>
      <reference_partenaire>REF-1</reference_partenaire>
      <product_name><![CDATA[Boots <Winter> & Co]]></product_name>
    </product>
  </products>
</root>
`
	assert.Equal(t, expected, string(out))
}

func TestDocument_EscapesPlainText(t *testing.T) {
	out, err := Document(Element("root", Leaf("order_id", "A&B")))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<order_id>A&amp;B</order_id>")
}

func TestDocument_NilRoot(t *testing.T) {
	_, err := Document(nil)
	assert.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	root := Element("root",
		Element("products",
			Element("product", Text("reference_partenaire", "REF-1"), CData("product_name", "a < b")),
			Element("product", Text("reference_partenaire", "REF-2")),
		),
	)
	out, err := Document(root)
	require.NoError(t, err)

	parsed, err := Parse(strings.NewReader(string(out)))
	require.NoError(t, err)

	products := parsed.Child("products").ChildrenNamed("product")
	require.Len(t, products, 2)
	assert.Equal(t, "a < b", products[0].Child("product_name").Text)
	assert.Equal(t, "REF-2", products[1].Child("reference_partenaire").Text)
	assert.Equal(t, "REF-1", parsed.Find("products", "product", "reference_partenaire").Text)
}

func TestParse_Latin1(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><root status=\"ok\"><msg>Cr\xe9\xe9</msg></root>"

	parsed, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Créé", parsed.Child("msg").Text)
	status, ok := parsed.Attr("status")
	assert.True(t, ok)
	assert.Equal(t, "ok", status)
}

func TestParse_NotXML(t *testing.T) {
	_, err := Parse(strings.NewReader("Internal Server Error"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	assert.Error(t, err)
}
