package models

import "spartoo_api/internal/spartoo/provisioning"

func testCatalog() *provisioning.Catalog {
	return provisioning.New("fr", provisioning.Tables{
		Languages:    []provisioning.Language{{Code: "FR"}, {Code: "IT"}, {Code: "DE"}},
		Sexes:        []provisioning.Sex{{Code: "H", Name: "Homme"}, {Code: "F", Name: "Femme"}},
		Colors:       []provisioning.Color{{Code: "1", Name: "Noir"}, {Code: "7", Name: "Rouge"}},
		Compositions: []provisioning.Composition{{Code: "10", Name: "Cuir"}, {Code: "11", Name: "Textile"}},
		Categories:   []provisioning.Category{{Code: "101", Name: "Bottines", Genders: []string{"H", "F"}}},
		Selections: []provisioning.Selection{
			{Code: "1"}, {Code: "2"}, {Code: "3"}, {Code: "4"}, {Code: "5"}, {Code: "6"},
			{Code: "7"}, {Code: "8"}, {Code: "9"}, {Code: "10"}, {Code: "11"}, {Code: "12"},
		},
		Sizes: []provisioning.Size{{Name: "38"}, {Name: "39"}, {Name: "TU"}},
	})
}
