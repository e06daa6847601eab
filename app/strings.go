package app

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/en.po
var enPo []byte

// Catalog maps message keys to display text. Entries holding verbs are format strings and
// are expanded by the caller.
type Catalog map[string]string

func loadStrings() Catalog {
	po := gotext.NewPo()
	po.Parse(enPo)
	catalog := Catalog{}
	for id, tr := range po.GetDomain().GetTranslations() {
		catalog[id] = tr.Get()
	}
	return catalog
}

// Text returns the message for key, or key itself when it has none.
func (c Catalog) Text(key string) string {
	if s, ok := c[key]; ok && s != "" {
		return s
	}
	return key
}
