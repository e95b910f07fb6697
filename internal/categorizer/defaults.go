package categorizer

// DefaultCategories returns the starter lexicon written by `expenses init`.
func DefaultCategories() []Category {
	return []Category{
		{Name: "lebensmittel", Keywords: []string{"rewe", "edeka", "aldi", "lidl", "netto", "penny", "kaufland", "markt"}},
		{Name: "restaurant", Keywords: []string{"restaurant", "pizzeria", "lieferando", "imbiss", "cafe"}},
		{Name: "wohnen", Keywords: []string{"miete", "hausverwaltung", "nebenkosten", "strom", "stadtwerke"}},
		{Name: "mobilitaet", Keywords: []string{"tankstelle", "aral", "shell", "deutsche bahn", "db vertrieb", "bvg"}},
		{Name: "versicherung", Keywords: []string{"versicherung", "allianz", "huk", "krankenkasse"}},
		{Name: "freizeit", Keywords: []string{"kino", "netflix", "spotify", "fitness"}},
		{Name: "einkommen", Keywords: []string{"gehalt", "lohn", "erstattung"}},
	}
}

// DefaultLexicon returns DefaultCategories as a validated Lexicon.
func DefaultLexicon() *Lexicon {
	lex, err := NewLexicon(DefaultCategories())
	if err != nil {
		panic("categorizer: invalid default lexicon: " + err.Error())
	}
	return lex
}
