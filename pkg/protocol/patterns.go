package protocol

import "regexp"

var (
	// memberPattern matches a regular member speaker line: "Name (Party):".
	// Anchored at a line start and terminated by a colon at line end.
	memberPattern = regexp.MustCompile(`\n([A-ZÄÖÜ][^(\n:]{2,60})\s*\(([^)]+)\):\s*\n`)

	// presidingPattern matches presiding officer lines such as
	// "Präsidentin Julia Klöckner:" or "Vizepräsident Wolfgang Kubicki:".
	// Presiding officers never carry a party.
	presidingPattern = regexp.MustCompile(
		`\n(Vizepräsident(?:in)?|Präsident(?:in)?|Alterspräsident(?:in)?|` +
			`Bundespräsident(?:in)?)\s+` +
			`([A-ZÄÖÜ][^:\n]{2,40}):\s*\n`)

	// officialPattern matches government officials speaking in official
	// capacity: "Friedrich Merz, Bundeskanzler:" or
	// "Lars Klingbeil, Bundesminister der Finanzen:". The role templates
	// allow a feminine inflection and a bounded free-text qualifier.
	officialPattern = regexp.MustCompile(
		`\n([A-ZÄÖÜ][^,\n]{2,50}),\s*` +
			`(Bundeskanzler(?:in)?|` +
			`Bundesminister(?:in)?(?:\s+[^\n:]{0,60})?|` +
			`Parl\.\s*Staatssekretär(?:in)?(?:\s+[^\n:]{0,80})?|` +
			`Staatsminister(?:in)?(?:\s+[^\n:]{0,60})?):\s*\n`)
)

// questionHeaderPrefixes are lexemes that identify table-of-contents
// artifacts ("Frage des Abgeordneten X") misread as member speaker lines.
var questionHeaderPrefixes = []string{"frage ", "anfrage "}
