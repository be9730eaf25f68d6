// Package government maps federal government officials to their party
// affiliation. Officials speak in official capacity ("Name, Rolle:") rather
// than as members ("Name (Partei):"), so their party never appears in the
// protocol and must come from a roster.
package government

import "regexp"

// titlePrefixPattern matches a leading academic title on an official's name.
var titlePrefixPattern = regexp.MustCompile(`^(?:Dr\.|Prof\.|Dr\s|Prof\s)\s*`)

// Roster maps official names to party affiliations. Built once, read-only
// afterwards, safe for concurrent reads.
type Roster struct {
	parties map[string]string
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{parties: make(map[string]string)}
}

// PartyFor looks up the party affiliation for a government official. The
// exact name is tried first, then once more with a leading academic title
// stripped. The second return is false when the official is not on the
// roster.
func (r *Roster) PartyFor(name string) (string, bool) {
	if party, ok := r.parties[name]; ok {
		return party, true
	}

	stripped := titlePrefixPattern.ReplaceAllString(name, "")
	if party, ok := r.parties[stripped]; ok {
		return party, true
	}

	return "", false
}

// Add registers an official. Intended for roster construction only; the
// roster must not be mutated once parsing has started.
func (r *Roster) Add(name, party string) {
	r.parties[name] = party
}

// Len returns the number of roster entries.
func (r *Roster) Len() int {
	return len(r.parties)
}

// DefaultRoster returns the built-in roster covering the Merz cabinet
// (21. Wahlperiode) and the historical Scholz and Merkel cabinets.
func DefaultRoster() *Roster {
	r := NewRoster()
	for name, party := range defaultOfficials {
		r.parties[name] = party
	}
	return r
}

var defaultOfficials = map[string]string{
	// Kabinett Merz (21. Wahlperiode, seit Mai 2025).
	"Friedrich Merz": "CDU/CSU",

	// Bundeskanzleramt.
	"Thorsten Frei":               "CDU/CSU",
	"Dr. Christiane Schenderlein": "CDU/CSU",
	"Christiane Schenderlein":     "CDU/CSU",
	"Dr. Wolfram Weimer":          "CDU/CSU",
	"Wolfram Weimer":              "CDU/CSU",
	"Dr. Michael Meister":         "CDU/CSU",
	"Michael Meister":             "CDU/CSU",

	// Finanzen.
	"Lars Klingbeil":   "SPD",
	"Elisabeth Kaiser": "SPD",
	"Dennis Rohde":     "SPD",
	"Michael Schrodi":  "SPD",

	// Inneres.
	"Alexander Dobrindt": "CDU/CSU",
	"Christoph de Vries": "CDU/CSU",
	"Daniela Ludwig":     "CDU/CSU",

	// Auswärtiges Amt.
	"Dr. Johann David Wadephul": "CDU/CSU",
	"Johann David Wadephul":     "CDU/CSU",
	"Dr. Johann Wadephul":       "CDU/CSU",
	"Johann Wadephul":           "CDU/CSU",
	"Gunther Krichbaum":         "CDU/CSU",
	"Serap Güler":               "CDU/CSU",
	"Florian Hahn":              "CDU/CSU",

	// Verteidigung.
	"Boris Pistorius":    "SPD",
	"Dr. Nils Schmid":    "SPD",
	"Nils Schmid":        "SPD",
	"Sebastian Hartmann": "SPD",

	// Wirtschaft und Energie.
	"Katherina Reiche": "CDU/CSU",
	"Gitta Connemann":  "CDU/CSU",
	"Stefan Rouenhoff": "CDU/CSU",

	// Forschung, Technologie und Raumfahrt.
	"Dorothee Bär":      "CDU/CSU",
	"Matthias Hauer":    "CDU/CSU",
	"Dr. Silke Launert": "CDU/CSU",
	"Silke Launert":     "CDU/CSU",

	// Justiz und Verbraucherschutz.
	"Stefanie Hubig": "SPD",
	"Anette Kramme":  "SPD",
	"Frank Schwabe":  "SPD",

	// Bildung, Familie, Senioren, Frauen und Jugend.
	"Karin Prien":        "CDU/CSU",
	"Mareike Wulf":       "CDU/CSU",
	"Mareike Lotte Wulf": "CDU/CSU",
	"Michael Brand":      "CDU/CSU",

	// Arbeit und Soziales.
	"Bärbel Bas":     "SPD",
	"Natalie Pawlik": "SPD",
	"Katja Mast":     "SPD",
	"Kerstin Griese": "SPD",

	// Digitales und Staatsmodernisierung.
	"Karsten Wildberger": "CDU/CSU",
	"Philipp Amthor":     "CDU/CSU",
	"Thomas Jarzombek":   "CDU/CSU",

	// Verkehr.
	"Patrick Schnieder": "CDU/CSU",
	"Christian Hirte":   "CDU/CSU",
	"Ulrich Lange":      "CDU/CSU",

	// Umwelt, Klimaschutz, Naturschutz und nukleare Sicherheit.
	"Carsten Schneider":        "SPD",
	"Carsten Träger":           "SPD",
	"Rita Schwarzelühr-Sutter": "SPD",

	// Gesundheit.
	"Nina Warken":   "CDU/CSU",
	"Georg Kippels": "CDU/CSU",
	"Tino Sorge":    "CDU/CSU",

	// Landwirtschaft, Ernährung und Heimat.
	"Alois Rainer":           "CDU/CSU",
	"Silvia Breher":          "CDU/CSU",
	"Martina Englhardt-Kopf": "CDU/CSU",

	// Wirtschaftliche Zusammenarbeit und Entwicklung.
	"Reem Alabali-Radovan": "SPD",
	"Bärbel Kofler":        "SPD",
	"Johann Saathoff":      "SPD",

	// Wohnen, Stadtentwicklung und Bauwesen.
	"Verena Hubertz":   "SPD",
	"Sören Bartol":     "SPD",
	"Sabine Poschmann": "SPD",

	// Kabinett Scholz (20. Wahlperiode, 2021-2025).
	"Olaf Scholz":             "SPD",
	"Christian Lindner":       "FDP",
	"Robert Habeck":           "GRÜNE",
	"Annalena Baerbock":       "GRÜNE",
	"Nancy Faeser":            "SPD",
	"Karl Lauterbach":         "SPD",
	"Dr. Karl Lauterbach":     "SPD",
	"Klara Geywitz":           "SPD",
	"Svenja Schulze":          "SPD",
	"Hubertus Heil":           "SPD",
	"Steffi Lemke":            "GRÜNE",
	"Cem Özdemir":             "GRÜNE",
	"Lisa Paus":               "GRÜNE",
	"Volker Wissing":          "FDP",
	"Marco Buschmann":         "FDP",
	"Bettina Stark-Watzinger": "FDP",

	// Kabinett Merkel.
	"Angela Merkel":       "CDU/CSU",
	"Horst Seehofer":      "CDU/CSU",
	"Jens Spahn":          "CDU/CSU",
	"Peter Altmaier":      "CDU/CSU",
	"Julia Klöckner":      "CDU/CSU",
	"Anja Karliczek":      "CDU/CSU",
	"Andreas Scheuer":     "CDU/CSU",
	"Heiko Maas":          "SPD",
	"Franziska Giffey":    "SPD",
	"Christine Lambrecht": "SPD",
}
