package protocol

import (
	"regexp"
	"strings"
)

// contextWindow is how far before a boundary the context classifier looks.
const contextWindow = 600

// Context classification patterns. All run against lowercased text.
var (
	// questionAnnouncementPatterns match the formal question call-up
	// ("Ich rufe die Frage 3 des Abgeordneten ... auf").
	questionAnnouncementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ich rufe die frage \d+`),
		regexp.MustCompile(`die nächste (haupt)?frage stellt`),
	}

	// followUpInvitationPattern matches follow-up question invitations.
	followUpInvitationPattern = regexp.MustCompile(
		`(nachfrage gibt|weitere frage gibt|nachfrage\s*\.\s*-)`)

	// answerInvitationPatterns match a government official being given the
	// floor to answer ("Herr Staatssekretär, Sie haben das Wort").
	answerInvitationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(herr|frau)\s+(staatsminister|staatssekretär|bundesminister)[^.]*sie haben das wort`),
		regexp.MustCompile(`sie haben das wort[^.]{0,50}(staatsminister|staatssekretär|bundesminister)`),
	}
)

// Opening classification patterns.
var (
	fragestundeIndicatorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(ich habe|habe ich)\s+(eine\s+)?(nach)?frage`),
		regexp.MustCompile(`meine\s+(nach)?frage`),
		regexp.MustCompile(`(eine\s+)?zusatzfrage`),
		regexp.MustCompile(`ich möchte.*fragen`),
		regexp.MustCompile(`darf ich.*fragen`),
		// "Ich frage Sie/die/den/nach" but not the rhetorical "ich frage mich".
		regexp.MustCompile(`ich frage\s+(sie|die|den|nach)`),
	}

	continuationOpenerPattern = regexp.MustCompile(
		`^-?\s*(ich komme zum schluss|der letzte satz|zum schluss)`)

	ministerQuestionPattern = regexp.MustCompile(
		`eine frage an (den|die|das)\s+\w*(minister|staatssekretär)`)

	formalPresidentOpenerPattern = regexp.MustCompile(
		`^sehr geehrte[r]?\s+(frau|herr)\s+(vize)?präsident`)

	ministerAddressPattern = regexp.MustCompile(
		`(frau|herr)\s+(staats)?(minister|sekretär|bundesminister)`)

	presidentAddressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(sehr geehrte[r]?\s+)?(frau|herr)\s+(vize)?präsident`),
		regexp.MustCompile(`(sehr geehrte[r]?\s+)?(frau|herr)\s+alterspräsident`),
		regexp.MustCompile(`(sehr geehrte[r]?|hochverehrte[r]?)\s+(vize)?präsident`),
		regexp.MustCompile(`(sehr geehrte[r]?|hochverehrte[r]?)\s+alterspräsident`),
	}

	praesidiumAddressPattern = regexp.MustCompile(
		`(sehr geehrtes?|verehrtes?|hochverehrtes?|wertes?)\s+präsidium`)

	bundestagPresidentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(sehr geehrte[r]?\s+|liebe[r]?\s+)?(frau\s+)?bundestagspräsident`),
		regexp.MustCompile(`^liebe[r]?\s+kolleginnen`),
	}

	abstimmungOpenerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^ich stimme dem`),
		regexp.MustCompile(`^dem (sogenannten\s+)?rentenpaket`),
		regexp.MustCompile(`^ich habe dem haushaltsgesetz`),
		regexp.MustCompile(`^die heutige abstimmung`),
		regexp.MustCompile(`^2016 wurde die möglichkeit`),
		regexp.MustCompile(`^als abgeordnete.*überzeugung`),
	}

	statementOpenerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^eine echte migrationswende`),
		regexp.MustCompile(`^die frage der wehrpflicht`),
		regexp.MustCompile(`^sämtliche rentenreformpläne`),
		regexp.MustCompile(`^die einzige bedrohung`),
		regexp.MustCompile(`^wenn ich das gesundheitssystem`),
	}

	protokollOpenerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^wir benötigen`),
		regexp.MustCompile(`^heute berät der bundestag`),
		regexp.MustCompile(`^der vorliegende gesetzentwurf`),
		regexp.MustCompile(`^die bedrohungslage`),
		regexp.MustCompile(`^wir reden über den haushalt`),
		regexp.MustCompile(`^ich will die europäische`),
	}

	writtenQuestionOpenerPattern = regexp.MustCompile(
		`^(wie hoch|wie wird|welche|hat die|was |in welchem|existiert)`)

	yesNoOpenerPattern = regexp.MustCompile(`^(nein|ja)[.,!\s-]`)

	zwischenfrageOpenerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(sehr geehrte[r]?\s+)?(frau|herr)\s+kolleg`),
		regexp.MustCompile(`^(sehr geehrte[r]?\s+)?(frau|herr)\s+minister`),
		regexp.MustCompile(`^(sehr geehrte[r]?\s+)?(frau|herr)\s+bachmann`),
		regexp.MustCompile(`^(sehr verehrte[r]?\s+)?(frau|herr)\s+kolleg`),
		regexp.MustCompile(`^(liebe[r]?\s+)(frau|herr)\s+kolleg`),
		regexp.MustCompile(`^(liebe[r]?\s+)boris`),
		regexp.MustCompile(`^frau kollegin`),
		regexp.MustCompile(`^frau von storch`),
		regexp.MustCompile(`^herr kollege`),
		regexp.MustCompile(`^weil frau`),
		regexp.MustCompile(`^ich mache schon`),
		regexp.MustCompile(`^ich muss ihnen`),
		regexp.MustCompile(`^ich nehme zur kenntnis`),
		regexp.MustCompile(`^also,`),
		regexp.MustCompile(`^ihrer frage liegt`),
		regexp.MustCompile(`^und zum antrag`),
		regexp.MustCompile(`^gut, dass sie`),
		regexp.MustCompile(`^erst mal finde ich`),
		regexp.MustCompile(`^ich bin, ehrlich gesagt`),
		regexp.MustCompile(`^wissen sie, ihre`),
		regexp.MustCompile(`^auch der kollege`),
		regexp.MustCompile(`^im moment (nicht|sind wir)`),
		regexp.MustCompile(`^die erklärung dafür`),
		regexp.MustCompile(`^herr kollege, ihnen`),
		regexp.MustCompile(`^es ist ein zitat`),
		regexp.MustCompile(`^ich würde gern zu ende`),
		regexp.MustCompile(`^jetzt müssen sie mir`),
		regexp.MustCompile(`^bei der letzten rede`),
		regexp.MustCompile(`^und diese müssen sich`),
		regexp.MustCompile(`^ich habe das in eine`),
		regexp.MustCompile(`^wenn mein vorredner`),
		regexp.MustCompile(`^herr hahn, wenn ich`),
		regexp.MustCompile(`^es ist schier zum verzweifeln`),
		regexp.MustCompile(`^gut, dann spreche ich`),
		regexp.MustCompile(`^das hat zwar jetzt`),
		regexp.MustCompile(`^genau, das heißt`),
		regexp.MustCompile(`^wie mein vorredner`),
		regexp.MustCompile(`^das war ein nein`),
		regexp.MustCompile(`^jungs, die ohren`),
		regexp.MustCompile(`^erstens\.`),
		regexp.MustCompile(`^man kann in dieser`),
		regexp.MustCompile(`^- nein, danke`),
		regexp.MustCompile(`^wie sie hier so`),
		regexp.MustCompile(`^ist ja ganz schön`),
	}

	thanksOpenerPattern = regexp.MustCompile(`^(vielen dank|herzlichen dank|danke)`)

	thanksForQuestionPattern = regexp.MustCompile(`für (die|ihre) frage`)

	ladiesGentlemenOpenerPattern = regexp.MustCompile(`^meine damen und herren`)
)

// ClassifyContext classifies a speech from the text preceding its boundary.
// It recognizes the structural markers a presiding officer uses to call up
// questions and answers during question time. These markers are the most
// reliable signal and win outright over every other rule. The second return
// is false when the context is not decisive.
func ClassifyContext(text string, boundaryPos int) (SpeechType, bool) {
	context := lowerSuffix(text[:boundaryPos], contextWindow)

	for _, p := range questionAnnouncementPatterns {
		if p.MatchString(context) {
			return SpeechFragestunde, true
		}
	}

	if followUpInvitationPattern.MatchString(context) {
		return SpeechFragestunde, true
	}

	for _, p := range answerInvitationPatterns {
		if p.MatchString(context) {
			return SpeechFragestundeAntwort, true
		}
	}

	return SpeechOther, false
}

// ClassifyOpening classifies a speech from its opening content. The rules
// form an ordered cascade; the first match wins. A formal presiding-address
// opener takes priority over any later minister-name check, because
// ministers are greeted in formal speeches but questioned in Fragestunde
// contributions.
func ClassifyOpening(text string) SpeechType {
	opening := lowerPrefix(text, 300)
	first200 := lowerPrefix(text, 200)
	first100 := lowerPrefix(text, 100)

	for _, p := range fragestundeIndicatorPatterns {
		if p.MatchString(opening) {
			return SpeechFragestunde
		}
	}

	// "Vielen Dank, dass Sie die Zwischenfrage zulassen"
	if strings.Contains(first200, "zwischenfrage zulassen") {
		return SpeechZwischenfrage
	}

	// "- ich komme zum Schluss; der letzte Satz, Frau Präsidentin"
	if continuationOpenerPattern.MatchString(first100) {
		return SpeechContinuation
	}

	// "Frau Präsidentin, ich unterbreche den eigenen Redner nur ungern"
	if strings.Contains(first100, "ich unterbreche") {
		return SpeechContinuation
	}

	// "eine Frage an den Bundesfinanzminister Klingbeil"
	if ministerQuestionPattern.MatchString(opening) {
		return SpeechFragestunde
	}

	if strings.Contains(first200, "nachfrage") {
		return SpeechFragestunde
	}

	// "Sehr geehrte Frau Präsidentin! Sehr geehrter Herr Bundesminister!"
	// is a formal speech even though a minister is named later.
	if formalPresidentOpenerPattern.MatchString(first100) {
		return SpeechRede
	}

	// Minister address without the full honorific is a question to them.
	if ministerAddressPattern.MatchString(opening) {
		return SpeechFragestunde
	}

	for _, p := range presidentAddressPatterns {
		if p.MatchString(opening) {
			return SpeechRede
		}
	}

	if praesidiumAddressPattern.MatchString(opening) {
		return SpeechPraesidium
	}

	for _, p := range bundestagPresidentPatterns {
		if p.MatchString(first100) {
			return SpeechRede
		}
	}

	for _, p := range abstimmungOpenerPatterns {
		if p.MatchString(first100) {
			return SpeechAbstimmung
		}
	}

	for _, p := range statementOpenerPatterns {
		if p.MatchString(first100) {
			return SpeechStatement
		}
	}

	for _, p := range protokollOpenerPatterns {
		if p.MatchString(first100) {
			return SpeechProtokoll
		}
	}

	if strings.Contains(opening, "deutschland hat in den vergangenen jahren") &&
		strings.Contains(opening, "ortskräfte") {
		return SpeechOrtskraefte
	}

	// Written question read into the record, naming a government body.
	if writtenQuestionOpenerPattern.MatchString(first100) {
		if strings.Contains(opening, "bundesregierung") ||
			strings.Contains(opening, "bundesministerium") ||
			strings.Contains(opening, "anhörung") {
			return SpeechFragestunde
		}
	}

	if yesNoOpenerPattern.MatchString(first100) {
		return SpeechZwischenfrage
	}

	for _, p := range zwischenfrageOpenerPatterns {
		if p.MatchString(first100) {
			return SpeechZwischenfrage
		}
	}

	if thanksOpenerPattern.MatchString(first100) {
		switch {
		case ministerAddressPattern.MatchString(first200):
			return SpeechFragestunde
		case thanksForQuestionPattern.MatchString(first200):
			return SpeechFragestundeAntwort
		case strings.Contains(opening, "präsident"):
			return SpeechRede
		default:
			return SpeechZwischenfrage
		}
	}

	if ladiesGentlemenOpenerPattern.MatchString(first100) {
		return SpeechRede
	}

	return SpeechOther
}

// lowerPrefix returns the first n runes of s, lowercased.
func lowerPrefix(s string, n int) string {
	if len(s) > n {
		runes := []rune(s)
		if len(runes) > n {
			s = string(runes[:n])
		}
	}
	return strings.ToLower(s)
}

// lowerSuffix returns the last n runes of s, lowercased.
func lowerSuffix(s string, n int) string {
	if len(s) > n {
		runes := []rune(s)
		if len(runes) > n {
			s = string(runes[len(runes)-n:])
		}
	}
	return strings.ToLower(s)
}
