package protocol

// Aggregation holds per-party speech statistics for one or more protocols.
// Outer keys are canonical party identifiers, inner keys speaker names.
type Aggregation struct {
	// FormalBySpeaker counts formal speeches (type rede) per speaker.
	FormalBySpeaker map[string]map[string]int `json:"formal_by_speaker"`

	// AnswerBySpeaker counts government answers (befragung and
	// fragestunde_antwort) per speaker.
	AnswerBySpeaker map[string]map[string]int `json:"answer_by_speaker"`

	// QuestionBySpeaker counts question-time questions per speaker.
	QuestionBySpeaker map[string]map[string]int `json:"question_by_speaker"`

	// WortbeitragBySpeaker counts non-rede contributions per speaker.
	WortbeitragBySpeaker map[string]map[string]int `json:"wortbeitrag_by_speaker"`

	// RedeCounts counts category rede speeches per party.
	RedeCounts map[string]int `json:"rede_counts"`

	// WortbeitragCounts counts category wortbeitrag speeches per party.
	WortbeitragCounts map[string]int `json:"wortbeitrag_counts"`
}

// Aggregate builds per-party, per-speaker statistics from a speech list.
func Aggregate(speeches []Speech) *Aggregation {
	agg := &Aggregation{
		FormalBySpeaker:      make(map[string]map[string]int),
		AnswerBySpeaker:      make(map[string]map[string]int),
		QuestionBySpeaker:    make(map[string]map[string]int),
		WortbeitragBySpeaker: make(map[string]map[string]int),
		RedeCounts:           make(map[string]int),
		WortbeitragCounts:    make(map[string]int),
	}

	for _, speech := range speeches {
		party := speech.Party

		if speech.Category == CategoryRede {
			agg.RedeCounts[party]++
		} else {
			agg.WortbeitragCounts[party]++
			bump(agg.WortbeitragBySpeaker, party, speech.Speaker)
		}

		switch speech.Type {
		case SpeechRede:
			bump(agg.FormalBySpeaker, party, speech.Speaker)
		case SpeechBefragung, SpeechFragestundeAntwort:
			bump(agg.AnswerBySpeaker, party, speech.Speaker)
		case SpeechFragestunde:
			bump(agg.QuestionBySpeaker, party, speech.Speaker)
		}
	}

	return agg
}

func bump(stats map[string]map[string]int, party, speaker string) {
	if stats[party] == nil {
		stats[party] = make(map[string]int)
	}
	stats[party][speaker]++
}
