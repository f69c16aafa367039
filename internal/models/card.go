package models

// BlankMarker is the placeholder inside a card phrase where the conjugated
// verb belongs, e.g. "Yo ___ en la escuela".
const BlankMarker = "___"

type Tense string

const (
	TensePresent              Tense = "present"
	TensePreterite            Tense = "preterite"
	TenseImperfect            Tense = "imperfect"
	TenseFuture               Tense = "future"
	TenseConditional          Tense = "conditional"
	TensePresentSubjunctive   Tense = "present_subjunctive"
	TenseImperfectSubjunctive Tense = "imperfect_subjunctive"
	TensePresentPerfect       Tense = "present_perfect"
	TensePastPerfect          Tense = "past_perfect"
)

type VerbType string

const (
	VerbTypeRegular   VerbType = "regular"
	VerbTypeIrregular VerbType = "irregular"
)

// Card is a single conjugation fact: a phrase with a blank, the verb to
// conjugate and the expected answer. Cards are read-only input to the quiz
// engine; identity is the ID.
type Card struct {
	ID       string   `json:"id" validate:"required"`
	Phrase   string   `json:"phrase" validate:"required,contains=___"`
	Verb     string   `json:"verb" validate:"required"`
	Tense    Tense    `json:"tense" validate:"required,oneof=present preterite imperfect future conditional present_subjunctive imperfect_subjunctive present_perfect past_perfect"`
	Subject  string   `json:"subject" validate:"required"`
	Answer   string   `json:"answer" validate:"required"`
	VerbType VerbType `json:"verb_type" validate:"required,oneof=regular irregular"`
	Category string   `json:"category"`
}
