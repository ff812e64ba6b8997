package domain

// Canonical field values produced by the classifier and the free-topic flow.
const (
	FieldPushUp   = "push-up"
	FieldSitUp    = "sit-up"
	FieldRunning  = "running"
	FieldAbs      = "abs"
	FieldHip      = "hip"
	FieldBodypart = "bodypart"
	FieldIPPT     = "ippt"
	FieldGeneral  = "general"
)

// Skill tiers used as training-plan subtopics.
const (
	LevelBeginner = "beginner"
	LevelAmateur  = "amateur"
	LevelAdvanced = "advanced"
)

// Question types.
const (
	QuestionWhy       = "why"
	QuestionWhat      = "what"
	QuestionWhich     = "which"
	QuestionTips      = "tips"
	QuestionMuscle    = "muscle"
	QuestionIPPTCheck = "ippt_check"
)

// Miscellaneous intents.
const (
	MiscGreeting = "greeting"
	MiscThanks   = "thanks"
	MiscFarewell = "farewell"
)

// Intent is the structured reading of one message. Empty fields mean no match.
type Intent struct {
	Field        string
	Level        string
	QuestionType string
	Gender       Gender
	MiscIntent   string
}
