package nlu

import (
	"regexp"

	"ippt-coach/internal/domain"
)

// rule maps a keyword to a canonical value. Rule tables are evaluated in
// declaration order and the first hit wins.
type rule struct {
	keyword string
	value   string
}

// boundaryRule is a rule whose keyword must match on word boundaries.
type boundaryRule struct {
	rule
	re *regexp.Regexp
}

func boundaryRules(rules ...rule) []boundaryRule {
	out := make([]boundaryRule, len(rules))
	for i, r := range rules {
		out[i] = boundaryRule{rule: r, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(r.keyword) + `\b`)}
	}
	return out
}

var fieldRules = boundaryRules(
	rule{"push-up", domain.FieldPushUp},
	rule{"pushups", domain.FieldPushUp},
	rule{"push up", domain.FieldPushUp},
	rule{"sit-up", domain.FieldSitUp},
	rule{"situp", domain.FieldSitUp},
	rule{"situps", domain.FieldSitUp},
	rule{"run", domain.FieldRunning},
	rule{"running", domain.FieldRunning},
	rule{"jog", domain.FieldRunning},
	rule{"2.4", domain.FieldRunning},
	rule{"runtime", domain.FieldRunning},
	rule{"abs", domain.FieldAbs},
	rule{"core", domain.FieldAbs},
	rule{"hip", domain.FieldHip},
	rule{"hips", domain.FieldHip},
	rule{"chest", domain.FieldBodypart},
	rule{"triceps", domain.FieldBodypart},
	rule{"arms", domain.FieldBodypart},
	rule{"glutes", domain.FieldBodypart},
	rule{"butt", domain.FieldBodypart},
	rule{"body", domain.FieldBodypart},
	rule{"muscle", domain.FieldBodypart},
	rule{"muscles", domain.FieldBodypart},
	rule{"train", domain.FieldBodypart},
	rule{"target", domain.FieldBodypart},
	rule{"ippt", domain.FieldIPPT},
)

// Fallbacks for spelling variants the keyword table misses.
var fieldFallbacks = []struct {
	re    *regexp.Regexp
	field string
}{
	{regexp.MustCompile(`\bpush[\s\-]?ups?\b`), domain.FieldPushUp},
	{regexp.MustCompile(`\bsit[\s\-]?ups?\b`), domain.FieldSitUp},
	{regexp.MustCompile(`\b(run|running|jog|2\.4|runtime)\b`), domain.FieldRunning},
}

var levelRules = boundaryRules(
	rule{"beginner", domain.LevelBeginner},
	rule{"newbie", domain.LevelBeginner},
	rule{"amateur", domain.LevelAmateur},
	rule{"intermediate", domain.LevelAmateur},
	rule{"advanced", domain.LevelAdvanced},
	rule{"advance", domain.LevelAdvanced},
	rule{"pro", domain.LevelAdvanced},
	rule{"adv", domain.LevelAdvanced},
	rule{"pass", string(domain.TargetPass)},
	rule{"silver", string(domain.TargetSilver)},
	rule{"gold", string(domain.TargetGold)},
)

var muscleMarkers = []string{"muscle", "body part", "muscle group"}

// questionRules match by substring.
var questionRules = []rule{
	{"why", domain.QuestionWhy},
	{"what", domain.QuestionWhat},
	{"which", domain.QuestionWhich},
	{"what is", domain.QuestionWhat},
	{"importance", domain.QuestionWhy},
	{"important", domain.QuestionWhy},
	{"tip", domain.QuestionTips},
	{"tips", domain.QuestionTips},
	{"advice", domain.QuestionTips},
}

var genderRules = boundaryRules(
	rule{"male", string(domain.GenderMale)},
	rule{"m", string(domain.GenderMale)},
	rule{"female", string(domain.GenderFemale)},
	rule{"f", string(domain.GenderFemale)},
)

// miscRules match by substring.
var miscRules = []rule{
	{"hi", domain.MiscGreeting},
	{"hello", domain.MiscGreeting},
	{"hey", domain.MiscGreeting},
	{"thank you", domain.MiscThanks},
	{"thanks", domain.MiscThanks},
	{"thx", domain.MiscThanks},
	{"appreciate", domain.MiscThanks},
	{"ty", domain.MiscThanks},
	{"tysm", domain.MiscThanks},
	{"tyvm", domain.MiscThanks},
	{"bye", domain.MiscFarewell},
	{"goodbye", domain.MiscFarewell},
	{"good‑bye", domain.MiscFarewell},
	{"see you", domain.MiscFarewell},
	{"exit", domain.MiscFarewell},
}

var (
	negativeKeywords = []string{
		"slow", "avoid", "hate", "dislike", "don't want", "dont want", "not interested", "skip", "fail",
	}
	improveKeywords = []string{
		"improve", "increase", "boost", "faster", "better", "enhance", "lower", "reduce time", "quicker", "progress",
	}
)

var (
	ipptWord        = regexp.MustCompile(`\bippt\b`)
	checkWords      = regexp.MustCompile(`\b(check|score|result|performance)\b`)
	tierWords       = regexp.MustCompile(`\b(pass|silver|gold)\b`)
	goodbyePhrase   = regexp.MustCompile(`\b(bye|goodbye|good-bye|see you|see ya|farewell|exit|quit)\b`)
	whyIsIPPT       = regexp.MustCompile(`\bwhy\s+is\s+ippt\b`)
	whatIsIPPT      = regexp.MustCompile(`\bwhat\s+is\s+ippt\b`)
	improveVerbWord = regexp.MustCompile(`\b(improve|increase|boost|better|enhance|prepare|train)\b`)
)
