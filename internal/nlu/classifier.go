// Package nlu is a deterministic keyword classifier for chat messages.
package nlu

import (
	"strings"

	"ippt-coach/internal/domain"
)

// Normalize lower-cases and trims a message.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// Classify reads a message into an Intent. It never fails; unmatched parts
// are left empty.
func Classify(message string) domain.Intent {
	message = Normalize(message)
	intent := domain.Intent{
		Field:        DetectField(message),
		Level:        DetectLevel(message),
		QuestionType: DetectQuestionType(message),
		Gender:       DetectGender(message),
		MiscIntent:   DetectMiscIntent(message),
	}
	if ipptWord.MatchString(message) && checkWords.MatchString(message) {
		intent.QuestionType = domain.QuestionIPPTCheck
	}
	return intent
}

// DetectField returns the first field keyword found, then tries the
// spelling-variant fallbacks.
func DetectField(message string) string {
	if v, ok := firstBoundary(fieldRules, message); ok {
		return v
	}
	for _, f := range fieldFallbacks {
		if f.re.MatchString(message) {
			return f.field
		}
	}
	return ""
}

// DetectLevel returns a skill tier or target band keyword.
func DetectLevel(message string) string {
	v, _ := firstBoundary(levelRules, message)
	return v
}

// DetectQuestionType returns the question type; muscle questions take precedence.
func DetectQuestionType(message string) string {
	if containsAny(message, muscleMarkers) {
		return domain.QuestionMuscle
	}
	v, _ := firstSubstring(questionRules, message)
	return v
}

// DetectGender returns the gender named in the message, if any.
func DetectGender(message string) domain.Gender {
	v, _ := firstBoundary(genderRules, message)
	return domain.Gender(v)
}

// DetectMiscIntent returns greeting, thanks or farewell.
func DetectMiscIntent(message string) string {
	v, _ := firstSubstring(miscRules, message)
	return v
}

// DetectTarget returns the award band named in the message.
func DetectTarget(message string) (domain.Target, bool) {
	return domain.ParseTarget(tierWords.FindString(message))
}

// IsIPPTCheckRequest is the loose trigger for the forward score check.
func IsIPPTCheckRequest(message string) bool {
	if message == "" {
		return false
	}
	if strings.Contains(message, "ippt check") || strings.Contains(message, "check ippt") {
		return true
	}
	if strings.Contains(message, "ippt") && strings.Contains(message, "result") {
		return true
	}
	return checkWords.MatchString(message)
}

// IsReverseIPPTQuery is the loose trigger for the reverse check: any band
// keyword or any mention of ippt.
func IsReverseIPPTQuery(message string) bool {
	return tierWords.MatchString(message) || ipptWord.MatchString(message)
}

// IsFarewellPhrase matches explicit goodbye phrases on word boundaries.
func IsFarewellPhrase(message string) bool {
	return goodbyePhrase.MatchString(message)
}

// WhatWhyIPPT reports whether the message asks what or why IPPT is, and which.
func WhatWhyIPPT(message string) (string, bool) {
	if whyIsIPPT.MatchString(message) {
		return domain.QuestionWhy, true
	}
	if whatIsIPPT.MatchString(message) {
		return domain.QuestionWhat, true
	}
	return "", false
}

// IsGeneralIPPTImprove matches "how do I improve my ippt" style messages that
// name no award band.
func IsGeneralIPPTImprove(message string) bool {
	return ipptWord.MatchString(message) && improveVerbWord.MatchString(message) && !tierWords.MatchString(message)
}

// MapBodypartToExercise refines a body part mention into a trainable field.
func MapBodypartToExercise(message string) string {
	switch {
	case containsAny(message, []string{"chest", "tricep", "pec"}):
		return domain.FieldPushUp
	case containsAny(message, []string{"abs", "core", "stomach", "belly"}):
		return domain.FieldSitUp
	case containsAny(message, []string{"hip", "glute", "butt"}):
		return domain.FieldHip
	case containsAny(message, []string{"run", "jog", "2.4"}):
		return domain.FieldRunning
	}
	return ""
}

// NormalizeField folds field variants into push-up, sit-up or running.
func NormalizeField(raw string) string {
	raw = Normalize(raw)
	switch {
	case raw == "":
		return ""
	case strings.Contains(raw, "push"):
		return domain.FieldPushUp
	case containsAny(raw, []string{"sit", "abs", "core"}):
		return domain.FieldSitUp
	case containsAny(raw, []string{"run", "jog", "2.4"}):
		return domain.FieldRunning
	}
	return raw
}

// HasNegativeIntent reports a message that declines training.
func HasNegativeIntent(message string) bool {
	return containsAny(message, negativeKeywords)
}

// HasImproveIntent reports a message that asks to get better at something.
func HasImproveIntent(message string) bool {
	return containsAny(message, improveKeywords)
}

func firstBoundary(rules []boundaryRule, message string) (string, bool) {
	for _, r := range rules {
		if r.re.MatchString(message) {
			return r.value, true
		}
	}
	return "", false
}

func firstSubstring(rules []rule, message string) (string, bool) {
	for _, r := range rules {
		if strings.Contains(message, r.keyword) {
			return r.value, true
		}
	}
	return "", false
}

func containsAny(message string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(message, k) {
			return true
		}
	}
	return false
}
