package dialog

import (
	"fmt"

	"ippt-coach/internal/domain"
)

const (
	replyGreeting      = "Hi there 👋 How can I help you today?"
	replyThanks        = "You’re welcome! Let me know if I can help with anything else."
	replyGoodbye       = "Good‑bye 👋 Stay active and take care!"
	replyNotUnderstood = "Sorry, I couldn't understand your question."
	replyClarify       = "Sorry, I couldn't process your request. Could you please tell me which exercise or body part you'd like help with? (e.g., push-ups, sit-ups, running)"
	replyNegative      = "It looks like you're not looking to train right now. Let me know if you have any other questions!"

	replyTooManyAttempts = "Too many invalid attempts. IPPT check cancelled. Please start over if you wish."
	replyFlowError       = "Something went wrong with the IPPT check. Please start over."
)

// Forward check prompts.
const (
	promptGender  = "Please specify your gender as 'male' or 'female' (you can also enter 'm' or 'f')."
	promptAge     = "Enter your age (e.g., 25)."
	promptPushUps = "Enter your number of push-ups in one minute."
	promptSitUps  = "Enter your number of sit-ups in one minute."
	promptRunTime = "Enter your 2.4km run time (e.g., 11:30)."

	invalidGender  = "Invalid gender. Please specify 'male' or 'female' (or 'm'/'f')."
	invalidAge     = "Invalid age. Please enter a number between 18 and 45 (e.g., 25)."
	invalidReps    = "Invalid input. Please enter the number of %s as a whole number."
	invalidRunTime = "Invalid runtime format. Please enter it as minutes:seconds (e.g., 11:30)."
)

// Reverse check prompts.
const (
	promptTarget   = "Which award are you aiming for: pass, silver or gold?"
	invalidTarget  = "Please choose one of: pass, silver or gold."
	invalidYesNo   = "Please answer 'yes' or 'no'."
	promptReverse  = "Let's work out what you need for %s. " + promptGender
	promptReverseQ = "Let's work out what you need for your IPPT target. " + promptGender
)

func startReverseText(t domain.Target) string {
	if t == "" {
		return promptReverseQ
	}
	return fmt.Sprintf(promptReverse, labelTarget(t))
}

func labelTarget(t domain.Target) string {
	switch t {
	case domain.TargetGold:
		return "GOLD"
	case domain.TargetSilver:
		return "SILVER"
	}
	return "PASS"
}

func knowQuestion(st domain.Station) string {
	switch st {
	case domain.StationRun:
		return "Do you know your 2.4km run time? (yes/no)"
	case domain.StationSitUp:
		return "Do you know your sit-up count? (yes/no)"
	}
	return "Do you know your push-up count? (yes/no)"
}

func valuePrompt(st domain.Station) string {
	switch st {
	case domain.StationRun:
		return promptRunTime
	case domain.StationSitUp:
		return promptSitUps
	}
	return promptPushUps
}

func invalidValue(st domain.Station) string {
	if st == domain.StationRun {
		return invalidRunTime
	}
	return fmt.Sprintf(invalidReps, st.Label())
}

// levelPrompt asks for the user's level, with bands tailored to the exercise.
func levelPrompt(field string, improve bool) string {
	lead := "To provide the best training plan"
	if improve {
		lead = "To help you improve"
	}
	switch field {
	case domain.FieldPushUp, domain.FieldSitUp:
		return lead + ", please tell me your current level:\n" +
			"- Beginner: 0-20 reps in one minute\n" +
			"- Amateur: 20-40 reps in one minute\n" +
			"- Advanced: 40+ reps in one minute"
	case domain.FieldRunning:
		return lead + ", please tell me your current level:\n" +
			"- Beginner: 2.4km in 14 minutes or more\n" +
			"- Amateur: 13:59 to 11:00\n" +
			"- Advanced: 10:59 or faster"
	}
	if improve {
		return fmt.Sprintf("To help you improve your %s, please tell me your level:\n- Beginner\n- Amateur\n- Advanced", field)
	}
	return fmt.Sprintf("To provide the best training plan for your %s, please tell me your level:\n- Beginner\n- Amateur\n- Advanced", field)
}

func noPlanText(level, field string) string {
	return fmt.Sprintf("I recognized your level as '%s', but couldn't find a training plan for '%s'. "+
		"Please check the training area or try rephrasing.", level, field)
}
