package dialog

import (
	"ippt-coach/internal/domain"
	"ippt-coach/internal/nlu"
)

// topicField resolves the exercise a message is about. Body part mentions
// are mapped to the exercise that trains them. A generic body word such as
// "muscles" falls back to any exercise named in the message, else "".
func topicField(t *turn) string {
	field := t.intent.Field
	switch field {
	case domain.FieldBodypart, domain.FieldAbs, domain.FieldHip:
		if mapped := nlu.MapBodypartToExercise(t.msg); mapped != "" {
			field = mapped
		} else if field == domain.FieldBodypart {
			return exerciseIn(t.msg)
		}
	}
	return nlu.NormalizeField(field)
}

func exerciseIn(msg string) string {
	switch f := nlu.NormalizeField(msg); f {
	case domain.FieldPushUp, domain.FieldSitUp, domain.FieldRunning:
		return f
	}
	return ""
}

func isSkillLevel(level string) bool {
	switch level {
	case domain.LevelBeginner, domain.LevelAmateur, domain.LevelAdvanced:
		return true
	}
	return false
}

// tips serves tips for the named or remembered exercise, or general tips.
func (m *Machine) tips(t *turn) (domain.Reply, bool) {
	field := topicField(t)
	if field == "" {
		field = t.session.Topic.Field
	}
	if text, ok := m.catalog.Get(field, domain.QuestionTips); ok {
		return domain.Reply{Text: text}, true
	}
	if text, ok := m.catalog.Get(domain.FieldGeneral, domain.QuestionTips); ok {
		return domain.Reply{Text: text}, true
	}
	return domain.Reply{}, false
}

// question answers muscle and other question types from the catalog. It
// declines when nothing matches so the free-topic flow can respond.
func (m *Machine) question(t *turn) (domain.Reply, bool) {
	qt := t.intent.QuestionType
	for _, field := range uniqueFields(topicField(t), t.intent.Field, t.session.Topic.Field) {
		if qt == domain.QuestionWhat || qt == domain.QuestionMuscle || qt == domain.QuestionWhich {
			if text, ok := m.catalog.Get(field, "muscle"); ok {
				return domain.Reply{Text: text}, true
			}
		}
		if text, ok := m.catalog.Get(field, qt); ok {
			return domain.Reply{Text: text}, true
		}
	}
	return domain.Reply{}, false
}

func uniqueFields(fields ...string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f == "" {
			continue
		}
		dup := false
		for _, seen := range out {
			if seen == f {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

// topic is the free-topic flow: it remembers the exercise and level across
// turns and serves the training plan once both are known.
func (m *Machine) topic(t *turn) (domain.Reply, bool) {
	if nlu.HasNegativeIntent(t.msg) && !nlu.HasImproveIntent(t.msg) {
		return domain.Reply{Text: replyNegative}, true
	}

	topic := &t.session.Topic
	if field := topicField(t); field != "" {
		topic.Field = field
	}
	if isSkillLevel(t.intent.Level) {
		topic.Level = t.intent.Level
	}

	switch {
	case topic.Field != "" && topic.Level == "":
		return domain.Reply{Text: levelPrompt(topic.Field, nlu.HasImproveIntent(t.msg))}, true

	case topic.Field != "" && topic.Level != "":
		field, level := topic.Field, topic.Level
		if text, ok := m.catalog.Get(field, level); ok {
			t.session.ClearTopic()
			return domain.Reply{Text: text}, true
		}
		return domain.Reply{Text: noPlanText(level, field)}, true
	}
	return domain.Reply{Text: replyClarify}, true
}
