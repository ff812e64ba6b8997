// Package dialog turns one user message and the stored session into a reply
// and the next session. It performs no I/O.
package dialog

import (
	"errors"

	"ippt-coach/internal/domain"
	"ippt-coach/internal/nlu"
	"ippt-coach/internal/scoring"
)

// maxRetries is how many invalid answers a single flow step accepts before
// the flow is cancelled.
const maxRetries = 5

// Route names reported with each reply.
const (
	RouteEmpty       = "empty"
	RouteFarewell    = "farewell"
	RouteSmallTalk   = "small_talk"
	RouteIPPTInfo    = "ippt_info"
	RouteForward     = "forward_check"
	RouteReverse     = "reverse_check"
	RouteIPPTCheck   = "ippt_check_start"
	RouteIPPTImprove = "ippt_improve"
	RouteReverseOpen = "reverse_check_start"
	RouteTips        = "tips"
	RouteQuestion    = "question"
	RouteTopic       = "topic"
)

// Catalog serves canned answers by field and subtopic.
type Catalog interface {
	Get(field, subtopic string) (string, bool)
}

// turn is the working state of one Step call.
type turn struct {
	msg     string
	intent  domain.Intent
	session *domain.Session
}

// route is one dispatch entry. handle may decline by returning false, in
// which case dispatch continues with the next route.
type route struct {
	name   string
	match  func(t *turn) bool
	handle func(t *turn) (domain.Reply, bool)
}

// Machine is the conversation state machine.
type Machine struct {
	catalog Catalog
	engine  *scoring.Engine
	routes  []route
}

// New builds a Machine. A nil engine uses the standard score tables.
func New(catalog Catalog, engine *scoring.Engine) (*Machine, error) {
	if catalog == nil {
		return nil, errors.New("dialog: catalog must not be nil")
	}
	if engine == nil {
		engine = scoring.NewEngine(nil)
	}
	m := &Machine{catalog: catalog, engine: engine}
	m.routes = []route{
		{name: RouteFarewell, match: isFarewell, handle: m.farewell},
		{name: RouteSmallTalk, match: isSmallTalk, handle: m.smallTalk},
		{name: RouteIPPTInfo, match: isIPPTInfo, handle: m.ipptInfo},
		{name: RouteForward, match: inFlow(domain.FlowForward), handle: m.forward},
		{name: RouteReverse, match: inFlow(domain.FlowReverse), handle: m.reverse},
		{name: RouteIPPTCheck, match: isIPPTCheck, handle: m.startForward},
		{name: RouteIPPTImprove, match: isIPPTImprove, handle: m.ipptImprove},
		{name: RouteReverseOpen, match: isReverseQuery, handle: m.startReverse},
		{name: RouteTips, match: isTipsQuestion, handle: m.tips},
		{name: RouteQuestion, match: isQuestion, handle: m.question},
		{name: RouteTopic, match: always, handle: m.topic},
	}
	return m, nil
}

// Step handles one message. The input session is not modified; the returned
// session replaces it.
func (m *Machine) Step(s domain.Session, message string) (domain.Session, domain.Reply) {
	next := s.Clone()
	msg := nlu.Normalize(message)
	if msg == "" {
		return next, domain.Reply{Text: replyNotUnderstood, Route: RouteEmpty}
	}
	next.Turns++

	t := &turn{msg: msg, intent: nlu.Classify(msg), session: &next}
	for _, r := range m.routes {
		if !r.match(t) {
			continue
		}
		reply, ok := r.handle(t)
		if !ok {
			continue
		}
		reply.Route = r.name
		return next, reply
	}
	// The topic route always answers; this is only reached if the table changes.
	return next, domain.Reply{Text: replyClarify, Route: RouteTopic}
}

func always(*turn) bool { return true }

func inFlow(kind domain.FlowKind) func(*turn) bool {
	return func(t *turn) bool { return t.session.Flow.Kind == kind }
}

func isFarewell(t *turn) bool {
	return t.intent.MiscIntent == domain.MiscFarewell || nlu.IsFarewellPhrase(t.msg)
}

func isSmallTalk(t *turn) bool {
	return t.intent.MiscIntent == domain.MiscGreeting || t.intent.MiscIntent == domain.MiscThanks
}

func isIPPTInfo(t *turn) bool {
	_, ok := nlu.WhatWhyIPPT(t.msg)
	return ok
}

func isIPPTCheck(t *turn) bool {
	return t.intent.QuestionType == domain.QuestionIPPTCheck || nlu.IsIPPTCheckRequest(t.msg)
}

func isIPPTImprove(t *turn) bool {
	return nlu.IsGeneralIPPTImprove(t.msg)
}

func isReverseQuery(t *turn) bool {
	return nlu.IsReverseIPPTQuery(t.msg)
}

func isTipsQuestion(t *turn) bool {
	return t.intent.QuestionType == domain.QuestionTips
}

func isQuestion(t *turn) bool {
	return t.intent.QuestionType != ""
}

func (m *Machine) farewell(t *turn) (domain.Reply, bool) {
	*t.session = domain.Session{Turns: t.session.Turns}
	return domain.Reply{Text: replyGoodbye, EndChat: true}, true
}

func (m *Machine) smallTalk(t *turn) (domain.Reply, bool) {
	if t.intent.MiscIntent == domain.MiscThanks {
		return domain.Reply{Text: replyThanks}, true
	}
	return domain.Reply{Text: replyGreeting}, true
}

func (m *Machine) ipptInfo(t *turn) (domain.Reply, bool) {
	kind, _ := nlu.WhatWhyIPPT(t.msg)
	text, ok := m.catalog.Get(domain.FieldIPPT, kind)
	if !ok {
		return domain.Reply{}, false
	}
	return domain.Reply{Text: text}, true
}

func (m *Machine) startForward(t *turn) (domain.Reply, bool) {
	t.session.StartForward()
	return domain.Reply{Text: promptGender}, true
}

func (m *Machine) ipptImprove(t *turn) (domain.Reply, bool) {
	text, ok := m.catalog.Get(domain.FieldGeneral, domain.QuestionTips)
	if !ok {
		return domain.Reply{}, false
	}
	return domain.Reply{Text: text}, true
}

func (m *Machine) startReverse(t *turn) (domain.Reply, bool) {
	target, _ := nlu.DetectTarget(t.msg)
	t.session.StartReverse(target)
	return domain.Reply{Text: startReverseText(target)}, true
}

// cancel ends the active flow after too many invalid answers.
func cancel(t *turn) domain.Reply {
	t.session.ClearFlow()
	return domain.Reply{Text: replyTooManyAttempts}
}
