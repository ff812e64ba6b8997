package domain

// FlowKind tags which multi-step dialog, if any, owns the session.
type FlowKind string

const (
	FlowIdle    FlowKind = ""
	FlowForward FlowKind = "forward_check"
	FlowReverse FlowKind = "reverse_check"
)

// Session is the whole per-conversation state, stored as a single value.
type Session struct {
	Topic TopicState `json:"topic"`
	Flow  FlowState  `json:"flow"`
	Turns int        `json:"turns"`
}

// TopicState is the sticky free-topic context.
type TopicState struct {
	Field string `json:"field,omitempty"`
	Level string `json:"level,omitempty"`
}

// FlowState is a tagged union: only the payload matching Kind is set.
type FlowState struct {
	Kind    FlowKind      `json:"kind,omitempty"`
	Forward *ForwardCheck `json:"forward,omitempty"`
	Reverse *ReverseCheck `json:"reverse,omitempty"`
}

// IsZero reports whether the session carries no conversational state.
func (s Session) IsZero() bool {
	return s.Flow.Kind == FlowIdle && s.Topic == TopicState{}
}

// Clone returns a deep copy, so the copy can be changed without touching s.
func (s Session) Clone() Session {
	out := s
	if f := s.Flow.Forward; f != nil {
		cp := *f
		cp.Retries = copyMap(f.Retries)
		out.Flow.Forward = &cp
	}
	if r := s.Flow.Reverse; r != nil {
		cp := *r
		cp.Retries = copyMap(r.Retries)
		out.Flow.Reverse = &cp
	}
	return out
}

func copyMap[K comparable](m map[K]int) map[K]int {
	if m == nil {
		return nil
	}
	out := make(map[K]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StartForward replaces any active flow with a fresh forward check.
func (s *Session) StartForward() {
	s.Flow = FlowState{Kind: FlowForward, Forward: &ForwardCheck{Step: ForwardGender}}
}

// StartReverse replaces any active flow with a fresh reverse check.
func (s *Session) StartReverse(target Target) {
	s.Flow = FlowState{Kind: FlowReverse, Reverse: &ReverseCheck{Step: ReverseGender, Target: target}}
}

// ClearFlow drops the active flow and its partial data.
func (s *Session) ClearFlow() {
	s.Flow = FlowState{}
}

// ClearTopic drops the collected field and level.
func (s *Session) ClearTopic() {
	s.Topic = TopicState{}
}

// ForwardStep is the field the forward check is collecting.
type ForwardStep string

const (
	ForwardGender  ForwardStep = "gender"
	ForwardAge     ForwardStep = "age"
	ForwardPushUps ForwardStep = "pushups"
	ForwardSitUps  ForwardStep = "situps"
	ForwardRunTime ForwardStep = "runtime"
)

// ForwardCheck is the partial data of a forward IPPT check.
type ForwardCheck struct {
	Step    ForwardStep         `json:"step"`
	Gender  Gender              `json:"gender,omitempty"`
	Age     int                 `json:"age,omitempty"`
	PushUps int                 `json:"pushups,omitempty"`
	SitUps  int                 `json:"situps,omitempty"`
	Retries map[ForwardStep]int `json:"retries,omitempty"`
}

// Fail records an invalid input for the current step and returns the new count.
func (f *ForwardCheck) Fail() int {
	if f.Retries == nil {
		f.Retries = make(map[ForwardStep]int)
	}
	f.Retries[f.Step]++
	return f.Retries[f.Step]
}

// ReverseStep is the stage of a reverse IPPT check.
type ReverseStep string

const (
	ReverseGender   ReverseStep = "gender"
	ReverseAge      ReverseStep = "age"
	ReverseTarget   ReverseStep = "target"
	ReverseStations ReverseStep = "stations"
)

// AskState tracks the question currently open for a station.
type AskState string

const (
	AskNotAsked      AskState = ""
	AskAwaitingYesNo AskState = "awaiting_yes_no"
	AskAwaitingValue AskState = "awaiting_value"
	AskDone          AskState = "done"
)

// Outcome is what the user told us about a station.
type Outcome string

const (
	OutcomeUnknown Outcome = ""
	OutcomeSkipped Outcome = "skipped"
	OutcomeValue   Outcome = "value"
)

// StationSlot holds one station of a reverse check.
type StationSlot struct {
	Ask     AskState `json:"ask,omitempty"`
	Outcome Outcome  `json:"outcome,omitempty"`
	Reps    int      `json:"reps,omitempty"`
	RunTime string   `json:"runtime,omitempty"`
}

// ReverseCheck is the partial data of a reverse IPPT check. Stations is
// indexed in the order of the package level Stations array.
type ReverseCheck struct {
	Step     ReverseStep    `json:"step"`
	Gender   Gender         `json:"gender,omitempty"`
	Age      int            `json:"age,omitempty"`
	Target   Target         `json:"target,omitempty"`
	Stations [3]StationSlot `json:"stations"`
	// Retries is keyed by step, or by station while collecting stations.
	Retries map[string]int `json:"retries,omitempty"`
}

// Fail records an invalid input under key and returns the new count.
func (r *ReverseCheck) Fail(key string) int {
	if r.Retries == nil {
		r.Retries = make(map[string]int)
	}
	r.Retries[key]++
	return r.Retries[key]
}

// Resolved counts stations with a recorded value or an explicit skip.
func (r *ReverseCheck) Resolved() int {
	n := 0
	for _, s := range r.Stations {
		if s.Outcome != OutcomeUnknown {
			n++
		}
	}
	return n
}

// Current returns the index of the first station that is not done, or -1.
func (r *ReverseCheck) Current() int {
	for i, s := range r.Stations {
		if s.Ask != AskDone {
			return i
		}
	}
	return -1
}

// Unresolved returns the first station with no outcome, or false if all are resolved.
func (r *ReverseCheck) Unresolved() (Station, bool) {
	for i, s := range r.Stations {
		if s.Outcome == OutcomeUnknown {
			return Stations[i], true
		}
	}
	return "", false
}
