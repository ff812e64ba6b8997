package domain

// Reply is the outcome of one conversational turn.
type Reply struct {
	Text    string
	EndChat bool
	// Route names the dispatch branch that produced the reply.
	Route string
}
