package quiz

import "github.com/saulo-duarte/vinquiz/internal/catalog"

// Question is regenerated on every fetch and never trusted back from a
// client: the answer check recomputes the correct label from the subject.
type Question struct {
	GameType        GameType
	SubjectKind     catalog.Kind
	SubjectID       int
	SubjectName     string
	CorrectLabel    string
	LeftLabel       string
	RightLabel      string
	LeftIsPositive  bool
	RightIsPositive bool
}

func (q *Question) Options() []string {
	return []string{q.LeftLabel, q.RightLabel}
}

// Pending is what a game remembers about the question it last served.
type Pending struct {
	SubjectID int
	Options   []string
}

func (q *Question) Pending() Pending {
	return Pending{SubjectID: q.SubjectID, Options: q.Options()}
}
