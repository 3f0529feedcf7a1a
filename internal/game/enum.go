package game

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusOver   Status = "OVER"
)

type OutcomeResult string

const (
	OutcomeCorrect   OutcomeResult = "CORRECT"
	OutcomeIncorrect OutcomeResult = "INCORRECT"
)
