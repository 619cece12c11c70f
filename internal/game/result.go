package game

import "fmt"

// Outcome classifies the result of an engine operation.
type Outcome int

const (
	Success Outcome = iota
	Failure
	Victory
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Victory:
		return "victory"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is returned by every engine operation. Message is empty when a
// successful operation has nothing to say.
type Result struct {
	Message string
	Outcome Outcome
}

func succeed(msg string) Result {
	return Result{Message: msg, Outcome: Success}
}

func fail(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), Outcome: Failure}
}
