package ports

// Answer is the default used when the user just presses enter.
type Answer int

const (
	// NoDefault requires an explicit answer.
	NoDefault Answer = iota
	// DefaultYes treats an empty answer as yes.
	DefaultYes
	// DefaultNo treats an empty answer as no.
	DefaultNo
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string, def Answer) (bool, error)
}
