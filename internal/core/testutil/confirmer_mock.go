package testutil

import (
	"errors"

	"github.com/fievelk/virtualias/internal/core/ports"
)

// ScriptedConfirmer answers questions from a fixed list, in order.
type ScriptedConfirmer struct {
	Answers   []bool
	Err       error
	Questions []string
}

// Confirm returns the next scripted answer. It fails once the script is exhausted.
func (s *ScriptedConfirmer) Confirm(question string, _ ports.Answer) (bool, error) {
	s.Questions = append(s.Questions, question)
	if s.Err != nil {
		return false, s.Err
	}
	if len(s.Answers) == 0 {
		return false, errors.New("ScriptedConfirmer: no answers left")
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

var _ ports.Confirmer = (*ScriptedConfirmer)(nil)
