package components

import (
	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton game flow state and score board.
type SessionData struct {
	State     config.SessionState
	Score     int
	BestScore int
	Elapsed   float64
}

func (s *SessionData) IncrementScore() {
	s.Score++
}

// RecordBest folds the current score into the best score and reports
// whether it is a new record.
func (s *SessionData) RecordBest() bool {
	if s.Score > s.BestScore {
		s.BestScore = s.Score
		return true
	}
	return false
}

var Session = donburi.NewComponentType[SessionData]()
