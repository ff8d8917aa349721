package service

import (
	"math/rand"
	"sync"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dialing"
	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// DialResult is a simulated call attempt: a suggested disposition code, its
// outcome classification and a plausible duration. No telephony happens —
// the agent confirms or overrides before the call is logged.
type DialResult struct {
	Disposition     string             `json:"disposition"`
	Outcome         entity.CallOutcome `json:"outcome"`
	DurationSeconds int                `json:"duration_seconds"`
}

// Simulator produces randomized dial results. The randomness source is
// injected so tests can supply a deterministic one.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator builds a simulator around the given source.
func NewSimulator(src rand.Source) *Simulator {
	return &Simulator{rng: rand.New(src)}
}

// Weighted distribution over disposition codes. Roughly half of attempts
// reach a human, matching what the agent screens present.
var simulatedDispositions = []struct {
	code   string
	weight int
}{
	{"connected", 25},
	{"connected-not-interested", 10},
	{"callback", 5},
	{"voicemail", 25},
	{"no-answer", 20},
	{"busy", 10},
	{"wrong-number", 5},
}

// Dial draws one simulated call result.
func (s *Simulator) Dial() DialResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, d := range simulatedDispositions {
		total += d.weight
	}

	pick := s.rng.Intn(total)
	code := simulatedDispositions[len(simulatedDispositions)-1].code
	for _, d := range simulatedDispositions {
		if pick < d.weight {
			code = d.code
			break
		}
		pick -= d.weight
	}

	result := DialResult{
		Disposition: code,
		Outcome:     dialing.DefaultOutcome(code),
	}
	switch result.Outcome {
	case entity.OutcomeConnected:
		result.DurationSeconds = 30 + s.rng.Intn(270)
	case entity.OutcomeVoicemail:
		result.DurationSeconds = 15 + s.rng.Intn(30)
	}

	return result
}
