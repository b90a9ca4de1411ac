package combat

import (
	"encoding/json"

	"heroes_ai/internal/army"
)

type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	}
	return "none"
}

func (s Side) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// Outcome summarizes how a battle ended.
type Outcome struct {
	Rounds    int  `json:"rounds"`
	Turns     int  `json:"turns"`
	Skipped   int  `json:"skipped"`
	Winner    Side `json:"winner"`
	Stalemate bool `json:"stalemate,omitempty"`
}

func winnerOf(a, b *army.Army) Side {
	aliveA, aliveB := a.HasAlive(), b.HasAlive()
	switch {
	case aliveA && !aliveB:
		return SideA
	case aliveB && !aliveA:
		return SideB
	}
	return SideNone
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
