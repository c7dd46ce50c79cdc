package replay

import "github.com/younwookim/stomp/internal/domain/entity"

// Version is written into every recording
const Version = "2.0"

// SlotInput records one player slot's controller state
type SlotInput struct {
	A float64 `json:"a,omitempty"` // Axis
	J bool    `json:"j,omitempty"` // Jump
	R bool    `json:"r,omitempty"` // Run
	S bool    `json:"s,omitempty"` // Shoot
}

// FrameInput records input state for a single frame
type FrameInput struct {
	F int         `json:"f"`           // Frame number
	P []SlotInput `json:"p,omitempty"` // Per player slot
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Players   int          `json:"players"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func slotFrom(in entity.Input) SlotInput {
	return SlotInput{A: in.Axis, J: in.Jump, R: in.Run, S: in.Shoot}
}

func (s SlotInput) input() entity.Input {
	return entity.Input{Axis: s.A, Jump: s.J, Run: s.R, Shoot: s.S}
}
