package replay

import (
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
)

// Version is written into every new replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version     string       `json:"version"`
	RunID       string       `json:"runId"`
	Seed        int64        `json:"seed"`
	Orientation string       `json:"orientation"`
	Difficulty  string       `json:"difficulty"`
	Role        string       `json:"role"`
	StartTime   string       `json:"startTime"`
	Frames      []FrameInput `json:"frames"`
}

// Settings returns the menu choices the run was recorded with
func (d ReplayData) Settings() system.Settings {
	return system.Settings{
		Orientation: entity.ParseOrientation(d.Orientation),
		Difficulty:  d.Difficulty,
		Role:        entity.ParseRole(d.Role),
	}
}

// NewFrameInput captures the simulation-relevant part of an input state
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{F: frame, L: in.Left, R: in.Right, U: in.Up, D: in.Down}
}

// Input converts the frame back to an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{Left: fi.L, Right: fi.R, Up: fi.U, Down: fi.D}
}
