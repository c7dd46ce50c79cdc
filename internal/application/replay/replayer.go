package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/stomp/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the per-slot input for the current frame and advances.
// The slice always has one entry per recorded player.
func (r *Replayer) GetInput() ([]entity.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	n := r.data.Players
	if len(fi.P) > n {
		n = len(fi.P)
	}
	inputs := make([]entity.Input, n)
	for i, s := range fi.P {
		inputs[i] = s.input()
	}
	return inputs, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// DT returns the fixed timestep the replay was recorded with
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing where every slot
// holds the same input for the whole recording
func CreateTestReplayData(frames, players int, in entity.Input) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		Players:   players,
		DT:        1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		slots := make([]SlotInput, players)
		for s := range slots {
			slots[s] = slotFrom(in)
		}
		data.Frames[i] = FrameInput{F: i, P: slots}
	}

	return data
}
