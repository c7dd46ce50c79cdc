package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/stomp/internal/domain/entity"
)

// ErrEmptyRecording is returned when saving a recording with no frames
var ErrEmptyRecording = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a session on stage with the given
// number of player slots and fixed timestep
func NewRecorder(stage string, players int, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Stage:     stage,
			Players:   players,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's per-slot input
func (r *Recorder) RecordFrame(inputs []entity.Input) {
	if !r.recording {
		return
	}

	slots := make([]SlotInput, r.data.Players)
	for i := range slots {
		if i < len(inputs) {
			slots[i] = slotFrom(inputs[i])
		}
	}

	r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, P: slots})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmptyRecording
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
