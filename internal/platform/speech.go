package platform

import (
	"sync"

	"github.com/korea-connect/app-platform/pkg/metrics"
)

// Recognizer error codes mirrored from the speech backend.
const (
	SpeechErrAborted    = "aborted"
	SpeechErrNotAllowed = "not-allowed"
)

// RecognizerEvents receives speech session callbacks.
type RecognizerEvents struct {
	OnStart  func()
	OnResult func(transcript string)
	OnError  func(code string)
	OnEnd    func()
}

// Recognizer is the platform speech-to-text capability. Sessions are
// one-shot: continuous and interim results are disabled.
type Recognizer interface {
	Start(languageTag string, events RecognizerEvents) error
	Stop()
}

// VoiceState is the voice input session state.
type VoiceState string

const (
	VoiceIdle      VoiceState = "idle"
	VoiceListening VoiceState = "listening"
)

// VoiceInput drives a Recognizer through the idle -> listening -> idle
// cycle and accumulates transcripts into a text buffer.
type VoiceInput struct {
	mu         sync.Mutex
	recognizer Recognizer
	notify     func(message string)
	state      VoiceState
	buffer     string
	active     bool
}

// NewVoiceInput wraps a recognizer. recognizer may be nil when the
// platform has no speech support; notify delivers the single user-visible
// notice for unsupported/denied conditions.
func NewVoiceInput(recognizer Recognizer, notify func(string)) *VoiceInput {
	if notify == nil {
		notify = func(string) {}
	}
	return &VoiceInput{
		recognizer: recognizer,
		notify:     notify,
		state:      VoiceIdle,
	}
}

// Toggle starts a session, or stops the running one. Toggling while
// listening never starts a second session; the transition back to idle
// happens on the backend end event, keeping state in sync with it.
func (v *VoiceInput) Toggle(languageTag string) {
	v.mu.Lock()
	if v.state == VoiceListening {
		recognizer := v.recognizer
		v.mu.Unlock()
		recognizer.Stop()
		return
	}

	if v.recognizer == nil {
		v.mu.Unlock()
		v.notify("voice input is not supported on this device")
		return
	}
	v.mu.Unlock()

	err := v.recognizer.Start(languageTag, RecognizerEvents{
		OnStart:  v.onStart,
		OnResult: v.onResult,
		OnError:  v.onError,
		OnEnd:    v.onEnd,
	})
	if err != nil {
		v.mu.Lock()
		v.state = VoiceIdle
		v.mu.Unlock()
	}
}

func (v *VoiceInput) onStart() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = VoiceListening
	if !v.active {
		v.active = true
		metrics.VoiceSessionsActive.Inc()
	}
}

func (v *VoiceInput) onEnd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toIdle()
}

// onResult appends the transcript to the existing buffer with a
// separating space; it never replaces prior text.
func (v *VoiceInput) onResult(transcript string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.buffer != "" {
		v.buffer += " " + transcript
	} else {
		v.buffer = transcript
	}
}

func (v *VoiceInput) onError(code string) {
	if code == SpeechErrNotAllowed {
		v.notify("microphone access denied")
	}
	// "aborted" is the expected artifact of a manual stop; the end event
	// handles the transition for it.
	if code == SpeechErrAborted {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toIdle()
}

// toIdle assumes v.mu is held.
func (v *VoiceInput) toIdle() {
	v.state = VoiceIdle
	if v.active {
		v.active = false
		metrics.VoiceSessionsActive.Dec()
	}
}

// State returns the current session state.
func (v *VoiceInput) State() VoiceState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Text returns the accumulated input buffer.
func (v *VoiceInput) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buffer
}

// SetText replaces the input buffer, mirroring manual typing.
func (v *VoiceInput) SetText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buffer = text
}
