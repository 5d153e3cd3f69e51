package input

// Key repeat timing for held keys (milliseconds)
const (
	KeyRepeatInitialDelay = 500 // Initial delay before first repeat
	KeyRepeatInterval     = 100 // Interval between repeat events
)

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// Repeater turns held keys into a stream of key-down events: one on the
// initial press, then one every KeyRepeatInterval once the key has been held
// for KeyRepeatInitialDelay.
type Repeater struct {
	state map[string]keyRepeatInfo
}

// NewRepeater creates a repeater with no keys held
func NewRepeater() *Repeater {
	return &Repeater{state: make(map[string]keyRepeatInfo)}
}

// ShouldFire checks if a held key should produce an event at now
// (initial press or repeat)
func (r *Repeater) ShouldFire(code string, justPressed bool, now int64) bool {
	info, exists := r.state[code]
	if justPressed || !exists {
		r.state[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return justPressed
	}

	if now-info.firstPressed < KeyRepeatInitialDelay {
		return false
	}
	if now-info.lastRepeat < KeyRepeatInterval {
		return false
	}

	info.lastRepeat = now
	r.state[code] = info
	return true
}

// Retain forgets every key not in held
func (r *Repeater) Retain(held []string) {
	for code := range r.state {
		if !containsCode(held, code) {
			delete(r.state, code)
		}
	}
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
