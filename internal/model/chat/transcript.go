package chat

// Transcript is the ordered turn history for one wallet session. Turns are
// appended as they are created and never mutated or reordered afterwards.
type Transcript []Turn

// Tail returns the most recent n turns in original order. The full transcript
// is returned when it holds n turns or fewer.
func (t Transcript) Tail(n int) Transcript {
	if n <= 0 {
		return nil
	}
	if len(t) <= n {
		return t
	}
	return t[len(t)-n:]
}

// Clone returns an independent copy so callers can hand the transcript out
// without exposing the backing array.
func (t Transcript) Clone() Transcript {
	if t == nil {
		return nil
	}
	copied := make(Transcript, len(t))
	copy(copied, t)
	return copied
}
