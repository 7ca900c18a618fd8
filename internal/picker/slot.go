package picker

import "sync"

// Slot is the nullable form value a field is bound to. A cleared slot holds
// nil, never 0.
type Slot struct {
	mutex sync.RWMutex
	value *int64
}

func NewSlot(value *int64) *Slot {
	s := &Slot{}
	s.Set(value)
	return s
}

// Get returns a copy of the value, or nil.
func (s *Slot) Get() *int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.value == nil {
		return nil
	}
	v := *s.value
	return &v
}

func (s *Slot) Set(value *int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if value == nil {
		s.value = nil
		return
	}
	v := *value
	s.value = &v
}

func (s *Slot) Clear() {
	s.Set(nil)
}
