package client

import (
	"encoding/json"
	"sync"
)

// Diagnostic state for a single client: the most recent raw response, and the number of calls which got a response from the service. Not used for control flow.
//
// Safe for concurrent use.
type Session struct {
	lk           sync.RWMutex
	lastResponse json.RawMessage
	counter      uint64
}

// Records a copy of a received document, returning the updated counter. Both fields change together under the lock.
func (s *Session) record(raw json.RawMessage) uint64 {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.lastResponse = append(json.RawMessage(nil), raw...)
	s.counter++
	return s.counter
}

// Returns a copy of the most recent raw response, or nil if no call has reached the service yet.
func (s *Session) LastResponse() json.RawMessage {
	s.lk.RLock()
	defer s.lk.RUnlock()
	if s.lastResponse == nil {
		return nil
	}
	out := make(json.RawMessage, len(s.lastResponse))
	copy(out, s.lastResponse)
	return out
}

func (s *Session) Counter() uint64 {
	s.lk.RLock()
	defer s.lk.RUnlock()
	return s.counter
}
