package services

import "fmt"

// Alert tells the user that one of their orders changed status.
type Alert struct {
	TransactionID uint   `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// ObserveStatuses feeds the differ one poll tick worth of order statuses.
//
// The first observation only seeds the snapshot, without alerting, so a fresh
// login does not announce every existing order. After that, an alert is queued
// for every order whose status differs from the snapshot; orders seen for the
// first time are recorded silently because the user already got a
// confirmation when placing them.
func (s *Session) ObserveStatuses(current map[uint]string) []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastStatuses == nil {
		s.lastStatuses = make(map[uint]string, len(current))
		for id, status := range current {
			s.lastStatuses[id] = status
		}
		return nil
	}

	var fresh []Alert
	for id, status := range current {
		old, seen := s.lastStatuses[id]
		if seen && old != status {
			fresh = append(fresh, Alert{
				TransactionID: id,
				Status:        status,
				Message:       fmt.Sprintf("Pesanan #%d kini berstatus: %s", id, status),
			})
		}
		s.lastStatuses[id] = status
	}

	s.alerts = append(s.alerts, fresh...)
	return fresh
}

// DrainAlerts returns every queued alert and empties the queue.
func (s *Session) DrainAlerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.alerts
	s.alerts = nil
	if drained == nil {
		drained = []Alert{}
	}
	return drained
}

// StatusSnapshot copies the differ's current snapshot, mainly for tests.
func (s *Session) StatusSnapshot() map[uint]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uint]string, len(s.lastStatuses))
	for id, status := range s.lastStatuses {
		out[id] = status
	}
	return out
}
