// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errScripted = errors.New("scripted failure")

// MockService is a suture.Service for exercising the supervisor tree in
// tests. It can be scripted to fail its first N starts and then settle
// into blocking on the context like a healthy service.
type MockService struct {
	name     string
	starts   atomic.Int32
	failures atomic.Int32
}

// NewMockService returns a mock that blocks until canceled.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// SetFailCount scripts the next n Serve calls to return an error,
// triggering suture's restart-with-backoff path.
func (m *MockService) SetFailCount(n int) {
	m.failures.Store(int32(n))
}

// StartCount reports how many times the supervisor has (re)started the
// service.
func (m *MockService) StartCount() int32 {
	return m.starts.Load()
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)

	if m.failures.Load() > 0 {
		m.failures.Add(-1)
		return errScripted
	}

	<-ctx.Done()
	return ctx.Err()
}

// String names the service in suture's log events.
func (m *MockService) String() string {
	return m.name
}
