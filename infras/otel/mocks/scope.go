package mocks

import "seatpos/infras/otel"

type scope struct {
	recorder *Recorder
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) End() {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	if s.recorder != nil {
		s.recorder.trace(err)
	}
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// NewScope returns a scope that records nothing.
func NewScope() otel.Scope {
	return &scope{}
}
