package game

import "arcadepong/internal/pong"

// Recorder receives gameplay counters. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	PaddleHit(side pong.Side)
	WallHit()
	Point(side pong.Side)
	Rally(hits int)
	MatchFinished(mode pong.GameMode, winner pong.Side)
}

type nopRecorder struct{}

func (nopRecorder) PaddleHit(pong.Side)                    {}
func (nopRecorder) WallHit()                               {}
func (nopRecorder) Point(pong.Side)                        {}
func (nopRecorder) Rally(int)                              {}
func (nopRecorder) MatchFinished(pong.GameMode, pong.Side) {}
