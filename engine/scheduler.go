package engine

import (
	"sort"

	"github.com/rennick7/arena/obj"
)

type scheduledCall struct {
	remaining int
	fn        func()
}

// scheduler runs deferred callbacks on the game loop. Timing is
// frame-based; handles are never reused within a stage's lifetime.
type scheduler struct {
	next    obj.TimerHandle
	pending map[obj.TimerHandle]*scheduledCall
}

func newScheduler() *scheduler {
	return &scheduler{pending: map[obj.TimerHandle]*scheduledCall{}}
}

func (s *scheduler) after(frames int, fn func()) obj.TimerHandle {
	if frames < 1 {
		frames = 1
	}
	s.next++
	s.pending[s.next] = &scheduledCall{remaining: frames, fn: fn}
	return s.next
}

func (s *scheduler) cancel(h obj.TimerHandle) {
	delete(s.pending, h)
}

// step advances every pending timer one frame and fires the due ones in
// handle order. Callbacks may schedule or cancel further timers; a
// timer scheduled during step first ticks on the next frame.
func (s *scheduler) step() {
	var due []obj.TimerHandle
	for h, c := range s.pending {
		c.remaining--
		if c.remaining <= 0 {
			due = append(due, h)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	for _, h := range due {
		c, ok := s.pending[h]
		if !ok {
			// cancelled by an earlier callback this frame
			continue
		}
		delete(s.pending, h)
		c.fn()
	}
}
