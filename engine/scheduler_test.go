package engine

import (
	"testing"

	"github.com/rennick7/arena/obj"
)

func TestSchedulerFiresAfterFrames(t *testing.T) {
	s := newScheduler()
	fired := 0
	s.after(3, func() { fired++ })

	s.step()
	s.step()
	if fired != 0 {
		t.Fatalf("fired early after 2 frames")
	}
	s.step()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1 after 3 frames", fired)
	}
	s.step()
	if fired != 1 {
		t.Fatalf("callback ran again after firing")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := newScheduler()
	fired := false
	h := s.after(2, func() { fired = true })
	s.cancel(h)

	for i := 0; i < 5; i++ {
		s.step()
	}
	if fired {
		t.Fatalf("cancelled timer fired")
	}
	if len(s.pending) != 0 {
		t.Fatalf("cancelled timer left pending")
	}
}

func TestSchedulerZeroFramesFiresNextStep(t *testing.T) {
	s := newScheduler()
	fired := false
	s.after(0, func() { fired = true })
	s.step()
	if !fired {
		t.Fatalf("zero-frame timer must fire on the next step")
	}
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	s := newScheduler()
	var order []string
	s.after(1, func() {
		order = append(order, "first")
		s.after(1, func() { order = append(order, "second") })
	})

	s.step()
	if len(order) != 1 {
		t.Fatalf("nested timer fired on the same frame it was scheduled")
	}
	s.step()
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("order = %v, want [first second]", order)
	}
}

func TestSchedulerCallbackMayCancelPeer(t *testing.T) {
	s := newScheduler()
	fired := false

	// The canceller gets the lower handle, so it runs first and cancels
	// the victim due on the same frame.
	var victim obj.TimerHandle
	s.after(1, func() { s.cancel(victim) })
	victim = s.after(1, func() { fired = true })

	s.step()
	if fired {
		t.Fatalf("peer timer fired despite being cancelled in the same frame")
	}
	if len(s.pending) != 0 {
		t.Fatalf("pending timers left: %d", len(s.pending))
	}
}
