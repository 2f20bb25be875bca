package demo

import (
	"testing"
	"time"

	gamenet "github.com/rennick7/arena/net"
)

func TestDefaultScriptCompiles(t *testing.T) {
	if _, err := compile(defaultScript); err != nil {
		t.Fatalf("embedded script must compile: %v", err)
	}
}

func TestStepIsDeterministicAndBounded(t *testing.T) {
	c, err := compile(defaultScript)
	if err != nil {
		t.Fatal(err)
	}

	x1, y1, _, err := step(c, 17, 1)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	x2, y2, _, err := step(c, 17, 1)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if x1 != x2 || y1 != y2 {
		t.Fatalf("same tick produced different positions: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
	}

	for tick := 0; tick < 200; tick++ {
		for bot := 0; bot < botCount; bot++ {
			x, y, _, err := step(c, tick, bot)
			if err != nil {
				t.Fatalf("tick %d bot %d: %v", tick, bot, err)
			}
			if x < 200 || x > 760 || y < 100 || y > 500 {
				t.Fatalf("tick %d bot %d out of arena: (%f, %f)", tick, bot, x, y)
			}
		}
	}
}

func TestStepEmitsActions(t *testing.T) {
	c, err := compile(defaultScript)
	if err != nil {
		t.Fatal(err)
	}

	_, _, act, err := step(c, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if act != "damage" {
		t.Fatalf("act at tick 0 bot 0 = %q, want damage", act)
	}

	_, _, act, err = step(c, 140, 0)
	if err != nil {
		t.Fatal(err)
	}
	if act != "heal" {
		t.Fatalf("act at tick 140 bot 0 = %q, want heal", act)
	}
}

func TestFeedAnnouncesHelloThenJoins(t *testing.T) {
	f, err := New("tester")
	if err != nil {
		t.Fatalf("new feed: %v", err)
	}
	defer f.Close()

	read := func() gamenet.Event {
		select {
		case e := <-f.Events():
			return e
		case <-time.After(2 * time.Second):
			t.Fatalf("no event within 2s")
			return gamenet.Event{}
		}
	}

	hello := read()
	if hello.Type != gamenet.TypeHello || hello.ID != f.LocalID() {
		t.Fatalf("first event = %+v, want hello for %s", hello, f.LocalID())
	}

	seen := map[string]bool{}
	explicitColors := 0
	for i := 0; i < botCount; i++ {
		join := read()
		if join.Type != gamenet.TypeJoin {
			t.Fatalf("event %d = %+v, want join", i, join)
		}
		seen[join.ID] = true
		if join.Color != nil {
			explicitColors++
		}
	}
	if len(seen) != botCount {
		t.Fatalf("expected %d distinct bots, got %d", botCount, len(seen))
	}
	if explicitColors != 1 {
		t.Fatalf("expected exactly one bot with an explicit color, got %d", explicitColors)
	}
}

func TestRejectsBrokenScript(t *testing.T) {
	if _, err := NewScript("tester", []byte("x := (")); err == nil {
		t.Fatalf("broken script must fail to compile")
	}
}
