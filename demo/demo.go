// Package demo fabricates the event feed the websocket client would
// normally deliver, so the game runs offline. Bot motion and combat
// events come from a Tengo script evaluated once per tick.
package demo

import (
	_ "embed"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/google/uuid"

	gamenet "github.com/rennick7/arena/net"
)

//go:embed bots.tengo
var defaultScript []byte

const (
	botCount     = 3
	tickInterval = 100 * time.Millisecond
	boostFrames  = 240
)

// Feed produces demo events on the same channel shape as net.Client.
type Feed struct {
	events   chan gamenet.Event
	compiled *tengo.Compiled
	localID  string
	closeCh  chan struct{}
	once     sync.Once
}

// New starts a demo feed running the embedded bot script.
func New(name string) (*Feed, error) {
	return NewScript(name, defaultScript)
}

// NewScript starts a demo feed with a custom bot script.
func NewScript(name string, src []byte) (*Feed, error) {
	compiled, err := compile(src)
	if err != nil {
		return nil, err
	}
	f := &Feed{
		events:   make(chan gamenet.Event, 256),
		compiled: compiled,
		localID:  uuid.NewString(),
		closeCh:  make(chan struct{}),
	}
	go f.run(name)
	return f, nil
}

// compile prepares the script with its globals bound; the compiled
// form is re-run with new t/bot values every tick.
func compile(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	if err := script.Add("t", 0); err != nil {
		return nil, fmt.Errorf("demo: bind t: %w", err)
	}
	if err := script.Add("bot", 0); err != nil {
		return nil, fmt.Errorf("demo: bind bot: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("demo: compile script: %w", err)
	}
	return compiled, nil
}

// step evaluates the script for one bot at one tick.
func step(c *tengo.Compiled, tick, bot int) (x, y float64, act string, err error) {
	if err = c.Set("t", tick); err != nil {
		return 0, 0, "", fmt.Errorf("demo: set t: %w", err)
	}
	if err = c.Set("bot", bot); err != nil {
		return 0, 0, "", fmt.Errorf("demo: set bot: %w", err)
	}
	if err = c.Run(); err != nil {
		return 0, 0, "", fmt.Errorf("demo: run script: %w", err)
	}
	return c.Get("x").Float(), c.Get("y").Float(), c.Get("act").String(), nil
}

// Events returns the fabricated event stream.
func (f *Feed) Events() <-chan gamenet.Event { return f.events }

// LocalID returns the generated session id announced in the hello.
func (f *Feed) LocalID() string { return f.localID }

// Close stops the tick loop.
func (f *Feed) Close() error {
	f.once.Do(func() { close(f.closeCh) })
	return nil
}

func botID(i int) string { return fmt.Sprintf("bot-%d", i+1) }

func (f *Feed) run(name string) {
	f.emit(gamenet.Event{Type: gamenet.TypeHello, ID: f.localID, Name: name, X: 480, Y: 300})

	for i := 0; i < botCount; i++ {
		x, y, _, err := step(f.compiled, 0, i)
		if err != nil {
			log.Printf("demo: spawn bot %d: %v", i, err)
			x, y = 480, 300
		}
		e := gamenet.Event{Type: gamenet.TypeJoin, ID: botID(i), Name: botID(i), X: x, Y: y}
		if i == 0 {
			// one bot with an explicit palette index, the rest hashed
			idx := 2
			e.Color = &idx
		}
		f.emit(e)
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	tick := 0
	for {
		select {
		case <-f.closeCh:
			return
		case <-ticker.C:
		}
		tick++

		for i := 0; i < botCount; i++ {
			x, y, act, err := step(f.compiled, tick, i)
			if err != nil {
				log.Printf("demo: tick %d bot %d: %v", tick, i, err)
				continue
			}
			f.emit(gamenet.Event{Type: gamenet.TypeMove, ID: botID(i), X: x, Y: y})

			switch act {
			case "damage":
				f.emit(gamenet.Event{Type: gamenet.TypeDamage, ID: f.localID, Amount: 10})
			case "heal":
				f.emit(gamenet.Event{Type: gamenet.TypeHeal, ID: f.localID, Amount: 5})
			case "boost":
				f.emit(gamenet.Event{Type: gamenet.TypeBoost, ID: botID(i), Frames: boostFrames})
			}
		}
	}
}

func (f *Feed) emit(e gamenet.Event) {
	select {
	case f.events <- e:
	case <-f.closeCh:
	}
}
