package quiz

import (
	"testing"
	"time"
)

func TestCountdownFires(t *testing.T) {
	c := newCountdown(5 * time.Millisecond)
	fired := make(chan uint64, 1)

	c.arm(func(gen uint64) { fired <- gen })

	select {
	case gen := <-fired:
		if !c.valid(gen) {
			t.Error("fired generation should still be valid")
		}
	case <-time.After(time.Second):
		t.Fatal("armed countdown never fired")
	}
}

func TestCountdownStopPreventsCallback(t *testing.T) {
	c := newCountdown(20 * time.Millisecond)
	fired := make(chan uint64, 1)

	c.arm(func(gen uint64) { fired <- gen })
	c.stop()

	select {
	case gen := <-fired:
		// The timer may already have been in flight; the generation check is
		// what protects the engine.
		if c.valid(gen) {
			t.Error("generation should be invalid after stop")
		}
	case <-time.After(100 * time.Millisecond):
		// Timer cancelled before firing; also fine.
	}
}

func TestCountdownRearmInvalidatesPrevious(t *testing.T) {
	c := newCountdown(5 * time.Millisecond)
	fired := make(chan uint64, 2)

	c.arm(func(gen uint64) { fired <- gen })
	first := c.gen
	c.arm(func(gen uint64) { fired <- gen })

	if c.valid(first) {
		t.Error("re-arming must invalidate the previous generation")
	}

	select {
	case gen := <-fired:
		if gen == first && c.valid(gen) {
			t.Error("stale generation reported as valid")
		}
	case <-time.After(time.Second):
		t.Fatal("re-armed countdown never fired")
	}
}

func TestCountdownInertWithoutInterval(t *testing.T) {
	c := newCountdown(0)
	c.arm(func(uint64) { t.Error("inert countdown must not schedule callbacks") })
	time.Sleep(20 * time.Millisecond)
	if c.timer != nil {
		t.Error("inert countdown should hold no timer")
	}
}
