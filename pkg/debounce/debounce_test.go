package debounce_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/advocates/pkg/debounce"
)

const delay = 30 * time.Millisecond

func collector() (chan string, func(string)) {
	ch := make(chan string, 16)
	return ch, func(v string) { ch <- v }
}

func TestSinglePushEmits(t *testing.T) {
	ch, emit := collector()
	d := debounce.New(delay, emit)

	d.Push("card")

	select {
	case got := <-ch:
		if got != "card" {
			t.Errorf("emitted %q, want card", got)
		}
	case <-time.After(time.Second):
		t.Fatal("value was not emitted")
	}
}

func TestRapidPushesEmitLatestOnce(t *testing.T) {
	ch, emit := collector()
	d := debounce.New(delay, emit)

	for _, v := range []string{"c", "ca", "car", "card"} {
		d.Push(v)
		time.Sleep(delay / 3)
	}

	select {
	case got := <-ch:
		if got != "card" {
			t.Errorf("emitted %q, want card", got)
		}
	case <-time.After(time.Second):
		t.Fatal("value was not emitted")
	}

	select {
	case extra := <-ch:
		t.Errorf("unexpected second emission %q", extra)
	case <-time.After(3 * delay):
	}
}

func TestCancelDropsPending(t *testing.T) {
	ch, emit := collector()
	d := debounce.New(delay, emit)

	d.Push("card")
	if !d.Pending() {
		t.Error("Pending() = false after Push")
	}
	d.Cancel()
	if d.Pending() {
		t.Error("Pending() = true after Cancel")
	}

	select {
	case got := <-ch:
		t.Errorf("cancelled value emitted: %q", got)
	case <-time.After(3 * delay):
	}
}

func TestPendingClearsAfterEmit(t *testing.T) {
	ch, emit := collector()
	d := debounce.New(delay, emit)

	d.Push("x")
	<-ch

	if d.Pending() {
		t.Error("Pending() = true after emission")
	}
}

func TestDefaultDelay(t *testing.T) {
	d := debounce.New(0, func(int) {})
	if d.Delay() != debounce.DefaultDelay {
		t.Errorf("Delay() = %v, want %v", d.Delay(), debounce.DefaultDelay)
	}
}
