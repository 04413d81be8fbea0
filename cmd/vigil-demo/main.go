// Package main is an interactive demonstration of the vigil engine.
//
// The terminal is the producer: every key press is broadcast to all
// KeyEvent instances in the group. Two listeners consume them - an echo
// listener with callbacks on two separate instances, and a polling
// latency listener that reports how long each keystroke waited for
// dispatch. Press ESC to quit.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vigil"
	"github.com/dshills/vigil/events"
	"github.com/dshills/vigil/registry"
)

func main() {
	os.Exit(run())
}

func run() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Composition root: the per-type instance group and its events.
	group := registry.NewGroup[events.KeyEvent]()
	echoKeys1, _ := events.NewKeyEvent(group, events.DefaultKeyQueueCap)
	echoKeys2, _ := events.NewKeyEvent(group, events.DefaultKeyQueueCap)
	lagKeys, _ := events.NewKeyEvent(group, events.DefaultKeyQueueCap)

	d := &demo{screen: screen}

	// Echo listener: two events, one callback each, blocking worker.
	echo := vigil.NewListener()
	vigil.On(echo, echoKeys1, func(e *events.KeyEvent) {
		if k, ok := e.Front(); ok {
			d.report(1, fmt.Sprintf("echo listener / event 1: %q", k.Rune))
		}
	})
	vigil.On(echo, echoKeys2, func(e *events.KeyEvent) {
		if k, ok := e.Front(); ok {
			d.report(2, fmt.Sprintf("echo listener / event 2: %q", k.Rune))
		}
	})

	// Latency listener: polling worker, two callbacks on one event,
	// running in registration order.
	lag := vigil.NewListener(vigil.WithPollInterval(10 * time.Millisecond))
	vigil.On(lag, lagKeys, func(e *events.KeyEvent) {
		if k, ok := e.Front(); ok {
			d.report(3, fmt.Sprintf("lag listener / first: %q", k.Rune))
		}
	})
	vigil.On(lag, lagKeys, func(e *events.KeyEvent) {
		if k, ok := e.Front(); ok {
			d.report(4, fmt.Sprintf("lag listener / second: %q waited %s",
				k.Rune, time.Since(k.Pressed).Round(time.Microsecond)))
		}
	})

	handler := vigil.NewHandler()
	handler.AddListener(echo)
	handler.AddListener(lag)
	handler.Start()
	// Defensive: Cleanup also stops, so an early return never leaks
	// worker goroutines.
	defer handler.Cleanup()

	d.report(0, "vigil demo - type keys, ESC to quit")

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				handler.Stop()
				return 0
			}
			if ev.Key() == tcell.KeyRune {
				events.Push(group, ev.Rune())
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return 0
		}
	}
}

// demo draws listener output. Callbacks run on worker goroutines, so
// screen access is serialized here.
type demo struct {
	mu     sync.Mutex
	screen tcell.Screen
}

func (d *demo) report(line int, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	width, _ := d.screen.Size()
	style := tcell.StyleDefault
	for x := 0; x < width; x++ {
		d.screen.SetContent(x, line, ' ', nil, style)
	}
	for i, r := range []rune(msg) {
		d.screen.SetContent(i, line, r, nil, style)
	}
	d.screen.Show()
}
