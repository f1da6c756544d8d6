// Package shutdown runs cleanup hooks, lowest priority first, when the process is interrupted.
package shutdown

import (
	"container/heap"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

const (
	// PriorityOutput hooks remove files that were only partly written
	PriorityOutput  = 0
	PriorityDefault = 100
)

type Hook struct {
	label    string
	priority int
	seq      int
	fn       func()
	index    int // for heap interface
}

type HookHeap []*Hook

func (h HookHeap) Len() int { return len(h) }
func (h HookHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h HookHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *HookHeap) Push(x interface{}) {
	n := len(*h)
	item := x.(*Hook)
	item.index = n
	*h = append(*h, item)
}

func (h *HookHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

var (
	hooks    HookHeap
	hooksMux sync.Mutex
	seq      int
	once     sync.Once
	exit     = os.Exit
)

// AddHook registers a hook with default priority. The returned func unregisters it.
func AddHook(label string, fn func()) func() {
	return AddHookWithPriority(label, PriorityDefault, fn)
}

// AddHookWithPriority registers a hook that runs on Shutdown unless the returned func
// is called first.
func AddHookWithPriority(label string, priority int, fn func()) func() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	seq++
	hook := &Hook{label: label, priority: priority, seq: seq, fn: fn}
	heap.Push(&hooks, hook)
	return func() {
		hooksMux.Lock()
		defer hooksMux.Unlock()
		if hook.index >= 0 && hook.index < len(hooks) && hooks[hook.index] == hook {
			heap.Remove(&hooks, hook.index)
		}
	}
}

// Shutdown executes all registered hooks in priority order
func Shutdown() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	if len(hooks) == 0 {
		return
	}

	logger.Debugf("Executing %d shutdown hooks", len(hooks))
	for hooks.Len() > 0 {
		hook := heap.Pop(&hooks).(*Hook)
		logger.Debugf("Executing shutdown hook: %s (priority=%d)", hook.label, hook.priority)

		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("Panic in shutdown hook %s: %v", hook.label, r)
				}
			}()
			hook.fn()
		}()
	}
}

// Listen runs the hooks and exits on the first SIGINT or SIGTERM. A second signal
// exits immediately. Calling Listen more than once has no further effect.
func Listen() {
	once.Do(func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		go func() {
			sig := <-sigChan
			fmt.Fprintf(os.Stderr, "\nReceived %s, cleaning up (press Ctrl+C again to exit immediately)\n", sig)
			go func() {
				<-sigChan
				exit(1)
			}()
			Shutdown()
			exit(130)
		}()
	})
}
