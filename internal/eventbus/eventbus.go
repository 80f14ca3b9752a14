package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"reel/internal/domain"
	"reel/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideChanged        = domain.EventSlideChanged
	EventPlaybackChanged     = domain.EventPlaybackChanged
	EventDeckLoaded          = domain.EventDeckLoaded
	EventDeckReloadRequested = domain.EventDeckReloadRequested
	EventError               = domain.EventError
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
)

// Re-export domain event types
type SlideChangedEvent = domain.SlideChangedEvent
type PlaybackChangedEvent = domain.PlaybackChangedEvent
type DeckLoadedEvent = domain.DeckLoadedEvent
type DeckReloadRequestedEvent = domain.DeckReloadRequestedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type registration struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]registration
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

// New creates a new event bus
func New(logger *slog.Logger) EventBus {
	if logger == nil {
		logger = logging.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]registration),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       logger,
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Slide changes fire every few seconds under auto-play
	if event.Type() != EventSlideChanged {
		b.log.Debug("eventbus: publishing", "event", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.log.Warn("eventbus: channel full, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.handlers[eventType]
		for i, r := range regs {
			if r.id == id {
				b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy handlers so none run under the lock
			b.mu.RLock()
			regs := make([]registration, len(b.handlers[event.Type()]))
			copy(regs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, r := range regs {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if rec := recover(); rec != nil {
							b.log.Error("eventbus: handler panic", "event", eventType, "panic", rec, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(r.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
