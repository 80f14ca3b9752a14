package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged        EventType = "SlideChanged"
	EventPlaybackChanged     EventType = "PlaybackChanged"
	EventDeckLoaded          EventType = "DeckLoaded"
	EventDeckReloadRequested EventType = "DeckReloadRequested"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted after the carousel commits a transition
type SlideChangedEvent struct {
	Index     int
	LastIndex int
	Title     string
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// PlaybackChangedEvent is emitted when auto-play is paused or resumed
type PlaybackChangedEvent struct {
	Playing bool
}

func (e PlaybackChangedEvent) Type() EventType { return EventPlaybackChanged }

// DeckLoadedEvent is emitted when a deck has been (re)loaded
type DeckLoadedEvent struct {
	Deck *Deck
	Path string // source that triggered the load, empty at startup
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadRequestedEvent is emitted when slide sources changed on disk
type DeckReloadRequestedEvent struct {
	Path string // file that changed
}

func (e DeckReloadRequestedEvent) Type() EventType { return EventDeckReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
