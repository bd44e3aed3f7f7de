package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted  EventType = "SearchSubmitted"
	EventResultOpened     EventType = "ResultOpened"
	EventSettingsChanged  EventType = "SettingsChanged"
	EventHistoryCleared   EventType = "HistoryCleared"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when the user submits a search
type SearchSubmittedEvent struct {
	Query   string
	Surface Surface
	Results int
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// ResultOpenedEvent is emitted when the user opens a result
type ResultOpenedEvent struct {
	Query string
	URL   string
}

func (e ResultOpenedEvent) Type() EventType { return EventResultOpened }

// SettingsChangedEvent is emitted when the user saves new settings
type SettingsChangedEvent struct {
	Settings Settings
}

func (e SettingsChangedEvent) Type() EventType { return EventSettingsChanged }

// HistoryClearedEvent is emitted when the user clears their search history
type HistoryClearedEvent struct{}

func (e HistoryClearedEvent) Type() EventType { return EventHistoryCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	ServerURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
