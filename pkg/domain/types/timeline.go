package types

import "fmt"

// EventCategory classifies a timeline event
type EventCategory string

const (
	EventCategoryAttack       EventCategory = "attack"
	EventCategoryDetection    EventCategory = "detection"
	EventCategoryResponse     EventCategory = "response"
	EventCategoryNotification EventCategory = "notification"
	EventCategoryRecovery     EventCategory = "recovery"
	EventCategoryOther        EventCategory = "other"
)

// AllEventCategories returns all valid event categories
func AllEventCategories() []EventCategory {
	return []EventCategory{
		EventCategoryAttack,
		EventCategoryDetection,
		EventCategoryResponse,
		EventCategoryNotification,
		EventCategoryRecovery,
		EventCategoryOther,
	}
}

// IsValid checks if the event category is valid
func (c EventCategory) IsValid() bool {
	switch c {
	case EventCategoryAttack,
		EventCategoryDetection,
		EventCategoryResponse,
		EventCategoryNotification,
		EventCategoryRecovery,
		EventCategoryOther:
		return true
	default:
		return false
	}
}

// Normalize returns the category, treating empty as EventCategoryOther
func (c EventCategory) Normalize() EventCategory {
	if c == "" {
		return EventCategoryOther
	}
	return c
}

// String returns the string representation of the event category
func (c EventCategory) String() string {
	return string(c)
}

// ParseEventCategory parses a string into an EventCategory
func ParseEventCategory(s string) (EventCategory, error) {
	category := EventCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid event category: %s", s)
	}
	return category, nil
}

// EventSeverity grades a timeline event; unlike incident severity it
// includes an informational level
type EventSeverity string

const (
	EventSeverityCritical EventSeverity = "critical"
	EventSeverityHigh     EventSeverity = "high"
	EventSeverityMedium   EventSeverity = "medium"
	EventSeverityLow      EventSeverity = "low"
	EventSeverityInfo     EventSeverity = "info"
)

// AllEventSeverities returns all valid event severities
func AllEventSeverities() []EventSeverity {
	return []EventSeverity{
		EventSeverityCritical,
		EventSeverityHigh,
		EventSeverityMedium,
		EventSeverityLow,
		EventSeverityInfo,
	}
}

// IsValid checks if the event severity is valid
func (s EventSeverity) IsValid() bool {
	switch s {
	case EventSeverityCritical,
		EventSeverityHigh,
		EventSeverityMedium,
		EventSeverityLow,
		EventSeverityInfo:
		return true
	default:
		return false
	}
}

// Normalize returns the severity, treating empty as EventSeverityInfo
func (s EventSeverity) Normalize() EventSeverity {
	if s == "" {
		return EventSeverityInfo
	}
	return s
}

// String returns the string representation of the event severity
func (s EventSeverity) String() string {
	return string(s)
}
