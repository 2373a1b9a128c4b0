package types

import "fmt"

// IncidentStatus represents the response phase an incident is in
type IncidentStatus string

const (
	IncidentStatusNew           IncidentStatus = "new"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusContainment   IncidentStatus = "containment"
	IncidentStatusEradication   IncidentStatus = "eradication"
	IncidentStatusRecovery      IncidentStatus = "recovery"
	IncidentStatusClosed        IncidentStatus = "closed"
)

// AllIncidentStatuses returns all valid incident statuses
func AllIncidentStatuses() []IncidentStatus {
	return []IncidentStatus{
		IncidentStatusNew,
		IncidentStatusInvestigating,
		IncidentStatusContainment,
		IncidentStatusEradication,
		IncidentStatusRecovery,
		IncidentStatusClosed,
	}
}

// IsValid checks if the incident status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusNew,
		IncidentStatusInvestigating,
		IncidentStatusContainment,
		IncidentStatusEradication,
		IncidentStatusRecovery,
		IncidentStatusClosed:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as IncidentStatusNew
func (s IncidentStatus) Normalize() IncidentStatus {
	if s == "" {
		return IncidentStatusNew
	}
	return s
}

// String returns the string representation of the incident status
func (s IncidentStatus) String() string {
	return string(s)
}

// ParseIncidentStatus parses a string into an IncidentStatus
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	status := IncidentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid incident status: %s", s)
	}
	return status, nil
}

// Severity represents how badly an incident affects the organization
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// AllSeverities returns all valid severities
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Normalize returns the severity, treating empty as SeverityMedium
func (s Severity) Normalize() Severity {
	if s == "" {
		return SeverityMedium
	}
	return s
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// Priority represents how urgently an incident needs attention
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns all valid priorities
func AllPriorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Normalize returns the priority, treating empty as PriorityMedium
func (p Priority) Normalize() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// IncidentType classifies the kind of attack or compromise
type IncidentType string

const (
	IncidentTypeRansomware    IncidentType = "ransomware"
	IncidentTypePhishing      IncidentType = "phishing"
	IncidentTypeDataBreach    IncidentType = "data-breach"
	IncidentTypeDDoS          IncidentType = "ddos"
	IncidentTypeMalware       IncidentType = "malware"
	IncidentTypeInsiderThreat IncidentType = "insider-threat"
	IncidentTypeOther         IncidentType = "other"
)

// AllIncidentTypes returns all valid incident types
func AllIncidentTypes() []IncidentType {
	return []IncidentType{
		IncidentTypeRansomware,
		IncidentTypePhishing,
		IncidentTypeDataBreach,
		IncidentTypeDDoS,
		IncidentTypeMalware,
		IncidentTypeInsiderThreat,
		IncidentTypeOther,
	}
}

// IsValid checks if the incident type is valid
func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentTypeRansomware,
		IncidentTypePhishing,
		IncidentTypeDataBreach,
		IncidentTypeDDoS,
		IncidentTypeMalware,
		IncidentTypeInsiderThreat,
		IncidentTypeOther:
		return true
	default:
		return false
	}
}

// Normalize returns the incident type, treating empty as IncidentTypeOther
func (t IncidentType) Normalize() IncidentType {
	if t == "" {
		return IncidentTypeOther
	}
	return t
}

// String returns the string representation of the incident type
func (t IncidentType) String() string {
	return string(t)
}
