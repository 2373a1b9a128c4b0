package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// ImpactAssessment captures free-text impact notes per dimension
type ImpactAssessment struct {
	Financial    string `json:"financial" firestore:"financial"`
	Operational  string `json:"operational" firestore:"operational"`
	Reputational string `json:"reputational" firestore:"reputational"`
	DataImpact   string `json:"dataImpact" firestore:"data_impact"`
}

// NotificationEntry tracks whether one audience has to be notified and
// whether that already happened
type NotificationEntry struct {
	Required  bool       `json:"required" firestore:"required"`
	Completed bool       `json:"completed" firestore:"completed"`
	Date      *time.Time `json:"date,omitempty" firestore:"date"`
}

// NotificationStatus groups the notification duties per audience
type NotificationStatus struct {
	Authorities  NotificationEntry `json:"authorities" firestore:"authorities"`
	DataSubjects NotificationEntry `json:"dataSubjects" firestore:"data_subjects"`
}

// Incident is the aggregate root of the response data model. Tasks,
// evidence and timeline events all carry a mandatory back-reference to
// exactly one incident.
type Incident struct {
	ID                 types.IncidentID     `json:"id" firestore:"id"`
	Title              string               `json:"title" firestore:"title"`
	Description        string               `json:"description" firestore:"description"`
	AffectedSystems    []string             `json:"affectedSystems" firestore:"affected_systems"`
	Status             types.IncidentStatus `json:"status" firestore:"status"`
	Severity           types.Severity       `json:"severity" firestore:"severity"`
	Priority           types.Priority       `json:"priority" firestore:"priority"`
	IncidentType       types.IncidentType   `json:"incidentType" firestore:"incident_type"`
	DetectionDate      time.Time            `json:"detectionDate" firestore:"detection_date"`
	StartDate          *time.Time           `json:"startDate,omitempty" firestore:"start_date"`
	EndDate            *time.Time           `json:"endDate,omitempty" firestore:"end_date"`
	Coordinator        types.UserID         `json:"coordinator,omitempty" firestore:"coordinator"`
	Team               []types.UserID       `json:"team" firestore:"team"`
	ImpactAssessment   ImpactAssessment     `json:"impactAssessment" firestore:"impact_assessment"`
	NotificationStatus NotificationStatus   `json:"notificationStatus" firestore:"notification_status"`
	Tags               []string             `json:"tags" firestore:"tags"`
	CreatedAt          time.Time            `json:"createdAt" firestore:"created_at"`
	UpdatedAt          time.Time            `json:"updatedAt" firestore:"updated_at"`
}

// IncidentPatch is a partial update for an incident. Value fields merge
// only when non-zero; pointer fields merge whenever they are present.
// This mirrors the update rule of the dashboard API: an empty string in
// a patch means "not provided", not "clear this field".
type IncidentPatch struct {
	Title              string               `json:"title,omitempty"`
	Description        string               `json:"description,omitempty"`
	AffectedSystems    []string             `json:"affectedSystems,omitempty"`
	Status             types.IncidentStatus `json:"status,omitempty"`
	Severity           types.Severity       `json:"severity,omitempty"`
	StartDate          *time.Time           `json:"startDate,omitempty"`
	EndDate            *time.Time           `json:"endDate,omitempty"`
	Coordinator        types.UserID         `json:"coordinator,omitempty"`
	Team               []types.UserID       `json:"team,omitempty"`
	Priority           types.Priority       `json:"priority,omitempty"`
	IncidentType       types.IncidentType   `json:"incidentType,omitempty"`
	ImpactAssessment   *ImpactAssessment    `json:"impactAssessment,omitempty"`
	NotificationStatus *NotificationStatus  `json:"notificationStatus,omitempty"`
	Tags               []string             `json:"tags,omitempty"`
}

// Validate checks enum membership of the provided patch fields
func (p *IncidentPatch) Validate() error {
	if p.Status != "" && !p.Status.IsValid() {
		return goerr.New("invalid incident status", goerr.V("status", p.Status))
	}
	if p.Severity != "" && !p.Severity.IsValid() {
		return goerr.New("invalid severity", goerr.V("severity", p.Severity))
	}
	if p.Priority != "" && !p.Priority.IsValid() {
		return goerr.New("invalid priority", goerr.V("priority", p.Priority))
	}
	if p.IncidentType != "" && !p.IncidentType.IsValid() {
		return goerr.New("invalid incident type", goerr.V("incident_type", p.IncidentType))
	}
	return nil
}

// Apply merges the patch into the incident. Note that a status change
// through a general update does not touch EndDate; only SetStatus does.
func (x *Incident) Apply(p *IncidentPatch) {
	if p.Title != "" {
		x.Title = p.Title
	}
	if p.Description != "" {
		x.Description = p.Description
	}
	if p.AffectedSystems != nil {
		x.AffectedSystems = p.AffectedSystems
	}
	if p.Status != "" {
		x.Status = p.Status
	}
	if p.Severity != "" {
		x.Severity = p.Severity
	}
	if p.StartDate != nil {
		x.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		x.EndDate = p.EndDate
	}
	if p.Coordinator != "" {
		x.Coordinator = p.Coordinator
	}
	if p.Team != nil {
		x.Team = p.Team
	}
	if p.Priority != "" {
		x.Priority = p.Priority
	}
	if p.IncidentType != "" {
		x.IncidentType = p.IncidentType
	}
	if p.ImpactAssessment != nil {
		x.ImpactAssessment = *p.ImpactAssessment
	}
	if p.NotificationStatus != nil {
		x.NotificationStatus = *p.NotificationStatus
	}
	if p.Tags != nil {
		x.Tags = p.Tags
	}
}

// SetStatus changes the incident status. Closing sets EndDate once; an
// already-set EndDate is never overwritten, so re-closing is idempotent.
// There is no transition graph: any status is reachable from any other.
func (x *Incident) SetStatus(status types.IncidentStatus, now time.Time) {
	x.Status = status
	if status == types.IncidentStatusClosed && x.EndDate == nil {
		t := now
		x.EndDate = &t
	}
}

// IsActive reports whether the incident is still being worked
func (x *Incident) IsActive() bool {
	return x.Status != types.IncidentStatusClosed
}
