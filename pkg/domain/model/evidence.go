package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// DefaultCustodyNotes is recorded when an update does not carry its own
// custody notes
const DefaultCustodyNotes = "Evidence metadata updated"

// InitialCustodyNotes is recorded on the custody entry created together
// with the evidence record
const InitialCustodyNotes = "Initial collection"

// CustodyEntry is one link of the chain of custody: who touched the
// evidence, when, and how
type CustodyEntry struct {
	User      types.UserID        `json:"user" firestore:"user"`
	Action    types.CustodyAction `json:"action" firestore:"action"`
	Timestamp time.Time           `json:"timestamp" firestore:"timestamp"`
	Notes     string              `json:"notes,omitempty" firestore:"notes"`
}

// Evidence is an artifact collected during incident response. The file
// itself lives outside this system; only path, hash and size are kept.
// The chain of custody is append-only: entries are never edited,
// reordered or removed.
type Evidence struct {
	ID             types.EvidenceID   `json:"id" firestore:"id"`
	IncidentID     types.IncidentID   `json:"incident" firestore:"incident_id"`
	Name           string             `json:"name" firestore:"name"`
	Description    string             `json:"description,omitempty" firestore:"description"`
	Type           types.EvidenceType `json:"type" firestore:"type"`
	CollectedBy    types.UserID       `json:"collectedBy" firestore:"collected_by"`
	CollectionDate time.Time          `json:"collectionDate" firestore:"collection_date"`
	Location       string             `json:"location,omitempty" firestore:"location"`
	FilePath       string             `json:"filePath,omitempty" firestore:"file_path"`
	Hash           string             `json:"hash,omitempty" firestore:"hash"`
	Size           int64              `json:"size,omitempty" firestore:"size"`
	Tags           []string           `json:"tags" firestore:"tags"`
	Metadata       map[string]string  `json:"metadata,omitempty" firestore:"metadata"`
	ChainOfCustody []CustodyEntry     `json:"chainOfCustody" firestore:"chain_of_custody"`
	CreatedAt      time.Time          `json:"createdAt" firestore:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" firestore:"updated_at"`
}

// EvidencePatch is a partial update for evidence metadata
type EvidencePatch struct {
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        types.EvidenceType `json:"type,omitempty"`
	Location    string             `json:"location,omitempty"`
	FilePath    string             `json:"filePath,omitempty"`
	Hash        string             `json:"hash,omitempty"`
	Size        int64              `json:"size,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Metadata    map[string]string  `json:"metadata,omitempty"`
}

// Validate checks enum membership of the provided patch fields
func (p *EvidencePatch) Validate() error {
	if p.Type != "" && !p.Type.IsValid() {
		return goerr.New("invalid evidence type", goerr.V("type", p.Type))
	}
	return nil
}

// Apply merges the patch and unconditionally appends a `modified`
// custody entry attributed to the editor. The entry is appended on
// every update call, whether or not any field actually changed.
func (x *Evidence) Apply(p *EvidencePatch, editor types.UserID, custodyNotes string, now time.Time) {
	if p.Name != "" {
		x.Name = p.Name
	}
	if p.Description != "" {
		x.Description = p.Description
	}
	if p.Type != "" {
		x.Type = p.Type
	}
	if p.Location != "" {
		x.Location = p.Location
	}
	if p.FilePath != "" {
		x.FilePath = p.FilePath
	}
	if p.Hash != "" {
		x.Hash = p.Hash
	}
	if p.Size != 0 {
		x.Size = p.Size
	}
	if p.Tags != nil {
		x.Tags = p.Tags
	}
	if p.Metadata != nil {
		x.Metadata = p.Metadata
	}

	if custodyNotes == "" {
		custodyNotes = DefaultCustodyNotes
	}
	x.AddCustodyEntry(editor, types.CustodyActionModified, custodyNotes, now)
}

// AddCustodyEntry appends an arbitrary custody entry. This is the only
// path that records accessed, transferred and analyzed actions.
func (x *Evidence) AddCustodyEntry(user types.UserID, action types.CustodyAction, notes string, now time.Time) {
	x.ChainOfCustody = append(x.ChainOfCustody, CustodyEntry{
		User:      user,
		Action:    action,
		Timestamp: now,
		Notes:     notes,
	})
}
