package types

import "fmt"

// EvidenceType classifies collected evidence
type EvidenceType string

const (
	EvidenceTypeLog            EvidenceType = "log"
	EvidenceTypeImage          EvidenceType = "image"
	EvidenceTypeMemoryDump     EvidenceType = "memory-dump"
	EvidenceTypeNetworkCapture EvidenceType = "network-capture"
	EvidenceTypeFile           EvidenceType = "file"
	EvidenceTypeOther          EvidenceType = "other"
)

// AllEvidenceTypes returns all valid evidence types
func AllEvidenceTypes() []EvidenceType {
	return []EvidenceType{
		EvidenceTypeLog,
		EvidenceTypeImage,
		EvidenceTypeMemoryDump,
		EvidenceTypeNetworkCapture,
		EvidenceTypeFile,
		EvidenceTypeOther,
	}
}

// IsValid checks if the evidence type is valid
func (t EvidenceType) IsValid() bool {
	switch t {
	case EvidenceTypeLog,
		EvidenceTypeImage,
		EvidenceTypeMemoryDump,
		EvidenceTypeNetworkCapture,
		EvidenceTypeFile,
		EvidenceTypeOther:
		return true
	default:
		return false
	}
}

// Normalize returns the evidence type, treating empty as EvidenceTypeOther
func (t EvidenceType) Normalize() EvidenceType {
	if t == "" {
		return EvidenceTypeOther
	}
	return t
}

// String returns the string representation of the evidence type
func (t EvidenceType) String() string {
	return string(t)
}

// CustodyAction describes what happened to a piece of evidence
type CustodyAction string

const (
	CustodyActionCollected   CustodyAction = "collected"
	CustodyActionAccessed    CustodyAction = "accessed"
	CustodyActionModified    CustodyAction = "modified"
	CustodyActionTransferred CustodyAction = "transferred"
	CustodyActionAnalyzed    CustodyAction = "analyzed"
)

// AllCustodyActions returns all valid custody actions
func AllCustodyActions() []CustodyAction {
	return []CustodyAction{
		CustodyActionCollected,
		CustodyActionAccessed,
		CustodyActionModified,
		CustodyActionTransferred,
		CustodyActionAnalyzed,
	}
}

// IsValid checks if the custody action is valid
func (a CustodyAction) IsValid() bool {
	switch a {
	case CustodyActionCollected,
		CustodyActionAccessed,
		CustodyActionModified,
		CustodyActionTransferred,
		CustodyActionAnalyzed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the custody action
func (a CustodyAction) String() string {
	return string(a)
}

// ParseCustodyAction parses a string into a CustodyAction
func ParseCustodyAction(s string) (CustodyAction, error) {
	action := CustodyAction(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid custody action: %s", s)
	}
	return action, nil
}
