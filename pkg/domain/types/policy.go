package types

import "github.com/m-mizutani/goerr/v2"

// DeletePolicy decides what happens to tasks, evidence and timeline
// events when their incident is deleted.
type DeletePolicy string

const (
	// DeletePolicyOrphan leaves child records in place with a dangling
	// incident reference. This is the default.
	DeletePolicyOrphan DeletePolicy = "orphan"
	// DeletePolicyCascade deletes all child records with the incident.
	DeletePolicyCascade DeletePolicy = "cascade"
	// DeletePolicyReject refuses to delete an incident that still has
	// child records.
	DeletePolicyReject DeletePolicy = "reject"
)

// AllDeletePolicies returns all valid delete policies
func AllDeletePolicies() []DeletePolicy {
	return []DeletePolicy{DeletePolicyOrphan, DeletePolicyCascade, DeletePolicyReject}
}

// IsValid reports whether the policy is one of the known values
func (x DeletePolicy) IsValid() bool {
	for _, p := range AllDeletePolicies() {
		if x == p {
			return true
		}
	}
	return false
}

// String returns the string representation of the policy
func (x DeletePolicy) String() string { return string(x) }

// Validate returns an error for unknown policies
func (x DeletePolicy) Validate() error {
	if !x.IsValid() {
		return goerr.New("invalid delete policy", goerr.V("policy", x))
	}
	return nil
}
