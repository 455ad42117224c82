package validator

import (
	"encoding/json"

	"github.com/c360studio/apcheck/fault"
)

// Profile selects which validator answers a request.
type Profile string

// The recognized validation profiles.
const (
	ProfileObject     Profile = "object"
	ProfilePersistent Profile = "persistent"
	ProfileActor      Profile = "actor"
	ProfileActivity   Profile = "activity"
	ProfileLink       Profile = "link"
	ProfileCollection Profile = "collection"
)

func (p Profile) orDefault() Profile {
	if p == "" {
		return ProfileObject
	}
	return p
}

// String returns the profile name.
func (p Profile) String() string {
	return string(p)
}

// Request is a validation request message.
type Request struct {
	// Document is the raw JSON document to validate.
	Document json.RawMessage `json:"document"`

	// Profile selects the validator; empty means "object".
	Profile Profile `json:"profile,omitempty"`
}

// Response is a validation reply message.
type Response struct {
	// Valid is true when no faults were found.
	Valid bool `json:"valid"`

	// Faults lists every fault found, in emission order.
	Faults []fault.Fault `json:"faults"`

	// Error reports a request-level failure (malformed request or
	// document), distinct from document faults.
	Error string `json:"error,omitempty"`
}

func newResponse(faults []fault.Fault) Response {
	if faults == nil {
		faults = []fault.Fault{}
	}
	return Response{Valid: len(faults) == 0, Faults: faults}
}
