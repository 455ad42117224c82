package validate

import (
	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// ActorFaults validates doc as an actor: a persistent object of one of
// the actor types. Actors are addressable by design, so the persistent
// identifier rules apply, and the property rule table enforces the
// inbox and outbox endpoints.
func (v *Validator) ActorFaults(doc any) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}
	return fault.Union(
		v.ObjectFaultsAs(doc, vocab.ActorTypes...),
		v.persistentIDFaults(d),
	)
}
