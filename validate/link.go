package validate

import (
	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// LinkFaults validates doc as a Link. The href requirement and the
// mediaType, rel and hreflang value checks come from the property rule
// table; this adds only the type-membership constraint.
func (v *Validator) LinkFaults(doc any) []fault.Fault {
	return v.ObjectFaultsAs(doc, vocab.LinkTypes...)
}
