package validate

import (
	"context"

	"github.com/c360studio/apcheck/fault"
)

// The duck-typing predicates reduce a fault list to a boolean: the
// document is accepted when no fault at or above the configured
// RejectSeverity remains. They never panic; any failure inside the
// validators folds into a false result.

// IsObject reports whether doc is acceptable as a plain object.
func (v *Validator) IsObject(doc any) bool {
	return v.accepts(func() []fault.Fault { return v.ObjectFaults(doc) })
}

// IsActor reports whether doc is acceptable as an actor.
func (v *Validator) IsActor(doc any) bool {
	return v.accepts(func() []fault.Fault { return v.ActorFaults(doc) })
}

// IsActivity reports whether doc is acceptable as an activity.
func (v *Validator) IsActivity(ctx context.Context, doc any) bool {
	return v.accepts(func() []fault.Fault { return v.ActivityFaults(ctx, doc) })
}

// IsLink reports whether doc is acceptable as a link.
func (v *Validator) IsLink(doc any) bool {
	return v.accepts(func() []fault.Fault { return v.LinkFaults(doc) })
}

// IsCollection reports whether doc is acceptable as a collection.
func (v *Validator) IsCollection(ctx context.Context, doc any) bool {
	return v.accepts(func() []fault.Fault { return v.CollectionFaults(ctx, doc) })
}

func (v *Validator) accepts(run func() []fault.Fault) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Warn("validator panicked; treating document as rejected", "panic", r)
			ok = false
		}
	}()
	return len(fault.FilterBySeverity(run(), v.cfg.RejectSeverity)) == 0
}
