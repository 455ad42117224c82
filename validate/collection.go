package validate

import (
	"context"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// CollectionFaults validates doc as a collection, dispatching on its
// declared type. Simple collections must carry an items or orderedItems
// sequence whose elements each validate as object references; a
// collection with no items must instead carry first/last paging
// references; collection pages are validated like simple collections
// plus their optional partOf, next and prev back-references. A document
// that is not collection-typed at all is faulted expected-collection.
func (v *Validator) CollectionFaults(ctx context.Context, doc any) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}

	base := v.ObjectFaults(doc)
	switch {
	case d.HasType(vocab.CollectionPageTypes...):
		return fault.Union(base, v.pageShapeFaults(ctx, d))
	case d.HasType(vocab.CollectionTypes...):
		return fault.Union(base, v.collectionShapeFaults(ctx, d))
	default:
		return fault.Union(base, []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeExpectedCollection)})
	}
}

// CollectionPageFaults validates doc as a collection page specifically;
// a non-page collection type is not acceptable here.
func (v *Validator) CollectionPageFaults(ctx context.Context, doc any) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}
	if !d.HasType(vocab.CollectionPageTypes...) {
		return fault.Union(v.ObjectFaults(doc),
			[]fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeExpectedCollectionPage)})
	}
	return fault.Union(v.ObjectFaults(doc), v.pageShapeFaults(ctx, d))
}

// collectionShapeFaults handles the simple/paged split for unpaged
// collection types: items present means the simple shape, first/last
// present means the paged shape, neither is faulted.
func (v *Validator) collectionShapeFaults(ctx context.Context, d vocab.Document) []fault.Fault {
	if items, ok := collectionItems(d); ok {
		return v.itemsReferenceFaults(ctx, items)
	}
	if d.Has("first") || d.Has("last") {
		return v.pagedFaults(ctx, d)
	}
	return []fault.Fault{v.newFault(fault.SeverityMust, fault.CodeNoItems)}
}

// pagedFaults validates the paged collection shape: first is required,
// last is expected, and both resolve to collection pages.
func (v *Validator) pagedFaults(ctx context.Context, d vocab.Document) []fault.Fault {
	var faults []fault.Fault
	if !d.Has("first") {
		faults = append(faults, v.newFault(fault.SeverityMust, fault.CodeNoFirst))
	} else {
		faults = fault.Union(faults, v.backReferenceFaults(ctx, d.Get("first"), vocab.CollectionPageTypes,
			vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidFirst}))
	}
	if !d.Has("last") {
		faults = append(faults, v.newFault(fault.SeverityShould, fault.CodeNoLast))
	} else {
		faults = fault.Union(faults, v.backReferenceFaults(ctx, d.Get("last"), vocab.CollectionPageTypes,
			vocab.FaultSpec{Severity: fault.SeverityShould, Code: fault.CodeInvalidLast}))
	}
	return faults
}

// pageShapeFaults validates a collection page: its items like a simple
// collection, plus the optional references back into the paged parent.
func (v *Validator) pageShapeFaults(ctx context.Context, d vocab.Document) []fault.Fault {
	var faults []fault.Fault
	if items, ok := collectionItems(d); ok {
		faults = v.itemsReferenceFaults(ctx, items)
	} else {
		faults = []fault.Fault{v.newFault(fault.SeverityMust, fault.CodeNoItems)}
	}

	faults = fault.Union(faults,
		v.backReferenceFaults(ctx, d.Get("partOf"), vocab.CollectionTypes,
			vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidPartOf}),
		v.backReferenceFaults(ctx, d.Get("next"), vocab.CollectionPageTypes,
			vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidNext}),
		v.backReferenceFaults(ctx, d.Get("prev"), vocab.CollectionPageTypes,
			vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidPrev}),
	)
	return faults
}

// itemsReferenceFaults resolves each collection element as an object
// reference. Non-sequence items values are already faulted by the
// property rule table and are skipped here.
func (v *Validator) itemsReferenceFaults(ctx context.Context, items any) []fault.Fault {
	if !vocab.IsObjectOrRef(items) {
		return nil
	}
	faults, err := v.CollObjectReference(ctx, items, nil,
		vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidItems})
	if err != nil {
		return nil
	}
	return faults
}

// backReferenceFaults resolves an optional paging reference. A nil
// value means the property is absent; malformed values are left to the
// rule table.
func (v *Validator) backReferenceFaults(ctx context.Context, value any, expected []string, invalid vocab.FaultSpec) []fault.Fault {
	if value == nil || !vocab.IsObjectOrRef(value) {
		return nil
	}
	return v.resolveReference(ctx, value, expected, invalid, 0)
}

// collectionItems returns the items or orderedItems value, whichever is
// present.
func collectionItems(d vocab.Document) (any, bool) {
	if d.Has("items") {
		return d.Get("items"), true
	}
	if d.Has("orderedItems") {
		return d.Get("orderedItems"), true
	}
	return nil, false
}
