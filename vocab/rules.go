package vocab

import (
	"sort"

	"github.com/c360studio/apcheck/fault"
)

// Cardinality distinguishes single-valued properties from properties
// whose value must itself be a sequence.
type Cardinality int

const (
	// CardinalityOne applies the validator to the value as-is.
	CardinalityOne Cardinality = iota

	// CardinalityMany requires the value to be a sequence and applies
	// the validator to each element.
	CardinalityMany
)

// FaultSpec pairs the severity and code a rule emits on failure.
type FaultSpec struct {
	Severity fault.Severity
	Code     fault.Code
}

// Requirement is the explicit required-ness variant of a rule: always
// required, never required, or required when a predicate over the
// containing document holds.
type Requirement interface {
	// Holds reports whether the property is required for doc.
	Holds(doc Document) bool

	// Conditional reports whether required-ness depends on the document.
	Conditional() bool
}

type alwaysRequired struct{}

func (alwaysRequired) Holds(Document) bool { return true }
func (alwaysRequired) Conditional() bool   { return false }

type neverRequired struct{}

func (neverRequired) Holds(Document) bool { return false }
func (neverRequired) Conditional() bool   { return false }

type requiredIf struct {
	pred func(Document) bool
}

func (r requiredIf) Holds(doc Document) bool { return r.pred(doc) }
func (r requiredIf) Conditional() bool       { return true }

// RequiredAlways marks a property unconditionally required.
func RequiredAlways() Requirement { return alwaysRequired{} }

// RequiredNever marks a property optional.
func RequiredNever() Requirement { return neverRequired{} }

// RequiredIf marks a property required when pred holds for the
// containing document.
func RequiredIf(pred func(Document) bool) Requirement { return requiredIf{pred: pred} }

// Rule is the validation contract for one recognized property. Rules
// are static and immutable; the table is built once at init.
type Rule struct {
	Cardinality Cardinality
	Required    Requirement
	Validate    func(any) bool
	Missing     FaultSpec
	Invalid     FaultSpec
}

// RuleFor looks up the rule for a property name. The vocabulary is
// open: an absent rule means the property is unrecognized and is never
// faulted.
func RuleFor(name string) (Rule, bool) {
	rule, ok := properties[name]
	return rule, ok
}

// RequirableProperties returns, sorted, every property name whose rule
// is unconditionally or conditionally required. CheckAllProperties
// unions these with the keys actually present so required-but-absent
// properties are still checked.
func RequirableProperties() []string {
	var names []string
	for name, rule := range properties {
		if _, never := rule.Required.(neverRequired); !never {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// CheckProperty evaluates the rule for one property of doc. The
// required check and the invalid check are independent: a required
// property that is absent yields the missing fault; a present value
// rejected by the validator yields the invalid fault.
func CheckProperty(doc Document, name string, lookup fault.Lookup) []fault.Fault {
	rule, ok := properties[name]
	if !ok {
		return nil
	}

	var faults []fault.Fault
	if rule.Required.Holds(doc) && !doc.Has(name) {
		faults = append(faults, fault.New(rule.Missing.Severity, rule.Missing.Code, lookup))
	}

	if doc.Has(name) {
		value := doc.Get(name)
		valid := false
		switch rule.Cardinality {
		case CardinalityMany:
			if seq, isSeq := value.([]any); isSeq {
				valid = true
				for _, elem := range seq {
					if !rule.Validate(elem) {
						valid = false
						break
					}
				}
			}
		default:
			valid = rule.Validate(value)
		}
		if !valid {
			faults = append(faults, fault.New(rule.Invalid.Severity, rule.Invalid.Code, lookup))
		}
	}

	return faults
}

// CheckAllProperties evaluates every applicable rule for doc: the
// union of keys present in the document and of all requirable property
// names. Unknown keys are ignored.
func CheckAllProperties(doc Document, lookup fault.Lookup) []fault.Fault {
	checked := make(map[string]bool, len(doc))
	var faults []fault.Fault

	for _, name := range doc.PropertyNames() {
		checked[name] = true
		faults = fault.Union(faults, CheckProperty(doc, name, lookup))
	}
	for _, name := range RequirableProperties() {
		if checked[name] {
			continue
		}
		faults = fault.Union(faults, CheckProperty(doc, name, lookup))
	}
	return faults
}

func must(code fault.Code) FaultSpec   { return FaultSpec{Severity: fault.SeverityMust, Code: code} }
func should(code fault.Code) FaultSpec { return FaultSpec{Severity: fault.SeverityShould, Code: code} }
func minor(code fault.Code) FaultSpec  { return FaultSpec{Severity: fault.SeverityMinor, Code: code} }

// optional is shorthand for a never-required rule with one value shape.
func optional(validate func(any) bool, invalid FaultSpec) Rule {
	return Rule{
		Cardinality: CardinalityOne,
		Required:    RequiredNever(),
		Validate:    validate,
		Invalid:     invalid,
	}
}

// manyOf is shorthand for a never-required sequence-valued rule.
func manyOf(validate func(any) bool, invalid FaultSpec) Rule {
	return Rule{
		Cardinality: CardinalityMany,
		Required:    RequiredNever(),
		Validate:    validate,
		Invalid:     invalid,
	}
}

func isActorDocument(doc Document) bool {
	for _, typ := range doc.Types() {
		if IsActorType(typ) {
			return true
		}
	}
	return false
}

func isLinkDocument(doc Document) bool {
	for _, typ := range doc.Types() {
		if IsLinkType(typ) {
			return true
		}
	}
	return false
}

func isTombstoneDocument(doc Document) bool {
	return doc.HasType(TypeTombstone)
}

// properties is the rule table: one entry per recognized
// ActivityStreams property. Read-only after init.
var properties = map[string]Rule{
	"accuracy":     optional(IsAccuracy, must(fault.CodeInvalidAccuracy)),
	"actor":        optional(IsObjectOrRef, must(fault.CodeInvalidActor)),
	"altitude":     optional(IsNumber, must(fault.CodeInvalidAltitude)),
	"anyOf":        manyOf(IsObjectOrRef, must(fault.CodeInvalidAnyOf)),
	"attachment":   optional(IsObjectOrRef, must(fault.CodeInvalidAttachment)),
	"attributedTo": optional(IsObjectOrRef, must(fault.CodeInvalidAttributedTo)),
	"audience":     optional(IsObjectOrRef, must(fault.CodeInvalidAudience)),
	"bcc":          optional(IsObjectOrRef, must(fault.CodeInvalidBcc)),
	"bto":          optional(IsObjectOrRef, must(fault.CodeInvalidBto)),
	"cc":           optional(IsObjectOrRef, must(fault.CodeInvalidCc)),
	"closed":       optional(IsDateTimeOrBoolean, must(fault.CodeInvalidClosed)),
	"content":      optional(IsStringOrLangMap, must(fault.CodeInvalidContent)),
	"context":      optional(IsObjectOrRef, must(fault.CodeInvalidContext)),
	"current":      optional(IsObjectOrRef, must(fault.CodeInvalidCurrent)),
	"deleted":      optional(IsDateTime, must(fault.CodeInvalidDeleted)),
	"describes":    optional(IsObjectShaped, must(fault.CodeInvalidDescribes)),
	"duration":     optional(IsDuration, must(fault.CodeInvalidDuration)),
	"endTime":      optional(IsDateTime, must(fault.CodeInvalidEndTime)),
	"endpoints":    optional(IsObjectOrRef, must(fault.CodeInvalidEndpoints)),
	"first":        optional(IsObjectOrRef, must(fault.CodeInvalidFirst)),
	"followers":    optional(IsObjectOrRef, must(fault.CodeInvalidFollowers)),
	"following":    optional(IsObjectOrRef, must(fault.CodeInvalidFollowing)),
	"formerType": {
		Cardinality: CardinalityOne,
		Required:    RequiredIf(isTombstoneDocument),
		Validate:    IsTypeValue,
		Missing:     minor(fault.CodeNoFormerType),
		Invalid:     must(fault.CodeInvalidFormerType),
	},
	"generator": optional(IsObjectOrRef, must(fault.CodeInvalidGenerator)),
	"height":    optional(IsNonNegativeInt, must(fault.CodeInvalidHeight)),
	"href": {
		Cardinality: CardinalityOne,
		Required:    RequiredIf(isLinkDocument),
		Validate:    IsURI,
		Missing:     must(fault.CodeNoHref),
		Invalid:     must(fault.CodeInvalidHref),
	},
	"hreflang": optional(IsLanguageTag, should(fault.CodeInvalidHreflang)),
	"icon":     optional(IsObjectOrRef, must(fault.CodeInvalidIcon)),
	"id":       optional(IsURI, must(fault.CodeIDNotURI)),
	"image":    optional(IsObjectOrRef, must(fault.CodeInvalidImage)),
	"inReplyTo": optional(IsObjectOrRef,
		must(fault.CodeInvalidInReplyTo)),
	"inbox": {
		Cardinality: CardinalityOne,
		Required:    RequiredIf(isActorDocument),
		Validate:    IsURI,
		Missing:     must(fault.CodeNoInbox),
		Invalid:     must(fault.CodeInvalidInbox),
	},
	"instrument":   optional(IsObjectOrRef, must(fault.CodeInvalidInstrument)),
	"items":        manyOf(IsObjectOrRef, must(fault.CodeInvalidItems)),
	"last":         optional(IsObjectOrRef, must(fault.CodeInvalidLast)),
	"latitude":     optional(IsLatitude, must(fault.CodeInvalidLatitude)),
	"liked":        optional(IsObjectOrRef, must(fault.CodeInvalidLiked)),
	"location":     optional(IsObjectOrRef, must(fault.CodeInvalidLocation)),
	"longitude":    optional(IsLongitude, must(fault.CodeInvalidLongitude)),
	"mediaType":    optional(IsMIME, must(fault.CodeInvalidMediaType)),
	"name":         optional(IsStringOrLangMap, must(fault.CodeInvalidName)),
	"next":         optional(IsObjectOrRef, must(fault.CodeInvalidNext)),
	"object":       optional(IsObjectOrRef, must(fault.CodeInvalidObject)),
	"oneOf":        manyOf(IsObjectOrRef, must(fault.CodeInvalidOneOf)),
	"orderedItems": manyOf(IsObjectOrRef, must(fault.CodeInvalidOrderedItems)),
	"origin":       optional(IsObjectOrRef, must(fault.CodeInvalidOrigin)),
	"outbox": {
		Cardinality: CardinalityOne,
		Required:    RequiredIf(isActorDocument),
		Validate:    IsURI,
		Missing:     must(fault.CodeNoOutbox),
		Invalid:     must(fault.CodeInvalidOutbox),
	},
	"partOf":            optional(IsObjectOrRef, must(fault.CodeInvalidPartOf)),
	"preferredUsername": optional(IsString, must(fault.CodeInvalidPreferredUsername)),
	"prev":              optional(IsObjectOrRef, must(fault.CodeInvalidPrev)),
	"preview":           optional(IsObjectOrRef, must(fault.CodeInvalidPreview)),
	"published":         optional(IsDateTime, must(fault.CodeInvalidPublished)),
	"radius":            optional(IsNonNegativeNumber, must(fault.CodeInvalidRadius)),
	"rel":               optional(IsLinkRelation, should(fault.CodeInvalidRel)),
	"relationship":      optional(IsObjectOrRef, must(fault.CodeInvalidRelationship)),
	"replies":           optional(IsObjectOrRef, must(fault.CodeInvalidReplies)),
	"result":            optional(IsObjectOrRef, must(fault.CodeInvalidResult)),
	"source":            optional(IsObjectShaped, must(fault.CodeInvalidSource)),
	"startTime":         optional(IsDateTime, must(fault.CodeInvalidStartTime)),
	"streams":           manyOf(IsObjectOrRef, must(fault.CodeInvalidStreams)),
	"subject":           optional(IsObjectOrRef, must(fault.CodeInvalidSubject)),
	"summary":           optional(IsStringOrLangMap, must(fault.CodeInvalidSummary)),
	"tag":               optional(IsObjectOrRef, must(fault.CodeInvalidTag)),
	"target":            optional(IsObjectOrRef, must(fault.CodeInvalidTarget)),
	"to":                optional(IsObjectOrRef, must(fault.CodeInvalidTo)),
	"totalItems":        optional(IsNonNegativeInt, must(fault.CodeInvalidTotalItems)),
	"type":              optional(IsTypeValue, minor(fault.CodeInvalidType)),
	"units":             optional(IsUnits, should(fault.CodeInvalidUnits)),
	"updated":           optional(IsDateTime, must(fault.CodeInvalidUpdated)),
	"url":               optional(IsObjectOrRef, must(fault.CodeInvalidURL)),
	"width":             optional(IsNonNegativeInt, must(fault.CodeInvalidWidth)),
}
