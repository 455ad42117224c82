package fault

// Code identifies a single rule violation. Codes are a closed
// vocabulary: every code the engine can emit is declared here, and the
// narrative catalogs are keyed by these values.
type Code string

// Baseline object-shape codes.
const (
	// CodeNotAnObject is emitted when the validated value is not a map.
	CodeNotAnObject Code = "not-an-object"

	// CodeNoContext is emitted when the vocabulary context declaration
	// is absent or malformed.
	CodeNoContext Code = "no-context"

	// CodeNoType is emitted when the document has no type property.
	CodeNoType Code = "no-type"

	// CodeNoIDTransient notes a missing id on an otherwise tolerated
	// transient object.
	CodeNoIDTransient Code = "no-id-transient"

	// CodeUnexpectedType is emitted when the document's type does not
	// intersect the expected type set.
	CodeUnexpectedType Code = "unexpected-type"
)

// Persistent-object identifier codes.
const (
	CodeNoIDPersistent   Code = "no-id-persistent"
	CodeNullIDPersistent Code = "null-id-persistent"
	CodeIDNotURI         Code = "id-not-uri"
	CodeIDNotHTTPS       Code = "id-not-https"
)

// Actor codes.
const (
	CodeNoInbox       Code = "no-inbox"
	CodeNoOutbox      Code = "no-outbox"
	CodeInvalidInbox  Code = "invalid-inbox"
	CodeInvalidOutbox Code = "invalid-outbox"
)

// Link codes.
const (
	CodeNoHref           Code = "no-href"
	CodeInvalidHref      Code = "invalid-href"
	CodeInvalidMediaType Code = "invalid-media-type"
)

// Activity codes.
const (
	CodeNoSummary   Code = "no-summary"
	CodeInvalidVerb Code = "invalid-verb"
	CodeNoActor     Code = "no-actor"
	CodeNoObject    Code = "no-object"
	CodeNoTarget    Code = "no-target"
)

// Collection codes.
const (
	CodeExpectedCollection     Code = "expected-collection"
	CodeExpectedCollectionPage Code = "expected-collection-page"
	CodeNoItems                Code = "no-items"
	CodeNoFirst                Code = "no-first"
	CodeNoLast                 Code = "no-last"
)

// Tombstone codes.
const (
	CodeNoFormerType Code = "no-former-type"
)

// Per-property invalid-value codes, one per rule-table entry.
const (
	CodeInvalidAccuracy          Code = "invalid-accuracy"
	CodeInvalidActor             Code = "invalid-actor"
	CodeInvalidAltitude          Code = "invalid-altitude"
	CodeInvalidAnyOf             Code = "invalid-any-of"
	CodeInvalidAttachment        Code = "invalid-attachment"
	CodeInvalidAttributedTo      Code = "invalid-attributed-to"
	CodeInvalidAudience          Code = "invalid-audience"
	CodeInvalidBcc               Code = "invalid-bcc"
	CodeInvalidBto               Code = "invalid-bto"
	CodeInvalidCc                Code = "invalid-cc"
	CodeInvalidClosed            Code = "invalid-closed"
	CodeInvalidContent           Code = "invalid-content"
	CodeInvalidContext           Code = "invalid-context"
	CodeInvalidCurrent           Code = "invalid-current"
	CodeInvalidDeleted           Code = "invalid-deleted"
	CodeInvalidDescribes         Code = "invalid-describes"
	CodeInvalidDuration          Code = "invalid-duration"
	CodeInvalidEndTime           Code = "invalid-end-time"
	CodeInvalidEndpoints         Code = "invalid-endpoints"
	CodeInvalidFirst             Code = "invalid-first"
	CodeInvalidFollowers         Code = "invalid-followers"
	CodeInvalidFollowing         Code = "invalid-following"
	CodeInvalidFormerType        Code = "invalid-former-type"
	CodeInvalidGenerator         Code = "invalid-generator"
	CodeInvalidHeight            Code = "invalid-height"
	CodeInvalidHreflang          Code = "invalid-hreflang"
	CodeInvalidIcon              Code = "invalid-icon"
	CodeInvalidImage             Code = "invalid-image"
	CodeInvalidInReplyTo         Code = "invalid-in-reply-to"
	CodeInvalidInstrument        Code = "invalid-instrument"
	CodeInvalidItems             Code = "invalid-items"
	CodeInvalidLast              Code = "invalid-last"
	CodeInvalidLatitude          Code = "invalid-latitude"
	CodeInvalidLiked             Code = "invalid-liked"
	CodeInvalidLocation          Code = "invalid-location"
	CodeInvalidLongitude         Code = "invalid-longitude"
	CodeInvalidName              Code = "invalid-name"
	CodeInvalidNext              Code = "invalid-next"
	CodeInvalidObject            Code = "invalid-object"
	CodeInvalidOneOf             Code = "invalid-one-of"
	CodeInvalidOrderedItems      Code = "invalid-ordered-items"
	CodeInvalidOrigin            Code = "invalid-origin"
	CodeInvalidPartOf            Code = "invalid-part-of"
	CodeInvalidPreferredUsername Code = "invalid-preferred-username"
	CodeInvalidPrev              Code = "invalid-prev"
	CodeInvalidPreview           Code = "invalid-preview"
	CodeInvalidPublished         Code = "invalid-published"
	CodeInvalidRadius            Code = "invalid-radius"
	CodeInvalidRel               Code = "invalid-rel"
	CodeInvalidRelationship      Code = "invalid-relationship"
	CodeInvalidReplies           Code = "invalid-replies"
	CodeInvalidResult            Code = "invalid-result"
	CodeInvalidSource            Code = "invalid-source"
	CodeInvalidStartTime         Code = "invalid-start-time"
	CodeInvalidStreams           Code = "invalid-streams"
	CodeInvalidSubject           Code = "invalid-subject"
	CodeInvalidSummary           Code = "invalid-summary"
	CodeInvalidTag               Code = "invalid-tag"
	CodeInvalidTarget            Code = "invalid-target"
	CodeInvalidTo                Code = "invalid-to"
	CodeInvalidTotalItems        Code = "invalid-total-items"
	CodeInvalidType              Code = "invalid-type"
	CodeInvalidUnits             Code = "invalid-units"
	CodeInvalidUpdated           Code = "invalid-updated"
	CodeInvalidURL               Code = "invalid-url"
	CodeInvalidWidth             Code = "invalid-width"
)

// Codes returns every declared fault code. The list backs the CLI
// `codes` listing and the narrative completeness tests.
func Codes() []Code {
	return []Code{
		CodeNotAnObject, CodeNoContext, CodeNoType, CodeNoIDTransient,
		CodeUnexpectedType,
		CodeNoIDPersistent, CodeNullIDPersistent, CodeIDNotURI, CodeIDNotHTTPS,
		CodeNoInbox, CodeNoOutbox, CodeInvalidInbox, CodeInvalidOutbox,
		CodeNoHref, CodeInvalidHref, CodeInvalidMediaType,
		CodeNoSummary, CodeInvalidVerb, CodeNoActor, CodeNoObject, CodeNoTarget,
		CodeExpectedCollection, CodeExpectedCollectionPage,
		CodeNoItems, CodeNoFirst, CodeNoLast,
		CodeNoFormerType,
		CodeInvalidAccuracy, CodeInvalidActor, CodeInvalidAltitude,
		CodeInvalidAnyOf, CodeInvalidAttachment, CodeInvalidAttributedTo,
		CodeInvalidAudience, CodeInvalidBcc, CodeInvalidBto, CodeInvalidCc,
		CodeInvalidClosed, CodeInvalidContent, CodeInvalidContext,
		CodeInvalidCurrent, CodeInvalidDeleted, CodeInvalidDescribes,
		CodeInvalidDuration, CodeInvalidEndTime, CodeInvalidEndpoints,
		CodeInvalidFirst, CodeInvalidFollowers, CodeInvalidFollowing,
		CodeInvalidFormerType, CodeInvalidGenerator, CodeInvalidHeight,
		CodeInvalidHreflang, CodeInvalidIcon, CodeInvalidImage,
		CodeInvalidInReplyTo, CodeInvalidInstrument, CodeInvalidItems,
		CodeInvalidLast, CodeInvalidLatitude, CodeInvalidLiked,
		CodeInvalidLocation, CodeInvalidLongitude, CodeInvalidName,
		CodeInvalidNext, CodeInvalidObject, CodeInvalidOneOf,
		CodeInvalidOrderedItems, CodeInvalidOrigin, CodeInvalidPartOf,
		CodeInvalidPreferredUsername, CodeInvalidPrev, CodeInvalidPreview,
		CodeInvalidPublished, CodeInvalidRadius, CodeInvalidRel,
		CodeInvalidRelationship, CodeInvalidReplies, CodeInvalidResult,
		CodeInvalidSource, CodeInvalidStartTime, CodeInvalidStreams,
		CodeInvalidSubject, CodeInvalidSummary, CodeInvalidTag,
		CodeInvalidTarget, CodeInvalidTo, CodeInvalidTotalItems,
		CodeInvalidType, CodeInvalidUnits, CodeInvalidUpdated,
		CodeInvalidURL, CodeInvalidWidth,
	}
}
