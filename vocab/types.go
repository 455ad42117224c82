package vocab

// Core type names referenced individually by the validators.
const (
	TypeLink                  = "Link"
	TypeMention               = "Mention"
	TypeTombstone             = "Tombstone"
	TypeCollection            = "Collection"
	TypeOrderedCollection     = "OrderedCollection"
	TypeCollectionPage        = "CollectionPage"
	TypeOrderedCollectionPage = "OrderedCollectionPage"
	TypeActivity              = "Activity"
	TypeIntransitiveActivity  = "IntransitiveActivity"
	TypeInvite                = "Invite"
	TypePerson                = "Person"
)

// ActorTypes are the recognized actor type names.
var ActorTypes = []string{
	"Application",
	"Group",
	"Organization",
	"Person",
	"Service",
}

// ActivityTypes are the recognized activity (verb) type names.
var ActivityTypes = []string{
	TypeActivity,
	TypeIntransitiveActivity,
	"Accept",
	"Add",
	"Announce",
	"Arrive",
	"Block",
	"Create",
	"Delete",
	"Dislike",
	"Flag",
	"Follow",
	"Ignore",
	"Invite",
	"Join",
	"Leave",
	"Like",
	"Listen",
	"Move",
	"Offer",
	"Question",
	"Read",
	"Reject",
	"Remove",
	"TentativeAccept",
	"TentativeReject",
	"Travel",
	"Undo",
	"Update",
	"View",
}

// IntransitiveTypes are activity types that carry no object.
var IntransitiveTypes = []string{
	TypeIntransitiveActivity,
	"Arrive",
	"Question",
	"Travel",
}

// CollectionTypes are the simple (unpaged) collection type names.
var CollectionTypes = []string{
	TypeCollection,
	TypeOrderedCollection,
}

// CollectionPageTypes are the collection page type names.
var CollectionPageTypes = []string{
	TypeCollectionPage,
	TypeOrderedCollectionPage,
}

// LinkTypes are the recognized link type names.
var LinkTypes = []string{
	TypeLink,
	TypeMention,
}

// ObjectTypes are the recognized concrete object type names.
var ObjectTypes = []string{
	"Article",
	"Audio",
	"Document",
	"Event",
	"Image",
	"Note",
	"Page",
	"Place",
	"Profile",
	"Relationship",
	TypeTombstone,
	"Video",
}

// IsActorType reports whether name is a recognized actor type.
func IsActorType(name string) bool { return contains(ActorTypes, name) }

// IsActivityType reports whether name is a recognized activity type.
func IsActivityType(name string) bool { return contains(ActivityTypes, name) }

// IsLinkType reports whether name is a recognized link type.
func IsLinkType(name string) bool { return contains(LinkTypes, name) }

// IsCollectionType reports whether name names a simple collection.
func IsCollectionType(name string) bool { return contains(CollectionTypes, name) }

// IsCollectionPageType reports whether name names a collection page.
func IsCollectionPageType(name string) bool { return contains(CollectionPageTypes, name) }

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
