package vocab

import "github.com/c360studio/apcheck/fault"

// ActivityRule names a property an activity type requires and how its
// value must resolve. Expected lists acceptable types for the resolved
// object; nil accepts any object shape.
type ActivityRule struct {
	Property string
	Expected []string
	Missing  FaultSpec
	Invalid  FaultSpec
}

// ActivityRules returns the requirement set for an activity type name.
// The second return is false for unrecognized verbs.
func ActivityRules(typ string) ([]ActivityRule, bool) {
	rules, ok := activityRequirements[typ]
	return rules, ok
}

func actorRule() ActivityRule {
	return ActivityRule{
		Property: "actor",
		Expected: ActorTypes,
		Missing:  must(fault.CodeNoActor),
		Invalid:  must(fault.CodeInvalidActor),
	}
}

func objectRule(expected ...string) ActivityRule {
	return ActivityRule{
		Property: "object",
		Expected: expected,
		Missing:  must(fault.CodeNoObject),
		Invalid:  must(fault.CodeInvalidObject),
	}
}

func targetRule() ActivityRule {
	return ActivityRule{
		Property: "target",
		Missing:  must(fault.CodeNoTarget),
		Invalid:  must(fault.CodeInvalidTarget),
	}
}

// activityRequirements maps each recognized verb to its requirement
// set. Most verbs share the transitive base (actor plus object); the
// intransitive verbs drop the object, and a handful override or extend
// individual entries. Read-only after init.
var activityRequirements = map[string][]ActivityRule{}

func init() {
	transitive := func() []ActivityRule {
		return []ActivityRule{actorRule(), objectRule()}
	}
	intransitive := func() []ActivityRule {
		return []ActivityRule{actorRule()}
	}

	for _, verb := range ActivityTypes {
		if contains(IntransitiveTypes, verb) {
			activityRequirements[verb] = intransitive()
		} else {
			activityRequirements[verb] = transitive()
		}
	}

	// The bare Activity type makes no property demands beyond the
	// object validator's; it is recognized but unconstrained.
	activityRequirements[TypeActivity] = nil

	// Accepting is only meaningful for invitations and follow requests,
	// so the object is restricted to an Invite or a Person.
	activityRequirements["Accept"] = []ActivityRule{
		actorRule(),
		objectRule(TypeInvite, TypePerson),
	}
	activityRequirements["TentativeAccept"] = []ActivityRule{
		actorRule(),
		objectRule(TypeInvite, TypePerson),
	}

	// Moving content between collections needs somewhere to put it.
	activityRequirements["Add"] = []ActivityRule{actorRule(), objectRule(), targetRule()}
	activityRequirements["Move"] = []ActivityRule{actorRule(), objectRule(), targetRule()}
	activityRequirements["Remove"] = []ActivityRule{actorRule(), objectRule(), targetRule()}

	// An invitation names both the event and the invitees.
	activityRequirements["Invite"] = []ActivityRule{actorRule(), objectRule(), targetRule()}

	// Following targets an actor.
	activityRequirements["Follow"] = []ActivityRule{
		actorRule(),
		objectRule(ActorTypes...),
	}
	activityRequirements["Block"] = []ActivityRule{
		actorRule(),
		objectRule(ActorTypes...),
	}
}
