package vocab

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Value validators applied by the property rule table. Each is a pure
// predicate over a decoded JSON value; cardinality handling lives in
// the rule evaluation, not here.

var (
	// mimeRe matches type/subtype MIME shapes per RFC 6838 restricted names.
	mimeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]{0,126}/[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]{0,126}$`)

	// durationRe matches xsd:duration lexical forms.
	durationRe = regexp.MustCompile(`^-?P(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+(?:\.\d+)?S)?)?$`)

	// relRe matches RFC 5988 link relation tokens.
	relRe = regexp.MustCompile(`^[^\s",;]+$`)
)

// dateTimeLayouts are the accepted xsd:dateTime shapes.
var dateTimeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// recognizedUnits are the closed unit tokens; anything else must be a URI.
var recognizedUnits = []string{"cm", "feet", "inches", "km", "m", "miles"}

// IsString accepts any JSON string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsBoolean accepts any JSON boolean.
func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber accepts any JSON number.
func IsNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

// IsNonNegativeInt accepts integral JSON numbers >= 0.
func IsNonNegativeInt(v any) bool {
	switch n := v.(type) {
	case float64:
		return n >= 0 && n == float64(int64(n))
	case int:
		return n >= 0
	case int64:
		return n >= 0
	}
	return false
}

// IsURI accepts absolute URI strings. Relative references and strings
// without a scheme are rejected; ActivityPub identifiers must
// dereference on their own.
func IsURI(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return isAbsoluteURI(s)
}

func isAbsoluteURI(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// IsHTTPSURI accepts absolute https URIs.
func IsHTTPSURI(v any) bool {
	s, ok := v.(string)
	if !ok || !isAbsoluteURI(s) {
		return false
	}
	u, _ := url.Parse(s)
	return u.Scheme == "https"
}

// IsDateTime accepts xsd:dateTime strings.
func IsDateTime(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsDateTimeOrBoolean accepts xsd:dateTime strings or booleans; the
// closed property carries either.
func IsDateTimeOrBoolean(v any) bool {
	return IsBoolean(v) || IsDateTime(v)
}

// IsDuration accepts xsd:duration strings.
func IsDuration(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || s == "P" || s == "-P" {
		return false
	}
	return durationRe.MatchString(s)
}

// IsMIME accepts type/subtype MIME strings.
func IsMIME(v any) bool {
	s, ok := v.(string)
	return ok && mimeRe.MatchString(s)
}

// IsLanguageTag accepts well-formed BCP 47 language tags.
func IsLanguageTag(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

// IsLinkRelation accepts RFC 5988 relation tokens or sequences of them.
func IsLinkRelation(v any) bool {
	switch rel := v.(type) {
	case string:
		return rel != "" && relRe.MatchString(rel)
	case []any:
		return allElements(rel, IsLinkRelation)
	}
	return false
}

// IsUnits accepts one of the recognized unit tokens or a unit URI.
func IsUnits(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return contains(recognizedUnits, s) || isAbsoluteURI(s)
}

// IsLatitude accepts numbers in [-90, 90].
func IsLatitude(v any) bool {
	n, ok := asFloat(v)
	return ok && n >= -90 && n <= 90
}

// IsLongitude accepts numbers in [-180, 180].
func IsLongitude(v any) bool {
	n, ok := asFloat(v)
	return ok && n >= -180 && n <= 180
}

// IsAccuracy accepts percentages in [0, 100].
func IsAccuracy(v any) bool {
	n, ok := asFloat(v)
	return ok && n >= 0 && n <= 100
}

// IsNonNegativeNumber accepts numbers >= 0.
func IsNonNegativeNumber(v any) bool {
	n, ok := asFloat(v)
	return ok && n >= 0
}

// IsTypeValue accepts a type token or a sequence of type tokens.
func IsTypeValue(v any) bool {
	switch typ := v.(type) {
	case string:
		return typ != ""
	case []any:
		return len(typ) > 0 && allElements(typ, IsString)
	}
	return false
}

// IsObjectOrRef accepts an inline object, an absolute URI reference,
// or a sequence of either. This is the shape check only; whether the
// reference resolves is the resolver's concern.
func IsObjectOrRef(v any) bool {
	switch ref := v.(type) {
	case string:
		return isAbsoluteURI(ref)
	case map[string]any, Document:
		return true
	case []any:
		return allElements(ref, IsObjectOrRef)
	}
	return false
}

// IsObjectShaped accepts only inline objects.
func IsObjectShaped(v any) bool {
	_, ok := AsDocument(v)
	return ok
}

// IsStringOrLangMap accepts a plain string or a language-tagged map of
// strings, the two natural-language value shapes.
func IsStringOrLangMap(v any) bool {
	switch val := v.(type) {
	case string:
		return true
	case map[string]any:
		for tag, text := range val {
			if !IsLanguageTag(tag) || !IsString(text) {
				return false
			}
		}
		return len(val) > 0
	}
	return false
}

func allElements(seq []any, pred func(any) bool) bool {
	if len(seq) == 0 {
		return false
	}
	for _, elem := range seq {
		if !pred(elem) {
			return false
		}
	}
	return true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
