package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// caseInsensitiveExact builds an anchored case-insensitive regex filter for
// exact-match lookups on a string field. Resident names are the booking
// matching key and must match regardless of casing.
func caseInsensitiveExact(v string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
}
