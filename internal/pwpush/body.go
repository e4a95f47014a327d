package pwpush

import (
	"net/url"
	"strconv"
	"strings"
)

// fragment is one optional password[<key>]=<value> segment of a body.
type fragment struct {
	key     string
	present func(TextPush) bool
	value   func(TextPush) string
}

// textFragments is in wire order.
var textFragments = []fragment{
	{
		key:     "payload",
		present: func(TextPush) bool { return true },
		value:   func(p TextPush) string { return p.Payload },
	},
	{
		key:     "passphrase",
		present: func(p TextPush) bool { return p.Passphrase != nil },
		value:   func(p TextPush) string { return *p.Passphrase },
	},
	{
		key:     "note",
		present: func(p TextPush) bool { return p.Note != nil },
		value:   func(p TextPush) string { return *p.Note },
	},
	{
		key:     "expire_after_days",
		present: func(p TextPush) bool { return p.ExpireAfterDays != nil },
		value:   func(p TextPush) string { return strconv.FormatUint(uint64(*p.ExpireAfterDays), 10) },
	},
	{
		key:     "expire_after_views",
		present: func(p TextPush) bool { return p.ExpireAfterViews != nil },
		value:   func(p TextPush) string { return strconv.FormatUint(uint64(*p.ExpireAfterViews), 10) },
	},
	{
		key:     "deletable_by_viewer",
		present: func(p TextPush) bool { return p.DeletableByViewer.IsSet() },
		value:   func(p TextPush) string { return p.DeletableByViewer.String() },
	},
	{
		key:     "retrieval_step",
		present: func(p TextPush) bool { return p.RetrievalStep.IsSet() },
		value:   func(p TextPush) string { return p.RetrievalStep.String() },
	},
}

// BuildTextBody serializes a text push into a request body.
func BuildTextBody(p TextPush) string {
	parts := make([]string, 0, len(textFragments))
	for _, f := range textFragments {
		if f.present(p) {
			parts = append(parts, "password["+f.key+"]="+EncodeValue(f.value(p)))
		}
	}
	return strings.Join(parts, "&")
}

// TextFields returns the keys BuildTextBody would emit for p, in order.
// It never exposes values, so it is safe to log.
func TextFields(p TextPush) []string {
	keys := make([]string, 0, len(textFragments))
	for _, f := range textFragments {
		if f.present(p) {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// EncodeValue percent-encodes everything except ASCII letters, digits and
// "-_.~". Spaces become %20, not '+'.
func EncodeValue(v string) string {
	// QueryEscape already escapes a literal '+' as %2B, so every '+' left
	// in its output stands for a space.
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
