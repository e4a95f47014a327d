package pwpush

// TriState is an optional boolean: unset defers to the server default.
type TriState uint8

const (
	Unset TriState = iota
	True
	False
)

// Bool converts an explicit boolean into a resolved TriState.
func Bool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// IsSet reports whether the value was resolved to true or false.
func (t TriState) IsSet() bool {
	return t == True || t == False
}

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// TextPush describes one text secret to publish. Nil pointers and Unset
// tri-states are omitted from the request.
type TextPush struct {
	// Payload is always sent, even when empty.
	Payload    string
	Passphrase *string
	// Note is only visible to the author.
	Note              *string
	ExpireAfterDays   *uint
	ExpireAfterViews  *uint
	DeletableByViewer TriState
	// RetrievalStep adds a click-through page before the secret is revealed.
	RetrievalStep TriState
}

// String returns a pointer to s, for optional fields.
func String(s string) *string {
	return &s
}

// Uint returns a pointer to n, for optional fields.
func Uint(n uint) *uint {
	return &n
}

// Kind is the type of object a push operates on.
type Kind string

const (
	KindText Kind = "text"
	KindFile Kind = "file"
	KindURL  Kind = "url"
)

// Kinds lists every object kind in display order.
var Kinds = []Kind{KindText, KindFile, KindURL}

// Prefix returns the routing segment the API uses for this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindText:
		return "p"
	case KindFile:
		return "f"
	case KindURL:
		return "r"
	default:
		return ""
	}
}
