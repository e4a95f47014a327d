package configs

import (
	"fmt"
	"strings"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
)

// Protocol is the scheme used to reach an instance.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// DefaultHost is the public Password Pusher instance.
const DefaultHost = "pwpush.com"

// ParseProtocol accepts "http" or "https" in any case.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case ProtocolHTTP, ProtocolHTTPS:
		return p, nil
	default:
		return "", fmt.Errorf("%q: %w", s, kerrors.ErrInvalidProtocol)
	}
}

func (p Protocol) String() string {
	return string(p)
}

// Set lets Protocol be used as a pflag.Value.
func (p *Protocol) Set(s string) error {
	parsed, err := ParseProtocol(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *Protocol) Type() string {
	return "protocol"
}

// Credentials authenticate API calls as a specific account.
type Credentials struct {
	Email string
	Token string
}

// Instance is a resolved target for API calls.
type Instance struct {
	Protocol Protocol
	// Host is used as given. A malformed host surfaces as a transport error.
	Host string
	// Credentials is nil for anonymous calls.
	Credentials *Credentials
}

// BaseURL returns "<protocol>://<host>".
func (i Instance) BaseURL() string {
	return string(i.Protocol) + "://" + i.Host
}

// Authenticated reports whether requests carry credentials.
func (i Instance) Authenticated() bool {
	return i.Credentials != nil
}

// Overrides holds values from one configuration layer. Nil fields are unset.
type Overrides struct {
	Host     *string
	Protocol *string
	Email    *string
	Token    *string
}

// EnvOverrides reads the PPC_* environment variables through lookup,
// usually os.LookupEnv.
func EnvOverrides(lookup func(string) (string, bool)) Overrides {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		return nil
	}
	return Overrides{
		Host:     get("PPC_URL"),
		Protocol: get("PPC_PROTOCOL"),
		Email:    get("PPC_EMAIL"),
		Token:    get("PPC_TOKEN"),
	}
}

// Overrides converts the settings file into a configuration layer.
func (s *Settings) Overrides() Overrides {
	if s == nil {
		return Overrides{}
	}
	opt := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	return Overrides{
		Host:     opt(s.Instance.URL),
		Protocol: opt(s.Instance.Protocol),
		Email:    opt(s.Auth.Email),
		Token:    opt(s.Auth.Token),
	}
}

// ResolveInstance merges layers ordered from lowest to highest precedence
// on top of the defaults and validates the result.
func ResolveInstance(layers ...Overrides) (Instance, error) {
	host := DefaultHost
	protocol := string(ProtocolHTTPS)
	var email, token string

	for _, l := range layers {
		if l.Host != nil {
			host = *l.Host
		}
		if l.Protocol != nil {
			protocol = *l.Protocol
		}
		if l.Email != nil {
			email = *l.Email
		}
		if l.Token != nil {
			token = *l.Token
		}
	}

	p, err := ParseProtocol(protocol)
	if err != nil {
		return Instance{}, err
	}
	if strings.TrimSpace(host) == "" {
		return Instance{}, kerrors.ErrEmptyHost
	}

	inst := Instance{Protocol: p, Host: host}
	switch {
	case email != "" && token != "":
		inst.Credentials = &Credentials{Email: email, Token: token}
	case email != "" || token != "":
		return Instance{}, kerrors.ErrIncompleteCredentials
	}
	return inst, nil
}
