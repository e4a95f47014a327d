// Package configs describes which Password Pusher instance ppc talks to.
//
// An Instance is a protocol, a host and optional credentials. It is
// resolved once per command from four layers, highest precedence first:
//
//   - command-line flags (--url, --protocol, --email, --token)
//   - environment variables (PPC_URL, PPC_PROTOCOL, PPC_EMAIL, PPC_TOKEN)
//   - the settings file, $XDG_CONFIG_HOME/ppc/config.toml by default
//   - built-in defaults (https://pwpush.com)
//
// # Settings File
//
//	[instance]
//	url = "pwpush.example.com"
//	protocol = "https"
//
//	[auth]
//	email = "me@example.com"
//	token = "..."
//
// Email and token must be given together. ResolveInstance rejects a
// resolved instance that has only one of them.
package configs
