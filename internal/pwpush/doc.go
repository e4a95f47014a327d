// Package pwpush builds and submits requests to the Password Pusher API.
//
// The API does not take JSON. Request bodies are form-style fragments of
// the shape password[<field>]=<value> joined by '&', in a fixed order.
// Only the substituted values are percent-encoded; the brackets stay
// literal. Optional fields that are unset produce no fragment at all, so
// the server applies its own defaults.
//
// Endpoints are addressed by a one-letter prefix per object kind and a
// .json suffix: text pushes are POSTed to <protocol>://<host>/p.json.
//
// # Usage
//
//	push := pwpush.TextPush{
//	    Payload:          "hunter2",
//	    ExpireAfterViews: pwpush.Uint(1),
//	    RetrievalStep:    pwpush.True,
//	}
//	outcome := pwpush.NewClient().PublishText(ctx, instance, push)
//	if !outcome.OK() {
//	    return outcome.Err
//	}
//
// Every HTTP status, including 4xx and 5xx, is a successful Outcome.
// Deciding what a status means is left to the caller.
package pwpush
