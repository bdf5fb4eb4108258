// Package sdk is the client library for the Job-Portal backend API.
//
// It owns the session and authorization model consumed by portalctl: the
// CredentialStore contract for durable sessions, the Client request gateway
// that attaches bearer credentials and intercepts authentication rejections,
// the Identity provider state machine, and typed wrappers for every backend
// endpoint the portal views call.
package sdk
