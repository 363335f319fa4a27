// session
//
// Owns the credential-resolution policy: whether a profile exchanges its
// MFA token code for a plain session token or an assumed-role token, and
// the expiry check over the environment of an already running session.
//
// The Configuration Store and the shell are collaborators of this package,
// never owned by it.
package session
