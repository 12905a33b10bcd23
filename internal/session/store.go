// Package session issues and resolves the opaque cookie tokens the web
// layer uses to keep users signed in.
package session

import "context"

// CookieName is the session cookie the web layer sets and reads.
const CookieName = "characterforge_session"

// Store maps opaque session tokens to user IDs. Sessions expire after the
// configured TTL.
type Store interface {
	// Create issues a new session token for a user
	Create(ctx context.Context, userID string) (string, error)

	// Resolve returns the user ID a token belongs to
	Resolve(ctx context.Context, token string) (string, error)

	// Destroy invalidates a token; unknown tokens are not an error
	Destroy(ctx context.Context, token string) error

	// DestroyAllForUser invalidates every session of a user, used when an
	// admin deletes an account
	DestroyAllForUser(ctx context.Context, userID string) error
}
