// internal/model/context.go
package model

type contextKey string

// UserIDKey keys the authenticated user's id in the request context.
const UserIDKey contextKey = "userID"
