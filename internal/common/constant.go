package common

// AuthTokenKey is the single storage key under which the session token is
// kept, in both the encrypted and the plain storage backends.
const AuthTokenKey = "auth_token"
