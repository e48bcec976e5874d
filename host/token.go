package host

import "encoding/json"

// Token is an opaque provider access token minted for a named downstream
// template. The zero Token is the uniform "no token available" signal; a
// non-zero Token is never empty or whitespace-only.
type Token string

// RedactedToken is the redacted string or json for a provider token.
const RedactedToken = "[REDACTED: provider token]"

// String will redact the token.
func (t Token) String() string {
	return RedactedToken
}

// MarshalJSON will redact the token.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(RedactedToken)
}

// IsZero reports whether no token is available.
func (t Token) IsZero() bool {
	return t == ""
}
