package models

// TokenPair holds the access/refresh token pair for the authenticated
// session. The pair is created on login, replaced wholesale on refresh and
// cleared on logout or irrecoverable expiry.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
