package api

import "net/http"

type TokenResponse struct {
	Token string `json:"token"`
	// ExpiresAt is unix milliseconds, matching what the form's
	// countdown expects.
	ExpiresAt int64 `json:"expiresAt"`
}

// getRegister issues a fresh session token bounding the registration
// window. Every call creates an independent token.
func (a *API) getRegister(w http.ResponseWriter, r *http.Request) {
	token := a.service.IssueSession()
	a.metrics.IncrementTokensIssued()

	getLoggerFromCtx(r.Context()).Info("Issued session token")

	respondJSON(w, http.StatusOK, TokenResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.UnixMilli(),
	})
}
