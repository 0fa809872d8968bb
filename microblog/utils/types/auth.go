package types

// LoginRequest is the verified identity assertion handed over after the
// federated handshake: provider name, verified email, suggested display name.
type LoginRequest struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Nickname string `json:"nickname,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}
