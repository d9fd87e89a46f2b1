package session

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// AuthResponse ответ сервера на успешный вход
type AuthResponse struct {
	IdentityID string  `json:"identity_id"`
	Role       Role    `json:"role"`
	Token      string  `json:"token"`
	Profile    Profile `json:"profile"`
}

func (r AuthResponse) Session() *Session {
	return &Session{
		IdentityID: r.IdentityID,
		Role:       r.Role,
		Credential: r.Token,
		Profile:    r.Profile,
	}
}
