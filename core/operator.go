package core

type (
	// Operator is a signed-in studio staff member. Operators manage the
	// gallery, blog, and booking list; regular visitors never authenticate.
	Operator struct {
		Subject   string `json:"subject"`
		Login     string `json:"login"`
		Email     string `json:"email,omitempty"`
		AvatarURL string `json:"avatarUrl"`
		Name      string `json:"name"`
	}
)
