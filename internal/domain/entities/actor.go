package entities

// Actor identifies who performed an operation. Filled by the auth
// middleware from the request token.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

const RoleAdmin = "admin"
