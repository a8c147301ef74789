package user

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

type ListFilter struct {
	Role       string
	ActiveOnly bool
	Query      string
}
