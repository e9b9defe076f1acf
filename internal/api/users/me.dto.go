package users

type UserDTO struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	AuthProvider       string `json:"auth_provider"`
	IsVerified         bool   `json:"is_verified"`
	VerificationStatus string `json:"verification_status"`
}

type PageSummaryDTO struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	IsMain     bool   `json:"is_main_page"`
	IsVerified bool   `json:"is_verified"`
	IsBrand    bool   `json:"is_brand"`
}

type MeResponse struct {
	User  UserDTO          `json:"user"`
	Pages []PageSummaryDTO `json:"pages"`
}
