package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RequiresRole bool   `json:"requiresRole"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type SetRoleRequest struct {
	Role    string          `json:"role" binding:"required,oneof=jobSeeker recruiter"`
	Company *CompanyRequest `json:"company"`
}

type UserResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	RoleSelected       bool   `json:"roleSelected"`
	CompanyName        string `json:"companyName,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
}

type SetRoleResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
