package dto

type RoleCreate struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	IsActive *bool  `json:"isActive"`
}

type RoleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
