package dto

import (
	"github.com/google/uuid"

	"turnero/internal/domains/user/model"
	"turnero/shared"
	gDto "turnero/shared/dto"
	gModel "turnero/shared/model"
	"turnero/shared/timezone"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=owner manager leader employee"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     c.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Name   string `db:"name" json:"name" validate:"omitempty,max=255"`
	Role   string `db:"role" json:"role" validate:"omitempty,oneof=owner manager leader employee"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Role = mod.Role
	r.Active = mod.Active
	r.LastLogin = mod.LastLogin
	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
