package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (u UserResponse) FromModel(model repository.User) UserResponse {
	return UserResponse{
		ID:        model.ID.String(),
		Username:  model.Username,
		Email:     model.Email,
		FullName:  model.FullName,
		Phone:     model.Phone.String,
		Address:   model.Address.String,
		Role:      model.Role,
		CreatedAt: model.CreatedAt.Time.Format(constant.DateFormat),
	}
}

// UserMembershipResponse is the membership summary embedded in a user detail.
// Nil when the user has no membership.
type UserMembershipResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Status             string `json:"status"`
	DiscountPercentage int64  `json:"discount_percentage"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
}

type UserDetailResponse struct {
	UserResponse
	Membership *UserMembershipResponse `json:"membership,omitempty"`
}

func (u UserDetailResponse) FromModel(row repository.GetUserWithMembershipRow) UserDetailResponse {
	res := UserDetailResponse{
		UserResponse: UserResponse{}.FromModel(row.User),
	}

	if row.MembershipID.Valid {
		res.Membership = &UserMembershipResponse{
			ID:                 row.MembershipID.String(),
			Type:               row.MembershipType.String,
			Status:             row.MembershipStatus.String,
			DiscountPercentage: helper.PercentFromPg(row.DiscountPercentage),
			StartDate:          row.StartDate.Time.Format(constant.DateFormat),
			EndDate:            row.EndDate.Time.Format(constant.DateFormat),
		}
	}

	return res
}

type GetUsersResponse struct {
	Users      []UserResponse `json:"users"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

func (u *GetUsersResponse) FromModel(users []repository.User, totalItems, limit int) {
	u.TotalItems = totalItems
	u.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(users) == 0 {
		u.Users = []UserResponse{}

		return
	}

	u.Users = make([]UserResponse, len(users))

	for i, user := range users {
		u.Users[i] = UserResponse{}.FromModel(user)
	}
}
