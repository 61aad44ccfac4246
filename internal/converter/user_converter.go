package converter

import (
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		UserType:    user.Role,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UserToSummary returns nil when the relation was not loaded.
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}

	return &dto.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName(),
	}
}
