package handler

import (
	"time"

	"scanbox/internal/domain/entity"
)

// UserResponse is the sanitized client projection of an account. The password
// hash has no field here, so it can never serialize.
type UserResponse struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Provider      string         `json:"provider"`
	Role          string         `json:"role"`
	Picture       string         `json:"picture,omitempty"`
	PrintSettings map[string]any `json:"printSettings,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		Provider:      string(user.Provider),
		Role:          string(user.Role),
		Picture:       user.Picture,
		PrintSettings: user.PrintSettings,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// StorageResponse is the client projection of a storage.
type StorageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toStorageResponse(storage *entity.Storage) *StorageResponse {
	return &StorageResponse{
		ID:        storage.ID.String(),
		Name:      storage.Name,
		Address:   storage.Address,
		OwnerID:   storage.OwnerID.String(),
		CreatedAt: storage.CreatedAt,
		UpdatedAt: storage.UpdatedAt,
	}
}

func toStorageResponses(storages []*entity.Storage) []*StorageResponse {
	out := make([]*StorageResponse, 0, len(storages))
	for _, storage := range storages {
		out = append(out, toStorageResponse(storage))
	}

	return out
}

// BoxResponse is the client projection of a box.
type BoxResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StorageID   *string   `json:"storageId,omitempty"`
	OwnerID     string    `json:"ownerId"`
	LabelCode   string    `json:"labelCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBoxResponse(box *entity.Box) *BoxResponse {
	resp := &BoxResponse{
		ID:          box.ID.String(),
		Name:        box.Name,
		Description: box.Description,
		OwnerID:     box.OwnerID.String(),
		LabelCode:   box.LabelCode,
		CreatedAt:   box.CreatedAt,
		UpdatedAt:   box.UpdatedAt,
	}
	if box.StorageID != nil {
		storageID := box.StorageID.String()
		resp.StorageID = &storageID
	}

	return resp
}

func toBoxResponses(boxes []*entity.Box) []*BoxResponse {
	out := make([]*BoxResponse, 0, len(boxes))
	for _, box := range boxes {
		out = append(out, toBoxResponse(box))
	}

	return out
}
