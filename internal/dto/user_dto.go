package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Password   *string `json:"password" validate:"omitempty,min=6,max=72"`
	ProfilePic *string `json:"profile_pic" validate:"omitempty,url"`
}

type UpdateProfilePicRequest struct {
	ProfileUrl string `json:"profile_url" validate:"required,url"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateProfileLinkRequest struct {
	LinkName string `json:"link_name" validate:"required,max=100"`
	LinkUrl  string `json:"link_url" validate:"required,url"`
}

type ProfileLinkResponse struct {
	Id        uuid.UUID `json:"id"`
	LinkName  string    `json:"link_name"`
	LinkUrl   string    `json:"link_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfileResponse struct {
	Id           string                `json:"id"`
	Name         string                `json:"name"`
	ProfilePic   *string               `json:"profile_pic,omitempty"`
	Likes        int64                 `json:"likes"`
	Saves        int64                 `json:"saves"`
	Views        int64                 `json:"views"`
	ProfileLinks []ProfileLinkResponse `json:"profile_links"`
}

type AuthorResponse struct {
	Name       string  `json:"name"`
	ProfilePic *string `json:"profile_pic,omitempty"`
}
