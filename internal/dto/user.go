package dto

import (
	"stundenmanager/internal/core"
	"stundenmanager/internal/pkg/request"
)

// 建立使用者（identity + User 文件）
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email_shape" example:"max@example.com"`
	Password string `json:"password" binding:"required,password_rule" example:"geheim123"`
	Name     string `json:"name" binding:"required,name_rule" example:"Max"`
	Surname  string `json:"surname" binding:"required,name_rule" example:"Müller"`
	Birthday string `json:"birthday" binding:"required,german_date" example:"01.01.1990"`
	Street   string `json:"street" binding:"required,street_rule" example:"Hauptstraße 5"`
	ZipCode  string `json:"zipCode" binding:"required,zipcode_rule" example:"10115"`
	City     string `json:"city" binding:"required,name_rule" example:"Berlin"`
}

func (CreateUserRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"zipCode.required":     "zipcode is not valid.",
		"zipCode.zipcode_rule": "zipcode is not valid.",
	}
}

type CreateUserResponse struct {
	IsSuccess bool      `json:"isSuccess"`
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Birthday  string    `json:"birthday"`
	Street    string    `json:"street"`
	ZipCode   string    `json:"zipCode"`
	City      string    `json:"city"`
	Role      core.Role `json:"role"`
}
