package handler

import (
	"github.com/labstack/echo/v4"

	"dormigo/internal/usecase"
	"dormigo/pkg/errors"
	"dormigo/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FirstName   string `json:"firstName" validate:"omitempty,max=50"`
	LastName    string `json:"lastName" validate:"omitempty,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	University  string `json:"university" validate:"omitempty,max=100"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(int64)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(int64)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		University:  req.University,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}
