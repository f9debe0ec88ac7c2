package handler

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		authUseCase: authUseCase,
	}
}

type updateProfileRequest struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,min=2"`
	ContactPerson   *string `json:"contact_person"`
	BusinessLicense *string `json:"business_license"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Pincode         *string `json:"pincode" validate:"omitempty,pincode"`
	UserType        *string `json:"user_type" validate:"omitempty,oneof=buyer seller both"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		BusinessLicense: req.BusinessLicense,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		UserType:        req.UserType,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	userID := c.Param("id")

	profile, err := h.userUseCase.GetPublicProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// VerifyMyGST runs the GST verification flow for the authenticated user.
func (h *UserHandler) VerifyMyGST(c echo.Context) error {
	userID := c.Get("uid").(string)

	result, err := h.authUseCase.VerifyUserGST(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
