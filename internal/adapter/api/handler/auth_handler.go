package handler

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,inphone"`
	Password        string `json:"password" validate:"required,min=8"`
	CompanyName     string `json:"company_name" validate:"required,min=2"`
	ContactPerson   string `json:"contact_person"`
	GSTNumber       string `json:"gst_number" validate:"required,gst"`
	BusinessLicense string `json:"business_license"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode" validate:"omitempty,pincode"`
	UserType        string `json:"user_type" validate:"required,oneof=buyer seller both"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type loginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         *entity.User `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		GSTNumber:       req.GSTNumber,
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

	return response.Created(c, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pair, user, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		User:         user,
	})
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pair, err := h.authUseCase.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pair)
}

// VerifyGST checks an arbitrary GST number against the external registry.
func (h *AuthHandler) VerifyGST(c echo.Context) error {
	gstNumber := c.Param("gst_number")

	result, err := h.authUseCase.CheckGST(c.Request().Context(), gstNumber)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
