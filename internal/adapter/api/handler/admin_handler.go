package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"mfgmarket/internal/domain/repository"
	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/response"
	"mfgmarket/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	filter := repository.UserFilter{
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("verified"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			filter.Verified = &parsed
		}
	}
	if v := c.QueryParam("active"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			filter.Active = &parsed
		}
	}

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *AdminHandler) VerifyUser(c echo.Context) error {
	user, err := h.adminUseCase.VerifyUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) ActivateUser(c echo.Context) error {
	user, err := h.adminUseCase.ActivateUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	user, err := h.adminUseCase.DeactivateUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.adminUseCase.ListProducts(c.Request().Context(), c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}
