package contact

import (
	"net/http"
	"strconv"

	"contact-directory/internal/models"
	"contact-directory/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for contacts.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new contact handler.
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}

	contact, err := h.service.Create(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, contact)
}

func (h *Handler) Get(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID")
	}

	contact, err := h.service.Get(c.Request().Context(), username, contactID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, contact)
}

func (h *Handler) Update(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID")
	}

	var req models.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.ID = contactID

	contact, err := h.service.Update(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, contact)
}

func (h *Handler) Remove(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID")
	}

	if err := h.service.Remove(c.Request().Context(), username, contactID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, true)
}

func (h *Handler) Search(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.SearchContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	contacts, paging, err := h.service.Search(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithPage(c, http.StatusOK, contacts, paging)
}
