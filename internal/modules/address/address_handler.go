package address

import (
	"net/http"
	"strconv"

	"contact-directory/internal/models"
	"contact-directory/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for addresses nested under a contact.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new address handler.
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID")
	}

	var req models.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.ContactID = contactID

	address, err := h.service.Create(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, address)
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
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid address ID")
	}

	req := models.GetAddressRequest{ContactID: contactID, AddressID: addressID}
	address, err := h.service.Get(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, address)
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
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid address ID")
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.ID = addressID
	req.ContactID = contactID

	address, err := h.service.Update(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, address)
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
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid address ID")
	}

	req := models.RemoveAddressRequest{ContactID: contactID, AddressID: addressID}
	address, err := h.service.Remove(c.Request().Context(), username, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, address)
}

func (h *Handler) List(c echo.Context) error {
	_, username, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	contactID, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID")
	}

	addresses, err := h.service.List(c.Request().Context(), username, contactID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, addresses)
}
