package v1

import (
	"net/http"

	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"
	"github.com/shri8977/FUTURE-FS-01/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The form posts to /send; /v1/contact/send is the versioned alias.
func NewContactHandler(root, v1 *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	root.POST("/send", handler.SendMessage)
	v1.POST("/contact/send", handler.SendMessage)
}

// SendMessage godoc
// @Summary      Submit Contact Form
// @Description  Relays a contact form message to the site owner by email. A failed dispatch is reported with success=false and HTTP 200.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /send [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Summary(err)))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		if appErr, ok := apperror.As(err); ok {
			c.Error(appErr)
			return
		}
		// Dispatch failures are an outcome of a well-formed request, not a
		// transport fault: always 200 with the failure payload. Details are
		// already logged by the usecase.
		response.Failure(c, http.StatusOK, domain.MessageSendFailed)
		return
	}

	response.Success(c, http.StatusOK, domain.MessageSent, nil)
}
