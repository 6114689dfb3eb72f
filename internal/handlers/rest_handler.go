package handlers

import (
	"log"
	"microblog/internal/errs"
	"microblog/internal/models"
	"microblog/internal/services"
	"microblog/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusByKind is the complete mapping from error tag to HTTP status.
// Untagged errors fall through to 500.
var statusByKind = map[errs.Kind]int{
	errs.KindValidation:         http.StatusBadRequest,
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindMethodNotSupported: http.StatusMethodNotAllowed,
	errs.KindNotImplemented:     http.StatusServiceUnavailable,
	errs.KindInternal:           http.StatusInternalServerError,
}

type RestHandler struct {
	messageService *services.MessageService
}

func NewRestHandler(messageService *services.MessageService) *RestHandler {
	return &RestHandler{
		messageService: messageService,
	}
}

// ListMessages godoc
// @Summary      List recent messages
// @Description  Deliberately unimplemented; the collection read has no route yet
// @Tags         messages
// @Produce      json
// @Failure      503  {object}  models.ErrorResponse
// @Router       /api/messages/ [get]
func (rh *RestHandler) ListMessages(ctx *gin.Context) {
	RespondError(ctx, errs.NotImplemented())
}

// CreateMessage godoc
// @Summary      Post a new message
// @Description  Creates a message; the id is generated when absent
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      models.MessagePartial  true  "Message to create"
// @Success      200      {object}  models.Message
// @Failure      400      {object}  models.ErrorResponse
// @Router       /api/messages/ [post]
func (rh *RestHandler) CreateMessage(ctx *gin.Context) {
	var partial models.MessagePartial
	if err := ctx.ShouldBindJSON(&partial); err != nil {
		log.Println("Error message json binding:", err)
		RespondError(ctx, errs.Validation(errs.MsgInvalidRequestBody))
		return
	}

	message, err := rh.messageService.Create(ctx.Request.Context(), &partial)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, message)
}

// GetMessage godoc
// @Summary      Read a single message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  models.Message
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/messages/{id} [get]
func (rh *RestHandler) GetMessage(ctx *gin.Context) {
	message, err := rh.messageService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		RespondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, message)
}

// PatchMessage godoc
// @Summary      Partially update a message
// @Description  Merges the non-empty fields onto the stored record
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Message ID"
// @Param        message  body      models.MessagePartial  true  "Fields to change"
// @Success      200      {object}  models.Message
// @Failure      400      {object}  models.ErrorResponse
// @Failure      404      {object}  models.ErrorResponse
// @Router       /api/messages/{id} [patch]
func (rh *RestHandler) PatchMessage(ctx *gin.Context) {
	var changes models.MessagePartial
	if err := ctx.ShouldBindJSON(&changes); err != nil {
		log.Println("Error message json binding:", err)
		RespondError(ctx, errs.Validation(errs.MsgInvalidRequestBody))
		return
	}

	message, err := rh.messageService.Patch(ctx.Request.Context(), ctx.Param("id"), &changes)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, message)
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Description  Idempotent; deleting an unknown id still succeeds
// @Tags         messages
// @Param        id  path  string  true  "Message ID"
// @Success      204
// @Router       /api/messages/{id} [delete]
func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	if err := rh.messageService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func respond(ctx *gin.Context, status int, body interface{}) {
	data, err := utils.MarshalCanonical(body)
	if err != nil {
		log.Println("Error serializing response:", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Data(status, "application/json", data)
}

// RespondError writes the canonical error envelope for err and aborts the
// request.
func RespondError(ctx *gin.Context, err error) {
	kind := errs.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	var message *string
	if msg := err.Error(); msg != "" {
		message = &msg
	}

	respond(ctx, status, models.ErrorResponse{
		Status: status,
		Error: models.ErrorDetail{
			Type:    string(kind),
			Message: message,
		},
	})
	ctx.Abort()
}
