package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// respondError maps service errors onto the response envelope.
// Not-found outcomes are well-formed requests and answer 200 with success=false.
func respondError(c *gin.Context, log *logger.Logger, message string, err error) {
	var (
		valErr *service.ValidationError
		nfErr  *service.NotFoundError
	)

	switch {
	case errors.As(err, &valErr):
		log.WithError(err).Warn(message)
		utils.ValidationErrorResponse(c, valErr.Message, valErr.Fields)
	case errors.As(err, &nfErr):
		log.WithError(err).Info(message)
		utils.FailureResponse(c, nfErr.Message, nil)
	default:
		log.WithError(err).Error(message)
		utils.InternalServerErrorResponse(c, message, err)
	}
}
