package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/models"
)

// traLoiLoi quy lỗi nghiệp vụ từ services ra mã HTTP. Lỗi không nhận diện
// được thì log lại và trả 500 chung chung, không lộ chi tiết storage.
func traLoiLoi(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrFormUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrProfileIncomplete):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	default:
		log.Printf("lỗi không xác định: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Đã có lỗi xảy ra"})
	}
}
