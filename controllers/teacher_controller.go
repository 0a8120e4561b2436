package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/middleware"
	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/services"
)

// GetMyStatistics: giảng viên xem thống kê các phiếu của chính mình
func GetMyStatistics(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)

	thongKes, err := services.ThongKeGiangVien(config.DB, u.ID)
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": thongKes})
}

// GetFormStatistics: thống kê một phiếu (CheckPhieuGiangVien đã nạp & xét quyền)
func GetFormStatistics(c *gin.Context) {
	phieu := c.MustGet(middleware.CtxPhieu).(models.PhieuDanhGia)

	thongKe, err := services.ThongKePhieu(config.DB, phieu.ID)
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, thongKe)
}
