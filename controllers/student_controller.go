package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/middleware"
	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/services"
)

// GetAvailableForms: các phiếu sinh viên được phát và chưa nộp
func GetAvailableForms(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)

	phieus, err := services.DanhSachPhieuChoSinhVien(config.DB, u.ID)
	if err != nil {
		traLoiLoi(c, err)
		return
	}

	resp := []gin.H{}
	for _, p := range phieus {
		item := gin.H{
			"id":          p.ID,
			"hoc_ky":      p.HocKy,
			"ten_mon_hoc": p.TenMonHoc,
			"ngay_tao":    p.NgayTao,
		}
		if p.GiangVien != nil {
			item["ten_giang_vien"] = p.GiangVien.Ten
		}
		resp = append(resp, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"ho_so": gin.H{
			"mssv":    u.MSSV,
			"nam_hoc": u.NamHoc,
			"nganh":   u.Nganh,
			"lop":     u.Lop,
		},
		"forms": resp,
	})
}

// SubmitFeedback: nộp phản hồi cho một phiếu, mỗi sinh viên một lần duy nhất
func SubmitFeedback(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)

	phieuID, err := strconv.Atoi(c.Param("id"))
	if err != nil || phieuID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var req services.DanhGiaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	phanHoiID, err := services.GuiPhanHoi(config.DB, u.ID, uint(phieuID), req)
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": phanHoiID})
}
