package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/middleware"
	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/utils"
)

type DangNhapReq struct {
	Email   string `json:"email" binding:"required,email"`
	MatKhau string `json:"mat_khau" binding:"required"`
}

func Login(c *gin.Context) {
	var req DangNhapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	var nd models.NguoiDung
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&nd).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email hoặc mật khẩu không đúng"})
		return
	}
	if !utils.CheckPassword(nd.MatKhau, req.MatKhau) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email hoặc mật khẩu không đúng"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprint(nd.ID), nd.VaiTro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":      nd.ID,
			"ten":     nd.Ten,
			"email":   nd.Email,
			"vai_tro": nd.VaiTro,
		},
	})
}

func Me(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)
	c.JSON(http.StatusOK, gin.H{
		"id":       u.ID,
		"ten":      u.Ten,
		"email":    u.Email,
		"vai_tro":  u.VaiTro,
		"mssv":     u.MSSV,
		"nam_hoc":  u.NamHoc,
		"nganh":    u.Nganh,
		"lop":      u.Lop,
		"ngay_tao": u.NgayTao,
	})
}

type DoiMatKhauReq struct {
	MatKhauCu  string `json:"mat_khau_cu" binding:"required"`
	MatKhauMoi string `json:"mat_khau_moi" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)

	var req DoiMatKhauReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	if !utils.CheckPassword(u.MatKhau, req.MatKhauCu) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Mật khẩu hiện tại không đúng"})
		return
	}

	hash, err := utils.HashPassword(req.MatKhauMoi)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể mã hóa mật khẩu"})
		return
	}

	if err := config.DB.Model(&models.NguoiDung{}).
		Where("id = ?", u.ID).
		Update("mat_khau", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Đổi mật khẩu thất bại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
