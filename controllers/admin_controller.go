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

/* ========== Tạo phiếu đánh giá kèm nhóm mục tiêu ========== */

func CreateForm(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.NguoiDung)

	var req services.TaoPhieuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	phieuID, err := services.TaoPhieuDanhGia(config.DB, u.ID, req)
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": phieuID})
}

/* ========== Danh sách phiếu đang kích hoạt (kèm nhóm mục tiêu) ========== */

func ListForms(c *gin.Context) {
	phieus, err := services.DanhSachPhieu(config.DB)
	if err != nil {
		traLoiLoi(c, err)
		return
	}

	resp := []gin.H{}
	for _, p := range phieus {
		item := gin.H{
			"id":            p.ID,
			"hoc_ky":        p.HocKy,
			"ten_mon_hoc":   p.TenMonHoc,
			"giang_vien_id": p.GiangVienID,
			"kich_hoat":     p.KichHoat,
			"ngay_tao":      p.NgayTao,
			"nhom_muc_tieu": p.NhomMucTieus,
		}
		if p.GiangVien != nil {
			item["giang_vien"] = gin.H{"ten": p.GiangVien.Ten, "email": p.GiangVien.Email}
		}
		resp = append(resp, item)
	}
	c.JSON(http.StatusOK, gin.H{"forms": resp})
}

/* ========== Ngừng nhận / mở lại phiếu (xóa mềm) ========== */

func DeactivateForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}
	if err := services.NgungNhanPhieu(config.DB, uint(id)); err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deactivated"})
}

func RestoreForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}
	if err := services.MoLaiPhieu(config.DB, uint(id)); err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restored"})
}

/* ========== Tài khoản ========== */

func CreateUser(c *gin.Context) {
	var req services.TaoTaiKhoanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	nd, err := services.TaoTaiKhoan(config.DB, req)
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":      nd.ID,
			"ten":     nd.Ten,
			"email":   nd.Email,
			"vai_tro": nd.VaiTro,
		},
	})
}

type ganHoSoReq struct {
	NamHoc string `json:"nam_hoc" binding:"required"`
	Nganh  string `json:"nganh" binding:"required"`
	Lop    string `json:"lop" binding:"required"`
}

// SetStudentCohort: admin gán năm học/ngành/lớp cho một sinh viên
func SetStudentCohort(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var req ganHoSoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	if err := services.GanHoSoSinhVien(config.DB, uint(id), req.NamHoc, req.Nganh, req.Lop); err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// PromoteStudents: đẩy toàn bộ sinh viên lên một năm (BE thành GRAD)
func PromoteStudents(c *gin.Context) {
	if err := services.LenNamSinhVien(config.DB); err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "promoted"})
}

func ListTeachers(c *gin.Context) {
	gvs, err := services.DanhSachGiangVien(config.DB)
	if err != nil {
		traLoiLoi(c, err)
		return
	}

	resp := []gin.H{}
	for _, gv := range gvs {
		resp = append(resp, gin.H{"id": gv.ID, "ten": gv.Ten, "email": gv.Email})
	}
	c.JSON(http.StatusOK, gin.H{"teachers": resp})
}

// GetTeacherStatisticsForAdmin: admin xem thống kê mọi phiếu của một giảng viên
func GetTeacherStatisticsForAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	thongKes, err := services.ThongKeGiangVien(config.DB, uint(id))
	if err != nil {
		traLoiLoi(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": thongKes})
}
