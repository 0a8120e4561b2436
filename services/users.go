package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/utils"
)

var mssvRe = regexp.MustCompile(`^\d{10}$`)

type TaoTaiKhoanReq struct {
	Ten     string `json:"ten" binding:"required,min=1"`
	Email   string `json:"email" binding:"required,email"`
	MatKhau string `json:"mat_khau" binding:"required,min=6"`
	VaiTro  string `json:"vai_tro" binding:"required"`

	// Bắt buộc khi vai_tro = student
	MSSV   string `json:"mssv"`
	NamHoc string `json:"nam_hoc"`
	Nganh  string `json:"nganh"`
	Lop    string `json:"lop"`
}

// TaoTaiKhoan: admin tạo tài khoản giảng viên hoặc sinh viên. Email lưu
// chữ thường; trùng email hoặc trùng MSSV đều trả ErrConflict.
func TaoTaiKhoan(db *gorm.DB, req TaoTaiKhoanReq) (*models.NguoiDung, error) {
	if req.VaiTro != models.VaiTroGiangVien && req.VaiTro != models.VaiTroSinhVien {
		return nil, fmt.Errorf("vai trò %q: %w", req.VaiTro, models.ErrInvalidInput)
	}

	nd := models.NguoiDung{
		Ten:    strings.TrimSpace(req.Ten),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		VaiTro: req.VaiTro,
	}

	if req.VaiTro == models.VaiTroSinhVien {
		if !mssvRe.MatchString(req.MSSV) {
			return nil, fmt.Errorf("MSSV phải đúng 10 chữ số: %w", models.ErrInvalidInput)
		}
		if !models.NamSinhVienHopLe(req.NamHoc) || !models.NganhHopLe(req.Nganh) || !models.LopHopLe(req.Lop) {
			return nil, fmt.Errorf("năm học/ngành/lớp không hợp lệ: %w", models.ErrInvalidInput)
		}
		nd.MSSV = &req.MSSV
		nd.NamHoc = &req.NamHoc
		nd.Nganh = &req.Nganh
		nd.Lop = &req.Lop
	}

	var count int64
	if err := db.Model(&models.NguoiDung{}).Where("email = ?", nd.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, models.ErrConflict
	}

	hash, err := utils.HashPassword(req.MatKhau)
	if err != nil {
		return nil, err
	}
	nd.MatKhau = hash

	err = db.Create(&nd).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &nd, nil
}

// GanHoSoSinhVien: admin gán (hoặc gán lại) bộ ba năm học/ngành/lớp cho một
// sinh viên. Sinh viên không tự sửa được hồ sơ của mình.
func GanHoSoSinhVien(db *gorm.DB, sinhVienID uint, namHoc, nganh, lop string) error {
	if !models.NamSinhVienHopLe(namHoc) || !models.NganhHopLe(nganh) || !models.LopHopLe(lop) {
		return models.ErrInvalidInput
	}
	res := db.Model(&models.NguoiDung{}).
		Where("id = ? AND vai_tro = ?", sinhVienID, models.VaiTroSinhVien).
		Updates(map[string]interface{}{"nam_hoc": namHoc, "nganh": nganh, "lop": lop})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// LenNamSinhVien: đẩy toàn bộ sinh viên lên một năm theo bảng NamKeTiep,
// gom thành MỘT câu UPDATE có CASE để không sinh viên nào bị nhảy hai bậc.
// GRAD nằm trong bảng với giá trị giữ nguyên (trạng thái hấp thụ).
func LenNamSinhVien(db *gorm.DB) error {
	expr := "CASE nam_hoc"
	for _, nam := range models.CacNamHoc {
		expr += fmt.Sprintf(" WHEN '%s' THEN '%s'", nam, models.NamKeTiep[nam])
	}
	expr += " ELSE nam_hoc END"

	return db.Model(&models.NguoiDung{}).
		Where("vai_tro = ? AND nam_hoc IS NOT NULL", models.VaiTroSinhVien).
		Update("nam_hoc", gorm.Expr(expr)).Error
}

// DanhSachGiangVien cho màn hình admin chọn giảng viên khi tạo phiếu
func DanhSachGiangVien(db *gorm.DB) ([]models.NguoiDung, error) {
	var gvs []models.NguoiDung
	err := db.Where("vai_tro = ?", models.VaiTroGiangVien).Order("ten ASC").Find(&gvs).Error
	return gvs, err
}
