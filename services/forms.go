package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vnkhanh/feedback-server/models"
)

type NhomMucTieuReq struct {
	NamHoc string `json:"nam_hoc" binding:"required"`
	Nganh  string `json:"nganh" binding:"required"`
	Lop    string `json:"lop" binding:"required"`
}

type TaoPhieuReq struct {
	HocKy          string           `json:"hoc_ky" binding:"required,min=1"`
	EmailGiangVien string           `json:"email_giang_vien" binding:"required,email"`
	TenMonHoc      string           `json:"ten_mon_hoc" binding:"required,min=1"`
	NhomMucTieus   []NhomMucTieuReq `json:"nhom_muc_tieu" binding:"dive"`
}

// TaoPhieuDanhGia tạo phiếu kèm toàn bộ nhóm mục tiêu trong MỘT transaction:
// một nhóm lỗi là rollback cả phiếu, không để phiếu "mồ côi" thiếu nhóm.
// Trùng bộ ba trong request bị chặn trước cho thông báo rõ ràng; unique index
// trong transaction vẫn là chốt chặn cuối nếu hai request đua nhau.
func TaoPhieuDanhGia(db *gorm.DB, nguoiTaoID uint, req TaoPhieuReq) (uint, error) {
	for _, n := range req.NhomMucTieus {
		if !models.NamHocHopLe(n.NamHoc) || !models.NganhHopLe(n.Nganh) || !models.LopHopLe(n.Lop) {
			return 0, fmt.Errorf("nhóm mục tiêu (%s, %s, %s): %w", n.NamHoc, n.Nganh, n.Lop, models.ErrInvalidInput)
		}
	}

	daCo := make(map[string]bool, len(req.NhomMucTieus))
	for _, n := range req.NhomMucTieus {
		key := n.NamHoc + "|" + n.Nganh + "|" + n.Lop
		if daCo[key] {
			return 0, fmt.Errorf("nhóm mục tiêu (%s, %s, %s) bị khai hai lần: %w", n.NamHoc, n.Nganh, n.Lop, models.ErrConflict)
		}
		daCo[key] = true
	}

	var giangVien models.NguoiDung
	err := db.Where("email = ? AND vai_tro = ?", strings.ToLower(strings.TrimSpace(req.EmailGiangVien)), models.VaiTroGiangVien).
		First(&giangVien).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("không có giảng viên với email này: %w", models.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}

	phieu := models.PhieuDanhGia{
		HocKy:       req.HocKy,
		GiangVienID: giangVien.ID,
		TenMonHoc:   req.TenMonHoc,
		NguoiTaoID:  nguoiTaoID,
		KichHoat:    true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&phieu).Error; err != nil {
			return err
		}
		for _, n := range req.NhomMucTieus {
			nhom := models.NhomMucTieu{
				PhieuID: phieu.ID,
				NamHoc:  n.NamHoc,
				Nganh:   n.Nganh,
				Lop:     n.Lop,
			}
			if err := tx.Create(&nhom).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, models.ErrConflict
	}
	if err != nil {
		return 0, err
	}
	return phieu.ID, nil
}

// DanhSachPhieu: toàn bộ phiếu đang kích hoạt kèm nhóm mục tiêu, mới nhất trước
func DanhSachPhieu(db *gorm.DB) ([]models.PhieuDanhGia, error) {
	var phieus []models.PhieuDanhGia
	err := db.Where("kich_hoat = ?", true).
		Preload("NhomMucTieus").
		Preload("GiangVien").
		Order("ngay_tao DESC").
		Find(&phieus).Error
	return phieus, err
}

func DanhSachNhomMucTieu(db *gorm.DB, phieuID uint) ([]models.NhomMucTieu, error) {
	var nhoms []models.NhomMucTieu
	err := db.Where("phieu_id = ?", phieuID).Order("id ASC").Find(&nhoms).Error
	return nhoms, err
}

func datKichHoat(db *gorm.DB, phieuID uint, kichHoat bool) error {
	res := db.Model(&models.PhieuDanhGia{}).Where("id = ?", phieuID).Update("kich_hoat", kichHoat)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// NgungNhanPhieu xóa mềm: phiếu ngừng nhận phản hồi, dữ liệu giữ nguyên
func NgungNhanPhieu(db *gorm.DB, phieuID uint) error {
	return datKichHoat(db, phieuID, false)
}

func MoLaiPhieu(db *gorm.DB, phieuID uint) error {
	return datKichHoat(db, phieuID, true)
}
