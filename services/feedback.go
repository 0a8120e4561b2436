package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vnkhanh/feedback-server/models"
)

type DanhGiaReq struct {
	NeNep     int `json:"ne_nep" binding:"required"`
	ChatLuong int `json:"chat_luong" binding:"required"`
	TuongTac  int `json:"tuong_tac" binding:"required"`
}

// GuiPhanHoi nhận phản hồi của một sinh viên cho một phiếu.
//
// Thứ tự kiểm tra cố định để bề mặt lỗi ổn định: ai đã nộp rồi thì luôn nhận
// AlreadySubmitted, kể cả khi phiếu sau đó bị tắt hay đổi đối tượng.
//  1. đã có phản hồi        → ErrAlreadySubmitted
//  2. phiếu thiếu/đã tắt    → ErrFormUnavailable
//  3. hồ sơ chưa gán đủ     → ErrProfileIncomplete
//  4. không thuộc đối tượng → ErrForbidden (bắt buộc kiểm lại ở đây, dữ liệu
//     có thể đã đổi giữa lúc liệt kê và lúc nộp)
//  5. điểm ngoài thang 1..3 → ErrInvalidInput
//
// Bước 1 chỉ là kiểm tra lạc quan; chốt chặn thật là unique index
// (phieu_id, sinh_vien_id): vi phạm lúc insert cũng quy về ErrAlreadySubmitted.
func GuiPhanHoi(db *gorm.DB, sinhVienID, phieuID uint, req DanhGiaReq) (uint, error) {
	var daGui int64
	if err := db.Model(&models.PhanHoi{}).
		Where("phieu_id = ? AND sinh_vien_id = ?", phieuID, sinhVienID).
		Count(&daGui).Error; err != nil {
		return 0, err
	}
	if daGui > 0 {
		return 0, models.ErrAlreadySubmitted
	}

	var phieu models.PhieuDanhGia
	err := db.Where("id = ? AND kich_hoat = ?", phieuID, true).First(&phieu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, models.ErrFormUnavailable
	}
	if err != nil {
		return 0, err
	}

	var sv models.NguoiDung
	err = db.First(&sv, sinhVienID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, models.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if !models.HoSoDayDu(&sv) {
		return 0, models.ErrProfileIncomplete
	}

	nhoms, err := DanhSachNhomMucTieu(db, phieuID)
	if err != nil {
		return 0, err
	}
	if !models.DuDieuKien(&sv, nhoms) {
		return 0, models.ErrForbidden
	}

	if !models.DanhGiaHopLe(req.NeNep) || !models.DanhGiaHopLe(req.ChatLuong) || !models.DanhGiaHopLe(req.TuongTac) {
		return 0, models.ErrInvalidInput
	}

	ph := models.PhanHoi{
		PhieuID:       phieuID,
		SinhVienID:    sinhVienID,
		DiemNeNep:     req.NeNep,
		DiemChatLuong: req.ChatLuong,
		DiemTuongTac:  req.TuongTac,
	}
	err = db.Create(&ph).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, models.ErrAlreadySubmitted
	}
	if err != nil {
		return 0, err
	}
	return ph.ID, nil
}

// DanhSachPhieuChoSinhVien: các phiếu đang kích hoạt mà sinh viên thuộc đối
// tượng và CHƯA nộp, mới nhất trước. Hồ sơ chưa gán đủ thì danh sách rỗng.
func DanhSachPhieuChoSinhVien(db *gorm.DB, sinhVienID uint) ([]models.PhieuDanhGia, error) {
	var sv models.NguoiDung
	err := db.First(&sv, sinhVienID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !models.HoSoDayDu(&sv) {
		return []models.PhieuDanhGia{}, nil
	}

	cungDoiTuong := db.Model(&models.NhomMucTieu{}).
		Select("phieu_id").
		Where("nam_hoc = ? AND nganh = ? AND lop = ?", *sv.NamHoc, *sv.Nganh, *sv.Lop)
	daNop := db.Model(&models.PhanHoi{}).
		Select("phieu_id").
		Where("sinh_vien_id = ?", sinhVienID)

	phieus := []models.PhieuDanhGia{}
	err = db.Where("kich_hoat = ?", true).
		Where("id IN (?)", cungDoiTuong).
		Where("id NOT IN (?)", daNop).
		Preload("GiangVien").
		Order("ngay_tao DESC").
		Find(&phieus).Error
	return phieus, err
}
