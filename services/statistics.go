package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vnkhanh/feedback-server/models"
)

// ThongKePhieu đọc toàn bộ phản hồi của một phiếu và tổng hợp số lượt + %.
// Đọc không khóa với ghi: phản hồi nộp song song có thể vào hoặc chưa vào
// lần đọc này, lần đọc sau sẽ có.
func ThongKePhieu(db *gorm.DB, phieuID uint) (models.ThongKePhieu, error) {
	var phieu models.PhieuDanhGia
	err := db.First(&phieu, phieuID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ThongKePhieu{}, models.ErrNotFound
	}
	if err != nil {
		return models.ThongKePhieu{}, err
	}

	var phs []models.PhanHoi
	if err := db.Where("phieu_id = ?", phieuID).Find(&phs).Error; err != nil {
		return models.ThongKePhieu{}, err
	}
	return models.TinhThongKe(&phieu, phs), nil
}

// ThongKeGiangVien: thống kê từng phiếu đang kích hoạt của một giảng viên,
// phiếu mới tạo đứng trước.
func ThongKeGiangVien(db *gorm.DB, giangVienID uint) ([]models.ThongKePhieu, error) {
	var gv models.NguoiDung
	err := db.Where("id = ? AND vai_tro = ?", giangVienID, models.VaiTroGiangVien).First(&gv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var phieus []models.PhieuDanhGia
	if err := db.Where("giang_vien_id = ? AND kich_hoat = ?", giangVienID, true).
		Order("ngay_tao DESC").
		Find(&phieus).Error; err != nil {
		return nil, err
	}

	thongKes := make([]models.ThongKePhieu, 0, len(phieus))
	for i := range phieus {
		var phs []models.PhanHoi
		if err := db.Where("phieu_id = ?", phieus[i].ID).Find(&phs).Error; err != nil {
			return nil, err
		}
		thongKes = append(thongKes, models.TinhThongKe(&phieus[i], phs))
	}
	return thongKes, nil
}
