package models

import "time"

// NhomMucTieu: một lát đối tượng (năm học, ngành, lớp) được phát phiếu.
// Mỗi phiếu không được khai cùng một bộ ba hai lần: unique index tổng hợp.
type NhomMucTieu struct {
	ID      uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PhieuID uint      `gorm:"column:phieu_id;not null;uniqueIndex:idx_nhom_muc_tieu_bo_ba" json:"phieu_id"`
	NamHoc  string    `gorm:"column:nam_hoc;size:10;not null;uniqueIndex:idx_nhom_muc_tieu_bo_ba" json:"nam_hoc"`
	Nganh   string    `gorm:"column:nganh;size:10;not null;uniqueIndex:idx_nhom_muc_tieu_bo_ba" json:"nganh"`
	Lop     string    `gorm:"column:lop;size:5;not null;uniqueIndex:idx_nhom_muc_tieu_bo_ba" json:"lop"`
	NgayTao time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"ngay_tao"`

	Phieu *PhieuDanhGia `gorm:"foreignKey:PhieuID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NhomMucTieu) TableName() string {
	return "nhom_muc_tieu"
}
