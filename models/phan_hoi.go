package models

import "time"

// PhanHoi: phản hồi của một sinh viên cho một phiếu. Ba tiêu chí cố định,
// mỗi tiêu chí chấm 1|2|3. Unique index (phieu_id, sinh_vien_id) là chốt chặn
// cuối cùng chống nộp trùng khi hai request đua nhau.
type PhanHoi struct {
	ID         uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PhieuID    uint `gorm:"column:phieu_id;not null;uniqueIndex:idx_phan_hoi_phieu_sv" json:"phieu_id"`
	SinhVienID uint `gorm:"column:sinh_vien_id;not null;uniqueIndex:idx_phan_hoi_phieu_sv" json:"sinh_vien_id"`

	// Tiêu chí 1: nề nếp giảng dạy, 2: chất lượng giảng dạy, 3: tương tác và giải đáp
	DiemNeNep     int `gorm:"column:diem_ne_nep;not null" json:"diem_ne_nep"`
	DiemChatLuong int `gorm:"column:diem_chat_luong;not null" json:"diem_chat_luong"`
	DiemTuongTac  int `gorm:"column:diem_tuong_tac;not null" json:"diem_tuong_tac"`

	NgayGui time.Time `gorm:"column:ngay_gui;autoCreateTime" json:"ngay_gui"`

	Phieu    *PhieuDanhGia `gorm:"foreignKey:PhieuID" json:"-"`
	SinhVien *NguoiDung    `gorm:"foreignKey:SinhVienID" json:"-"`
}

func (PhanHoi) TableName() string {
	return "phan_hoi"
}
