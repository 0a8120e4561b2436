package models

import "time"

type NguoiDung struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Ten     string `gorm:"size:100;not null" json:"ten"`
	Email   string `gorm:"size:100;unique;not null" json:"email"`
	MatKhau string `gorm:"size:255;not null" json:"-"` // ẩn khi trả JSON
	VaiTro  string `gorm:"size:20;not null" json:"vai_tro"`

	// Thuộc tính riêng của sinh viên, admin gán sau khi tạo tài khoản.
	// Chưa gán đủ cả ba (nam_hoc, nganh, lop) thì không nhận được phiếu nào.
	MSSV   *string `gorm:"column:mssv;size:10;uniqueIndex" json:"mssv,omitempty"`
	NamHoc *string `gorm:"column:nam_hoc;size:10" json:"nam_hoc,omitempty"`
	Nganh  *string `gorm:"column:nganh;size:10" json:"nganh,omitempty"`
	Lop    *string `gorm:"column:lop;size:5" json:"lop,omitempty"`

	NgayTao time.Time `gorm:"autoCreateTime" json:"ngay_tao"`

	PhieuDanhGias []PhieuDanhGia `gorm:"foreignKey:GiangVienID" json:"-"`
	PhanHois      []PhanHoi      `gorm:"foreignKey:SinhVienID" json:"-"`
}

func (NguoiDung) TableName() string {
	return "nguoi_dung"
}
