package models

import "time"

// PhieuDanhGia: phiếu đánh giá giảng dạy cho một môn trong một học kỳ.
// Sau khi tạo chỉ được bật/tắt kich_hoat (xóa mềm), không sửa nội dung.
type PhieuDanhGia struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HocKy       string    `gorm:"column:hoc_ky;size:50;not null" json:"hoc_ky"`
	GiangVienID uint      `gorm:"column:giang_vien_id;not null;index" json:"giang_vien_id"`
	TenMonHoc   string    `gorm:"column:ten_mon_hoc;size:255;not null" json:"ten_mon_hoc"`
	NguoiTaoID  uint      `gorm:"column:nguoi_tao_id;not null" json:"nguoi_tao_id"`
	KichHoat    bool      `gorm:"column:kich_hoat;default:true;index" json:"kich_hoat"`
	NgayTao     time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"ngay_tao"`

	GiangVien *NguoiDung `gorm:"foreignKey:GiangVienID" json:"-"`
	NguoiTao  *NguoiDung `gorm:"foreignKey:NguoiTaoID" json:"-"`

	// Quan hệ
	NhomMucTieus []NhomMucTieu `gorm:"foreignKey:PhieuID" json:"-"`
	PhanHois     []PhanHoi     `gorm:"foreignKey:PhieuID" json:"-"`
}

func (PhieuDanhGia) TableName() string {
	return "phieu_danh_gia"
}
