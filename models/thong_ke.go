package models

import "math"

// ThongKeTieuChi: số lượt và tỷ lệ phần trăm cho một tiêu chí.
// Phần trăm làm tròn độc lập từng mức nên tổng có thể lệch 100: chấp nhận.
type ThongKeTieuChi struct {
	Kem          int `json:"kem"`
	TrungBinh    int `json:"trung_binh"`
	Tot          int `json:"tot"`
	KemPct       int `json:"kem_pct"`
	TrungBinhPct int `json:"trung_binh_pct"`
	TotPct       int `json:"tot_pct"`
}

// ThongKePhieu: thống kê tổng hợp một phiếu, người xem không thấy từng phản hồi.
type ThongKePhieu struct {
	PhieuID     uint           `json:"phieu_id"`
	HocKy       string         `json:"hoc_ky"`
	TenMonHoc   string         `json:"ten_mon_hoc"`
	TongPhanHoi int            `json:"tong_phan_hoi"`
	NeNep       ThongKeTieuChi `json:"ne_nep"`
	ChatLuong   ThongKeTieuChi `json:"chat_luong"`
	TuongTac    ThongKeTieuChi `json:"tuong_tac"`
}

func phanTram(phan, tong int) int {
	if tong == 0 {
		return 0
	}
	return int(math.Round(float64(phan) * 100 / float64(tong)))
}

func demTieuChi(phs []PhanHoi, diem func(PhanHoi) int) ThongKeTieuChi {
	var tk ThongKeTieuChi
	for _, ph := range phs {
		switch diem(ph) {
		case DanhGiaKem:
			tk.Kem++
		case DanhGiaTrungBinh:
			tk.TrungBinh++
		case DanhGiaTot:
			tk.Tot++
		}
	}
	tong := len(phs)
	tk.KemPct = phanTram(tk.Kem, tong)
	tk.TrungBinhPct = phanTram(tk.TrungBinh, tong)
	tk.TotPct = phanTram(tk.Tot, tong)
	return tk
}

// TinhThongKe tổng hợp toàn bộ phản hồi của một phiếu. Phiếu chưa có phản hồi
// nào trả về toàn số 0: đây là kết quả hợp lệ, không phải lỗi.
func TinhThongKe(phieu *PhieuDanhGia, phs []PhanHoi) ThongKePhieu {
	return ThongKePhieu{
		PhieuID:     phieu.ID,
		HocKy:       phieu.HocKy,
		TenMonHoc:   phieu.TenMonHoc,
		TongPhanHoi: len(phs),
		NeNep:       demTieuChi(phs, func(p PhanHoi) int { return p.DiemNeNep }),
		ChatLuong:   demTieuChi(phs, func(p PhanHoi) int { return p.DiemChatLuong }),
		TuongTac:    demTieuChi(phs, func(p PhanHoi) int { return p.DiemTuongTac }),
	}
}
