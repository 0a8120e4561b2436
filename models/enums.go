package models

// Vai trò người dùng
const (
	VaiTroAdmin     = "admin"
	VaiTroGiangVien = "teacher"
	VaiTroSinhVien  = "student"
)

// Năm học (FE = năm nhất ... BE = năm cuối, GRAD = đã tốt nghiệp)
const (
	NamFE   = "FE"
	NamSE   = "SE"
	NamTE   = "TE"
	NamBE   = "BE"
	NamGRAD = "GRAD"
)

// Thứ tự lên năm mỗi đợt xét: FE→SE→TE→BE→GRAD, GRAD giữ nguyên.
// Muốn thêm bậc mới chỉ cần mở rộng bảng này.
var NamKeTiep = map[string]string{
	NamFE:   NamSE,
	NamSE:   NamTE,
	NamTE:   NamBE,
	NamBE:   NamGRAD,
	NamGRAD: NamGRAD,
}

// CacNamHoc: thứ tự cố định, dùng khi build câu UPDATE lên năm
var CacNamHoc = []string{NamFE, NamSE, NamTE, NamBE, NamGRAD}

var cacNganh = map[string]bool{"CE": true, "CSE": true, "EXTC": true}

var cacLop = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// NamHocHopLe: năm học gán cho nhóm mục tiêu (GRAD không được nhận phiếu)
func NamHocHopLe(nam string) bool {
	_, ok := NamKeTiep[nam]
	return ok && nam != NamGRAD
}

// NamSinhVienHopLe: năm học gán cho sinh viên (cho phép GRAD)
func NamSinhVienHopLe(nam string) bool {
	_, ok := NamKeTiep[nam]
	return ok
}

func NganhHopLe(nganh string) bool { return cacNganh[nganh] }

func LopHopLe(lop string) bool { return cacLop[lop] }

// Thang đánh giá 3 mức cho từng tiêu chí
const (
	DanhGiaKem       = 1
	DanhGiaTrungBinh = 2
	DanhGiaTot       = 3
)

func DanhGiaHopLe(v int) bool {
	return v == DanhGiaKem || v == DanhGiaTrungBinh || v == DanhGiaTot
}
