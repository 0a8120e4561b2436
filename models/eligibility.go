package models

// HoSoDayDu: sinh viên đã được admin gán đủ bộ ba (năm học, ngành, lớp) chưa.
// Thiếu bất kỳ thuộc tính nào thì không đủ điều kiện với mọi phiếu.
func HoSoDayDu(sv *NguoiDung) bool {
	if sv == nil || sv.VaiTro != VaiTroSinhVien {
		return false
	}
	return sv.NamHoc != nil && *sv.NamHoc != "" &&
		sv.Nganh != nil && *sv.Nganh != "" &&
		sv.Lop != nil && *sv.Lop != ""
}

// DuDieuKien: sinh viên thuộc đối tượng của phiếu khi bộ ba của sinh viên
// trùng khớp CHÍNH XÁC với ít nhất một nhóm mục tiêu. Không có wildcard,
// không khớp từng phần. Hàm này là nơi duy nhất quyết định điều kiện:
// cả lúc liệt kê phiếu lẫn lúc nhận phản hồi đều phải gọi qua đây để
// danh sách hiển thị và quyền nộp không bao giờ lệch nhau.
func DuDieuKien(sv *NguoiDung, nhoms []NhomMucTieu) bool {
	if !HoSoDayDu(sv) {
		return false
	}
	for _, n := range nhoms {
		if n.NamHoc == *sv.NamHoc && n.Nganh == *sv.Nganh && n.Lop == *sv.Lop {
			return true
		}
	}
	return false
}
