package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sinhVien(nam, nganh, lop string) *NguoiDung {
	sv := &NguoiDung{VaiTro: VaiTroSinhVien}
	if nam != "" {
		sv.NamHoc = &nam
	}
	if nganh != "" {
		sv.Nganh = &nganh
	}
	if lop != "" {
		sv.Lop = &lop
	}
	return sv
}

func TestHoSoDayDu(t *testing.T) {
	assert.True(t, HoSoDayDu(sinhVien("SE", "CSE", "A")))

	// thiếu bất kỳ thuộc tính nào đều chưa đủ
	assert.False(t, HoSoDayDu(sinhVien("", "CSE", "A")))
	assert.False(t, HoSoDayDu(sinhVien("SE", "", "A")))
	assert.False(t, HoSoDayDu(sinhVien("SE", "CSE", "")))
	assert.False(t, HoSoDayDu(nil))

	// vai trò khác sinh viên không có hồ sơ
	gv := &NguoiDung{VaiTro: VaiTroGiangVien}
	assert.False(t, HoSoDayDu(gv))
}

func TestDuDieuKien(t *testing.T) {
	nhoms := []NhomMucTieu{
		{NamHoc: "SE", Nganh: "CSE", Lop: "A"},
		{NamHoc: "FE", Nganh: "CE", Lop: "B"},
	}

	t.Run("khớp chính xác một nhóm là đủ", func(t *testing.T) {
		assert.True(t, DuDieuKien(sinhVien("SE", "CSE", "A"), nhoms))
		assert.True(t, DuDieuKien(sinhVien("FE", "CE", "B"), nhoms))
	})

	t.Run("lệch một thuộc tính là không đủ, không khớp từng phần", func(t *testing.T) {
		assert.False(t, DuDieuKien(sinhVien("TE", "CSE", "A"), nhoms))
		assert.False(t, DuDieuKien(sinhVien("SE", "EXTC", "A"), nhoms))
		assert.False(t, DuDieuKien(sinhVien("SE", "CSE", "B"), nhoms))
	})

	t.Run("hồ sơ thiếu thì fail closed", func(t *testing.T) {
		assert.False(t, DuDieuKien(sinhVien("", "CSE", "A"), nhoms))
		assert.False(t, DuDieuKien(nil, nhoms))
	})

	t.Run("phiếu không có nhóm nào thì không ai đủ điều kiện", func(t *testing.T) {
		assert.False(t, DuDieuKien(sinhVien("SE", "CSE", "A"), nil))
		assert.False(t, DuDieuKien(sinhVien("SE", "CSE", "A"), []NhomMucTieu{}))
	})
}
