package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamKeTiep(t *testing.T) {
	assert.Equal(t, NamSE, NamKeTiep[NamFE])
	assert.Equal(t, NamTE, NamKeTiep[NamSE])
	assert.Equal(t, NamBE, NamKeTiep[NamTE])
	assert.Equal(t, NamGRAD, NamKeTiep[NamBE])
	assert.Equal(t, NamGRAD, NamKeTiep[NamGRAD], "GRAD giữ nguyên")

	// mọi năm trong thứ tự cố định đều có mặt trong bảng
	for _, nam := range CacNamHoc {
		_, ok := NamKeTiep[nam]
		assert.True(t, ok, "thiếu %s trong NamKeTiep", nam)
	}
}

func TestEnumHopLe(t *testing.T) {
	// GRAD gán được cho sinh viên nhưng không dùng cho nhóm mục tiêu
	assert.True(t, NamSinhVienHopLe(NamGRAD))
	assert.False(t, NamHocHopLe(NamGRAD))

	assert.True(t, NamHocHopLe("FE"))
	assert.False(t, NamHocHopLe("fe"))
	assert.False(t, NamHocHopLe(""))

	assert.True(t, NganhHopLe("CSE"))
	assert.False(t, NganhHopLe("IT"))

	assert.True(t, LopHopLe("D"))
	assert.False(t, LopHopLe("E"))
}

func TestDanhGiaHopLe(t *testing.T) {
	assert.True(t, DanhGiaHopLe(DanhGiaKem))
	assert.True(t, DanhGiaHopLe(DanhGiaTrungBinh))
	assert.True(t, DanhGiaHopLe(DanhGiaTot))
	assert.False(t, DanhGiaHopLe(0))
	assert.False(t, DanhGiaHopLe(4))
	assert.False(t, DanhGiaHopLe(-1))
}
