package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/feedback-server/models"
)

var dbSeq atomic.Int64

// newTestDB: sqlite in-memory riêng cho từng test, migrate đủ bảng.
// TranslateError bật giống config.ConnectDB để đường đi ErrDuplicatedKey
// được test qua unique index thật chứ không phải mock.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.NguoiDung{},
		&models.PhieuDanhGia{},
		&models.NhomMucTieu{},
		&models.PhanHoi{},
	))
	return db
}

func chuoi(s string) *string { return &s }

func taoGiangVien(t *testing.T, db *gorm.DB, email string) models.NguoiDung {
	t.Helper()
	gv := models.NguoiDung{
		Ten:     "GV " + email,
		Email:   email,
		MatKhau: "x",
		VaiTro:  models.VaiTroGiangVien,
	}
	require.NoError(t, db.Create(&gv).Error)
	return gv
}

func taoAdmin(t *testing.T, db *gorm.DB) models.NguoiDung {
	t.Helper()
	ad := models.NguoiDung{Ten: "Admin", Email: "admin@test.local", MatKhau: "x", VaiTro: models.VaiTroAdmin}
	require.NoError(t, db.Create(&ad).Error)
	return ad
}

func taoSinhVien(t *testing.T, db *gorm.DB, email, mssv, nam, nganh, lop string) models.NguoiDung {
	t.Helper()
	sv := models.NguoiDung{
		Ten:     "SV " + email,
		Email:   email,
		MatKhau: "x",
		VaiTro:  models.VaiTroSinhVien,
		MSSV:    chuoi(mssv),
	}
	if nam != "" {
		sv.NamHoc, sv.Nganh, sv.Lop = chuoi(nam), chuoi(nganh), chuoi(lop)
	}
	require.NoError(t, db.Create(&sv).Error)
	return sv
}

// taoPhieu tạo phiếu trực tiếp (không qua service) kèm các nhóm mục tiêu,
// ngày tạo truyền vào để kiểm soát thứ tự sắp xếp
func taoPhieu(t *testing.T, db *gorm.DB, gvID, adminID uint, monHoc string, ngayTao time.Time, nhoms ...[3]string) models.PhieuDanhGia {
	t.Helper()
	phieu := models.PhieuDanhGia{
		HocKy:       "2025-HK1",
		GiangVienID: gvID,
		TenMonHoc:   monHoc,
		NguoiTaoID:  adminID,
		KichHoat:    true,
		NgayTao:     ngayTao,
	}
	require.NoError(t, db.Create(&phieu).Error)
	for _, n := range nhoms {
		require.NoError(t, db.Create(&models.NhomMucTieu{
			PhieuID: phieu.ID,
			NamHoc:  n[0],
			Nganh:   n[1],
			Lop:     n[2],
		}).Error)
	}
	return phieu
}
