package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/feedback-server/models"
)

func TestThongKePhieu(t *testing.T) {
	t.Run("phiếu chưa có phản hồi trả toàn số 0", func(t *testing.T) {
		db := newTestDB(t)
		admin := taoAdmin(t, db)
		gv := taoGiangVien(t, db, "gv@test.local")
		phieu := taoPhieu(t, db, gv.ID, admin.ID, "CTDL", time.Now(), [3]string{"SE", "CSE", "A"})

		tk, err := ThongKePhieu(db, phieu.ID)
		require.NoError(t, err)
		assert.Zero(t, tk.TongPhanHoi)
		for _, tc := range []models.ThongKeTieuChi{tk.NeNep, tk.ChatLuong, tk.TuongTac} {
			assert.Zero(t, tc.Kem)
			assert.Zero(t, tc.TrungBinh)
			assert.Zero(t, tc.Tot)
			assert.Zero(t, tc.KemPct)
			assert.Zero(t, tc.TrungBinhPct)
			assert.Zero(t, tc.TotPct)
		}
	})

	t.Run("một phản hồi (tốt, trung bình, kém) ra 100% từng mức", func(t *testing.T) {
		db := newTestDB(t)
		admin := taoAdmin(t, db)
		gv := taoGiangVien(t, db, "gv@test.local")
		sv := taoSinhVien(t, db, "sv@test.local", "1000000001", "SE", "CSE", "A")
		phieu := taoPhieu(t, db, gv.ID, admin.ID, "CTDL", time.Now(), [3]string{"SE", "CSE", "A"})

		_, err := GuiPhanHoi(db, sv.ID, phieu.ID, DanhGiaReq{NeNep: 3, ChatLuong: 2, TuongTac: 1})
		require.NoError(t, err)

		tk, err := ThongKePhieu(db, phieu.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, tk.TongPhanHoi)

		assert.Equal(t, models.ThongKeTieuChi{Tot: 1, TotPct: 100}, tk.NeNep)
		assert.Equal(t, models.ThongKeTieuChi{TrungBinh: 1, TrungBinhPct: 100}, tk.ChatLuong)
		assert.Equal(t, models.ThongKeTieuChi{Kem: 1, KemPct: 100}, tk.TuongTac)
	})

	t.Run("tổng số lượt từng tiêu chí luôn bằng tổng phản hồi", func(t *testing.T) {
		db := newTestDB(t)
		admin := taoAdmin(t, db)
		gv := taoGiangVien(t, db, "gv@test.local")
		phieu := taoPhieu(t, db, gv.ID, admin.ID, "CTDL", time.Now(), [3]string{"SE", "CSE", "A"})

		diem := [][3]int{{1, 2, 3}, {2, 2, 2}, {3, 1, 1}, {3, 3, 2}, {1, 1, 3}, {2, 3, 1}, {3, 2, 2}}
		for i, d := range diem {
			sv := taoSinhVien(t, db, "sv"+string(rune('a'+i))+"@test.local",
				"100000000"+string(rune('1'+i)), "SE", "CSE", "A")
			_, err := GuiPhanHoi(db, sv.ID, phieu.ID, DanhGiaReq{NeNep: d[0], ChatLuong: d[1], TuongTac: d[2]})
			require.NoError(t, err)
		}

		tk, err := ThongKePhieu(db, phieu.ID)
		require.NoError(t, err)
		require.Equal(t, len(diem), tk.TongPhanHoi)
		for _, tc := range []models.ThongKeTieuChi{tk.NeNep, tk.ChatLuong, tk.TuongTac} {
			assert.Equal(t, tk.TongPhanHoi, tc.Kem+tc.TrungBinh+tc.Tot)
		}
	})

	t.Run("phiếu không tồn tại trả NotFound", func(t *testing.T) {
		db := newTestDB(t)
		_, err := ThongKePhieu(db, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestThongKeGiangVien(t *testing.T) {
	t.Run("một bản ghi mỗi phiếu đang kích hoạt, mới nhất trước", func(t *testing.T) {
		db := newTestDB(t)
		admin := taoAdmin(t, db)
		gv := taoGiangVien(t, db, "gv@test.local")
		gvKhac := taoGiangVien(t, db, "gv2@test.local")

		cu := taoPhieu(t, db, gv.ID, admin.ID, "Cũ", time.Now().Add(-time.Hour))
		moi := taoPhieu(t, db, gv.ID, admin.ID, "Mới", time.Now())
		daTat := taoPhieu(t, db, gv.ID, admin.ID, "Đã tắt", time.Now())
		require.NoError(t, NgungNhanPhieu(db, daTat.ID))
		taoPhieu(t, db, gvKhac.ID, admin.ID, "Của người khác", time.Now())

		tks, err := ThongKeGiangVien(db, gv.ID)
		require.NoError(t, err)
		require.Len(t, tks, 2)
		assert.Equal(t, moi.ID, tks[0].PhieuID)
		assert.Equal(t, cu.ID, tks[1].PhieuID)
		assert.Equal(t, "Mới", tks[0].TenMonHoc)
	})

	t.Run("giảng viên chưa có phiếu trả danh sách rỗng", func(t *testing.T) {
		db := newTestDB(t)
		gv := taoGiangVien(t, db, "gv@test.local")

		tks, err := ThongKeGiangVien(db, gv.ID)
		require.NoError(t, err)
		assert.Empty(t, tks)
	})

	t.Run("id không phải giảng viên trả NotFound", func(t *testing.T) {
		db := newTestDB(t)
		admin := taoAdmin(t, db)
		sv := taoSinhVien(t, db, "sv@test.local", "1000000001", "SE", "CSE", "A")

		_, err := ThongKeGiangVien(db, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = ThongKeGiangVien(db, admin.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = ThongKeGiangVien(db, sv.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
