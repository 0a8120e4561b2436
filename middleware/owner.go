package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/models"
)

// CheckPhieuGiangVien: nạp phiếu vào context & xác thực quyền xem thống kê.
// Giảng viên chỉ xem phiếu của mình; admin xem được mọi phiếu.
func CheckPhieuGiangVien() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.NguoiDung)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
			return
		}

		var phieu models.PhieuDanhGia
		if err := config.DB.First(&phieu, id).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Phiếu không tồn tại"})
			return
		}

		if u.VaiTro != models.VaiTroAdmin && phieu.GiangVienID != u.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Bạn không có quyền xem phiếu này"})
			return
		}

		// Đưa phiếu vào context để controller dùng tiếp
		c.Set(CtxPhieu, phieu)
		c.Next()
	}
}
