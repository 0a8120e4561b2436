package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/utils"
)

const (
	CtxUser  = "user"     // models.NguoiDung đã nạp sẵn
	CtxPhieu = "phieuObj" // phiếu đã nạp sẵn (CheckPhieuGiangVien)
)

// AuthJWT kiểm tra Authorization: Bearer <token>, validate JWT, lấy user và inject vào context.
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// UserID trong claims là string → parse ra uint64 để tìm DB theo primary key
		uid, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid subject"})
			return
		}

		var user models.NguoiDung
		if err := config.DB.First(&user, uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// RequireVaiTro chặn route theo vai trò (admin / teacher / student)
func RequireVaiTro(vaiTros ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxUser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		u := v.(models.NguoiDung)
		for _, vt := range vaiTros {
			if u.VaiTro == vt {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireVaiTro(models.VaiTroAdmin)
}
