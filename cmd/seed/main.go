package main

import (
	"log"
	"os"
	"strings"

	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/models"
	"github.com/vnkhanh/feedback-server/utils"
)

// Seed tài khoản admin đầu tiên (và giảng viên mẫu nếu cần).
// Chạy: ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seed
func main() {
	config.ConnectDB()
	db := config.DB

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || len(password) < 6 {
		log.Fatal("cần ADMIN_EMAIL và ADMIN_PASSWORD (tối thiểu 6 ký tự)")
	}

	var count int64
	if err := db.Model(&models.NguoiDung{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatalf("không kiểm tra được tài khoản: %v", err)
	}
	if count > 0 {
		log.Printf("admin %s đã tồn tại, bỏ qua", email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("không mã hóa được mật khẩu: %v", err)
	}

	admin := models.NguoiDung{
		Ten:     "Quản trị viên",
		Email:   email,
		MatKhau: hash,
		VaiTro:  models.VaiTroAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("không tạo được admin: %v", err)
	}
	log.Printf("đã tạo admin %s", email)
}
