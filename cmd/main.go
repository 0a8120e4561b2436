package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/feedback-server/config"
	"github.com/vnkhanh/feedback-server/middleware"
	"github.com/vnkhanh/feedback-server/routes"
)

func main() {
	// Kết nối DB + AutoMigrate
	config.ConnectDB()

	// Tạo instance router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// FRONTEND_ORIGINS: danh sách origin cách nhau dấu phẩy
	allowed := map[string]bool{"http://localhost:5173": true}
	for _, o := range strings.Split(os.Getenv("FRONTEND_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Feedback server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	// Setup routes khác
	routes.SetupRoutes(r)

	// Lấy PORT từ biến môi trường
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
