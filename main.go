package main

import (
	"fmt"
	"log"

	"booking-clone-server/config"
	"booking-clone-server/routes"
	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	storage.InitializeDB(cfg)
	storage.InitializeRedis(cfg)
	if err := storage.InitializeUploads(cfg); err != nil {
		log.Fatalf("upload gateway: %v", err)
	}
	utils.InitializeSessions(cfg.SessionSecret)

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	sessionMiddleware := utils.SessionMiddleware()

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	api := app.Party("/api")
	{
		api.Post("/register", routes.Register)
		api.Post("/login", routes.Login)
		api.Get("/profile", routes.Profile)
		api.Post("/logout", routes.Logout)

		api.Post("/upload-by-link", routes.UploadByLink)
		api.Post("/upload", routes.UploadPhotos)

		api.Get("/places", routes.GetPlaces)
		api.Get("/places/{id:uint}", routes.GetPlace)
		api.Post("/places", sessionMiddleware, routes.CreatePlace)
		api.Put("/places", sessionMiddleware, routes.UpdatePlace)
		api.Get("/user-places", sessionMiddleware, routes.GetUserPlaces)

		api.Post("/bookings", sessionMiddleware, routes.CreateBooking)
		api.Get("/bookings", sessionMiddleware, routes.GetBookings)
	}

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
