package internal

import (
	"net/http"
	"streakd/internal/auth"
	"streakd/internal/controllers"
	"streakd/internal/providers"
	"streakd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, authController *controllers.AuthController, manager *auth.Manager, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/checkin", auth.Middleware(manager, http.HandlerFunc(apiController.CheckIn)))
	routers.Get("/streak", http.HandlerFunc(apiController.GetStreak))
	routers.Get("/checkins", http.HandlerFunc(apiController.GetCheckins))
	routers.Post("/reference-photo", auth.Middleware(manager, http.HandlerFunc(apiController.SaveReferencePhoto)))
	routers.Get("/reference-photo", http.HandlerFunc(apiController.GetReferencePhoto))

	routers.Post("/auth/code", http.HandlerFunc(authController.RequestCode))
	routers.Post("/auth/verify", http.HandlerFunc(authController.VerifyCode))
	routers.Post("/auth/signout", http.HandlerFunc(authController.SignOut))
	routers.Get("/auth/session", http.HandlerFunc(authController.GetSession))
	return routers
}
