package routes

import (
	"topupgame/controllers/admin"
	"topupgame/controllers/auth"
	"topupgame/controllers/user"
	"topupgame/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", middlewares.SessionAuth, auth.Logout)

	userroutes := app.Group("/user", middlewares.SessionAuth)
	userroutes.Get("/games", user.ListGames)
	userroutes.Get("/games/:id/reviews", user.ListGameReviews)
	userroutes.Get("/products", user.ListProducts)
	userroutes.Post("/select", user.SelectProduct)
	userroutes.Post("/orders", user.CreateOrder)
	userroutes.Get("/orders", user.ListOrders)
	userroutes.Post("/orders/:id/proof", user.UploadProof)
	userroutes.Post("/reviews", user.CreateReview)
	userroutes.Get("/messages", user.GetConversation)
	userroutes.Post("/messages", user.SendMessage)
	userroutes.Get("/notifications", user.PollNotifications)
	userroutes.Get("/profile", user.GetProfile)
	userroutes.Put("/profile", user.UpdateProfile)
	userroutes.Put("/password", user.ChangePassword)

	adminroutes := app.Group("/admin", middlewares.SessionAuth, middlewares.AdminOnly)
	adminroutes.Get("/games", admin.ListGames)
	adminroutes.Post("/games", admin.CreateGame)
	adminroutes.Put("/games/:id", admin.UpdateGame)
	adminroutes.Delete("/games/:id", admin.DeleteGame)
	adminroutes.Get("/products", admin.ListProducts)
	adminroutes.Post("/products", admin.CreateProduct)
	adminroutes.Put("/products/:id", admin.UpdateProduct)
	adminroutes.Delete("/products/:id", admin.DeleteProduct)
	adminroutes.Get("/transactions", admin.ListTransactions)
	adminroutes.Put("/transactions/:id/status", admin.UpdateTransactionStatus)
	adminroutes.Get("/reviews", admin.ListReviews)
	adminroutes.Put("/reviews/:id/visibility", admin.SetReviewVisibility)
	adminroutes.Delete("/reviews/:id", admin.DeleteReview)
	adminroutes.Get("/users", admin.ListUsers)
	adminroutes.Delete("/users/:id", admin.DeleteUser)
	adminroutes.Get("/messages", admin.ListConversations)
	adminroutes.Get("/messages/:username", admin.GetConversation)
	adminroutes.Post("/messages/:username", admin.SendMessage)
	adminroutes.Get("/reports/transactions.csv", admin.ExportTransactionsCSV)
	adminroutes.Get("/reports/users.csv", admin.ExportUsersCSV)
	adminroutes.Get("/reports/summary", admin.TransactionSummary)
}
