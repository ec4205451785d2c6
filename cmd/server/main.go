package main

import (
	"log"
	"strings"

	"frota-backend/internal/auth"
	"frota-backend/internal/config"
	"frota-backend/internal/database"
	"frota-backend/internal/ledger"
	"frota-backend/internal/report"
	"frota-backend/internal/truck"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco de dados:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Erro ao migrar o banco de dados:", err)
	}
	if err := auth.EnsureDefaultAdmin(db); err != nil {
		log.Fatal("Erro ao criar usuário admin padrão:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro interno do servidor",
			})
		},
	})

	// CORS origins vem como string separada por vírgulas
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API RMB Transportes funcionando!"})
	})

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/login", auth.LoginHandler(cfg, db))

	// Protegidas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/profile", auth.ProfileHandler(db))
	protected.Post("/auth/logout", auth.LogoutHandler())

	// Caminhões (o DELETE remove em cascata os lançamentos do caminhão)
	protected.Post("/trucks", truck.CreateTruckHandler(db))
	protected.Get("/trucks", truck.ListTrucksHandler(db))
	protected.Get("/trucks/:id", truck.GetTruckHandler(db))
	protected.Put("/trucks/:id", truck.UpdateTruckHandler(db))
	protected.Delete("/trucks/:id", truck.DeleteTruckHandler(db))

	// Receitas — rotas fixas antes de /:id
	protected.Post("/revenues", ledger.CreateRevenueHandler(db))
	protected.Get("/revenues", ledger.ListRevenuesHandler(db))
	protected.Get("/revenues/by-period", ledger.ListRevenuesByPeriodHandler(db))
	protected.Get("/revenues/truck/:truck_id", ledger.ListRevenuesByTruckHandler(db))
	protected.Get("/revenues/:id", ledger.GetRevenueHandler(db))
	protected.Put("/revenues/:id", ledger.UpdateRevenueHandler(db))
	protected.Delete("/revenues/:id", ledger.DeleteRevenueHandler(db))

	// Abastecimentos
	protected.Post("/fuel_expenses", ledger.CreateFuelExpenseHandler(db))
	protected.Get("/fuel_expenses", ledger.ListFuelExpensesHandler(db))
	protected.Get("/fuel_expenses/by-period", ledger.ListFuelExpensesByPeriodHandler(db))
	protected.Get("/fuel_expenses/truck/:truck_id", ledger.ListFuelExpensesByTruckHandler(db))
	protected.Get("/fuel_expenses/:id", ledger.GetFuelExpenseHandler(db))
	protected.Put("/fuel_expenses/:id", ledger.UpdateFuelExpenseHandler(db))
	protected.Delete("/fuel_expenses/:id", ledger.DeleteFuelExpenseHandler(db))

	// Despesas com motoristas
	protected.Post("/driver_expenses", ledger.CreateDriverExpenseHandler(db))
	protected.Get("/driver_expenses", ledger.ListDriverExpensesHandler(db))
	protected.Get("/driver_expenses/by-period", ledger.ListDriverExpensesByPeriodHandler(db))
	protected.Get("/driver_expenses/truck/:truck_id", ledger.ListDriverExpensesByTruckHandler(db))
	protected.Get("/driver_expenses/:id", ledger.GetDriverExpenseHandler(db))
	protected.Put("/driver_expenses/:id", ledger.UpdateDriverExpenseHandler(db))
	protected.Delete("/driver_expenses/:id", ledger.DeleteDriverExpenseHandler(db))

	// Manutenções
	protected.Post("/maintenance_expenses", ledger.CreateMaintenanceExpenseHandler(db))
	protected.Get("/maintenance_expenses", ledger.ListMaintenanceExpensesHandler(db))
	protected.Get("/maintenance_expenses/by-period", ledger.ListMaintenanceExpensesByPeriodHandler(db))
	protected.Get("/maintenance_expenses/truck/:truck_id", ledger.ListMaintenanceExpensesByTruckHandler(db))
	protected.Get("/maintenance_expenses/:id", ledger.GetMaintenanceExpenseHandler(db))
	protected.Put("/maintenance_expenses/:id", ledger.UpdateMaintenanceExpenseHandler(db))
	protected.Delete("/maintenance_expenses/:id", ledger.DeleteMaintenanceExpenseHandler(db))

	// Outras despesas (não vinculadas a caminhão)
	protected.Post("/other_expenses", ledger.CreateOtherExpenseHandler(db))
	protected.Get("/other_expenses", ledger.ListOtherExpensesHandler(db))
	protected.Get("/other_expenses/period", ledger.ListOtherExpensesByPeriodHandler(db))
	protected.Get("/other_expenses/totals", ledger.OtherExpensesTotalsHandler(db))
	protected.Get("/other_expenses/totals_by_category", ledger.OtherExpensesTotalsByCategoryHandler(db))
	protected.Get("/other_expenses/:id", ledger.GetOtherExpenseHandler(db))
	protected.Put("/other_expenses/:id", ledger.UpdateOtherExpenseHandler(db))
	protected.Delete("/other_expenses/:id", ledger.DeleteOtherExpenseHandler(db))

	// Relatórios
	protected.Get("/reports/balance/:truck_id", report.TruckBalanceHandler(db))
	protected.Get("/reports/monthly/:truck_id", report.MonthlyTruckSummaryHandler(db))
	protected.Get("/reports/monthly", report.GeneralMonthlySummaryHandler(db))
	protected.Get("/reports/driver_expenses", report.DriverExpensesTotalHandler(db))

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
