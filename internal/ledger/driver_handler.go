package ledger

import (
	"frota-backend/internal/models"
	"frota-backend/internal/numeric"
	"frota-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DriverExpenseRequest struct {
	TruckID     uint             `json:"truck_id" validate:"required"`
	Amount      *numeric.Decimal `json:"amount" validate:"required,gte=0"`
	Description string           `json:"description"`
	ExpenseDate string           `json:"expense_date" validate:"required"`
}

type DriverExpenseResponse struct {
	ID          uint    `json:"id"`
	TruckID     uint    `json:"truck_id"`
	Plate       string  `json:"plate"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
}

func driverExpenseResponse(d models.DriverExpense) DriverExpenseResponse {
	return DriverExpenseResponse{
		ID:          d.ID,
		TruckID:     d.TruckID,
		Plate:       d.Truck.Plate,
		Amount:      d.Amount,
		Description: d.Description,
		ExpenseDate: d.ExpenseDate.Format(dateLayout),
	}
}

func driverExpenseResponses(rows []models.DriverExpense) []DriverExpenseResponse {
	resp := make([]DriverExpenseResponse, 0, len(rows))
	for _, d := range rows {
		resp = append(resp, driverExpenseResponse(d))
	}
	return resp
}

// POST /api/driver_expenses
func CreateDriverExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DriverExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		exp := models.DriverExpense{
			TruckID:     body.TruckID,
			Amount:      body.Amount.Float64(),
			Description: body.Description,
			ExpenseDate: d,
		}
		if err := db.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa com motorista não pôde ser salva")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Despesa com motorista criada com sucesso",
			"id":      exp.ID,
		})
	}
}

// GET /api/driver_expenses
func ListDriverExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.DriverExpense
		if err := db.Preload("Truck").
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas com motoristas não puderam ser listadas")
		}
		return c.JSON(driverExpenseResponses(rows))
	}
}

// GET /api/driver_expenses/truck/:truck_id
func ListDriverExpensesByTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}

		var rows []models.DriverExpense
		if err := db.Preload("Truck").
			Where("truck_id = ?", truckID).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas com motoristas não puderam ser listadas")
		}
		return c.JSON(driverExpenseResponses(rows))
	}
}

// GET /api/driver_expenses/by-period?year=2025&month=3
func ListDriverExpensesByPeriodHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []models.DriverExpense
		if err := db.Preload("Truck").
			Where("expense_date >= ? AND expense_date <= ?", first, last).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas com motoristas não puderam ser listadas")
		}
		return c.JSON(driverExpenseResponses(rows))
	}
}

// GET /api/driver_expenses/:id
func GetDriverExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.DriverExpense
		if err := db.Preload("Truck").First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(driverExpenseResponse(exp))
	}
}

// PUT /api/driver_expenses/:id
func UpdateDriverExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.DriverExpense
		if err := db.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}

		var body DriverExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		exp.TruckID = body.TruckID
		exp.Amount = body.Amount.Float64()
		exp.Description = body.Description
		exp.ExpenseDate = d

		if err := db.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa com motorista não pôde ser atualizada")
		}
		return c.JSON(fiber.Map{"message": "Despesa com motorista atualizada com sucesso"})
	}
}

// DELETE /api/driver_expenses/:id
func DeleteDriverExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		res := db.Delete(&models.DriverExpense{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa com motorista não pôde ser excluída")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fiber.Map{"message": "Despesa com motorista excluída com sucesso"})
	}
}
