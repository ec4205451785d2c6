package ledger

import (
	"strings"

	"frota-backend/internal/models"
	"frota-backend/internal/numeric"
	"frota-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OtherExpenseRequest struct {
	Category    string           `json:"category" validate:"required"`
	Supplier    string           `json:"supplier"`
	Document    string           `json:"document"`
	Amount      *numeric.Decimal `json:"amount" validate:"required,gt=0"`
	ExpenseDate string           `json:"expense_date" validate:"required"`
	Description string           `json:"description"`
}

type OtherExpenseResponse struct {
	ID          uint    `json:"id"`
	Category    string  `json:"category"`
	Supplier    string  `json:"supplier"`
	Document    string  `json:"document"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	Description string  `json:"description"`
}

type OtherExpenseTotalsResponse struct {
	TotalOtherExpenses float64 `json:"total_other_expenses"`
	TotalRecords       int64   `json:"total_records"`
}

type OtherExpenseCategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Records  int64   `json:"records"`
}

func otherExpenseResponse(o models.OtherExpense) OtherExpenseResponse {
	return OtherExpenseResponse{
		ID:          o.ID,
		Category:    o.Category,
		Supplier:    o.Supplier,
		Document:    o.Document,
		Amount:      o.Amount,
		ExpenseDate: o.ExpenseDate.Format(dateLayout),
		Description: o.Description,
	}
}

func otherExpenseResponses(rows []models.OtherExpense) []OtherExpenseResponse {
	resp := make([]OtherExpenseResponse, 0, len(rows))
	for _, o := range rows {
		resp = append(resp, otherExpenseResponse(o))
	}
	return resp
}

// POST /api/other_expenses
func CreateOtherExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OtherExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Category = strings.TrimSpace(body.Category)
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}

		exp := models.OtherExpense{
			Category:    body.Category,
			Supplier:    body.Supplier,
			Document:    body.Document,
			Amount:      body.Amount.Float64(),
			ExpenseDate: d,
			Description: body.Description,
		}
		if err := db.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa não pôde ser salva")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Despesa criada com sucesso",
			"id":      exp.ID,
		})
	}
}

// GET /api/other_expenses
func ListOtherExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.OtherExpense
		if err := db.Order("expense_date desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas não puderam ser listadas")
		}
		return c.JSON(otherExpenseResponses(rows))
	}
}

// GET /api/other_expenses/period?year=2025&month=3
func ListOtherExpensesByPeriodHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []models.OtherExpense
		if err := db.Where("expense_date >= ? AND expense_date <= ?", first, last).
			Order("expense_date asc, id asc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas não puderam ser listadas")
		}
		return c.JSON(otherExpenseResponses(rows))
	}
}

// GET /api/other_expenses/totals?year=2025&month=3
func OtherExpensesTotalsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var row struct {
			Total   float64 `gorm:"column:total"`
			Records int64   `gorm:"column:records"`
		}
		if err := db.Model(&models.OtherExpense{}).
			Select("COALESCE(SUM(amount), 0) as total, COUNT(*) as records").
			Where("expense_date >= ? AND expense_date <= ?", first, last).
			Scan(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Totais não puderam ser calculados")
		}

		return c.JSON(OtherExpenseTotalsResponse{
			TotalOtherExpenses: row.Total,
			TotalRecords:       row.Records,
		})
	}
}

// GET /api/other_expenses/totals_by_category?year=2025&month=3
func OtherExpensesTotalsByCategoryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []OtherExpenseCategoryTotal
		if err := db.Model(&models.OtherExpense{}).
			Select("category, COALESCE(SUM(amount), 0) as total, COUNT(*) as records").
			Where("expense_date >= ? AND expense_date <= ?", first, last).
			Group("category").
			Order("total desc").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Totais não puderam ser calculados")
		}
		if rows == nil {
			rows = []OtherExpenseCategoryTotal{}
		}
		return c.JSON(rows)
	}
}

// GET /api/other_expenses/:id
func GetOtherExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.OtherExpense
		if err := db.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(otherExpenseResponse(exp))
	}
}

// PUT /api/other_expenses/:id
func UpdateOtherExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.OtherExpense
		if err := db.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}

		var body OtherExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Category = strings.TrimSpace(body.Category)
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}

		exp.Category = body.Category
		exp.Supplier = body.Supplier
		exp.Document = body.Document
		exp.Amount = body.Amount.Float64()
		exp.ExpenseDate = d
		exp.Description = body.Description

		if err := db.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa não pôde ser atualizada")
		}
		return c.JSON(fiber.Map{"message": "Despesa atualizada com sucesso"})
	}
}

// DELETE /api/other_expenses/:id
func DeleteOtherExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		res := db.Delete(&models.OtherExpense{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa não pôde ser excluída")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fiber.Map{"message": "Despesa excluída com sucesso"})
	}
}
