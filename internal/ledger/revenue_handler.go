package ledger

import (
	"frota-backend/internal/models"
	"frota-backend/internal/numeric"
	"frota-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RevenueRequest struct {
	TruckID     uint             `json:"truck_id" validate:"required"`
	Amount      *numeric.Decimal `json:"amount" validate:"required,gt=0"`
	Description string           `json:"description"`
	RevenueDate string           `json:"revenue_date" validate:"required"`
}

type RevenueResponse struct {
	ID          uint    `json:"id"`
	TruckID     uint    `json:"truck_id"`
	Plate       string  `json:"plate"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	RevenueDate string  `json:"revenue_date"`
}

func revenueResponse(r models.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:          r.ID,
		TruckID:     r.TruckID,
		Plate:       r.Truck.Plate,
		Amount:      r.Amount,
		Description: r.Description,
		RevenueDate: r.RevenueDate.Format(dateLayout),
	}
}

func revenueResponses(rows []models.Revenue) []RevenueResponse {
	resp := make([]RevenueResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, revenueResponse(r))
	}
	return resp
}

// POST /api/revenues
func CreateRevenueHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RevenueRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.RevenueDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		rev := models.Revenue{
			TruckID:     body.TruckID,
			Amount:      body.Amount.Float64(),
			Description: body.Description,
			RevenueDate: d,
		}
		if err := db.Create(&rev).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receita não pôde ser salva")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Receita criada com sucesso",
			"id":      rev.ID,
		})
	}
}

// GET /api/revenues
func ListRevenuesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Revenue
		if err := db.Preload("Truck").
			Order("revenue_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receitas não puderam ser listadas")
		}
		return c.JSON(revenueResponses(rows))
	}
}

// GET /api/revenues/truck/:truck_id
func ListRevenuesByTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}

		var rows []models.Revenue
		if err := db.Preload("Truck").
			Where("truck_id = ?", truckID).
			Order("revenue_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receitas não puderam ser listadas")
		}
		return c.JSON(revenueResponses(rows))
	}
}

// GET /api/revenues/by-period?year=2025&month=3
func ListRevenuesByPeriodHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []models.Revenue
		if err := db.Preload("Truck").
			Where("revenue_date >= ? AND revenue_date <= ?", first, last).
			Order("revenue_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receitas não puderam ser listadas")
		}
		return c.JSON(revenueResponses(rows))
	}
}

// GET /api/revenues/:id
func GetRevenueHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var rev models.Revenue
		if err := db.Preload("Truck").First(&rev, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(revenueResponse(rev))
	}
}

// PUT /api/revenues/:id
func UpdateRevenueHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var rev models.Revenue
		if err := db.First(&rev, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}

		var body RevenueRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.RevenueDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		rev.TruckID = body.TruckID
		rev.Amount = body.Amount.Float64()
		rev.Description = body.Description
		rev.RevenueDate = d

		if err := db.Save(&rev).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receita não pôde ser atualizada")
		}
		return c.JSON(fiber.Map{"message": "Receita atualizada com sucesso"})
	}
}

// DELETE /api/revenues/:id
func DeleteRevenueHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		res := db.Delete(&models.Revenue{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receita não pôde ser excluída")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fiber.Map{"message": "Receita excluída com sucesso"})
	}
}
