package ledger

import (
	"fmt"
	"time"

	"frota-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params(name), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}

// parseYearMonth exige year e month na query; ausência é erro do cliente,
// nunca um período assumido por padrão.
func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Parâmetros year e month são obrigatórios")
	}

	var year, month int
	if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year inválido")
	}
	if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month inválido")
	}
	return year, month, nil
}

func monthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Data deve estar no formato 'YYYY-MM-DD'")
	}
	return d, nil
}

// findTruck confirma que o caminhão referenciado existe antes de gravar o
// lançamento (as FKs são garantidas pela aplicação, não pelo schema).
func findTruck(db *gorm.DB, truckID uint) (*models.Truck, error) {
	var t models.Truck
	if err := db.First(&t, "id = ?", truckID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Caminhão não encontrado")
	}
	return &t, nil
}
