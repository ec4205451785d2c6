package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params(name), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return id, nil
}

func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Ano inválido")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Mês inválido")
	}
	return year, month, nil
}

// TruckBalanceHandler retorna o balanço de todo o histórico de um caminhão.
func TruckBalanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}

		balance, err := GetTruckBalance(db, truckID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Caminhão não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao calcular balanço")
		}
		return c.JSON(balance)
	}
}

// MonthlyTruckSummaryHandler retorna o resumo mensal de um caminhão.
func MonthlyTruckSummaryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}

		summary, err := GetMonthlyTruckSummary(db, truckID, year, month)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Caminhão não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao calcular resumo mensal")
		}
		return c.JSON(summary)
	}
}

// GeneralMonthlySummaryHandler retorna o resumo mensal da frota inteira.
func GeneralMonthlySummaryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}

		summaries, err := GetGeneralMonthlySummary(db, year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao calcular resumo geral")
		}
		return c.JSON(summaries)
	}
}

// DriverExpensesTotalHandler retorna o total de despesas com motoristas do mês.
func DriverExpensesTotalHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}

		total, err := GetDriverExpensesTotal(db, year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao calcular total de despesas com motoristas")
		}
		return c.JSON(total)
	}
}
