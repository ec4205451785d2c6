package truck

import (
	"errors"
	"fmt"
	"strings"

	"frota-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TruckRequest struct {
	Plate string `json:"plate"`
}

type TruckResponse struct {
	ID        uint   `json:"id"`
	Plate     string `json:"plate"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func truckResponse(t models.Truck) TruckResponse {
	return TruckResponse{
		ID:        t.ID,
		Plate:     t.Plate,
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}

// POST /api/trucks
func CreateTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TruckRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Plate = strings.ToUpper(strings.TrimSpace(body.Plate))
		if body.Plate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Placa é obrigatória")
		}

		t := models.Truck{Plate: body.Plate}
		if err := db.Create(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Caminhão não pôde ser criado")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Caminhão criado com sucesso",
			"id":      t.ID,
		})
	}
}

// GET /api/trucks
func ListTrucksHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var trucks []models.Truck
		if err := db.Order("created_at desc").Find(&trucks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Caminhões não puderam ser listados")
		}

		resp := make([]TruckResponse, 0, len(trucks))
		for _, t := range trucks {
			resp = append(resp, truckResponse(t))
		}
		return c.JSON(resp)
	}
}

// GET /api/trucks/:id
func GetTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var t models.Truck
		if err := db.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Caminhão não encontrado")
		}
		return c.JSON(truckResponse(t))
	}
}

// PUT /api/trucks/:id
func UpdateTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var t models.Truck
		if err := db.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Caminhão não encontrado")
		}

		var body TruckRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Plate = strings.ToUpper(strings.TrimSpace(body.Plate))
		if body.Plate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Placa é obrigatória")
		}

		t.Plate = body.Plate
		if err := db.Save(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Caminhão não pôde ser atualizado")
		}
		return c.JSON(fiber.Map{"message": "Caminhão atualizado com sucesso"})
	}
}

// DELETE /api/trucks/:id
// Remove o caminhão e todos os seus lançamentos em uma transação.
func DeleteTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}

		affected, err := DeleteCascade(db, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Caminhão não pôde ser excluído")
		}
		if affected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Caminhão não encontrado")
		}

		return c.JSON(fiber.Map{"message": "Caminhão e registros relacionados foram deletados com sucesso"})
	}
}
