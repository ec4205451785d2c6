package truck

import (
	"frota-backend/internal/models"

	"gorm.io/gorm"
)

// DeleteCascade apaga o caminhão e todos os lançamentos que o referenciam
// dentro de uma única transação: ou tudo é removido, ou nada.
//
// Os filhos são apagados antes do pai. OtherExpense fica de fora: despesas
// gerais não têm truck_id. Retorna quantas linhas de trucks foram afetadas
// (0 = caminhão não existia; a transação ainda assim é consistente, pois
// nenhum lançamento referencia um id inexistente).
func DeleteCascade(db *gorm.DB, truckID uint) (int64, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	children := []interface{}{
		&models.FuelExpense{},
		&models.DriverExpense{},
		&models.MaintenanceExpense{},
		&models.Revenue{},
	}
	for _, child := range children {
		if err := tx.Where("truck_id = ?", truckID).Delete(child).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	res := tx.Delete(&models.Truck{}, "id = ?", truckID)
	if res.Error != nil {
		tx.Rollback()
		return 0, res.Error
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}
