package database

import (
	"frota-backend/internal/config"
	"frota-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open abre a conexão com o banco. O handle retornado é criado uma única vez
// no início do processo e injetado nos handlers; Close deve ser chamado no
// encerramento.
//
// As constraints de chave estrangeira NÃO são criadas no schema: a
// integridade referencial é garantida pela aplicação, via exclusão em
// cascata manual (ver truck.DeleteCascade). Troca consciente: portabilidade
// do schema em vez de integridade declarativa.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
}

// Migrate cria/atualiza as tabelas.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Truck{},
		&models.Revenue{},
		&models.FuelExpense{},
		&models.DriverExpense{},
		&models.MaintenanceExpense{},
		&models.OtherExpense{},
	)
}

// Close encerra o pool de conexões.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
