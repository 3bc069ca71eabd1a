package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm abre a conexão com o driver pedido: "postgres" (DSN libpq) ou
// "sqlite" (caminho do arquivo ou DSN em memória).
func OpenGorm(driver, dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Error)}
	}
	switch driver {
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("postgres requer um DSN")
		}
		return gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite":
		if dsn == "" {
			return nil, fmt.Errorf("sqlite requer um caminho")
		}
		return gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}
}

func ConnectDataBase(port uint, host, dbname, username, password string, sslDisabled bool) (*gorm.DB, error) {
	dsn := MontarDSN(port, host, dbname, username, password, sslDisabled)
	database, err := OpenGorm("postgres", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("conectar no postgres %s:%d/%s: %w", host, port, dbname, err)
	}
	return database, nil
}

func MontarDSN(port uint, host, dbname, username, password string, sslDisabled bool) string {
	var sslMode string
	if sslDisabled {
		sslMode = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s", host, username, password, dbname, port, sslMode)
}
