package db

import (
	"github.com/KromaEnergia/painel-vendedores/internal/config"
	"gorm.io/gorm"
)

func GetDB(cfg config.DBConfig) (*gorm.DB, error) {
	return ConnectDataBase(cfg.Port, cfg.Host, cfg.Nome, cfg.Usuario, cfg.Senha, cfg.SSLDisabled)
}
