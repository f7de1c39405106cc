package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/configs"
	arretModel "suiviarrets_backend/internals/features/arrets/model"
	matriceModel "suiviarrets_backend/internals/features/matrice/model"
	refModel "suiviarrets_backend/internals/features/references/model"
)

var DB *gorm.DB

func ConnectDB() {
	dbPath := configs.GetEnv("DB_PATH", "db/arrets.db")
	log.Printf("🔌 Opening SQLite database at %s...", dbPath)

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Cannot create database directory: %v", err)
		}
	}

	// busy_timeout keeps the rare concurrent writer from failing outright;
	// foreign_keys stays off as the text columns in arrets are unconstrained.
	dsn := dbPath + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func Migrate() {
	if err := DB.AutoMigrate(
		&arretModel.ArretModel{},
		&matriceModel.MatriceModel{},
		&refModel.SiteModel{},
		&refModel.BatimentModel{},
		&refModel.ClientModel{},
		&refModel.ServiceModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// SQLite allows a single writer; keep the pool small.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
}
