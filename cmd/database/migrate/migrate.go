package migration

import (
	"fmt"
	"freshtrack/pkg/state"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := state.Migrate(db); err != nil {
		log.Fatalf("Error migrating state database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
