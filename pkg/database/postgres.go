package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema, seeds the default roles and installs the
// status-cascade triggers.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.HerbariumType{},
		&models.Family{},
		&models.Plant{},
		&models.PlantImage{},
		&models.LogEvent{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	return installCascadeTriggers(db)
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: "admin"},
		{Name: "user"},
	}

	for _, role := range roles {
		var count int64
		db.Model(&models.Role{}).Where("name = ?", role.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return fmt.Errorf("failed to seed role %q: %w", role.Name, err)
			}
		}
	}
	return nil
}

// Cascade triggers: a status/is_deleted change on a herbarium type is
// propagated to its families, and a change on a family to its plants.
// Each trigger is one level deep; the family trigger firing off the
// herbarium update makes the cascade reach plants transitively. Plant
// images are intentionally left out.
var cascadeTriggers = []string{
	`
	CREATE OR REPLACE FUNCTION trg_update_family_status()
	RETURNS TRIGGER AS $BODY$
	BEGIN
		IF NEW.status IS DISTINCT FROM OLD.status THEN
			UPDATE family
			SET status = NEW.status
			WHERE herbarium_type_id = NEW.id;
		END IF;

		IF NEW.is_deleted IS DISTINCT FROM OLD.is_deleted THEN
			UPDATE family
			SET is_deleted = NEW.is_deleted
			WHERE herbarium_type_id = NEW.id;
		END IF;

		RETURN NEW;
	END;
	$BODY$ LANGUAGE plpgsql;
	`,
	`
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'after_update_herbarium_type') THEN
			CREATE TRIGGER after_update_herbarium_type
			AFTER UPDATE OF status, is_deleted ON herbarium_type
			FOR EACH ROW
			EXECUTE PROCEDURE trg_update_family_status();
		END IF;
	END $$;
	`,
	`
	CREATE OR REPLACE FUNCTION trg_update_plant_status()
	RETURNS TRIGGER AS $BODY$
	BEGIN
		IF NEW.status IS DISTINCT FROM OLD.status THEN
			UPDATE plant
			SET status = NEW.status
			WHERE family_id = NEW.id;
		END IF;

		IF NEW.is_deleted IS DISTINCT FROM OLD.is_deleted THEN
			UPDATE plant
			SET is_deleted = NEW.is_deleted
			WHERE family_id = NEW.id;
		END IF;

		RETURN NEW;
	END;
	$BODY$ LANGUAGE plpgsql;
	`,
	`
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'after_update_family') THEN
			CREATE TRIGGER after_update_family
			AFTER UPDATE OF status, is_deleted ON family
			FOR EACH ROW
			EXECUTE PROCEDURE trg_update_plant_status();
		END IF;
	END $$;
	`,
}

func installCascadeTriggers(db *gorm.DB) error {
	for _, ddl := range cascadeTriggers {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to install cascade trigger: %w", err)
		}
	}
	return nil
}
