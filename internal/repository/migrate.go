package repository

import "gorm.io/gorm"

// AutoMigrate creates the tables for all row models. On PostgreSQL it also installs
// an exclusion constraint so that two overlapping bookings for one item can never be
// committed, whatever the engine-level checks saw.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &itemModel{}, &bookingModel{}); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		stmts := []string{
			`CREATE EXTENSION IF NOT EXISTS btree_gist`,
			`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
				EXCLUDE USING gist (
					item_id WITH =,
					tstzrange(start_time, end_time, '[)') WITH &&
				)`,
		}
		for _, stmt := range stmts {
			if err := db.Exec(stmt).Error; err != nil && !isDuplicateObject(err) {
				return err
			}
		}
	}

	return nil
}
