package entity

import "gorm.io/gorm"

// MigrateTable creates every table of the module. It is used by tests and
// local development; production schemas are managed with SQL migrations.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&Reward{},
		&EventParticipation{},
		&RewardRequest{},
		&UserReward{},
		&EventLog{},
	)
}
