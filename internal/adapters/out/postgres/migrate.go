package postgres

import (
	"gorm.io/gorm"

	"varto/internal/adapters/out/postgres/appointmentrepo"
	"varto/internal/adapters/out/postgres/courierrepo"
	"varto/internal/adapters/out/postgres/notificationrepo"
	"varto/internal/adapters/out/postgres/orderrepo"
	"varto/internal/adapters/out/postgres/vendorrepo"
)

// Migrate creates or updates the schema for every table the adapters use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&courierrepo.CourierDTO{},
		&vendorrepo.VendorDTO{},
		&appointmentrepo.AppointmentDTO{},
		&notificationrepo.NotificationDTO{},
		&PushTokenDTO{},
	)
}
