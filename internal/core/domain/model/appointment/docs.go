// Package appointment contains the Appointment aggregate for service
// bookings between customers and vendors, including its status machine.
package appointment
