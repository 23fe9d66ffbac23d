// Package vendors provides the vendor aggregate: the merchant business
// entity that owns products and appointments, receives orders, and holds
// the payout IBAN shown to customers. The directory name is plural because
// the Go tool ignores directories named "vendor".
package vendors
