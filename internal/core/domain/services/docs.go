// Package services contains stateless domain services that coordinate
// multiple aggregates, currently courier assignment.
package services
