// Package courier provides the courier aggregate: a delivery agent with an
// administrative activity flag, a self-managed availability flag, and a
// vehicle type. The courier side of order exclusivity (one active delivery
// per courier) lives in the assignment service, which combines this
// aggregate with the order repository under a per-courier lock.
package courier
