// Package registeredusers implements the Registered Users query use case: all registrations in stored order.
package registeredusers
