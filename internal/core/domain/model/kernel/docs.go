// Package kernel holds the value objects shared by the ride domain.
//
// UUID is the identifier type of every aggregate. Its zero value is invalid,
// so an identifier that was never assigned is caught by Validate rather than
// silently matching the nil UUID.
package kernel
