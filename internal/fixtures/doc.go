// Package fixtures holds the fixed records the seeder submits: one account
// and three fundraising events.
//
// The values are literals. Callers may modify what they get back; every call
// builds new values.
package fixtures
