// Package models defines the record shapes kept by eventdesk.
//
// # Record Kinds
//
// Seven record kinds are stored, each in its own collection:
//   - Employee: staff member, optionally reporting to a manager
//   - Event: a booked event with its guests and suppliers
//   - Client: the customer paying for an event
//   - Guest: a person attending an event
//   - Supplier: a service provider (cleaning, decorations, ...)
//   - Venue: a location with a guest capacity range
//   - Caterer: a catering supplier with a menu
//
// # Keys and References
//
// Every record is keyed by an application-assigned, non-negative integer
// that is unique within its own collection only.
//
// Fields such as Employee.ManagerID or Event.ClientID hold the key of another
// record. These are unchecked references: the relation is recorded, but the
// referenced record is never looked up and may not exist.
//
// # Immutability
//
// Records have no partial update. A record is changed by deleting it and
// inserting its replacement under the same key.
package models
