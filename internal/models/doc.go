// Package models defines the documents stored by the API and the request bodies that create them.
//
// # Documents
//
// Five top-level documents live in their own collections:
//   - Composer: a composer's name
//   - Person: a person with ordered roles and dependents
//   - Customer: a shopper with embedded invoices (Invoice -> LineItem)
//   - Team: a team with embedded players
//   - User: an account with a bcrypt password hash
//
// Nested documents (Role, Dependent, Invoice, LineItem, Player) have no identity of
// their own. They are created, read and persisted only through their parent.
//
// # Tags
//
// Every field carries matching json and bson names so the same struct round-trips
// through the HTTP layer, the JSON document backends and MongoDB. The validate tags
// are the entity schema: services check them before anything is written.
//
// Request types carry pointer numerics so that a missing number can be told apart
// from an explicit zero.
package models
