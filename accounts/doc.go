// Package accounts implements the credential side of bookshelf:
// the durable account store, password hashing, credential
// verification and the registration flow.
//
// Every login in the system goes through Verifier.Verify; there is
// no other code path that accepts a plaintext password.
package accounts
