// Package meta provides small generic wrappers that attach facts to a value
// while keeping the value itself reachable.
//
// Three shapes exist:
//   - Named: the value plus a resolved name
//   - Marked: the value plus the marker it was matched by
//   - NamedMarked: both facts at once
//
// Wrappers never validate their parts. Go has no implicit dereference for
// user types, so the wrapped value is reached through Inner (a copy of the
// stored value) or Ptr (the address of the stored value). Wrapping a pointer
// keeps identity with the caller's value.
package meta
