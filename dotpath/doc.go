// Package dotpath reads and writes values addressed by dotted paths such as
// "customer.address.city".
//
// Get is tolerant of missing intermediate nodes and yields undefined (nil)
// for them. Set is strict by default: writing below a missing parent fails
// with ErrTargetNotFound unless the Skip policy is requested. SetPath is the
// auto-vivifying writer used to build results; it creates the missing
// intermediate objects instead of failing.
//
// Numeric segments address array elements: "items.0.id".
package dotpath
