// Package registry stores singleton registration records keyed by type.
//
// One record exists per defined type. The record carries the owning type
// key, the policy flags fixed at definition time, and the type-erased class
// handle that owns the instance slot.
package registry
