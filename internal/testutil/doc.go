// Package testutil provides test-support helpers for the Forge tensor library:
// approximate-equality assertions, synthetic non-contiguous tensor
// construction, random tensors shaped like an existing one, and dtype/device
// enumeration used to parametrize test matrices.
//
// All helpers are synchronous and stateless; they operate on caller-supplied
// tensors and never share mutable state across calls.
package testutil
