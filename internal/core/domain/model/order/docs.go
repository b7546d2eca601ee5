// Package order contains the order aggregate and its supporting value
// objects: the lifecycle Status state machine, immutable OrderItem
// projections, the shipping Address and the masked PaymentDetails summary.
// All invariants about an order's items and status are enforced inside this
// package; everything outside goes through the aggregate's methods.
package order
