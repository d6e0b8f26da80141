// Package order provides domain entities and business logic for shoot order
// management. It implements the ShootOrder aggregate root with lifecycle
// management, state transitions, and ownership of shoot tasks.
//
// The package includes:
//   - ShootOrder: The aggregate root placed by an agency against a studio
//   - Status: A state machine enforcing the order lifecycle
//   - Task: An owned entity describing one unit of shoot work
//   - TaskStatus: The task-level state machine
//   - TaskTypes: A combinable set of shoot work kinds (photography, video, ...)
//
// Key business rules:
//   - An order moves monotonically along Placed -> Accepted -> Scheduled ->
//     InProgress -> AwaitingDelivery -> AwaitingConfirmation -> Completed,
//     or to Cancelled from any non-terminal state
//   - Cancelling an already-terminal order is rejected
//   - A photographer may be assigned or unassigned only while the order is
//     not terminal; assignment never changes the order status by itself
//   - Tasks are added, mutated and removed only through the owning order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
