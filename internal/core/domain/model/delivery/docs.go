// Package delivery provides domain entities and business logic for media
// delivery packages. A DeliveryPackage is assembled in Draft for a fulfilled
// shoot order, published to the agency, and later revoked or expired.
//
// The package includes:
//   - Package: The aggregate root owning items and access grants
//   - Status: A state machine for Draft -> Published -> {Expired, Revoked}
//   - Item: A reference to one media asset variant, ordered within the package
//   - Access: A grant describing who may retrieve the package and how often
//
// Key business rules:
//   - Items and accesses may be added or reordered only while the package is Draft
//   - A package expires only from Published, and only once its deadline elapsed
//   - An access's download counter never exceeds its configured limit; the
//     check-and-increment is atomic within the aggregate
//   - Password-protected accesses store only a hash, never plaintext
package delivery
