// Package listing contains the Listing aggregate: a property advertised by
// an agency, with its address, slug natural key, attached media references
// and denormalized agent contact snapshots.
//
// Media references point at assets by id; the asset itself lives in the
// media package and is never loaded through a listing. Agent snapshots
// freeze the agent's contact details at assignment time so a listing keeps
// showing what was true when the agent took it on.
package listing
