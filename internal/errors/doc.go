// Package errors provides the structured error type used across chaos-room.
//
// Errors carry a Code, a human readable message, an optional cause and
// free-form metadata:
//
//	err := errors.NotFound("monster not found").
//	    WithMeta("monster_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.GetMonster(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to draw monster")
//	}
//
// Constructors validate their config with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// The combat engine itself never returns these errors. Degenerate combat
// inputs resolve to booleans and zero values; this package is for the
// layers around it (catalog loading, repositories, orchestrators, CLI).
package errors
