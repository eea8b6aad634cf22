// Package errors is the structured error type shared by every layer of rpg-atlas.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Repositories return domain codes (NotFound, AlreadyExists),
// orchestrators add InvalidArgument, PermissionDenied and FailedPrecondition,
// and handlers convert at the edge:
//
//	out, err := h.movement.MoveToken(ctx, input)
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
//
// Metadata crosses gRPC as a google.protobuf.Struct status detail, so
// FromGRPCError on the client restores the code and meta:
//
//	err := errors.FailedPrecondition("not enough travel points").
//	    WithMeta("required", 3).
//	    WithMeta("available", 1)
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("map_id", input.MapID, vb)
//	errors.ValidateRange("radius", input.Radius, 0, 50, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
