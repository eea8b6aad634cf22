package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// metaCodeKey carries the original Code inside the status detail so codes
// without a one-to-one gRPC mapping survive the round trip.
const metaCodeKey = "error_code"

// ToGRPCError converts an error to a gRPC status error. Metadata travels as
// a structpb.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	details, detailErr := metaToStruct(customErr.Code, customErr.Meta)
	if detailErr != nil {
		return st.Err()
	}
	if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
		st = withDetails
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back into an *Error.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := details.AsMap()
		if code, ok := meta[metaCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, metaCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeAborted:
		return codes.Aborted
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.Unauthenticated:
		return CodeUnauthenticated
	default:
		return CodeInternal
	}
}

// metaToStruct normalises meta through JSON so nested slices and typed maps
// become values structpb accepts.
func metaToStruct(code Code, meta map[string]any) (*structpb.Struct, error) {
	normalised := map[string]any{}
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &normalised); err != nil {
			return nil, err
		}
	}
	normalised[metaCodeKey] = string(code)

	return structpb.NewStruct(normalised)
}
