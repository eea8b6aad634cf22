package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// MapService method names
const (
	MapServiceName = "atlas.api.v1alpha1.MapService"

	MapService_ResolveTravelRule_FullMethodName = "/atlas.api.v1alpha1.MapService/ResolveTravelRule"
	MapService_EvaluateGeofence_FullMethodName  = "/atlas.api.v1alpha1.MapService/EvaluateGeofence"
	MapService_DecodeOutcome_FullMethodName     = "/atlas.api.v1alpha1.MapService/DecodeOutcome"
	MapService_RollSkill_FullMethodName         = "/atlas.api.v1alpha1.MapService/RollSkill"
	MapService_MoveToken_FullMethodName         = "/atlas.api.v1alpha1.MapService/MoveToken"
	MapService_WatchMap_FullMethodName          = "/atlas.api.v1alpha1.MapService/WatchMap"
)

// MapServiceServer is the server API for MapService. Every message is a
// google.protobuf.Struct carrying the JSON shape of the request and
// response types in messages.go.
type MapServiceServer interface {
	ResolveTravelRule(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateGeofence(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DecodeOutcome(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveToken(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WatchMap(*structpb.Struct, grpc.ServerStreamingServer[structpb.Struct]) error
}

// UnimplementedMapServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMapServiceServer struct{}

func (UnimplementedMapServiceServer) ResolveTravelRule(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolveTravelRule not implemented")
}

func (UnimplementedMapServiceServer) EvaluateGeofence(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method EvaluateGeofence not implemented")
}

func (UnimplementedMapServiceServer) DecodeOutcome(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodeOutcome not implemented")
}

func (UnimplementedMapServiceServer) RollSkill(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RollSkill not implemented")
}

func (UnimplementedMapServiceServer) MoveToken(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveToken not implemented")
}

func (UnimplementedMapServiceServer) WatchMap(*structpb.Struct, grpc.ServerStreamingServer[structpb.Struct]) error {
	return status.Error(codes.Unimplemented, "method WatchMap not implemented")
}

// RegisterMapServiceServer registers srv with s.
func RegisterMapServiceServer(s grpc.ServiceRegistrar, srv MapServiceServer) {
	s.RegisterService(&MapService_ServiceDesc, srv)
}

func unaryHandler(
	fullMethod string,
	call func(MapServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MapServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MapServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchMapHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(MapServiceServer).WatchMap(in, &grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

// MapService_ServiceDesc is the grpc.ServiceDesc for MapService.
var MapService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MapServiceName,
	HandlerType: (*MapServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveTravelRule",
			Handler:    unaryHandler(MapService_ResolveTravelRule_FullMethodName, MapServiceServer.ResolveTravelRule),
		},
		{
			MethodName: "EvaluateGeofence",
			Handler:    unaryHandler(MapService_EvaluateGeofence_FullMethodName, MapServiceServer.EvaluateGeofence),
		},
		{
			MethodName: "DecodeOutcome",
			Handler:    unaryHandler(MapService_DecodeOutcome_FullMethodName, MapServiceServer.DecodeOutcome),
		},
		{
			MethodName: "RollSkill",
			Handler:    unaryHandler(MapService_RollSkill_FullMethodName, MapServiceServer.RollSkill),
		},
		{
			MethodName: "MoveToken",
			Handler:    unaryHandler(MapService_MoveToken_FullMethodName, MapServiceServer.MoveToken),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchMap",
			Handler:       watchMapHandler,
			ServerStreams: true,
		},
	},
	Metadata: "atlas/api/v1alpha1/map.proto",
}

// MapServiceClient is the client API for MapService.
type MapServiceClient interface {
	ResolveTravelRule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EvaluateGeofence(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DecodeOutcome(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	MoveToken(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchMap(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
}

type mapServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMapServiceClient wraps a connection.
func NewMapServiceClient(cc grpc.ClientConnInterface) MapServiceClient {
	return &mapServiceClient{cc}
}

func (c *mapServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mapServiceClient) ResolveTravelRule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MapService_ResolveTravelRule_FullMethodName, in, opts)
}

func (c *mapServiceClient) EvaluateGeofence(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MapService_EvaluateGeofence_FullMethodName, in, opts)
}

func (c *mapServiceClient) DecodeOutcome(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MapService_DecodeOutcome_FullMethodName, in, opts)
}

func (c *mapServiceClient) RollSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MapService_RollSkill_FullMethodName, in, opts)
}

func (c *mapServiceClient) MoveToken(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MapService_MoveToken_FullMethodName, in, opts)
}

func (c *mapServiceClient) WatchMap(
	ctx context.Context,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &MapService_ServiceDesc.Streams[0], MapService_WatchMap_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
