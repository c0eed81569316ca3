package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CompanionServiceServer is the server API for the companion service. The
// messages are protobuf well-known types, so no generated code is needed.
type CompanionServiceServer interface {
	// RecordSteps delivers the platform's cumulative step counter.
	RecordSteps(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	// Cry asks the companion to play its cry.
	Cry(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	// GetCompanion returns the render snapshot.
	GetCompanion(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedCompanionServiceServer can be embedded for forward compatibility.
type UnimplementedCompanionServiceServer struct{}

func (UnimplementedCompanionServiceServer) RecordSteps(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordSteps not implemented")
}

func (UnimplementedCompanionServiceServer) Cry(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Cry not implemented")
}

func (UnimplementedCompanionServiceServer) GetCompanion(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompanion not implemented")
}

// RegisterCompanionServiceServer registers srv on s.
func RegisterCompanionServiceServer(s grpc.ServiceRegistrar, srv CompanionServiceServer) {
	s.RegisterService(&CompanionService_ServiceDesc, srv)
}

func _CompanionService_RecordSteps_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CompanionServiceServer).RecordSteps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecordStepsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CompanionServiceServer).RecordSteps(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _CompanionService_Cry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CompanionServiceServer).Cry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CompanionServiceServer).Cry(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CompanionService_GetCompanion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CompanionServiceServer).GetCompanion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetCompanionMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CompanionServiceServer).GetCompanion(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// CompanionService_ServiceDesc is the grpc.ServiceDesc for the companion service.
var CompanionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CompanionServiceName,
	HandlerType: (*CompanionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordSteps",
			Handler:    _CompanionService_RecordSteps_Handler,
		},
		{
			MethodName: "Cry",
			Handler:    _CompanionService_Cry_Handler,
		},
		{
			MethodName: "GetCompanion",
			Handler:    _CompanionService_GetCompanion_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stepcompanion/v1/companion.proto",
}

// CompanionServiceClient is the client API for the companion service.
type CompanionServiceClient interface {
	RecordSteps(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Cry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetCompanion(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type companionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCompanionServiceClient creates a client over cc.
func NewCompanionServiceClient(cc grpc.ClientConnInterface) CompanionServiceClient {
	return &companionServiceClient{cc}
}

func (c *companionServiceClient) RecordSteps(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, RecordStepsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *companionServiceClient) Cry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, CryMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *companionServiceClient) GetCompanion(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetCompanionMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
