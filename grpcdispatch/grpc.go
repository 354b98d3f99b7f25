// Package grpcdispatch exposes the dispatcher's public surface and the
// registry owner surface over gRPC.
//
// We intentionally use protobuf well-known types (BytesValue, Struct,
// wrappers) so this package does not require a protoc/codegen toolchain.
//
// Proto definition: dispatch.proto.
package grpcdispatch

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DispatchServer is the server API for the Dispatch gRPC service.
type DispatchServer interface {
	// Execute runs one invocation over encoded signed-payload bytes.
	Execute(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error)
	// EstimateFee delegates to the transport provider named in the request.
	EstimateFee(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	// SetEndpoint curates the inbound cross-domain allowlist (owner-gated).
	SetEndpoint(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
}

// AdminServer is the server API for the registry owner surface.
type AdminServer interface {
	SetProvider(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	FreezeProvider(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	SetDomain(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	FreezeDomain(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	TransferOwnership(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	GetProvider(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	GetDomain(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Owner(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

// UnimplementedDispatchServer can be embedded for forward compatibility.
type UnimplementedDispatchServer struct{}

func (UnimplementedDispatchServer) Execute(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Execute not implemented")
}
func (UnimplementedDispatchServer) EstimateFee(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method EstimateFee not implemented")
}
func (UnimplementedDispatchServer) SetEndpoint(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method SetEndpoint not implemented")
}

// UnimplementedAdminServer can be embedded for forward compatibility.
type UnimplementedAdminServer struct{}

func (UnimplementedAdminServer) SetProvider(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method SetProvider not implemented")
}
func (UnimplementedAdminServer) FreezeProvider(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method FreezeProvider not implemented")
}
func (UnimplementedAdminServer) SetDomain(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method SetDomain not implemented")
}
func (UnimplementedAdminServer) FreezeDomain(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method FreezeDomain not implemented")
}
func (UnimplementedAdminServer) TransferOwnership(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferOwnership not implemented")
}
func (UnimplementedAdminServer) GetProvider(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProvider not implemented")
}
func (UnimplementedAdminServer) GetDomain(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDomain not implemented")
}
func (UnimplementedAdminServer) Owner(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Owner not implemented")
}

// RegisterDispatchServer registers the Dispatch service.
func RegisterDispatchServer(s grpc.ServiceRegistrar, srv DispatchServer) {
	s.RegisterService(&Dispatch_ServiceDesc, srv)
}

// RegisterAdminServer registers the Admin service.
func RegisterAdminServer(s grpc.ServiceRegistrar, srv AdminServer) {
	s.RegisterService(&Admin_ServiceDesc, srv)
}

const (
	dispatchService = "w3cash.dispatch.v1.Dispatch"
	adminService    = "w3cash.dispatch.v1.Admin"
)

// DispatchClient is the client API for the Dispatch service.
type DispatchClient interface {
	Execute(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	EstimateFee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	SetEndpoint(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type dispatchClient struct{ cc grpc.ClientConnInterface }

func NewDispatchClient(cc grpc.ClientConnInterface) DispatchClient { return &dispatchClient{cc: cc} }

func (c *dispatchClient) Execute(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+dispatchService+"/Execute", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dispatchClient) EstimateFee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+dispatchService+"/EstimateFee", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dispatchClient) SetEndpoint(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/"+dispatchService+"/SetEndpoint", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminClient is the client API for the Admin service.
type AdminClient interface {
	SetProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	FreezeProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	SetDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	FreezeDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	TransferOwnership(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	GetProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GetDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Owner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type adminClient struct{ cc grpc.ClientConnInterface }

func NewAdminClient(cc grpc.ClientConnInterface) AdminClient { return &adminClient{cc: cc} }

func (c *adminClient) invokeBool(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/"+adminService+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) invokeString(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+adminService+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) SetProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.invokeBool(ctx, "SetProvider", in, opts)
}
func (c *adminClient) FreezeProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.invokeBool(ctx, "FreezeProvider", in, opts)
}
func (c *adminClient) SetDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.invokeBool(ctx, "SetDomain", in, opts)
}
func (c *adminClient) FreezeDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.invokeBool(ctx, "FreezeDomain", in, opts)
}
func (c *adminClient) TransferOwnership(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.invokeBool(ctx, "TransferOwnership", in, opts)
}
func (c *adminClient) GetProvider(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeString(ctx, "GetProvider", in, opts)
}
func (c *adminClient) GetDomain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeString(ctx, "GetDomain", in, opts)
}
func (c *adminClient) Owner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeString(ctx, "Owner", in, opts)
}

func _Dispatch_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DispatchServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + dispatchService + "/Execute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DispatchServer).Execute(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dispatch_EstimateFee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DispatchServer).EstimateFee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + dispatchService + "/EstimateFee"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DispatchServer).EstimateFee(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dispatch_SetEndpoint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DispatchServer).SetEndpoint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + dispatchService + "/SetEndpoint"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DispatchServer).SetEndpoint(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// adminHandler builds the shared handler shape for Admin methods taking
// a Struct.
func adminHandler(method string, call func(AdminServer, context.Context, *structpb.Struct) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AdminServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + adminService + "/" + method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(AdminServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Dispatch_ServiceDesc is the grpc.ServiceDesc for the Dispatch service.
var Dispatch_ServiceDesc = grpc.ServiceDesc{
	ServiceName: dispatchService,
	HandlerType: (*DispatchServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Execute", Handler: _Dispatch_Execute_Handler},
		{MethodName: "EstimateFee", Handler: _Dispatch_EstimateFee_Handler},
		{MethodName: "SetEndpoint", Handler: _Dispatch_SetEndpoint_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dispatch.proto",
}

// Admin_ServiceDesc is the grpc.ServiceDesc for the Admin service.
var Admin_ServiceDesc = grpc.ServiceDesc{
	ServiceName: adminService,
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetProvider", Handler: adminHandler("SetProvider", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.SetProvider(ctx, in)
		})},
		{MethodName: "FreezeProvider", Handler: adminHandler("FreezeProvider", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.FreezeProvider(ctx, in)
		})},
		{MethodName: "SetDomain", Handler: adminHandler("SetDomain", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.SetDomain(ctx, in)
		})},
		{MethodName: "FreezeDomain", Handler: adminHandler("FreezeDomain", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.FreezeDomain(ctx, in)
		})},
		{MethodName: "TransferOwnership", Handler: adminHandler("TransferOwnership", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.TransferOwnership(ctx, in)
		})},
		{MethodName: "GetProvider", Handler: adminHandler("GetProvider", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.GetProvider(ctx, in)
		})},
		{MethodName: "GetDomain", Handler: adminHandler("GetDomain", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.GetDomain(ctx, in)
		})},
		{MethodName: "Owner", Handler: adminHandler("Owner", func(s AdminServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
			return s.Owner(ctx, in)
		})},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dispatch.proto",
}
