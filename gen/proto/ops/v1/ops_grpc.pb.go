// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: ops/v1/ops.proto

package opspb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SuppliersService_CreateSupplier_FullMethodName      = "/ops.v1.SuppliersService/CreateSupplier"
	SuppliersService_ListSuppliers_FullMethodName       = "/ops.v1.SuppliersService/ListSuppliers"
	SuppliersService_UpdateParsingConfig_FullMethodName = "/ops.v1.SuppliersService/UpdateParsingConfig"
	SuppliersService_AddTrainingSample_FullMethodName   = "/ops.v1.SuppliersService/AddTrainingSample"
)

// SuppliersServiceClient is the client API for SuppliersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SuppliersServiceClient interface {
	CreateSupplier(ctx context.Context, in *CreateSupplierRequest, opts ...grpc.CallOption) (*CreateSupplierResponse, error)
	ListSuppliers(ctx context.Context, in *ListSuppliersRequest, opts ...grpc.CallOption) (*ListSuppliersResponse, error)
	UpdateParsingConfig(ctx context.Context, in *UpdateParsingConfigRequest, opts ...grpc.CallOption) (*UpdateParsingConfigResponse, error)
	AddTrainingSample(ctx context.Context, in *AddTrainingSampleRequest, opts ...grpc.CallOption) (*AddTrainingSampleResponse, error)
}

type suppliersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSuppliersServiceClient(cc grpc.ClientConnInterface) SuppliersServiceClient {
	return &suppliersServiceClient{cc}
}

func (c *suppliersServiceClient) CreateSupplier(ctx context.Context, in *CreateSupplierRequest, opts ...grpc.CallOption) (*CreateSupplierResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSupplierResponse)
	err := c.cc.Invoke(ctx, SuppliersService_CreateSupplier_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *suppliersServiceClient) ListSuppliers(ctx context.Context, in *ListSuppliersRequest, opts ...grpc.CallOption) (*ListSuppliersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSuppliersResponse)
	err := c.cc.Invoke(ctx, SuppliersService_ListSuppliers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *suppliersServiceClient) UpdateParsingConfig(ctx context.Context, in *UpdateParsingConfigRequest, opts ...grpc.CallOption) (*UpdateParsingConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateParsingConfigResponse)
	err := c.cc.Invoke(ctx, SuppliersService_UpdateParsingConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *suppliersServiceClient) AddTrainingSample(ctx context.Context, in *AddTrainingSampleRequest, opts ...grpc.CallOption) (*AddTrainingSampleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddTrainingSampleResponse)
	err := c.cc.Invoke(ctx, SuppliersService_AddTrainingSample_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SuppliersServiceServer is the server API for SuppliersService service.
// All implementations must embed UnimplementedSuppliersServiceServer
// for forward compatibility.
type SuppliersServiceServer interface {
	CreateSupplier(context.Context, *CreateSupplierRequest) (*CreateSupplierResponse, error)
	ListSuppliers(context.Context, *ListSuppliersRequest) (*ListSuppliersResponse, error)
	UpdateParsingConfig(context.Context, *UpdateParsingConfigRequest) (*UpdateParsingConfigResponse, error)
	AddTrainingSample(context.Context, *AddTrainingSampleRequest) (*AddTrainingSampleResponse, error)
	mustEmbedUnimplementedSuppliersServiceServer()
}

// UnimplementedSuppliersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSuppliersServiceServer struct{}

func (UnimplementedSuppliersServiceServer) CreateSupplier(context.Context, *CreateSupplierRequest) (*CreateSupplierResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSupplier not implemented")
}
func (UnimplementedSuppliersServiceServer) ListSuppliers(context.Context, *ListSuppliersRequest) (*ListSuppliersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSuppliers not implemented")
}
func (UnimplementedSuppliersServiceServer) UpdateParsingConfig(context.Context, *UpdateParsingConfigRequest) (*UpdateParsingConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateParsingConfig not implemented")
}
func (UnimplementedSuppliersServiceServer) AddTrainingSample(context.Context, *AddTrainingSampleRequest) (*AddTrainingSampleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTrainingSample not implemented")
}
func (UnimplementedSuppliersServiceServer) mustEmbedUnimplementedSuppliersServiceServer() {}
func (UnimplementedSuppliersServiceServer) testEmbeddedByValue()                          {}

// UnsafeSuppliersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SuppliersServiceServer will
// result in compilation errors.
type UnsafeSuppliersServiceServer interface {
	mustEmbedUnimplementedSuppliersServiceServer()
}

func RegisterSuppliersServiceServer(s grpc.ServiceRegistrar, srv SuppliersServiceServer) {
	// If the following call pancis, it indicates UnimplementedSuppliersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SuppliersService_ServiceDesc, srv)
}

func _SuppliersService_CreateSupplier_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSupplierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SuppliersServiceServer).CreateSupplier(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SuppliersService_CreateSupplier_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SuppliersServiceServer).CreateSupplier(ctx, req.(*CreateSupplierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SuppliersService_ListSuppliers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSuppliersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SuppliersServiceServer).ListSuppliers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SuppliersService_ListSuppliers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SuppliersServiceServer).ListSuppliers(ctx, req.(*ListSuppliersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SuppliersService_UpdateParsingConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateParsingConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SuppliersServiceServer).UpdateParsingConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SuppliersService_UpdateParsingConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SuppliersServiceServer).UpdateParsingConfig(ctx, req.(*UpdateParsingConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SuppliersService_AddTrainingSample_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTrainingSampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SuppliersServiceServer).AddTrainingSample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SuppliersService_AddTrainingSample_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SuppliersServiceServer).AddTrainingSample(ctx, req.(*AddTrainingSampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SuppliersService_ServiceDesc is the grpc.ServiceDesc for SuppliersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SuppliersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.SuppliersService",
	HandlerType: (*SuppliersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSupplier",
			Handler:    _SuppliersService_CreateSupplier_Handler,
		},
		{
			MethodName: "ListSuppliers",
			Handler:    _SuppliersService_ListSuppliers_Handler,
		},
		{
			MethodName: "UpdateParsingConfig",
			Handler:    _SuppliersService_UpdateParsingConfig_Handler,
		},
		{
			MethodName: "AddTrainingSample",
			Handler:    _SuppliersService_AddTrainingSample_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ops/v1/ops.proto",
}

const (
	PipelineService_IngestEmail_FullMethodName     = "/ops.v1.PipelineService/IngestEmail"
	PipelineService_ProcessEmail_FullMethodName    = "/ops.v1.PipelineService/ProcessEmail"
	PipelineService_ProcessPending_FullMethodName  = "/ops.v1.PipelineService/ProcessPending"
	PipelineService_IgnoreEmail_FullMethodName     = "/ops.v1.PipelineService/IgnoreEmail"
	PipelineService_SuggestMappings_FullMethodName = "/ops.v1.PipelineService/SuggestMappings"
	PipelineService_RecordMapping_FullMethodName   = "/ops.v1.PipelineService/RecordMapping"
)

// PipelineServiceClient is the client API for PipelineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PipelineServiceClient interface {
	IngestEmail(ctx context.Context, in *IngestEmailRequest, opts ...grpc.CallOption) (*IngestEmailResponse, error)
	ProcessEmail(ctx context.Context, in *ProcessEmailRequest, opts ...grpc.CallOption) (*ProcessEmailResponse, error)
	ProcessPending(ctx context.Context, in *ProcessPendingRequest, opts ...grpc.CallOption) (*ProcessPendingResponse, error)
	IgnoreEmail(ctx context.Context, in *IgnoreEmailRequest, opts ...grpc.CallOption) (*IgnoreEmailResponse, error)
	SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error)
	RecordMapping(ctx context.Context, in *RecordMappingRequest, opts ...grpc.CallOption) (*RecordMappingResponse, error)
}

type pipelineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPipelineServiceClient(cc grpc.ClientConnInterface) PipelineServiceClient {
	return &pipelineServiceClient{cc}
}

func (c *pipelineServiceClient) IngestEmail(ctx context.Context, in *IngestEmailRequest, opts ...grpc.CallOption) (*IngestEmailResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestEmailResponse)
	err := c.cc.Invoke(ctx, PipelineService_IngestEmail_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ProcessEmail(ctx context.Context, in *ProcessEmailRequest, opts ...grpc.CallOption) (*ProcessEmailResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessEmailResponse)
	err := c.cc.Invoke(ctx, PipelineService_ProcessEmail_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ProcessPending(ctx context.Context, in *ProcessPendingRequest, opts ...grpc.CallOption) (*ProcessPendingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessPendingResponse)
	err := c.cc.Invoke(ctx, PipelineService_ProcessPending_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) IgnoreEmail(ctx context.Context, in *IgnoreEmailRequest, opts ...grpc.CallOption) (*IgnoreEmailResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IgnoreEmailResponse)
	err := c.cc.Invoke(ctx, PipelineService_IgnoreEmail_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestMappingsResponse)
	err := c.cc.Invoke(ctx, PipelineService_SuggestMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) RecordMapping(ctx context.Context, in *RecordMappingRequest, opts ...grpc.CallOption) (*RecordMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordMappingResponse)
	err := c.cc.Invoke(ctx, PipelineService_RecordMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PipelineServiceServer is the server API for PipelineService service.
// All implementations must embed UnimplementedPipelineServiceServer
// for forward compatibility.
type PipelineServiceServer interface {
	IngestEmail(context.Context, *IngestEmailRequest) (*IngestEmailResponse, error)
	ProcessEmail(context.Context, *ProcessEmailRequest) (*ProcessEmailResponse, error)
	ProcessPending(context.Context, *ProcessPendingRequest) (*ProcessPendingResponse, error)
	IgnoreEmail(context.Context, *IgnoreEmailRequest) (*IgnoreEmailResponse, error)
	SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error)
	RecordMapping(context.Context, *RecordMappingRequest) (*RecordMappingResponse, error)
	mustEmbedUnimplementedPipelineServiceServer()
}

// UnimplementedPipelineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPipelineServiceServer struct{}

func (UnimplementedPipelineServiceServer) IngestEmail(context.Context, *IngestEmailRequest) (*IngestEmailResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestEmail not implemented")
}
func (UnimplementedPipelineServiceServer) ProcessEmail(context.Context, *ProcessEmailRequest) (*ProcessEmailResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessEmail not implemented")
}
func (UnimplementedPipelineServiceServer) ProcessPending(context.Context, *ProcessPendingRequest) (*ProcessPendingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessPending not implemented")
}
func (UnimplementedPipelineServiceServer) IgnoreEmail(context.Context, *IgnoreEmailRequest) (*IgnoreEmailResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IgnoreEmail not implemented")
}
func (UnimplementedPipelineServiceServer) SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestMappings not implemented")
}
func (UnimplementedPipelineServiceServer) RecordMapping(context.Context, *RecordMappingRequest) (*RecordMappingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordMapping not implemented")
}
func (UnimplementedPipelineServiceServer) mustEmbedUnimplementedPipelineServiceServer() {}
func (UnimplementedPipelineServiceServer) testEmbeddedByValue()                         {}

// UnsafePipelineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PipelineServiceServer will
// result in compilation errors.
type UnsafePipelineServiceServer interface {
	mustEmbedUnimplementedPipelineServiceServer()
}

func RegisterPipelineServiceServer(s grpc.ServiceRegistrar, srv PipelineServiceServer) {
	// If the following call pancis, it indicates UnimplementedPipelineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PipelineService_ServiceDesc, srv)
}

func _PipelineService_IngestEmail_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestEmailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).IngestEmail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_IngestEmail_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).IngestEmail(ctx, req.(*IngestEmailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ProcessEmail_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessEmailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ProcessEmail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ProcessEmail_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ProcessEmail(ctx, req.(*ProcessEmailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ProcessPending_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessPendingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ProcessPending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ProcessPending_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ProcessPending(ctx, req.(*ProcessPendingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_IgnoreEmail_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IgnoreEmailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).IgnoreEmail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_IgnoreEmail_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).IgnoreEmail(ctx, req.(*IgnoreEmailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_SuggestMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).SuggestMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_SuggestMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).SuggestMappings(ctx, req.(*SuggestMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_RecordMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).RecordMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_RecordMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).RecordMapping(ctx, req.(*RecordMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PipelineService_ServiceDesc is the grpc.ServiceDesc for PipelineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PipelineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.PipelineService",
	HandlerType: (*PipelineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestEmail",
			Handler:    _PipelineService_IngestEmail_Handler,
		},
		{
			MethodName: "ProcessEmail",
			Handler:    _PipelineService_ProcessEmail_Handler,
		},
		{
			MethodName: "ProcessPending",
			Handler:    _PipelineService_ProcessPending_Handler,
		},
		{
			MethodName: "IgnoreEmail",
			Handler:    _PipelineService_IgnoreEmail_Handler,
		},
		{
			MethodName: "SuggestMappings",
			Handler:    _PipelineService_SuggestMappings_Handler,
		},
		{
			MethodName: "RecordMapping",
			Handler:    _PipelineService_RecordMapping_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ops/v1/ops.proto",
}

const (
	TransactionsService_DedupeOrder_FullMethodName = "/ops.v1.TransactionsService/DedupeOrder"
	TransactionsService_DedupeSweep_FullMethodName = "/ops.v1.TransactionsService/DedupeSweep"
	TransactionsService_MergeManual_FullMethodName = "/ops.v1.TransactionsService/MergeManual"
)

// TransactionsServiceClient is the client API for TransactionsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TransactionsServiceClient interface {
	DedupeOrder(ctx context.Context, in *DedupeOrderRequest, opts ...grpc.CallOption) (*DedupeOrderResponse, error)
	DedupeSweep(ctx context.Context, in *DedupeSweepRequest, opts ...grpc.CallOption) (*DedupeSweepResponse, error)
	MergeManual(ctx context.Context, in *MergeManualRequest, opts ...grpc.CallOption) (*MergeManualResponse, error)
}

type transactionsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransactionsServiceClient(cc grpc.ClientConnInterface) TransactionsServiceClient {
	return &transactionsServiceClient{cc}
}

func (c *transactionsServiceClient) DedupeOrder(ctx context.Context, in *DedupeOrderRequest, opts ...grpc.CallOption) (*DedupeOrderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DedupeOrderResponse)
	err := c.cc.Invoke(ctx, TransactionsService_DedupeOrder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transactionsServiceClient) DedupeSweep(ctx context.Context, in *DedupeSweepRequest, opts ...grpc.CallOption) (*DedupeSweepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DedupeSweepResponse)
	err := c.cc.Invoke(ctx, TransactionsService_DedupeSweep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transactionsServiceClient) MergeManual(ctx context.Context, in *MergeManualRequest, opts ...grpc.CallOption) (*MergeManualResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MergeManualResponse)
	err := c.cc.Invoke(ctx, TransactionsService_MergeManual_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransactionsServiceServer is the server API for TransactionsService service.
// All implementations must embed UnimplementedTransactionsServiceServer
// for forward compatibility.
type TransactionsServiceServer interface {
	DedupeOrder(context.Context, *DedupeOrderRequest) (*DedupeOrderResponse, error)
	DedupeSweep(context.Context, *DedupeSweepRequest) (*DedupeSweepResponse, error)
	MergeManual(context.Context, *MergeManualRequest) (*MergeManualResponse, error)
	mustEmbedUnimplementedTransactionsServiceServer()
}

// UnimplementedTransactionsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTransactionsServiceServer struct{}

func (UnimplementedTransactionsServiceServer) DedupeOrder(context.Context, *DedupeOrderRequest) (*DedupeOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DedupeOrder not implemented")
}
func (UnimplementedTransactionsServiceServer) DedupeSweep(context.Context, *DedupeSweepRequest) (*DedupeSweepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DedupeSweep not implemented")
}
func (UnimplementedTransactionsServiceServer) MergeManual(context.Context, *MergeManualRequest) (*MergeManualResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MergeManual not implemented")
}
func (UnimplementedTransactionsServiceServer) mustEmbedUnimplementedTransactionsServiceServer() {}
func (UnimplementedTransactionsServiceServer) testEmbeddedByValue()                             {}

// UnsafeTransactionsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TransactionsServiceServer will
// result in compilation errors.
type UnsafeTransactionsServiceServer interface {
	mustEmbedUnimplementedTransactionsServiceServer()
}

func RegisterTransactionsServiceServer(s grpc.ServiceRegistrar, srv TransactionsServiceServer) {
	// If the following call pancis, it indicates UnimplementedTransactionsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TransactionsService_ServiceDesc, srv)
}

func _TransactionsService_DedupeOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DedupeOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionsServiceServer).DedupeOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransactionsService_DedupeOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionsServiceServer).DedupeOrder(ctx, req.(*DedupeOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransactionsService_DedupeSweep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DedupeSweepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionsServiceServer).DedupeSweep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransactionsService_DedupeSweep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionsServiceServer).DedupeSweep(ctx, req.(*DedupeSweepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransactionsService_MergeManual_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MergeManualRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionsServiceServer).MergeManual(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransactionsService_MergeManual_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionsServiceServer).MergeManual(ctx, req.(*MergeManualRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TransactionsService_ServiceDesc is the grpc.ServiceDesc for TransactionsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TransactionsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.TransactionsService",
	HandlerType: (*TransactionsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DedupeOrder",
			Handler:    _TransactionsService_DedupeOrder_Handler,
		},
		{
			MethodName: "DedupeSweep",
			Handler:    _TransactionsService_DedupeSweep_Handler,
		},
		{
			MethodName: "MergeManual",
			Handler:    _TransactionsService_MergeManual_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ops/v1/ops.proto",
}

const (
	InventoryService_AuditProduct_FullMethodName       = "/ops.v1.InventoryService/AuditProduct"
	InventoryService_AuditInventory_FullMethodName     = "/ops.v1.InventoryService/AuditInventory"
	InventoryService_UpdateToCalculated_FullMethodName = "/ops.v1.InventoryService/UpdateToCalculated"
	InventoryService_CreateAdjustment_FullMethodName   = "/ops.v1.InventoryService/CreateAdjustment"
)

// InventoryServiceClient is the client API for InventoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InventoryServiceClient interface {
	AuditProduct(ctx context.Context, in *AuditProductRequest, opts ...grpc.CallOption) (*AuditProductResponse, error)
	AuditInventory(ctx context.Context, in *AuditInventoryRequest, opts ...grpc.CallOption) (*AuditInventoryResponse, error)
	UpdateToCalculated(ctx context.Context, in *UpdateToCalculatedRequest, opts ...grpc.CallOption) (*UpdateToCalculatedResponse, error)
	CreateAdjustment(ctx context.Context, in *CreateAdjustmentRequest, opts ...grpc.CallOption) (*CreateAdjustmentResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) AuditProduct(ctx context.Context, in *AuditProductRequest, opts ...grpc.CallOption) (*AuditProductResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AuditProductResponse)
	err := c.cc.Invoke(ctx, InventoryService_AuditProduct_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) AuditInventory(ctx context.Context, in *AuditInventoryRequest, opts ...grpc.CallOption) (*AuditInventoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AuditInventoryResponse)
	err := c.cc.Invoke(ctx, InventoryService_AuditInventory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) UpdateToCalculated(ctx context.Context, in *UpdateToCalculatedRequest, opts ...grpc.CallOption) (*UpdateToCalculatedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateToCalculatedResponse)
	err := c.cc.Invoke(ctx, InventoryService_UpdateToCalculated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) CreateAdjustment(ctx context.Context, in *CreateAdjustmentRequest, opts ...grpc.CallOption) (*CreateAdjustmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateAdjustmentResponse)
	err := c.cc.Invoke(ctx, InventoryService_CreateAdjustment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryServiceServer is the server API for InventoryService service.
// All implementations must embed UnimplementedInventoryServiceServer
// for forward compatibility.
type InventoryServiceServer interface {
	AuditProduct(context.Context, *AuditProductRequest) (*AuditProductResponse, error)
	AuditInventory(context.Context, *AuditInventoryRequest) (*AuditInventoryResponse, error)
	UpdateToCalculated(context.Context, *UpdateToCalculatedRequest) (*UpdateToCalculatedResponse, error)
	CreateAdjustment(context.Context, *CreateAdjustmentRequest) (*CreateAdjustmentResponse, error)
	mustEmbedUnimplementedInventoryServiceServer()
}

// UnimplementedInventoryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) AuditProduct(context.Context, *AuditProductRequest) (*AuditProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AuditProduct not implemented")
}
func (UnimplementedInventoryServiceServer) AuditInventory(context.Context, *AuditInventoryRequest) (*AuditInventoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AuditInventory not implemented")
}
func (UnimplementedInventoryServiceServer) UpdateToCalculated(context.Context, *UpdateToCalculatedRequest) (*UpdateToCalculatedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateToCalculated not implemented")
}
func (UnimplementedInventoryServiceServer) CreateAdjustment(context.Context, *CreateAdjustmentRequest) (*CreateAdjustmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAdjustment not implemented")
}
func (UnimplementedInventoryServiceServer) mustEmbedUnimplementedInventoryServiceServer() {}
func (UnimplementedInventoryServiceServer) testEmbeddedByValue()                          {}

// UnsafeInventoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InventoryServiceServer will
// result in compilation errors.
type UnsafeInventoryServiceServer interface {
	mustEmbedUnimplementedInventoryServiceServer()
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	// If the following call pancis, it indicates UnimplementedInventoryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_AuditProduct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuditProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).AuditProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_AuditProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).AuditProduct(ctx, req.(*AuditProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_AuditInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuditInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).AuditInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_AuditInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).AuditInventory(ctx, req.(*AuditInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_UpdateToCalculated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateToCalculatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).UpdateToCalculated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_UpdateToCalculated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).UpdateToCalculated(ctx, req.(*UpdateToCalculatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_CreateAdjustment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAdjustmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).CreateAdjustment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_CreateAdjustment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).CreateAdjustment(ctx, req.(*CreateAdjustmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AuditProduct",
			Handler:    _InventoryService_AuditProduct_Handler,
		},
		{
			MethodName: "AuditInventory",
			Handler:    _InventoryService_AuditInventory_Handler,
		},
		{
			MethodName: "UpdateToCalculated",
			Handler:    _InventoryService_UpdateToCalculated_Handler,
		},
		{
			MethodName: "CreateAdjustment",
			Handler:    _InventoryService_CreateAdjustment_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ops/v1/ops.proto",
}

const (
	ExportService_ExportLedger_FullMethodName    = "/ops.v1.ExportService/ExportLedger"
	ExportService_ExportInventory_FullMethodName = "/ops.v1.ExportService/ExportInventory"
	ExportService_ImportWorkbook_FullMethodName  = "/ops.v1.ExportService/ImportWorkbook"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportLedger(ctx context.Context, in *ExportLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error)
	ExportInventory(ctx context.Context, in *ExportInventoryRequest, opts ...grpc.CallOption) (*ExportInventoryResponse, error)
	ImportWorkbook(ctx context.Context, in *ImportWorkbookRequest, opts ...grpc.CallOption) (*ImportWorkbookResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportLedger(ctx context.Context, in *ExportLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLedgerResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportInventory(ctx context.Context, in *ExportInventoryRequest, opts ...grpc.CallOption) (*ExportInventoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInventoryResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportInventory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ImportWorkbook(ctx context.Context, in *ImportWorkbookRequest, opts ...grpc.CallOption) (*ImportWorkbookResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportWorkbookResponse)
	err := c.cc.Invoke(ctx, ExportService_ImportWorkbook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportLedger(context.Context, *ExportLedgerRequest) (*ExportLedgerResponse, error)
	ExportInventory(context.Context, *ExportInventoryRequest) (*ExportInventoryResponse, error)
	ImportWorkbook(context.Context, *ImportWorkbookRequest) (*ImportWorkbookResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportLedger(context.Context, *ExportLedgerRequest) (*ExportLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportLedger not implemented")
}
func (UnimplementedExportServiceServer) ExportInventory(context.Context, *ExportInventoryRequest) (*ExportInventoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportInventory not implemented")
}
func (UnimplementedExportServiceServer) ImportWorkbook(context.Context, *ImportWorkbookRequest) (*ImportWorkbookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportWorkbook not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportLedger(ctx, req.(*ExportLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportInventory(ctx, req.(*ExportInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ImportWorkbook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportWorkbookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ImportWorkbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ImportWorkbook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ImportWorkbook(ctx, req.(*ImportWorkbookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportLedger",
			Handler:    _ExportService_ExportLedger_Handler,
		},
		{
			MethodName: "ExportInventory",
			Handler:    _ExportService_ExportInventory_Handler,
		},
		{
			MethodName: "ImportWorkbook",
			Handler:    _ExportService_ImportWorkbook_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ops/v1/ops.proto",
}
