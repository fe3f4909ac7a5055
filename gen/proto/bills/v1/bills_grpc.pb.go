// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: bills/v1/bills.proto

package billsv1

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
	BillsService_CreateDocument_FullMethodName  = "/bills.v1.BillsService/CreateDocument"
	BillsService_GetDocument_FullMethodName     = "/bills.v1.BillsService/GetDocument"
	BillsService_RetryDocument_FullMethodName   = "/bills.v1.BillsService/RetryDocument"
	BillsService_ConfirmDocument_FullMethodName = "/bills.v1.BillsService/ConfirmDocument"
	BillsService_SweepDocuments_FullMethodName  = "/bills.v1.BillsService/SweepDocuments"
	BillsService_ExportBills_FullMethodName     = "/bills.v1.BillsService/ExportBills"
)

// BillsServiceClient is the client API for BillsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BillsServiceClient interface {
	CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	RetryDocument(ctx context.Context, in *RetryDocumentRequest, opts ...grpc.CallOption) (*RetryDocumentResponse, error)
	ConfirmDocument(ctx context.Context, in *ConfirmDocumentRequest, opts ...grpc.CallOption) (*ConfirmDocumentResponse, error)
	SweepDocuments(ctx context.Context, in *SweepDocumentsRequest, opts ...grpc.CallOption) (*SweepDocumentsResponse, error)
	ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error)
}

type billsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBillsServiceClient(cc grpc.ClientConnInterface) BillsServiceClient {
	return &billsServiceClient{cc}
}

func (c *billsServiceClient) CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateDocumentResponse)
	err := c.cc.Invoke(ctx, BillsService_CreateDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, BillsService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) RetryDocument(ctx context.Context, in *RetryDocumentRequest, opts ...grpc.CallOption) (*RetryDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryDocumentResponse)
	err := c.cc.Invoke(ctx, BillsService_RetryDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) ConfirmDocument(ctx context.Context, in *ConfirmDocumentRequest, opts ...grpc.CallOption) (*ConfirmDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmDocumentResponse)
	err := c.cc.Invoke(ctx, BillsService_ConfirmDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) SweepDocuments(ctx context.Context, in *SweepDocumentsRequest, opts ...grpc.CallOption) (*SweepDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SweepDocumentsResponse)
	err := c.cc.Invoke(ctx, BillsService_SweepDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBillsResponse)
	err := c.cc.Invoke(ctx, BillsService_ExportBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BillsServiceServer is the server API for BillsService service.
// All implementations must embed UnimplementedBillsServiceServer
// for forward compatibility.
type BillsServiceServer interface {
	CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	RetryDocument(context.Context, *RetryDocumentRequest) (*RetryDocumentResponse, error)
	ConfirmDocument(context.Context, *ConfirmDocumentRequest) (*ConfirmDocumentResponse, error)
	SweepDocuments(context.Context, *SweepDocumentsRequest) (*SweepDocumentsResponse, error)
	ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error)
	mustEmbedUnimplementedBillsServiceServer()
}

// UnimplementedBillsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBillsServiceServer struct{}

func (UnimplementedBillsServiceServer) CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDocument not implemented")
}
func (UnimplementedBillsServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedBillsServiceServer) RetryDocument(context.Context, *RetryDocumentRequest) (*RetryDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryDocument not implemented")
}
func (UnimplementedBillsServiceServer) ConfirmDocument(context.Context, *ConfirmDocumentRequest) (*ConfirmDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmDocument not implemented")
}
func (UnimplementedBillsServiceServer) SweepDocuments(context.Context, *SweepDocumentsRequest) (*SweepDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SweepDocuments not implemented")
}
func (UnimplementedBillsServiceServer) ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportBills not implemented")
}
func (UnimplementedBillsServiceServer) mustEmbedUnimplementedBillsServiceServer() {}
func (UnimplementedBillsServiceServer) testEmbeddedByValue()                      {}

// UnsafeBillsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BillsServiceServer will
// result in compilation errors.
type UnsafeBillsServiceServer interface {
	mustEmbedUnimplementedBillsServiceServer()
}

func RegisterBillsServiceServer(s grpc.ServiceRegistrar, srv BillsServiceServer) {
	// If the following call panics, it indicates UnimplementedBillsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BillsService_ServiceDesc, srv)
}

func _BillsService_CreateDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).CreateDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_CreateDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).CreateDocument(ctx, req.(*CreateDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_RetryDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).RetryDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_RetryDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).RetryDocument(ctx, req.(*RetryDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_ConfirmDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ConfirmDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ConfirmDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ConfirmDocument(ctx, req.(*ConfirmDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_SweepDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SweepDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).SweepDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_SweepDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).SweepDocuments(ctx, req.(*SweepDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_ExportBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ExportBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ExportBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ExportBills(ctx, req.(*ExportBillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BillsService_ServiceDesc is the grpc.ServiceDesc for BillsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BillsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bills.v1.BillsService",
	HandlerType: (*BillsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDocument",
			Handler:    _BillsService_CreateDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _BillsService_GetDocument_Handler,
		},
		{
			MethodName: "RetryDocument",
			Handler:    _BillsService_RetryDocument_Handler,
		},
		{
			MethodName: "ConfirmDocument",
			Handler:    _BillsService_ConfirmDocument_Handler,
		},
		{
			MethodName: "SweepDocuments",
			Handler:    _BillsService_SweepDocuments_Handler,
		},
		{
			MethodName: "ExportBills",
			Handler:    _BillsService_ExportBills_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bills/v1/bills.proto",
}
