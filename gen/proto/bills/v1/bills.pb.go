// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: bills/v1/bills.proto

package billsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// BillDocument mirrors the stored document. Status and stage values are
// stable strings: IN_PROGRESS/NEEDS_REVIEW/CONFIRMED/REJECTED and
// PREPROCESS/TEMPLATE_OCR/GENERAL_OCR/LLM_NORMALIZE/VALIDATE/DONE.
type BillDocument struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	SiteId         string                 `protobuf:"bytes,3,opt,name=site_id,json=siteId,proto3" json:"site_id,omitempty"`
	Vendor         string                 `protobuf:"bytes,4,opt,name=vendor,proto3" json:"vendor,omitempty"`
	BillType       string                 `protobuf:"bytes,5,opt,name=bill_type,json=billType,proto3" json:"bill_type,omitempty"`
	AmountDue      *int64                 `protobuf:"varint,6,opt,name=amount_due,json=amountDue,proto3,oneof" json:"amount_due,omitempty"` // integer minor units
	DueDate        string                 `protobuf:"bytes,7,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`              // YYYY-MM-DD, empty if unset
	PeriodStart    string                 `protobuf:"bytes,8,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd      string                 `protobuf:"bytes,9,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	CustomerNumber string                 `protobuf:"bytes,10,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	PaymentAccount string                 `protobuf:"bytes,11,opt,name=payment_account,json=paymentAccount,proto3" json:"payment_account,omitempty"`
	Status         string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	Stage          string                 `protobuf:"bytes,13,opt,name=stage,proto3" json:"stage,omitempty"`
	Track          string                 `protobuf:"bytes,14,opt,name=track,proto3" json:"track,omitempty"` // "A" or "B", empty until extracted
	Confidence     *float32               `protobuf:"fixed32,15,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	ErrorCode      string                 `protobuf:"bytes,16,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,17,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,18,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,19,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BillDocument) Reset() {
	*x = BillDocument{}
	mi := &file_bills_v1_bills_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillDocument) ProtoMessage() {}

func (x *BillDocument) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillDocument.ProtoReflect.Descriptor instead.
func (*BillDocument) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{0}
}

func (x *BillDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BillDocument) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *BillDocument) GetSiteId() string {
	if x != nil {
		return x.SiteId
	}
	return ""
}

func (x *BillDocument) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *BillDocument) GetBillType() string {
	if x != nil {
		return x.BillType
	}
	return ""
}

func (x *BillDocument) GetAmountDue() int64 {
	if x != nil && x.AmountDue != nil {
		return *x.AmountDue
	}
	return 0
}

func (x *BillDocument) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *BillDocument) GetPeriodStart() string {
	if x != nil {
		return x.PeriodStart
	}
	return ""
}

func (x *BillDocument) GetPeriodEnd() string {
	if x != nil {
		return x.PeriodEnd
	}
	return ""
}

func (x *BillDocument) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *BillDocument) GetPaymentAccount() string {
	if x != nil {
		return x.PaymentAccount
	}
	return ""
}

func (x *BillDocument) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BillDocument) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *BillDocument) GetTrack() string {
	if x != nil {
		return x.Track
	}
	return ""
}

func (x *BillDocument) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *BillDocument) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *BillDocument) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *BillDocument) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *BillDocument) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ArtifactURL struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"` // original | scan | track_a | track_b
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`   // short-lived signed GET URL
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArtifactURL) Reset() {
	*x = ArtifactURL{}
	mi := &file_bills_v1_bills_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArtifactURL) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArtifactURL) ProtoMessage() {}

func (x *ArtifactURL) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArtifactURL.ProtoReflect.Descriptor instead.
func (*ArtifactURL) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{1}
}

func (x *ArtifactURL) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ArtifactURL) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type CreateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	File          []byte                 `protobuf:"bytes,2,opt,name=file,proto3" json:"file,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	SiteId        string                 `protobuf:"bytes,4,opt,name=site_id,json=siteId,proto3" json:"site_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentRequest.ProtoReflect.Descriptor instead.
func (*CreateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{2}
}

func (x *CreateDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateDocumentRequest) GetFile() []byte {
	if x != nil {
		return x.File
	}
	return nil
}

func (x *CreateDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *CreateDocumentRequest) GetSiteId() string {
	if x != nil {
		return x.SiteId
	}
	return ""
}

type CreateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *BillDocument          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentResponse) Reset() {
	*x = CreateDocumentResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentResponse) ProtoMessage() {}

func (x *CreateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentResponse.ProtoReflect.Descriptor instead.
func (*CreateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{3}
}

func (x *CreateDocumentResponse) GetDocument() *BillDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"` // caller; must own the document
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *BillDocument          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Artifacts     []*ArtifactURL         `protobuf:"bytes,2,rep,name=artifacts,proto3" json:"artifacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentResponse) GetDocument() *BillDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetArtifacts() []*ArtifactURL {
	if x != nil {
		return x.Artifacts
	}
	return nil
}

type RetryDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDocumentRequest) Reset() {
	*x = RetryDocumentRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDocumentRequest) ProtoMessage() {}

func (x *RetryDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDocumentRequest.ProtoReflect.Descriptor instead.
func (*RetryDocumentRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{6}
}

func (x *RetryDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RetryDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type RetryDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *BillDocument          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDocumentResponse) Reset() {
	*x = RetryDocumentResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDocumentResponse) ProtoMessage() {}

func (x *RetryDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDocumentResponse.ProtoReflect.Descriptor instead.
func (*RetryDocumentResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{7}
}

func (x *RetryDocumentResponse) GetDocument() *BillDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

// Free-form human corrections. Empty fields are left untouched;
// unparseable fields are dropped from the patch, not stored.
type ConfirmDocumentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Vendor         string                 `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`
	BillType       string                 `protobuf:"bytes,4,opt,name=bill_type,json=billType,proto3" json:"bill_type,omitempty"`
	AmountDue      string                 `protobuf:"bytes,5,opt,name=amount_due,json=amountDue,proto3" json:"amount_due,omitempty"` // e.g. "1,234,500원"
	DueDate        string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`       // e.g. "2024년 3월 5일"
	PeriodStart    string                 `protobuf:"bytes,7,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd      string                 `protobuf:"bytes,8,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	CustomerNumber string                 `protobuf:"bytes,9,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	PaymentAccount string                 `protobuf:"bytes,10,opt,name=payment_account,json=paymentAccount,proto3" json:"payment_account,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConfirmDocumentRequest) Reset() {
	*x = ConfirmDocumentRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmDocumentRequest) ProtoMessage() {}

func (x *ConfirmDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmDocumentRequest.ProtoReflect.Descriptor instead.
func (*ConfirmDocumentRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{8}
}

func (x *ConfirmDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetBillType() string {
	if x != nil {
		return x.BillType
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetAmountDue() string {
	if x != nil {
		return x.AmountDue
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetPeriodStart() string {
	if x != nil {
		return x.PeriodStart
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetPeriodEnd() string {
	if x != nil {
		return x.PeriodEnd
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *ConfirmDocumentRequest) GetPaymentAccount() string {
	if x != nil {
		return x.PaymentAccount
	}
	return ""
}

type ConfirmDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Document       *BillDocument          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	RejectedFields []string               `protobuf:"bytes,2,rep,name=rejected_fields,json=rejectedFields,proto3" json:"rejected_fields,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConfirmDocumentResponse) Reset() {
	*x = ConfirmDocumentResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmDocumentResponse) ProtoMessage() {}

func (x *ConfirmDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmDocumentResponse.ProtoReflect.Descriptor instead.
func (*ConfirmDocumentResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{9}
}

func (x *ConfirmDocumentResponse) GetDocument() *BillDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ConfirmDocumentResponse) GetRejectedFields() []string {
	if x != nil {
		return x.RejectedFields
	}
	return nil
}

type SweepDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`                            // capped server-side
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"` // optional explicit target, bypasses selection
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SweepDocumentsRequest) Reset() {
	*x = SweepDocumentsRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SweepDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SweepDocumentsRequest) ProtoMessage() {}

func (x *SweepDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SweepDocumentsRequest.ProtoReflect.Descriptor instead.
func (*SweepDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{10}
}

func (x *SweepDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *SweepDocumentsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type SweepDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Selected      int32                  `protobuf:"varint,1,opt,name=selected,proto3" json:"selected,omitempty"`
	Processed     int32                  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	DocumentIds   []string               `protobuf:"bytes,4,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SweepDocumentsResponse) Reset() {
	*x = SweepDocumentsResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SweepDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SweepDocumentsResponse) ProtoMessage() {}

func (x *SweepDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SweepDocumentsResponse.ProtoReflect.Descriptor instead.
func (*SweepDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{11}
}

func (x *SweepDocumentsResponse) GetSelected() int32 {
	if x != nil {
		return x.Selected
	}
	return 0
}

func (x *SweepDocumentsResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *SweepDocumentsResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *SweepDocumentsResponse) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type ExportBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsRequest) Reset() {
	*x = ExportBillsRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsRequest) ProtoMessage() {}

func (x *ExportBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsRequest.ProtoReflect.Descriptor instead.
func (*ExportBillsRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{12}
}

func (x *ExportBillsRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ExportBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsResponse) Reset() {
	*x = ExportBillsResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsResponse) ProtoMessage() {}

func (x *ExportBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsResponse.ProtoReflect.Descriptor instead.
func (*ExportBillsResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{13}
}

func (x *ExportBillsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportBillsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_bills_v1_bills_proto protoreflect.FileDescriptor

const file_bills_v1_bills_proto_rawDesc = "" +
	"\n" +
	"\x14bills/v1/bills.proto\x12\bbills.v1\"\xe7\x04\n" +
	"\fBillDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x17\n" +
	"\asite_id\x18\x03 \x01(\tR\x06siteId\x12\x16\n" +
	"\x06vendor\x18\x04 \x01(\tR\x06vendor\x12\x1b\n" +
	"\tbill_type\x18\x05 \x01(\tR\bbillType\x12\"\n" +
	"\n" +
	"amount_due\x18\x06 \x01(\x03H\x00R\tamountDue\x88\x01\x01\x12\x19\n" +
	"\bdue_date\x18\a \x01(\tR\adueDate\x12!\n" +
	"\fperiod_start\x18\b \x01(\tR\vperiodStart\x12\x1d\n" +
	"\n" +
	"period_end\x18\t \x01(\tR\tperiodEnd\x12'\n" +
	"\x0fcustomer_number\x18\n" +
	" \x01(\tR\x0ecustomerNumber\x12'\n" +
	"\x0fpayment_account\x18\v \x01(\tR\x0epaymentAccount\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12\x14\n" +
	"\x05stage\x18\r \x01(\tR\x05stage\x12\x14\n" +
	"\x05track\x18\x0e \x01(\tR\x05track\x12#\n" +
	"\n" +
	"confidence\x18\x0f \x01(\x02H\x01R\n" +
	"confidence\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"error_code\x18\x10 \x01(\tR\terrorCode\x12#\n" +
	"\rerror_message\x18\x11 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x12 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x13 \x01(\tR\tupdatedAtB\r\n" +
	"\v_amount_dueB\r\n" +
	"\v_confidence\"3\n" +
	"\vArtifactURL\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\"\x86\x01\n" +
	"\x15CreateDocumentRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04file\x18\x02 \x01(\fR\x04file\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x17\n" +
	"\asite_id\x18\x04 \x01(\tR\x06siteId\"L\n" +
	"\x16CreateDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.bills.v1.BillDocumentR\bdocument\"T\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\"~\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.bills.v1.BillDocumentR\bdocument\x123\n" +
	"\tartifacts\x18\x02 \x03(\v2\x15.bills.v1.ArtifactURLR\tartifacts\"V\n" +
	"\x14RetryDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\"K\n" +
	"\x15RetryDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.bills.v1.BillDocumentR\bdocument\"\xdb\x02\n" +
	"\x16ConfirmDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x16\n" +
	"\x06vendor\x18\x03 \x01(\tR\x06vendor\x12\x1b\n" +
	"\tbill_type\x18\x04 \x01(\tR\bbillType\x12\x1d\n" +
	"\n" +
	"amount_due\x18\x05 \x01(\tR\tamountDue\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12!\n" +
	"\fperiod_start\x18\a \x01(\tR\vperiodStart\x12\x1d\n" +
	"\n" +
	"period_end\x18\b \x01(\tR\tperiodEnd\x12'\n" +
	"\x0fcustomer_number\x18\t \x01(\tR\x0ecustomerNumber\x12'\n" +
	"\x0fpayment_account\x18\n" +
	" \x01(\tR\x0epaymentAccount\"v\n" +
	"\x17ConfirmDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.bills.v1.BillDocumentR\bdocument\x12'\n" +
	"\x0frejected_fields\x18\x02 \x03(\tR\x0erejectedFields\"N\n" +
	"\x15SweepDocumentsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"\x8d\x01\n" +
	"\x16SweepDocumentsResponse\x12\x1a\n" +
	"\bselected\x18\x01 \x01(\x05R\bselected\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\x12!\n" +
	"\fdocument_ids\x18\x04 \x03(\tR\vdocumentIds\"i\n" +
	"\x12ExportBillsRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x13ExportBillsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xfa\x03\n" +
	"\fBillsService\x12S\n" +
	"\x0eCreateDocument\x12\x1f.bills.v1.CreateDocumentRequest\x1a .bills.v1.CreateDocumentResponse\x12J\n" +
	"\vGetDocument\x12\x1c.bills.v1.GetDocumentRequest\x1a\x1d.bills.v1.GetDocumentResponse\x12P\n" +
	"\rRetryDocument\x12\x1e.bills.v1.RetryDocumentRequest\x1a\x1f.bills.v1.RetryDocumentResponse\x12V\n" +
	"\x0fConfirmDocument\x12 .bills.v1.ConfirmDocumentRequest\x1a!.bills.v1.ConfirmDocumentResponse\x12S\n" +
	"\x0eSweepDocuments\x12\x1f.bills.v1.SweepDocumentsRequest\x1a .bills.v1.SweepDocumentsResponse\x12J\n" +
	"\vExportBills\x12\x1c.bills.v1.ExportBillsRequest\x1a\x1d.bills.v1.ExportBillsResponseB8Z6github.com/paydocs/billscan/gen/proto/bills/v1;billsv1b\x06proto3"

var (
	file_bills_v1_bills_proto_rawDescOnce sync.Once
	file_bills_v1_bills_proto_rawDescData []byte
)

func file_bills_v1_bills_proto_rawDescGZIP() []byte {
	file_bills_v1_bills_proto_rawDescOnce.Do(func() {
		file_bills_v1_bills_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_bills_v1_bills_proto_rawDesc), len(file_bills_v1_bills_proto_rawDesc)))
	})
	return file_bills_v1_bills_proto_rawDescData
}

var file_bills_v1_bills_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_bills_v1_bills_proto_goTypes = []any{
	(*BillDocument)(nil),            // 0: bills.v1.BillDocument
	(*ArtifactURL)(nil),             // 1: bills.v1.ArtifactURL
	(*CreateDocumentRequest)(nil),   // 2: bills.v1.CreateDocumentRequest
	(*CreateDocumentResponse)(nil),  // 3: bills.v1.CreateDocumentResponse
	(*GetDocumentRequest)(nil),      // 4: bills.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 5: bills.v1.GetDocumentResponse
	(*RetryDocumentRequest)(nil),    // 6: bills.v1.RetryDocumentRequest
	(*RetryDocumentResponse)(nil),   // 7: bills.v1.RetryDocumentResponse
	(*ConfirmDocumentRequest)(nil),  // 8: bills.v1.ConfirmDocumentRequest
	(*ConfirmDocumentResponse)(nil), // 9: bills.v1.ConfirmDocumentResponse
	(*SweepDocumentsRequest)(nil),   // 10: bills.v1.SweepDocumentsRequest
	(*SweepDocumentsResponse)(nil),  // 11: bills.v1.SweepDocumentsResponse
	(*ExportBillsRequest)(nil),      // 12: bills.v1.ExportBillsRequest
	(*ExportBillsResponse)(nil),     // 13: bills.v1.ExportBillsResponse
}
var file_bills_v1_bills_proto_depIdxs = []int32{
	0,  // 0: bills.v1.CreateDocumentResponse.document:type_name -> bills.v1.BillDocument
	0,  // 1: bills.v1.GetDocumentResponse.document:type_name -> bills.v1.BillDocument
	1,  // 2: bills.v1.GetDocumentResponse.artifacts:type_name -> bills.v1.ArtifactURL
	0,  // 3: bills.v1.RetryDocumentResponse.document:type_name -> bills.v1.BillDocument
	0,  // 4: bills.v1.ConfirmDocumentResponse.document:type_name -> bills.v1.BillDocument
	2,  // 5: bills.v1.BillsService.CreateDocument:input_type -> bills.v1.CreateDocumentRequest
	4,  // 6: bills.v1.BillsService.GetDocument:input_type -> bills.v1.GetDocumentRequest
	6,  // 7: bills.v1.BillsService.RetryDocument:input_type -> bills.v1.RetryDocumentRequest
	8,  // 8: bills.v1.BillsService.ConfirmDocument:input_type -> bills.v1.ConfirmDocumentRequest
	10, // 9: bills.v1.BillsService.SweepDocuments:input_type -> bills.v1.SweepDocumentsRequest
	12, // 10: bills.v1.BillsService.ExportBills:input_type -> bills.v1.ExportBillsRequest
	3,  // 11: bills.v1.BillsService.CreateDocument:output_type -> bills.v1.CreateDocumentResponse
	5,  // 12: bills.v1.BillsService.GetDocument:output_type -> bills.v1.GetDocumentResponse
	7,  // 13: bills.v1.BillsService.RetryDocument:output_type -> bills.v1.RetryDocumentResponse
	9,  // 14: bills.v1.BillsService.ConfirmDocument:output_type -> bills.v1.ConfirmDocumentResponse
	11, // 15: bills.v1.BillsService.SweepDocuments:output_type -> bills.v1.SweepDocumentsResponse
	13, // 16: bills.v1.BillsService.ExportBills:output_type -> bills.v1.ExportBillsResponse
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_bills_v1_bills_proto_init() }
func file_bills_v1_bills_proto_init() {
	if File_bills_v1_bills_proto != nil {
		return
	}
	file_bills_v1_bills_proto_msgTypes[0].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_bills_v1_bills_proto_rawDesc), len(file_bills_v1_bills_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_bills_v1_bills_proto_goTypes,
		DependencyIndexes: file_bills_v1_bills_proto_depIdxs,
		MessageInfos:      file_bills_v1_bills_proto_msgTypes,
	}.Build()
	File_bills_v1_bills_proto = out.File
	file_bills_v1_bills_proto_goTypes = nil
	file_bills_v1_bills_proto_depIdxs = nil
}
