// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ops/v1/ops.proto

package opspb

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

type Supplier struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Aliases        []string               `protobuf:"bytes,3,rep,name=aliases,proto3" json:"aliases,omitempty"`
	InvoiceEmail   string                 `protobuf:"bytes,4,opt,name=invoice_email,json=invoiceEmail,proto3" json:"invoice_email,omitempty"`
	InvoiceSubject string                 `protobuf:"bytes,5,opt,name=invoice_subject,json=invoiceSubject,proto3" json:"invoice_subject,omitempty"`
	SkuPrefix      string                 `protobuf:"bytes,6,opt,name=sku_prefix,json=skuPrefix,proto3" json:"sku_prefix,omitempty"`
	// Full extraction configuration as JSON; see EmailParsingConfig.
	ParsingConfigJson string `protobuf:"bytes,7,opt,name=parsing_config_json,json=parsingConfigJson,proto3" json:"parsing_config_json,omitempty"`
	TrainingSamples   int32  `protobuf:"varint,8,opt,name=training_samples,json=trainingSamples,proto3" json:"training_samples,omitempty"`
	CreatedAt         string `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Supplier) Reset() {
	*x = Supplier{}
	mi := &file_ops_v1_ops_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Supplier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Supplier) ProtoMessage() {}

func (x *Supplier) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Supplier.ProtoReflect.Descriptor instead.
func (*Supplier) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{0}
}

func (x *Supplier) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Supplier) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Supplier) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *Supplier) GetInvoiceEmail() string {
	if x != nil {
		return x.InvoiceEmail
	}
	return ""
}

func (x *Supplier) GetInvoiceSubject() string {
	if x != nil {
		return x.InvoiceSubject
	}
	return ""
}

func (x *Supplier) GetSkuPrefix() string {
	if x != nil {
		return x.SkuPrefix
	}
	return ""
}

func (x *Supplier) GetParsingConfigJson() string {
	if x != nil {
		return x.ParsingConfigJson
	}
	return ""
}

func (x *Supplier) GetTrainingSamples() int32 {
	if x != nil {
		return x.TrainingSamples
	}
	return 0
}

func (x *Supplier) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Supplier) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateSupplierRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Name              string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Aliases           []string               `protobuf:"bytes,2,rep,name=aliases,proto3" json:"aliases,omitempty"`
	InvoiceEmail      string                 `protobuf:"bytes,3,opt,name=invoice_email,json=invoiceEmail,proto3" json:"invoice_email,omitempty"`
	InvoiceSubject    string                 `protobuf:"bytes,4,opt,name=invoice_subject,json=invoiceSubject,proto3" json:"invoice_subject,omitempty"`
	SkuPrefix         string                 `protobuf:"bytes,5,opt,name=sku_prefix,json=skuPrefix,proto3" json:"sku_prefix,omitempty"`
	ParsingConfigJson string                 `protobuf:"bytes,6,opt,name=parsing_config_json,json=parsingConfigJson,proto3" json:"parsing_config_json,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CreateSupplierRequest) Reset() {
	*x = CreateSupplierRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSupplierRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSupplierRequest) ProtoMessage() {}

func (x *CreateSupplierRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSupplierRequest.ProtoReflect.Descriptor instead.
func (*CreateSupplierRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{1}
}

func (x *CreateSupplierRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSupplierRequest) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *CreateSupplierRequest) GetInvoiceEmail() string {
	if x != nil {
		return x.InvoiceEmail
	}
	return ""
}

func (x *CreateSupplierRequest) GetInvoiceSubject() string {
	if x != nil {
		return x.InvoiceSubject
	}
	return ""
}

func (x *CreateSupplierRequest) GetSkuPrefix() string {
	if x != nil {
		return x.SkuPrefix
	}
	return ""
}

func (x *CreateSupplierRequest) GetParsingConfigJson() string {
	if x != nil {
		return x.ParsingConfigJson
	}
	return ""
}

type CreateSupplierResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      *Supplier              `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSupplierResponse) Reset() {
	*x = CreateSupplierResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSupplierResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSupplierResponse) ProtoMessage() {}

func (x *CreateSupplierResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSupplierResponse.ProtoReflect.Descriptor instead.
func (*CreateSupplierResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{2}
}

func (x *CreateSupplierResponse) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

type ListSuppliersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersRequest) Reset() {
	*x = ListSuppliersRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersRequest) ProtoMessage() {}

func (x *ListSuppliersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersRequest.ProtoReflect.Descriptor instead.
func (*ListSuppliersRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{3}
}

type ListSuppliersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suppliers     []*Supplier            `protobuf:"bytes,1,rep,name=suppliers,proto3" json:"suppliers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersResponse) Reset() {
	*x = ListSuppliersResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersResponse) ProtoMessage() {}

func (x *ListSuppliersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersResponse.ProtoReflect.Descriptor instead.
func (*ListSuppliersResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{4}
}

func (x *ListSuppliersResponse) GetSuppliers() []*Supplier {
	if x != nil {
		return x.Suppliers
	}
	return nil
}

type UpdateParsingConfigRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	SupplierId        string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	ParsingConfigJson string                 `protobuf:"bytes,2,opt,name=parsing_config_json,json=parsingConfigJson,proto3" json:"parsing_config_json,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateParsingConfigRequest) Reset() {
	*x = UpdateParsingConfigRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateParsingConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateParsingConfigRequest) ProtoMessage() {}

func (x *UpdateParsingConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateParsingConfigRequest.ProtoReflect.Descriptor instead.
func (*UpdateParsingConfigRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateParsingConfigRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *UpdateParsingConfigRequest) GetParsingConfigJson() string {
	if x != nil {
		return x.ParsingConfigJson
	}
	return ""
}

type UpdateParsingConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      *Supplier              `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateParsingConfigResponse) Reset() {
	*x = UpdateParsingConfigResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateParsingConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateParsingConfigResponse) ProtoMessage() {}

func (x *UpdateParsingConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateParsingConfigResponse.ProtoReflect.Descriptor instead.
func (*UpdateParsingConfigResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateParsingConfigResponse) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

type AddTrainingSampleRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	SupplierId string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	Prompt     string                 `protobuf:"bytes,2,opt,name=prompt,proto3" json:"prompt,omitempty"`
	// JSON-encoded corrected invoice fields.
	ResultJson    string `protobuf:"bytes,3,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTrainingSampleRequest) Reset() {
	*x = AddTrainingSampleRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTrainingSampleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTrainingSampleRequest) ProtoMessage() {}

func (x *AddTrainingSampleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTrainingSampleRequest.ProtoReflect.Descriptor instead.
func (*AddTrainingSampleRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{7}
}

func (x *AddTrainingSampleRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *AddTrainingSampleRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *AddTrainingSampleRequest) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

type AddTrainingSampleResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TrainingSamples int32                  `protobuf:"varint,1,opt,name=training_samples,json=trainingSamples,proto3" json:"training_samples,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AddTrainingSampleResponse) Reset() {
	*x = AddTrainingSampleResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTrainingSampleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTrainingSampleResponse) ProtoMessage() {}

func (x *AddTrainingSampleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTrainingSampleResponse.ProtoReflect.Descriptor instead.
func (*AddTrainingSampleResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{8}
}

func (x *AddTrainingSampleResponse) GetTrainingSamples() int32 {
	if x != nil {
		return x.TrainingSamples
	}
	return 0
}

type IngestEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"` // RFC3339
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	From          string                 `protobuf:"bytes,4,opt,name=from,proto3" json:"from,omitempty"`
	Body          string                 `protobuf:"bytes,5,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestEmailRequest) Reset() {
	*x = IngestEmailRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailRequest) ProtoMessage() {}

func (x *IngestEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailRequest.ProtoReflect.Descriptor instead.
func (*IngestEmailRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{9}
}

func (x *IngestEmailRequest) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *IngestEmailRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *IngestEmailRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *IngestEmailRequest) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *IngestEmailRequest) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type IngestEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestEmailResponse) Reset() {
	*x = IngestEmailResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailResponse) ProtoMessage() {}

func (x *IngestEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailResponse.ProtoReflect.Descriptor instead.
func (*IngestEmailResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{10}
}

func (x *IngestEmailResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *IngestEmailResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ProcessEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ForceAi       bool                   `protobuf:"varint,2,opt,name=force_ai,json=forceAi,proto3" json:"force_ai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessEmailRequest) Reset() {
	*x = ProcessEmailRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessEmailRequest) ProtoMessage() {}

func (x *ProcessEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessEmailRequest.ProtoReflect.Descriptor instead.
func (*ProcessEmailRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessEmailRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessEmailRequest) GetForceAi() bool {
	if x != nil {
		return x.ForceAi
	}
	return false
}

type ItemOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Raw           string                 `protobuf:"bytes,1,opt,name=raw,proto3" json:"raw,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"` // resolved | skipped | errored
	Reason        string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemOutcome) Reset() {
	*x = ItemOutcome{}
	mi := &file_ops_v1_ops_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemOutcome) ProtoMessage() {}

func (x *ItemOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemOutcome.ProtoReflect.Descriptor instead.
func (*ItemOutcome) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{12}
}

func (x *ItemOutcome) GetRaw() string {
	if x != nil {
		return x.Raw
	}
	return ""
}

func (x *ItemOutcome) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *ItemOutcome) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ItemOutcome) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ItemOutcome) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ProcessEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Supplier      string                 `protobuf:"bytes,2,opt,name=supplier,proto3" json:"supplier,omitempty"`
	UsedAi        bool                   `protobuf:"varint,3,opt,name=used_ai,json=usedAi,proto3" json:"used_ai,omitempty"`
	Total         string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`
	Processed     int32                  `protobuf:"varint,5,opt,name=processed,proto3" json:"processed,omitempty"`
	Skipped       int32                  `protobuf:"varint,6,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Errored       int32                  `protobuf:"varint,7,opt,name=errored,proto3" json:"errored,omitempty"`
	Items         []*ItemOutcome         `protobuf:"bytes,8,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessEmailResponse) Reset() {
	*x = ProcessEmailResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessEmailResponse) ProtoMessage() {}

func (x *ProcessEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessEmailResponse.ProtoReflect.Descriptor instead.
func (*ProcessEmailResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessEmailResponse) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *ProcessEmailResponse) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ProcessEmailResponse) GetUsedAi() bool {
	if x != nil {
		return x.UsedAi
	}
	return false
}

func (x *ProcessEmailResponse) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *ProcessEmailResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ProcessEmailResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ProcessEmailResponse) GetErrored() int32 {
	if x != nil {
		return x.Errored
	}
	return 0
}

func (x *ProcessEmailResponse) GetItems() []*ItemOutcome {
	if x != nil {
		return x.Items
	}
	return nil
}

type ProcessPendingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	ForceAi       bool                   `protobuf:"varint,2,opt,name=force_ai,json=forceAi,proto3" json:"force_ai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessPendingRequest) Reset() {
	*x = ProcessPendingRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessPendingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessPendingRequest) ProtoMessage() {}

func (x *ProcessPendingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessPendingRequest.ProtoReflect.Descriptor instead.
func (*ProcessPendingRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{14}
}

func (x *ProcessPendingRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ProcessPendingRequest) GetForceAi() bool {
	if x != nil {
		return x.ForceAi
	}
	return false
}

type ProcessPendingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Emails        int32                  `protobuf:"varint,1,opt,name=emails,proto3" json:"emails,omitempty"`
	Processed     int32                  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessPendingResponse) Reset() {
	*x = ProcessPendingResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessPendingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessPendingResponse) ProtoMessage() {}

func (x *ProcessPendingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessPendingResponse.ProtoReflect.Descriptor instead.
func (*ProcessPendingResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{15}
}

func (x *ProcessPendingResponse) GetEmails() int32 {
	if x != nil {
		return x.Emails
	}
	return 0
}

func (x *ProcessPendingResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ProcessPendingResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type IgnoreEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IgnoreEmailRequest) Reset() {
	*x = IgnoreEmailRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IgnoreEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IgnoreEmailRequest) ProtoMessage() {}

func (x *IgnoreEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IgnoreEmailRequest.ProtoReflect.Descriptor instead.
func (*IgnoreEmailRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{16}
}

func (x *IgnoreEmailRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type IgnoreEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IgnoreEmailResponse) Reset() {
	*x = IgnoreEmailResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IgnoreEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IgnoreEmailResponse) ProtoMessage() {}

func (x *IgnoreEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IgnoreEmailResponse.ProtoReflect.Descriptor instead.
func (*IgnoreEmailResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{17}
}

func (x *IgnoreEmailResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SuggestMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MappingType   string                 `protobuf:"bytes,1,opt,name=mapping_type,json=mappingType,proto3" json:"mapping_type,omitempty"` // product | email_supplier | excel_column
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	SupplierId    string                 `protobuf:"bytes,3,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsRequest) Reset() {
	*x = SuggestMappingsRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsRequest) ProtoMessage() {}

func (x *SuggestMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsRequest.ProtoReflect.Descriptor instead.
func (*SuggestMappingsRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{18}
}

func (x *SuggestMappingsRequest) GetMappingType() string {
	if x != nil {
		return x.MappingType
	}
	return ""
}

func (x *SuggestMappingsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *SuggestMappingsRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

type MappingSuggestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        string                 `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Score         int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	UsageCount    int32                  `protobuf:"varint,4,opt,name=usage_count,json=usageCount,proto3" json:"usage_count,omitempty"`
	Origin        string                 `protobuf:"bytes,5,opt,name=origin,proto3" json:"origin,omitempty"` // alias | mapping | fuzzy
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MappingSuggestion) Reset() {
	*x = MappingSuggestion{}
	mi := &file_ops_v1_ops_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingSuggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingSuggestion) ProtoMessage() {}

func (x *MappingSuggestion) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingSuggestion.ProtoReflect.Descriptor instead.
func (*MappingSuggestion) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{19}
}

func (x *MappingSuggestion) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

func (x *MappingSuggestion) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *MappingSuggestion) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *MappingSuggestion) GetUsageCount() int32 {
	if x != nil {
		return x.UsageCount
	}
	return 0
}

func (x *MappingSuggestion) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

type SuggestMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suggestions   []*MappingSuggestion   `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsResponse) Reset() {
	*x = SuggestMappingsResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsResponse) ProtoMessage() {}

func (x *SuggestMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsResponse.ProtoReflect.Descriptor instead.
func (*SuggestMappingsResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{20}
}

func (x *SuggestMappingsResponse) GetSuggestions() []*MappingSuggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type RecordMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MappingType   string                 `protobuf:"bytes,1,opt,name=mapping_type,json=mappingType,proto3" json:"mapping_type,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Target        string                 `protobuf:"bytes,3,opt,name=target,proto3" json:"target,omitempty"`
	TargetId      string                 `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordMappingRequest) Reset() {
	*x = RecordMappingRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordMappingRequest) ProtoMessage() {}

func (x *RecordMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordMappingRequest.ProtoReflect.Descriptor instead.
func (*RecordMappingRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{21}
}

func (x *RecordMappingRequest) GetMappingType() string {
	if x != nil {
		return x.MappingType
	}
	return ""
}

func (x *RecordMappingRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *RecordMappingRequest) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

func (x *RecordMappingRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type RecordMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Confidence    int32                  `protobuf:"varint,1,opt,name=confidence,proto3" json:"confidence,omitempty"`
	UsageCount    int32                  `protobuf:"varint,2,opt,name=usage_count,json=usageCount,proto3" json:"usage_count,omitempty"`
	Score         int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordMappingResponse) Reset() {
	*x = RecordMappingResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordMappingResponse) ProtoMessage() {}

func (x *RecordMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordMappingResponse.ProtoReflect.Descriptor instead.
func (*RecordMappingResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{22}
}

func (x *RecordMappingResponse) GetConfidence() int32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *RecordMappingResponse) GetUsageCount() int32 {
	if x != nil {
		return x.UsageCount
	}
	return 0
}

func (x *RecordMappingResponse) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

type DedupeOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Platform      string                 `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"` // square | shopify
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DedupeOrderRequest) Reset() {
	*x = DedupeOrderRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DedupeOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DedupeOrderRequest) ProtoMessage() {}

func (x *DedupeOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DedupeOrderRequest.ProtoReflect.Descriptor instead.
func (*DedupeOrderRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{23}
}

func (x *DedupeOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *DedupeOrderRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

type DedupeOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matched       int32                  `protobuf:"varint,1,opt,name=matched,proto3" json:"matched,omitempty"`
	Merged        int32                  `protobuf:"varint,2,opt,name=merged,proto3" json:"merged,omitempty"`
	Deleted       int32                  `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DedupeOrderResponse) Reset() {
	*x = DedupeOrderResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DedupeOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DedupeOrderResponse) ProtoMessage() {}

func (x *DedupeOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DedupeOrderResponse.ProtoReflect.Descriptor instead.
func (*DedupeOrderResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{24}
}

func (x *DedupeOrderResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *DedupeOrderResponse) GetMerged() int32 {
	if x != nil {
		return x.Merged
	}
	return 0
}

func (x *DedupeOrderResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type DedupeSweepRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Platform      string                 `protobuf:"bytes,1,opt,name=platform,proto3" json:"platform,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DedupeSweepRequest) Reset() {
	*x = DedupeSweepRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DedupeSweepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DedupeSweepRequest) ProtoMessage() {}

func (x *DedupeSweepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DedupeSweepRequest.ProtoReflect.Descriptor instead.
func (*DedupeSweepRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{25}
}

func (x *DedupeSweepRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

type DedupeSweepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Collapsed     int32                  `protobuf:"varint,2,opt,name=collapsed,proto3" json:"collapsed,omitempty"`
	Deleted       int32                  `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
	Errored       int32                  `protobuf:"varint,4,opt,name=errored,proto3" json:"errored,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DedupeSweepResponse) Reset() {
	*x = DedupeSweepResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DedupeSweepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DedupeSweepResponse) ProtoMessage() {}

func (x *DedupeSweepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DedupeSweepResponse.ProtoReflect.Descriptor instead.
func (*DedupeSweepResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{26}
}

func (x *DedupeSweepResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *DedupeSweepResponse) GetCollapsed() int32 {
	if x != nil {
		return x.Collapsed
	}
	return 0
}

func (x *DedupeSweepResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

func (x *DedupeSweepResponse) GetErrored() int32 {
	if x != nil {
		return x.Errored
	}
	return 0
}

type MergeManualRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeManualRequest) Reset() {
	*x = MergeManualRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeManualRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeManualRequest) ProtoMessage() {}

func (x *MergeManualRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeManualRequest.ProtoReflect.Descriptor instead.
func (*MergeManualRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{27}
}

func (x *MergeManualRequest) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

type MergeManualResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matched       int32                  `protobuf:"varint,1,opt,name=matched,proto3" json:"matched,omitempty"`
	Merged        int32                  `protobuf:"varint,2,opt,name=merged,proto3" json:"merged,omitempty"`
	Deleted       int32                  `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeManualResponse) Reset() {
	*x = MergeManualResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeManualResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeManualResponse) ProtoMessage() {}

func (x *MergeManualResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeManualResponse.ProtoReflect.Descriptor instead.
func (*MergeManualResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{28}
}

func (x *MergeManualResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *MergeManualResponse) GetMerged() int32 {
	if x != nil {
		return x.Merged
	}
	return 0
}

func (x *MergeManualResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type InventoryAudit struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProductId       string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	ProductName     string                 `protobuf:"bytes,2,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	CurrentStock    int32                  `protobuf:"varint,3,opt,name=current_stock,json=currentStock,proto3" json:"current_stock,omitempty"`
	CalculatedStock int32                  `protobuf:"varint,4,opt,name=calculated_stock,json=calculatedStock,proto3" json:"calculated_stock,omitempty"`
	Difference      int32                  `protobuf:"varint,5,opt,name=difference,proto3" json:"difference,omitempty"`
	TotalPurchases  int32                  `protobuf:"varint,6,opt,name=total_purchases,json=totalPurchases,proto3" json:"total_purchases,omitempty"`
	TotalSales      int32                  `protobuf:"varint,7,opt,name=total_sales,json=totalSales,proto3" json:"total_sales,omitempty"`
	Events          int32                  `protobuf:"varint,8,opt,name=events,proto3" json:"events,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *InventoryAudit) Reset() {
	*x = InventoryAudit{}
	mi := &file_ops_v1_ops_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InventoryAudit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InventoryAudit) ProtoMessage() {}

func (x *InventoryAudit) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InventoryAudit.ProtoReflect.Descriptor instead.
func (*InventoryAudit) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{29}
}

func (x *InventoryAudit) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *InventoryAudit) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *InventoryAudit) GetCurrentStock() int32 {
	if x != nil {
		return x.CurrentStock
	}
	return 0
}

func (x *InventoryAudit) GetCalculatedStock() int32 {
	if x != nil {
		return x.CalculatedStock
	}
	return 0
}

func (x *InventoryAudit) GetDifference() int32 {
	if x != nil {
		return x.Difference
	}
	return 0
}

func (x *InventoryAudit) GetTotalPurchases() int32 {
	if x != nil {
		return x.TotalPurchases
	}
	return 0
}

func (x *InventoryAudit) GetTotalSales() int32 {
	if x != nil {
		return x.TotalSales
	}
	return 0
}

func (x *InventoryAudit) GetEvents() int32 {
	if x != nil {
		return x.Events
	}
	return 0
}

type AuditProductRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditProductRequest) Reset() {
	*x = AuditProductRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditProductRequest) ProtoMessage() {}

func (x *AuditProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditProductRequest.ProtoReflect.Descriptor instead.
func (*AuditProductRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{30}
}

func (x *AuditProductRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type AuditProductResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Audit         *InventoryAudit        `protobuf:"bytes,1,opt,name=audit,proto3" json:"audit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditProductResponse) Reset() {
	*x = AuditProductResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditProductResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditProductResponse) ProtoMessage() {}

func (x *AuditProductResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditProductResponse.ProtoReflect.Descriptor instead.
func (*AuditProductResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{31}
}

func (x *AuditProductResponse) GetAudit() *InventoryAudit {
	if x != nil {
		return x.Audit
	}
	return nil
}

type AuditInventoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditInventoryRequest) Reset() {
	*x = AuditInventoryRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditInventoryRequest) ProtoMessage() {}

func (x *AuditInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditInventoryRequest.ProtoReflect.Descriptor instead.
func (*AuditInventoryRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{32}
}

type AuditInventoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Audits        []*InventoryAudit      `protobuf:"bytes,1,rep,name=audits,proto3" json:"audits,omitempty"`
	Errored       int32                  `protobuf:"varint,2,opt,name=errored,proto3" json:"errored,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditInventoryResponse) Reset() {
	*x = AuditInventoryResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditInventoryResponse) ProtoMessage() {}

func (x *AuditInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditInventoryResponse.ProtoReflect.Descriptor instead.
func (*AuditInventoryResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{33}
}

func (x *AuditInventoryResponse) GetAudits() []*InventoryAudit {
	if x != nil {
		return x.Audits
	}
	return nil
}

func (x *AuditInventoryResponse) GetErrored() int32 {
	if x != nil {
		return x.Errored
	}
	return 0
}

type UpdateToCalculatedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateToCalculatedRequest) Reset() {
	*x = UpdateToCalculatedRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateToCalculatedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateToCalculatedRequest) ProtoMessage() {}

func (x *UpdateToCalculatedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateToCalculatedRequest.ProtoReflect.Descriptor instead.
func (*UpdateToCalculatedRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{34}
}

func (x *UpdateToCalculatedRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type UpdateToCalculatedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Audit         *InventoryAudit        `protobuf:"bytes,1,opt,name=audit,proto3" json:"audit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateToCalculatedResponse) Reset() {
	*x = UpdateToCalculatedResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateToCalculatedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateToCalculatedResponse) ProtoMessage() {}

func (x *UpdateToCalculatedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateToCalculatedResponse.ProtoReflect.Descriptor instead.
func (*UpdateToCalculatedResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{35}
}

func (x *UpdateToCalculatedResponse) GetAudit() *InventoryAudit {
	if x != nil {
		return x.Audit
	}
	return nil
}

type CreateAdjustmentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Delta         int32                  `protobuf:"varint,2,opt,name=delta,proto3" json:"delta,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAdjustmentRequest) Reset() {
	*x = CreateAdjustmentRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAdjustmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAdjustmentRequest) ProtoMessage() {}

func (x *CreateAdjustmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAdjustmentRequest.ProtoReflect.Descriptor instead.
func (*CreateAdjustmentRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{36}
}

func (x *CreateAdjustmentRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *CreateAdjustmentRequest) GetDelta() int32 {
	if x != nil {
		return x.Delta
	}
	return 0
}

func (x *CreateAdjustmentRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CreateAdjustmentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChangeId      string                 `protobuf:"bytes,1,opt,name=change_id,json=changeId,proto3" json:"change_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAdjustmentResponse) Reset() {
	*x = CreateAdjustmentResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAdjustmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAdjustmentResponse) ProtoMessage() {}

func (x *CreateAdjustmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAdjustmentResponse.ProtoReflect.Descriptor instead.
func (*CreateAdjustmentResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{37}
}

func (x *CreateAdjustmentResponse) GetChangeId() string {
	if x != nil {
		return x.ChangeId
	}
	return ""
}

type ExportLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerRequest) Reset() {
	*x = ExportLedgerRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerRequest) ProtoMessage() {}

func (x *ExportLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerRequest.ProtoReflect.Descriptor instead.
func (*ExportLedgerRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{38}
}

func (x *ExportLedgerRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportLedgerRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportLedgerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerResponse) Reset() {
	*x = ExportLedgerResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerResponse) ProtoMessage() {}

func (x *ExportLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerResponse.ProtoReflect.Descriptor instead.
func (*ExportLedgerResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{39}
}

func (x *ExportLedgerResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportInventoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryRequest) Reset() {
	*x = ExportInventoryRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryRequest) ProtoMessage() {}

func (x *ExportInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryRequest.ProtoReflect.Descriptor instead.
func (*ExportInventoryRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{40}
}

type ExportInventoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryResponse) Reset() {
	*x = ExportInventoryResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryResponse) ProtoMessage() {}

func (x *ExportInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryResponse.ProtoReflect.Descriptor instead.
func (*ExportInventoryResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{41}
}

func (x *ExportInventoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ImportWorkbookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWorkbookRequest) Reset() {
	*x = ImportWorkbookRequest{}
	mi := &file_ops_v1_ops_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWorkbookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWorkbookRequest) ProtoMessage() {}

func (x *ImportWorkbookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWorkbookRequest.ProtoReflect.Descriptor instead.
func (*ImportWorkbookRequest) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{42}
}

func (x *ImportWorkbookRequest) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ImportRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Row           int32                  `protobuf:"varint,1,opt,name=row,proto3" json:"row,omitempty"`
	RawName       string                 `protobuf:"bytes,2,opt,name=raw_name,json=rawName,proto3" json:"raw_name,omitempty"`
	Sku           string                 `protobuf:"bytes,3,opt,name=sku,proto3" json:"sku,omitempty"`
	Quantity      int32                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // matched | suggested | unmatched | error
	ProductId     string                 `protobuf:"bytes,6,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Suggestions   []*MappingSuggestion   `protobuf:"bytes,7,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	Reason        string                 `protobuf:"bytes,8,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportRow) Reset() {
	*x = ImportRow{}
	mi := &file_ops_v1_ops_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportRow) ProtoMessage() {}

func (x *ImportRow) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportRow.ProtoReflect.Descriptor instead.
func (*ImportRow) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{43}
}

func (x *ImportRow) GetRow() int32 {
	if x != nil {
		return x.Row
	}
	return 0
}

func (x *ImportRow) GetRawName() string {
	if x != nil {
		return x.RawName
	}
	return ""
}

func (x *ImportRow) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *ImportRow) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ImportRow) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportRow) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *ImportRow) GetSuggestions() []*MappingSuggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

func (x *ImportRow) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ImportWorkbookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          int32                  `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Matched       int32                  `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Suggested     int32                  `protobuf:"varint,3,opt,name=suggested,proto3" json:"suggested,omitempty"`
	Unmatched     int32                  `protobuf:"varint,4,opt,name=unmatched,proto3" json:"unmatched,omitempty"`
	Errored       int32                  `protobuf:"varint,5,opt,name=errored,proto3" json:"errored,omitempty"`
	Results       []*ImportRow           `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWorkbookResponse) Reset() {
	*x = ImportWorkbookResponse{}
	mi := &file_ops_v1_ops_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWorkbookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWorkbookResponse) ProtoMessage() {}

func (x *ImportWorkbookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ops_v1_ops_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWorkbookResponse.ProtoReflect.Descriptor instead.
func (*ImportWorkbookResponse) Descriptor() ([]byte, []int) {
	return file_ops_v1_ops_proto_rawDescGZIP(), []int{44}
}

func (x *ImportWorkbookResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *ImportWorkbookResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ImportWorkbookResponse) GetSuggested() int32 {
	if x != nil {
		return x.Suggested
	}
	return 0
}

func (x *ImportWorkbookResponse) GetUnmatched() int32 {
	if x != nil {
		return x.Unmatched
	}
	return 0
}

func (x *ImportWorkbookResponse) GetErrored() int32 {
	if x != nil {
		return x.Errored
	}
	return 0
}

func (x *ImportWorkbookResponse) GetResults() []*ImportRow {
	if x != nil {
		return x.Results
	}
	return nil
}

var File_ops_v1_ops_proto protoreflect.FileDescriptor

const file_ops_v1_ops_proto_rawDesc = "" +
	"\n" +
	"\x10ops/v1/ops.proto\x12\x06ops.v1\"\xce\x02\n" +
	"\bSupplier\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aaliases\x18\x03 \x03(\tR\aaliases\x12#\n" +
	"\rinvoice_email\x18\x04 \x01(\tR\finvoiceEmail\x12'\n" +
	"\x0finvoice_subject\x18\x05 \x01(\tR\x0einvoiceSubject\x12\x1d\n" +
	"\n" +
	"sku_prefix\x18\x06 \x01(\tR\tskuPrefix\x12.\n" +
	"\x13parsing_config_json\x18\a \x01(\tR\x11parsingConfigJson\x12)\n" +
	"\x10training_samples\x18\b \x01(\x05R\x0ftrainingSamples\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xe2\x01\n" +
	"\x15CreateSupplierRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aaliases\x18\x02 \x03(\tR\aaliases\x12#\n" +
	"\rinvoice_email\x18\x03 \x01(\tR\finvoiceEmail\x12'\n" +
	"\x0finvoice_subject\x18\x04 \x01(\tR\x0einvoiceSubject\x12\x1d\n" +
	"\n" +
	"sku_prefix\x18\x05 \x01(\tR\tskuPrefix\x12.\n" +
	"\x13parsing_config_json\x18\x06 \x01(\tR\x11parsingConfigJson\"F\n" +
	"\x16CreateSupplierResponse\x12,\n" +
	"\bsupplier\x18\x01 \x01(\v2\x10.ops.v1.SupplierR\bsupplier\"\x16\n" +
	"\x14ListSuppliersRequest\"G\n" +
	"\x15ListSuppliersResponse\x12.\n" +
	"\tsuppliers\x18\x01 \x03(\v2\x10.ops.v1.SupplierR\tsuppliers\"m\n" +
	"\x1aUpdateParsingConfigRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\x12.\n" +
	"\x13parsing_config_json\x18\x02 \x01(\tR\x11parsingConfigJson\"K\n" +
	"\x1bUpdateParsingConfigResponse\x12,\n" +
	"\bsupplier\x18\x01 \x01(\v2\x10.ops.v1.SupplierR\bsupplier\"t\n" +
	"\x18AddTrainingSampleRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\x12\x16\n" +
	"\x06prompt\x18\x02 \x01(\tR\x06prompt\x12\x1f\n" +
	"\vresult_json\x18\x03 \x01(\tR\n" +
	"resultJson\"F\n" +
	"\x19AddTrainingSampleResponse\x12)\n" +
	"\x10training_samples\x18\x01 \x01(\x05R\x0ftrainingSamples\"\x85\x01\n" +
	"\x12IngestEmailRequest\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12\x12\n" +
	"\x04from\x18\x04 \x01(\tR\x04from\x12\x12\n" +
	"\x04body\x18\x05 \x01(\tR\x04body\"=\n" +
	"\x13IngestEmailResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"@\n" +
	"\x13ProcessEmailRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bforce_ai\x18\x02 \x01(\bR\aforceAi\"\x8a\x01\n" +
	"\vItemOutcome\x12\x10\n" +
	"\x03raw\x18\x01 \x01(\tR\x03raw\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\"\x85\x02\n" +
	"\x14ProcessEmailResponse\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\x12\x1a\n" +
	"\bsupplier\x18\x02 \x01(\tR\bsupplier\x12\x17\n" +
	"\aused_ai\x18\x03 \x01(\bR\x06usedAi\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\x12\x1c\n" +
	"\tprocessed\x18\x05 \x01(\x05R\tprocessed\x12\x18\n" +
	"\askipped\x18\x06 \x01(\x05R\askipped\x12\x18\n" +
	"\aerrored\x18\a \x01(\x05R\aerrored\x12)\n" +
	"\x05items\x18\b \x03(\v2\x13.ops.v1.ItemOutcomeR\x05items\"H\n" +
	"\x15ProcessPendingRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\x12\x19\n" +
	"\bforce_ai\x18\x02 \x01(\bR\aforceAi\"f\n" +
	"\x16ProcessPendingResponse\x12\x16\n" +
	"\x06emails\x18\x01 \x01(\x05R\x06emails\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"$\n" +
	"\x12IgnoreEmailRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"-\n" +
	"\x13IgnoreEmailResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"t\n" +
	"\x16SuggestMappingsRequest\x12!\n" +
	"\fmapping_type\x18\x01 \x01(\tR\vmappingType\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x1f\n" +
	"\vsupplier_id\x18\x03 \x01(\tR\n" +
	"supplierId\"\x97\x01\n" +
	"\x11MappingSuggestion\x12\x16\n" +
	"\x06target\x18\x01 \x01(\tR\x06target\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\x12\x1f\n" +
	"\vusage_count\x18\x04 \x01(\x05R\n" +
	"usageCount\x12\x16\n" +
	"\x06origin\x18\x05 \x01(\tR\x06origin\"V\n" +
	"\x17SuggestMappingsResponse\x12;\n" +
	"\vsuggestions\x18\x01 \x03(\v2\x19.ops.v1.MappingSuggestionR\vsuggestions\"\x86\x01\n" +
	"\x14RecordMappingRequest\x12!\n" +
	"\fmapping_type\x18\x01 \x01(\tR\vmappingType\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x16\n" +
	"\x06target\x18\x03 \x01(\tR\x06target\x12\x1b\n" +
	"\ttarget_id\x18\x04 \x01(\tR\btargetId\"n\n" +
	"\x15RecordMappingResponse\x12\x1e\n" +
	"\n" +
	"confidence\x18\x01 \x01(\x05R\n" +
	"confidence\x12\x1f\n" +
	"\vusage_count\x18\x02 \x01(\x05R\n" +
	"usageCount\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\"K\n" +
	"\x12DedupeOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x1a\n" +
	"\bplatform\x18\x02 \x01(\tR\bplatform\"a\n" +
	"\x13DedupeOrderResponse\x12\x18\n" +
	"\amatched\x18\x01 \x01(\x05R\amatched\x12\x16\n" +
	"\x06merged\x18\x02 \x01(\x05R\x06merged\x12\x18\n" +
	"\adeleted\x18\x03 \x01(\x05R\adeleted\"0\n" +
	"\x12DedupeSweepRequest\x12\x1a\n" +
	"\bplatform\x18\x01 \x01(\tR\bplatform\"\x85\x01\n" +
	"\x13DedupeSweepResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x1c\n" +
	"\tcollapsed\x18\x02 \x01(\x05R\tcollapsed\x12\x18\n" +
	"\adeleted\x18\x03 \x01(\x05R\adeleted\x12\x18\n" +
	"\aerrored\x18\x04 \x01(\x05R\aerrored\";\n" +
	"\x12MergeManualRequest\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\"a\n" +
	"\x13MergeManualResponse\x12\x18\n" +
	"\amatched\x18\x01 \x01(\x05R\amatched\x12\x16\n" +
	"\x06merged\x18\x02 \x01(\x05R\x06merged\x12\x18\n" +
	"\adeleted\x18\x03 \x01(\x05R\adeleted\"\xa4\x02\n" +
	"\x0eInventoryAudit\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12!\n" +
	"\fproduct_name\x18\x02 \x01(\tR\vproductName\x12#\n" +
	"\rcurrent_stock\x18\x03 \x01(\x05R\fcurrentStock\x12)\n" +
	"\x10calculated_stock\x18\x04 \x01(\x05R\x0fcalculatedStock\x12\x1e\n" +
	"\n" +
	"difference\x18\x05 \x01(\x05R\n" +
	"difference\x12'\n" +
	"\x0ftotal_purchases\x18\x06 \x01(\x05R\x0etotalPurchases\x12\x1f\n" +
	"\vtotal_sales\x18\a \x01(\x05R\n" +
	"totalSales\x12\x16\n" +
	"\x06events\x18\b \x01(\x05R\x06events\"4\n" +
	"\x13AuditProductRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"D\n" +
	"\x14AuditProductResponse\x12,\n" +
	"\x05audit\x18\x01 \x01(\v2\x16.ops.v1.InventoryAuditR\x05audit\"\x17\n" +
	"\x15AuditInventoryRequest\"b\n" +
	"\x16AuditInventoryResponse\x12.\n" +
	"\x06audits\x18\x01 \x03(\v2\x16.ops.v1.InventoryAuditR\x06audits\x12\x18\n" +
	"\aerrored\x18\x02 \x01(\x05R\aerrored\":\n" +
	"\x19UpdateToCalculatedRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"J\n" +
	"\x1aUpdateToCalculatedResponse\x12,\n" +
	"\x05audit\x18\x01 \x01(\v2\x16.ops.v1.InventoryAuditR\x05audit\"f\n" +
	"\x17CreateAdjustmentRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x14\n" +
	"\x05delta\x18\x02 \x01(\x05R\x05delta\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"7\n" +
	"\x18CreateAdjustmentResponse\x12\x1b\n" +
	"\tchange_id\x18\x01 \x01(\tR\bchangeId\"K\n" +
	"\x13ExportLedgerRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportLedgerResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x18\n" +
	"\x16ExportInventoryRequest\"-\n" +
	"\x17ExportInventoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"+\n" +
	"\x15ImportWorkbookRequest\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xf2\x01\n" +
	"\tImportRow\x12\x10\n" +
	"\x03row\x18\x01 \x01(\x05R\x03row\x12\x19\n" +
	"\braw_name\x18\x02 \x01(\tR\arawName\x12\x10\n" +
	"\x03sku\x18\x03 \x01(\tR\x03sku\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x05R\bquantity\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"product_id\x18\x06 \x01(\tR\tproductId\x12;\n" +
	"\vsuggestions\x18\a \x03(\v2\x19.ops.v1.MappingSuggestionR\vsuggestions\x12\x16\n" +
	"\x06reason\x18\b \x01(\tR\x06reason\"\xc9\x01\n" +
	"\x16ImportWorkbookResponse\x12\x12\n" +
	"\x04rows\x18\x01 \x01(\x05R\x04rows\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x05R\amatched\x12\x1c\n" +
	"\tsuggested\x18\x03 \x01(\x05R\tsuggested\x12\x1c\n" +
	"\tunmatched\x18\x04 \x01(\x05R\tunmatched\x12\x18\n" +
	"\aerrored\x18\x05 \x01(\x05R\aerrored\x12+\n" +
	"\aresults\x18\x06 \x03(\v2\x11.ops.v1.ImportRowR\aresults2\xeb\x02\n" +
	"\x10SuppliersService\x12O\n" +
	"\x0eCreateSupplier\x12\x1d.ops.v1.CreateSupplierRequest\x1a\x1e.ops.v1.CreateSupplierResponse\x12L\n" +
	"\rListSuppliers\x12\x1c.ops.v1.ListSuppliersRequest\x1a\x1d.ops.v1.ListSuppliersResponse\x12^\n" +
	"\x13UpdateParsingConfig\x12\".ops.v1.UpdateParsingConfigRequest\x1a#.ops.v1.UpdateParsingConfigResponse\x12X\n" +
	"\x11AddTrainingSample\x12 .ops.v1.AddTrainingSampleRequest\x1a!.ops.v1.AddTrainingSampleResponse2\xdf\x03\n" +
	"\x0fPipelineService\x12F\n" +
	"\vIngestEmail\x12\x1a.ops.v1.IngestEmailRequest\x1a\x1b.ops.v1.IngestEmailResponse\x12I\n" +
	"\fProcessEmail\x12\x1b.ops.v1.ProcessEmailRequest\x1a\x1c.ops.v1.ProcessEmailResponse\x12O\n" +
	"\x0eProcessPending\x12\x1d.ops.v1.ProcessPendingRequest\x1a\x1e.ops.v1.ProcessPendingResponse\x12F\n" +
	"\vIgnoreEmail\x12\x1a.ops.v1.IgnoreEmailRequest\x1a\x1b.ops.v1.IgnoreEmailResponse\x12R\n" +
	"\x0fSuggestMappings\x12\x1e.ops.v1.SuggestMappingsRequest\x1a\x1f.ops.v1.SuggestMappingsResponse\x12L\n" +
	"\rRecordMapping\x12\x1c.ops.v1.RecordMappingRequest\x1a\x1d.ops.v1.RecordMappingResponse2\xed\x01\n" +
	"\x13TransactionsService\x12F\n" +
	"\vDedupeOrder\x12\x1a.ops.v1.DedupeOrderRequest\x1a\x1b.ops.v1.DedupeOrderResponse\x12F\n" +
	"\vDedupeSweep\x12\x1a.ops.v1.DedupeSweepRequest\x1a\x1b.ops.v1.DedupeSweepResponse\x12F\n" +
	"\vMergeManual\x12\x1a.ops.v1.MergeManualRequest\x1a\x1b.ops.v1.MergeManualResponse2\xe2\x02\n" +
	"\x10InventoryService\x12I\n" +
	"\fAuditProduct\x12\x1b.ops.v1.AuditProductRequest\x1a\x1c.ops.v1.AuditProductResponse\x12O\n" +
	"\x0eAuditInventory\x12\x1d.ops.v1.AuditInventoryRequest\x1a\x1e.ops.v1.AuditInventoryResponse\x12[\n" +
	"\x12UpdateToCalculated\x12!.ops.v1.UpdateToCalculatedRequest\x1a\".ops.v1.UpdateToCalculatedResponse\x12U\n" +
	"\x10CreateAdjustment\x12\x1f.ops.v1.CreateAdjustmentRequest\x1a .ops.v1.CreateAdjustmentResponse2\xff\x01\n" +
	"\rExportService\x12I\n" +
	"\fExportLedger\x12\x1b.ops.v1.ExportLedgerRequest\x1a\x1c.ops.v1.ExportLedgerResponse\x12R\n" +
	"\x0fExportInventory\x12\x1e.ops.v1.ExportInventoryRequest\x1a\x1f.ops.v1.ExportInventoryResponse\x12O\n" +
	"\x0eImportWorkbook\x12\x1d.ops.v1.ImportWorkbookRequest\x1a\x1e.ops.v1.ImportWorkbookResponseB;Z9github.com/daydreamers/ops-backend/gen/proto/ops/v1;opspbb\x06proto3"

var (
	file_ops_v1_ops_proto_rawDescOnce sync.Once
	file_ops_v1_ops_proto_rawDescData []byte
)

func file_ops_v1_ops_proto_rawDescGZIP() []byte {
	file_ops_v1_ops_proto_rawDescOnce.Do(func() {
		file_ops_v1_ops_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ops_v1_ops_proto_rawDesc), len(file_ops_v1_ops_proto_rawDesc)))
	})
	return file_ops_v1_ops_proto_rawDescData
}

var file_ops_v1_ops_proto_msgTypes = make([]protoimpl.MessageInfo, 45)
var file_ops_v1_ops_proto_goTypes = []any{
	(*Supplier)(nil),                    // 0: ops.v1.Supplier
	(*CreateSupplierRequest)(nil),       // 1: ops.v1.CreateSupplierRequest
	(*CreateSupplierResponse)(nil),      // 2: ops.v1.CreateSupplierResponse
	(*ListSuppliersRequest)(nil),        // 3: ops.v1.ListSuppliersRequest
	(*ListSuppliersResponse)(nil),       // 4: ops.v1.ListSuppliersResponse
	(*UpdateParsingConfigRequest)(nil),  // 5: ops.v1.UpdateParsingConfigRequest
	(*UpdateParsingConfigResponse)(nil), // 6: ops.v1.UpdateParsingConfigResponse
	(*AddTrainingSampleRequest)(nil),    // 7: ops.v1.AddTrainingSampleRequest
	(*AddTrainingSampleResponse)(nil),   // 8: ops.v1.AddTrainingSampleResponse
	(*IngestEmailRequest)(nil),          // 9: ops.v1.IngestEmailRequest
	(*IngestEmailResponse)(nil),         // 10: ops.v1.IngestEmailResponse
	(*ProcessEmailRequest)(nil),         // 11: ops.v1.ProcessEmailRequest
	(*ItemOutcome)(nil),                 // 12: ops.v1.ItemOutcome
	(*ProcessEmailResponse)(nil),        // 13: ops.v1.ProcessEmailResponse
	(*ProcessPendingRequest)(nil),       // 14: ops.v1.ProcessPendingRequest
	(*ProcessPendingResponse)(nil),      // 15: ops.v1.ProcessPendingResponse
	(*IgnoreEmailRequest)(nil),          // 16: ops.v1.IgnoreEmailRequest
	(*IgnoreEmailResponse)(nil),         // 17: ops.v1.IgnoreEmailResponse
	(*SuggestMappingsRequest)(nil),      // 18: ops.v1.SuggestMappingsRequest
	(*MappingSuggestion)(nil),           // 19: ops.v1.MappingSuggestion
	(*SuggestMappingsResponse)(nil),     // 20: ops.v1.SuggestMappingsResponse
	(*RecordMappingRequest)(nil),        // 21: ops.v1.RecordMappingRequest
	(*RecordMappingResponse)(nil),       // 22: ops.v1.RecordMappingResponse
	(*DedupeOrderRequest)(nil),          // 23: ops.v1.DedupeOrderRequest
	(*DedupeOrderResponse)(nil),         // 24: ops.v1.DedupeOrderResponse
	(*DedupeSweepRequest)(nil),          // 25: ops.v1.DedupeSweepRequest
	(*DedupeSweepResponse)(nil),         // 26: ops.v1.DedupeSweepResponse
	(*MergeManualRequest)(nil),          // 27: ops.v1.MergeManualRequest
	(*MergeManualResponse)(nil),         // 28: ops.v1.MergeManualResponse
	(*InventoryAudit)(nil),              // 29: ops.v1.InventoryAudit
	(*AuditProductRequest)(nil),         // 30: ops.v1.AuditProductRequest
	(*AuditProductResponse)(nil),        // 31: ops.v1.AuditProductResponse
	(*AuditInventoryRequest)(nil),       // 32: ops.v1.AuditInventoryRequest
	(*AuditInventoryResponse)(nil),      // 33: ops.v1.AuditInventoryResponse
	(*UpdateToCalculatedRequest)(nil),   // 34: ops.v1.UpdateToCalculatedRequest
	(*UpdateToCalculatedResponse)(nil),  // 35: ops.v1.UpdateToCalculatedResponse
	(*CreateAdjustmentRequest)(nil),     // 36: ops.v1.CreateAdjustmentRequest
	(*CreateAdjustmentResponse)(nil),    // 37: ops.v1.CreateAdjustmentResponse
	(*ExportLedgerRequest)(nil),         // 38: ops.v1.ExportLedgerRequest
	(*ExportLedgerResponse)(nil),        // 39: ops.v1.ExportLedgerResponse
	(*ExportInventoryRequest)(nil),      // 40: ops.v1.ExportInventoryRequest
	(*ExportInventoryResponse)(nil),     // 41: ops.v1.ExportInventoryResponse
	(*ImportWorkbookRequest)(nil),       // 42: ops.v1.ImportWorkbookRequest
	(*ImportRow)(nil),                   // 43: ops.v1.ImportRow
	(*ImportWorkbookResponse)(nil),      // 44: ops.v1.ImportWorkbookResponse
}
var file_ops_v1_ops_proto_depIdxs = []int32{
	0,  // 0: ops.v1.CreateSupplierResponse.supplier:type_name -> ops.v1.Supplier
	0,  // 1: ops.v1.ListSuppliersResponse.suppliers:type_name -> ops.v1.Supplier
	0,  // 2: ops.v1.UpdateParsingConfigResponse.supplier:type_name -> ops.v1.Supplier
	12, // 3: ops.v1.ProcessEmailResponse.items:type_name -> ops.v1.ItemOutcome
	19, // 4: ops.v1.SuggestMappingsResponse.suggestions:type_name -> ops.v1.MappingSuggestion
	29, // 5: ops.v1.AuditProductResponse.audit:type_name -> ops.v1.InventoryAudit
	29, // 6: ops.v1.AuditInventoryResponse.audits:type_name -> ops.v1.InventoryAudit
	29, // 7: ops.v1.UpdateToCalculatedResponse.audit:type_name -> ops.v1.InventoryAudit
	19, // 8: ops.v1.ImportRow.suggestions:type_name -> ops.v1.MappingSuggestion
	43, // 9: ops.v1.ImportWorkbookResponse.results:type_name -> ops.v1.ImportRow
	1,  // 10: ops.v1.SuppliersService.CreateSupplier:input_type -> ops.v1.CreateSupplierRequest
	3,  // 11: ops.v1.SuppliersService.ListSuppliers:input_type -> ops.v1.ListSuppliersRequest
	5,  // 12: ops.v1.SuppliersService.UpdateParsingConfig:input_type -> ops.v1.UpdateParsingConfigRequest
	7,  // 13: ops.v1.SuppliersService.AddTrainingSample:input_type -> ops.v1.AddTrainingSampleRequest
	9,  // 14: ops.v1.PipelineService.IngestEmail:input_type -> ops.v1.IngestEmailRequest
	11, // 15: ops.v1.PipelineService.ProcessEmail:input_type -> ops.v1.ProcessEmailRequest
	14, // 16: ops.v1.PipelineService.ProcessPending:input_type -> ops.v1.ProcessPendingRequest
	16, // 17: ops.v1.PipelineService.IgnoreEmail:input_type -> ops.v1.IgnoreEmailRequest
	18, // 18: ops.v1.PipelineService.SuggestMappings:input_type -> ops.v1.SuggestMappingsRequest
	21, // 19: ops.v1.PipelineService.RecordMapping:input_type -> ops.v1.RecordMappingRequest
	23, // 20: ops.v1.TransactionsService.DedupeOrder:input_type -> ops.v1.DedupeOrderRequest
	25, // 21: ops.v1.TransactionsService.DedupeSweep:input_type -> ops.v1.DedupeSweepRequest
	27, // 22: ops.v1.TransactionsService.MergeManual:input_type -> ops.v1.MergeManualRequest
	30, // 23: ops.v1.InventoryService.AuditProduct:input_type -> ops.v1.AuditProductRequest
	32, // 24: ops.v1.InventoryService.AuditInventory:input_type -> ops.v1.AuditInventoryRequest
	34, // 25: ops.v1.InventoryService.UpdateToCalculated:input_type -> ops.v1.UpdateToCalculatedRequest
	36, // 26: ops.v1.InventoryService.CreateAdjustment:input_type -> ops.v1.CreateAdjustmentRequest
	38, // 27: ops.v1.ExportService.ExportLedger:input_type -> ops.v1.ExportLedgerRequest
	40, // 28: ops.v1.ExportService.ExportInventory:input_type -> ops.v1.ExportInventoryRequest
	42, // 29: ops.v1.ExportService.ImportWorkbook:input_type -> ops.v1.ImportWorkbookRequest
	2,  // 30: ops.v1.SuppliersService.CreateSupplier:output_type -> ops.v1.CreateSupplierResponse
	4,  // 31: ops.v1.SuppliersService.ListSuppliers:output_type -> ops.v1.ListSuppliersResponse
	6,  // 32: ops.v1.SuppliersService.UpdateParsingConfig:output_type -> ops.v1.UpdateParsingConfigResponse
	8,  // 33: ops.v1.SuppliersService.AddTrainingSample:output_type -> ops.v1.AddTrainingSampleResponse
	10, // 34: ops.v1.PipelineService.IngestEmail:output_type -> ops.v1.IngestEmailResponse
	13, // 35: ops.v1.PipelineService.ProcessEmail:output_type -> ops.v1.ProcessEmailResponse
	15, // 36: ops.v1.PipelineService.ProcessPending:output_type -> ops.v1.ProcessPendingResponse
	17, // 37: ops.v1.PipelineService.IgnoreEmail:output_type -> ops.v1.IgnoreEmailResponse
	20, // 38: ops.v1.PipelineService.SuggestMappings:output_type -> ops.v1.SuggestMappingsResponse
	22, // 39: ops.v1.PipelineService.RecordMapping:output_type -> ops.v1.RecordMappingResponse
	24, // 40: ops.v1.TransactionsService.DedupeOrder:output_type -> ops.v1.DedupeOrderResponse
	26, // 41: ops.v1.TransactionsService.DedupeSweep:output_type -> ops.v1.DedupeSweepResponse
	28, // 42: ops.v1.TransactionsService.MergeManual:output_type -> ops.v1.MergeManualResponse
	31, // 43: ops.v1.InventoryService.AuditProduct:output_type -> ops.v1.AuditProductResponse
	33, // 44: ops.v1.InventoryService.AuditInventory:output_type -> ops.v1.AuditInventoryResponse
	35, // 45: ops.v1.InventoryService.UpdateToCalculated:output_type -> ops.v1.UpdateToCalculatedResponse
	37, // 46: ops.v1.InventoryService.CreateAdjustment:output_type -> ops.v1.CreateAdjustmentResponse
	39, // 47: ops.v1.ExportService.ExportLedger:output_type -> ops.v1.ExportLedgerResponse
	41, // 48: ops.v1.ExportService.ExportInventory:output_type -> ops.v1.ExportInventoryResponse
	44, // 49: ops.v1.ExportService.ImportWorkbook:output_type -> ops.v1.ImportWorkbookResponse
	30, // [30:50] is the sub-list for method output_type
	10, // [10:30] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_ops_v1_ops_proto_init() }
func file_ops_v1_ops_proto_init() {
	if File_ops_v1_ops_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ops_v1_ops_proto_rawDesc), len(file_ops_v1_ops_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   45,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_ops_v1_ops_proto_goTypes,
		DependencyIndexes: file_ops_v1_ops_proto_depIdxs,
		MessageInfos:      file_ops_v1_ops_proto_msgTypes,
	}.Build()
	File_ops_v1_ops_proto = out.File
	file_ops_v1_ops_proto_goTypes = nil
	file_ops_v1_ops_proto_depIdxs = nil
}
