// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extractly/v1/extractly.proto

package extractlypb

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

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	InboxAddress  string                 `protobuf:"bytes,4,opt,name=inbox_address,json=inboxAddress,proto3" json:"inbox_address,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{0}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Project) GetInboxAddress() string {
	if x != nil {
		return x.InboxAddress
	}
	return ""
}

func (x *Project) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SchemaField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	FieldType     string                 `protobuf:"bytes,4,opt,name=field_type,json=fieldType,proto3" json:"field_type,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Choices       []string               `protobuf:"bytes,6,rep,name=choices,proto3" json:"choices,omitempty"`
	Required      bool                   `protobuf:"varint,7,opt,name=required,proto3" json:"required,omitempty"`
	Position      int32                  `protobuf:"varint,8,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SchemaField) Reset() {
	*x = SchemaField{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchemaField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchemaField) ProtoMessage() {}

func (x *SchemaField) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SchemaField.ProtoReflect.Descriptor instead.
func (*SchemaField) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{1}
}

func (x *SchemaField) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SchemaField) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *SchemaField) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SchemaField) GetFieldType() string {
	if x != nil {
		return x.FieldType
	}
	return ""
}

func (x *SchemaField) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SchemaField) GetChoices() []string {
	if x != nil {
		return x.Choices
	}
	return nil
}

func (x *SchemaField) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *SchemaField) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type CollectionProperty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CollectionId  string                 `protobuf:"bytes,2,opt,name=collection_id,json=collectionId,proto3" json:"collection_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	PropertyType  string                 `protobuf:"bytes,4,opt,name=property_type,json=propertyType,proto3" json:"property_type,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Choices       []string               `protobuf:"bytes,6,rep,name=choices,proto3" json:"choices,omitempty"`
	Required      bool                   `protobuf:"varint,7,opt,name=required,proto3" json:"required,omitempty"`
	Position      int32                  `protobuf:"varint,8,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollectionProperty) Reset() {
	*x = CollectionProperty{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollectionProperty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollectionProperty) ProtoMessage() {}

func (x *CollectionProperty) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollectionProperty.ProtoReflect.Descriptor instead.
func (*CollectionProperty) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{2}
}

func (x *CollectionProperty) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CollectionProperty) GetCollectionId() string {
	if x != nil {
		return x.CollectionId
	}
	return ""
}

func (x *CollectionProperty) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CollectionProperty) GetPropertyType() string {
	if x != nil {
		return x.PropertyType
	}
	return ""
}

func (x *CollectionProperty) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CollectionProperty) GetChoices() []string {
	if x != nil {
		return x.Choices
	}
	return nil
}

func (x *CollectionProperty) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *CollectionProperty) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type Collection struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Properties    []*CollectionProperty  `protobuf:"bytes,5,rep,name=properties,proto3" json:"properties,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Collection) Reset() {
	*x = Collection{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Collection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Collection) ProtoMessage() {}

func (x *Collection) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Collection.ProtoReflect.Descriptor instead.
func (*Collection) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{3}
}

func (x *Collection) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Collection) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Collection) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Collection) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Collection) GetProperties() []*CollectionProperty {
	if x != nil {
		return x.Properties
	}
	return nil
}

type Session struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId       string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name            string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ProgressMessage string                 `protobuf:"bytes,5,opt,name=progress_message,json=progressMessage,proto3" json:"progress_message,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ModelName       string                 `protobuf:"bytes,7,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt       string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt      string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Session) Reset() {
	*x = Session{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Session) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Session) ProtoMessage() {}

func (x *Session) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Session.ProtoReflect.Descriptor instead.
func (*Session) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{4}
}

func (x *Session) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Session) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Session) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Session) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Session) GetProgressMessage() string {
	if x != nil {
		return x.ProgressMessage
	}
	return ""
}

func (x *Session) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Session) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *Session) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Session) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Session) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ValidationRecord struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId        string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	FieldId          string                 `protobuf:"bytes,3,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	CollectionId     string                 `protobuf:"bytes,4,opt,name=collection_id,json=collectionId,proto3" json:"collection_id,omitempty"`
	RecordIndex      int32                  `protobuf:"varint,5,opt,name=record_index,json=recordIndex,proto3" json:"record_index,omitempty"`
	FieldName        string                 `protobuf:"bytes,6,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	ExtractedValue   string                 `protobuf:"bytes,7,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	ValidationStatus string                 `protobuf:"bytes,8,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	ConfidenceScore  int32                  `protobuf:"varint,9,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	Reasoning        string                 `protobuf:"bytes,10,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ValidationRecord) Reset() {
	*x = ValidationRecord{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationRecord) ProtoMessage() {}

func (x *ValidationRecord) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationRecord.ProtoReflect.Descriptor instead.
func (*ValidationRecord) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{5}
}

func (x *ValidationRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ValidationRecord) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ValidationRecord) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *ValidationRecord) GetCollectionId() string {
	if x != nil {
		return x.CollectionId
	}
	return ""
}

func (x *ValidationRecord) GetRecordIndex() int32 {
	if x != nil {
		return x.RecordIndex
	}
	return 0
}

func (x *ValidationRecord) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *ValidationRecord) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

func (x *ValidationRecord) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *ValidationRecord) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *ValidationRecord) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

type CreateProjectRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Name        string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	// when set, an email inbox is provisioned and bound to the project
	CreateInbox   bool `protobuf:"varint,3,opt,name=create_inbox,json=createInbox,proto3" json:"create_inbox,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectRequest) Reset() {
	*x = CreateProjectRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectRequest) ProtoMessage() {}

func (x *CreateProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectRequest.ProtoReflect.Descriptor instead.
func (*CreateProjectRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{6}
}

func (x *CreateProjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProjectRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateProjectRequest) GetCreateInbox() bool {
	if x != nil {
		return x.CreateInbox
	}
	return false
}

type CreateProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectResponse) Reset() {
	*x = CreateProjectResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectResponse) ProtoMessage() {}

func (x *CreateProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectResponse.ProtoReflect.Descriptor instead.
func (*CreateProjectResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{7}
}

func (x *CreateProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type GetProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectRequest) Reset() {
	*x = GetProjectRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectRequest) ProtoMessage() {}

func (x *GetProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectRequest.ProtoReflect.Descriptor instead.
func (*GetProjectRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{8}
}

func (x *GetProjectRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type GetProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectResponse) Reset() {
	*x = GetProjectResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectResponse) ProtoMessage() {}

func (x *GetProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectResponse.ProtoReflect.Descriptor instead.
func (*GetProjectResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{9}
}

func (x *GetProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type ListProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{10}
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{11}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type AddFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	FieldType     string                 `protobuf:"bytes,3,opt,name=field_type,json=fieldType,proto3" json:"field_type,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Choices       []string               `protobuf:"bytes,5,rep,name=choices,proto3" json:"choices,omitempty"`
	Required      bool                   `protobuf:"varint,6,opt,name=required,proto3" json:"required,omitempty"`
	Position      int32                  `protobuf:"varint,7,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddFieldRequest) Reset() {
	*x = AddFieldRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddFieldRequest) ProtoMessage() {}

func (x *AddFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddFieldRequest.ProtoReflect.Descriptor instead.
func (*AddFieldRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{12}
}

func (x *AddFieldRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AddFieldRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddFieldRequest) GetFieldType() string {
	if x != nil {
		return x.FieldType
	}
	return ""
}

func (x *AddFieldRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AddFieldRequest) GetChoices() []string {
	if x != nil {
		return x.Choices
	}
	return nil
}

func (x *AddFieldRequest) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *AddFieldRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type AddFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *SchemaField           `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddFieldResponse) Reset() {
	*x = AddFieldResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddFieldResponse) ProtoMessage() {}

func (x *AddFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddFieldResponse.ProtoReflect.Descriptor instead.
func (*AddFieldResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{13}
}

func (x *AddFieldResponse) GetField() *SchemaField {
	if x != nil {
		return x.Field
	}
	return nil
}

type AddCollectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCollectionRequest) Reset() {
	*x = AddCollectionRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCollectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCollectionRequest) ProtoMessage() {}

func (x *AddCollectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCollectionRequest.ProtoReflect.Descriptor instead.
func (*AddCollectionRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{14}
}

func (x *AddCollectionRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AddCollectionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddCollectionRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type AddCollectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collection    *Collection            `protobuf:"bytes,1,opt,name=collection,proto3" json:"collection,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCollectionResponse) Reset() {
	*x = AddCollectionResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCollectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCollectionResponse) ProtoMessage() {}

func (x *AddCollectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCollectionResponse.ProtoReflect.Descriptor instead.
func (*AddCollectionResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{15}
}

func (x *AddCollectionResponse) GetCollection() *Collection {
	if x != nil {
		return x.Collection
	}
	return nil
}

type AddCollectionPropertyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CollectionId  string                 `protobuf:"bytes,1,opt,name=collection_id,json=collectionId,proto3" json:"collection_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	PropertyType  string                 `protobuf:"bytes,3,opt,name=property_type,json=propertyType,proto3" json:"property_type,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Choices       []string               `protobuf:"bytes,5,rep,name=choices,proto3" json:"choices,omitempty"`
	Required      bool                   `protobuf:"varint,6,opt,name=required,proto3" json:"required,omitempty"`
	Position      int32                  `protobuf:"varint,7,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCollectionPropertyRequest) Reset() {
	*x = AddCollectionPropertyRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCollectionPropertyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCollectionPropertyRequest) ProtoMessage() {}

func (x *AddCollectionPropertyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCollectionPropertyRequest.ProtoReflect.Descriptor instead.
func (*AddCollectionPropertyRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{16}
}

func (x *AddCollectionPropertyRequest) GetCollectionId() string {
	if x != nil {
		return x.CollectionId
	}
	return ""
}

func (x *AddCollectionPropertyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddCollectionPropertyRequest) GetPropertyType() string {
	if x != nil {
		return x.PropertyType
	}
	return ""
}

func (x *AddCollectionPropertyRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AddCollectionPropertyRequest) GetChoices() []string {
	if x != nil {
		return x.Choices
	}
	return nil
}

func (x *AddCollectionPropertyRequest) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *AddCollectionPropertyRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type AddCollectionPropertyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Property      *CollectionProperty    `protobuf:"bytes,1,opt,name=property,proto3" json:"property,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCollectionPropertyResponse) Reset() {
	*x = AddCollectionPropertyResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCollectionPropertyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCollectionPropertyResponse) ProtoMessage() {}

func (x *AddCollectionPropertyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCollectionPropertyResponse.ProtoReflect.Descriptor instead.
func (*AddCollectionPropertyResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{17}
}

func (x *AddCollectionPropertyResponse) GetProperty() *CollectionProperty {
	if x != nil {
		return x.Property
	}
	return nil
}

type GetProjectSchemaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectSchemaRequest) Reset() {
	*x = GetProjectSchemaRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectSchemaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectSchemaRequest) ProtoMessage() {}

func (x *GetProjectSchemaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectSchemaRequest.ProtoReflect.Descriptor instead.
func (*GetProjectSchemaRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{18}
}

func (x *GetProjectSchemaRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type GetProjectSchemaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*SchemaField         `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	Collections   []*Collection          `protobuf:"bytes,2,rep,name=collections,proto3" json:"collections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectSchemaResponse) Reset() {
	*x = GetProjectSchemaResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectSchemaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectSchemaResponse) ProtoMessage() {}

func (x *GetProjectSchemaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectSchemaResponse.ProtoReflect.Descriptor instead.
func (*GetProjectSchemaResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{19}
}

func (x *GetProjectSchemaResponse) GetFields() []*SchemaField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *GetProjectSchemaResponse) GetCollections() []*Collection {
	if x != nil {
		return x.Collections
	}
	return nil
}

type AddExtractionRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	RuleName      string                 `protobuf:"bytes,2,opt,name=rule_name,json=ruleName,proto3" json:"rule_name,omitempty"`
	TargetField   string                 `protobuf:"bytes,3,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	RuleContent   string                 `protobuf:"bytes,4,opt,name=rule_content,json=ruleContent,proto3" json:"rule_content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExtractionRuleRequest) Reset() {
	*x = AddExtractionRuleRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExtractionRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExtractionRuleRequest) ProtoMessage() {}

func (x *AddExtractionRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExtractionRuleRequest.ProtoReflect.Descriptor instead.
func (*AddExtractionRuleRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{20}
}

func (x *AddExtractionRuleRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AddExtractionRuleRequest) GetRuleName() string {
	if x != nil {
		return x.RuleName
	}
	return ""
}

func (x *AddExtractionRuleRequest) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *AddExtractionRuleRequest) GetRuleContent() string {
	if x != nil {
		return x.RuleContent
	}
	return ""
}

type AddExtractionRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RuleId        string                 `protobuf:"bytes,1,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExtractionRuleResponse) Reset() {
	*x = AddExtractionRuleResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExtractionRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExtractionRuleResponse) ProtoMessage() {}

func (x *AddExtractionRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExtractionRuleResponse.ProtoReflect.Descriptor instead.
func (*AddExtractionRuleResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{21}
}

func (x *AddExtractionRuleResponse) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

type AddKnowledgeDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	TargetField   string                 `protobuf:"bytes,4,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddKnowledgeDocumentRequest) Reset() {
	*x = AddKnowledgeDocumentRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddKnowledgeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddKnowledgeDocumentRequest) ProtoMessage() {}

func (x *AddKnowledgeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddKnowledgeDocumentRequest.ProtoReflect.Descriptor instead.
func (*AddKnowledgeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{22}
}

func (x *AddKnowledgeDocumentRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AddKnowledgeDocumentRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *AddKnowledgeDocumentRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *AddKnowledgeDocumentRequest) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

type AddKnowledgeDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	KnowledgeId   string                 `protobuf:"bytes,1,opt,name=knowledge_id,json=knowledgeId,proto3" json:"knowledge_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddKnowledgeDocumentResponse) Reset() {
	*x = AddKnowledgeDocumentResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddKnowledgeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddKnowledgeDocumentResponse) ProtoMessage() {}

func (x *AddKnowledgeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddKnowledgeDocumentResponse.ProtoReflect.Descriptor instead.
func (*AddKnowledgeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{23}
}

func (x *AddKnowledgeDocumentResponse) GetKnowledgeId() string {
	if x != nil {
		return x.KnowledgeId
	}
	return ""
}

type CreateSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{24}
}

func (x *CreateSessionRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CreateSessionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{25}
}

func (x *CreateSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type GetSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionRequest) Reset() {
	*x = GetSessionRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionRequest) ProtoMessage() {}

func (x *GetSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionRequest.ProtoReflect.Descriptor instead.
func (*GetSessionRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{26}
}

func (x *GetSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionResponse) Reset() {
	*x = GetSessionResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionResponse) ProtoMessage() {}

func (x *GetSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionResponse.ProtoReflect.Descriptor instead.
func (*GetSessionResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{27}
}

func (x *GetSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type ListSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsRequest) Reset() {
	*x = ListSessionsRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsRequest) ProtoMessage() {}

func (x *ListSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsRequest.ProtoReflect.Descriptor instead.
func (*ListSessionsRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{28}
}

func (x *ListSessionsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*Session             `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsResponse) Reset() {
	*x = ListSessionsResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsResponse) ProtoMessage() {}

func (x *ListSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsResponse.ProtoReflect.Descriptor instead.
func (*ListSessionsResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{29}
}

func (x *ListSessionsResponse) GetSessions() []*Session {
	if x != nil {
		return x.Sessions
	}
	return nil
}

type GetSessionStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionStatusRequest) Reset() {
	*x = GetSessionStatusRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionStatusRequest) ProtoMessage() {}

func (x *GetSessionStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionStatusRequest.ProtoReflect.Descriptor instead.
func (*GetSessionStatusRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{30}
}

func (x *GetSessionStatusRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetSessionStatusResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	SessionId       string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Status          string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ProgressMessage string                 `protobuf:"bytes,3,opt,name=progress_message,json=progressMessage,proto3" json:"progress_message,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetSessionStatusResponse) Reset() {
	*x = GetSessionStatusResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionStatusResponse) ProtoMessage() {}

func (x *GetSessionStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionStatusResponse.ProtoReflect.Descriptor instead.
func (*GetSessionStatusResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{31}
}

func (x *GetSessionStatusResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *GetSessionStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetSessionStatusResponse) GetProgressMessage() string {
	if x != nil {
		return x.ProgressMessage
	}
	return ""
}

func (x *GetSessionStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetSessionStatusResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type StartExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartExtractionRequest) Reset() {
	*x = StartExtractionRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartExtractionRequest) ProtoMessage() {}

func (x *StartExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartExtractionRequest.ProtoReflect.Descriptor instead.
func (*StartExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{32}
}

func (x *StartExtractionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type StartExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartExtractionResponse) Reset() {
	*x = StartExtractionResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartExtractionResponse) ProtoMessage() {}

func (x *StartExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartExtractionResponse.ProtoReflect.Descriptor instead.
func (*StartExtractionResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{33}
}

func (x *StartExtractionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *StartExtractionResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsRequest) Reset() {
	*x = ListRecordsRequest{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsRequest) ProtoMessage() {}

func (x *ListRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListRecordsRequest) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{34}
}

func (x *ListRecordsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ValidationRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsResponse) Reset() {
	*x = ListRecordsResponse{}
	mi := &file_extractly_v1_extractly_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsResponse) ProtoMessage() {}

func (x *ListRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractly_v1_extractly_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListRecordsResponse) Descriptor() ([]byte, []int) {
	return file_extractly_v1_extractly_proto_rawDescGZIP(), []int{35}
}

func (x *ListRecordsResponse) GetRecords() []*ValidationRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_extractly_v1_extractly_proto protoreflect.FileDescriptor

const file_extractly_v1_extractly_proto_rawDesc = "" +
	"\n" +
	"\x1cextractly/v1/extractly.proto\x12\fextractly.v1\"\x93\x01\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12#\n" +
	"\rinbox_address\x18\x04 \x01(\tR\finboxAddress\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"\xe3\x01\n" +
	"\vSchemaField\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"field_type\x18\x04 \x01(\tR\tfieldType\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x18\n" +
	"\achoices\x18\x06 \x03(\tR\achoices\x12\x1a\n" +
	"\brequired\x18\a \x01(\bR\brequired\x12\x1a\n" +
	"\bposition\x18\b \x01(\x05R\bposition\"\xf6\x01\n" +
	"\x12CollectionProperty\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rcollection_id\x18\x02 \x01(\tR\fcollectionId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12#\n" +
	"\rproperty_type\x18\x04 \x01(\tR\fpropertyType\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x18\n" +
	"\achoices\x18\x06 \x03(\tR\achoices\x12\x1a\n" +
	"\brequired\x18\a \x01(\bR\brequired\x12\x1a\n" +
	"\bposition\x18\b \x01(\x05R\bposition\"\xb3\x01\n" +
	"\n" +
	"Collection\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12@\n" +
	"\n" +
	"properties\x18\x05 \x03(\v2 .extractly.v1.CollectionPropertyR\n" +
	"properties\"\xb2\x02\n" +
	"\aSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12)\n" +
	"\x10progress_message\x18\x05 \x01(\tR\x0fprogressMessage\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"model_name\x18\a \x01(\tR\tmodelName\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"\xe2\x02\n" +
	"\x10ValidationRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x19\n" +
	"\bfield_id\x18\x03 \x01(\tR\afieldId\x12#\n" +
	"\rcollection_id\x18\x04 \x01(\tR\fcollectionId\x12!\n" +
	"\frecord_index\x18\x05 \x01(\x05R\vrecordIndex\x12\x1d\n" +
	"\n" +
	"field_name\x18\x06 \x01(\tR\tfieldName\x12'\n" +
	"\x0fextracted_value\x18\a \x01(\tR\x0eextractedValue\x12+\n" +
	"\x11validation_status\x18\b \x01(\tR\x10validationStatus\x12)\n" +
	"\x10confidence_score\x18\t \x01(\x05R\x0fconfidenceScore\x12\x1c\n" +
	"\treasoning\x18\n" +
	" \x01(\tR\treasoning\"o\n" +
	"\x14CreateProjectRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12!\n" +
	"\fcreate_inbox\x18\x03 \x01(\bR\vcreateInbox\"H\n" +
	"\x15CreateProjectResponse\x12/\n" +
	"\aproject\x18\x01 \x01(\v2\x15.extractly.v1.ProjectR\aproject\"2\n" +
	"\x11GetProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"E\n" +
	"\x12GetProjectResponse\x12/\n" +
	"\aproject\x18\x01 \x01(\v2\x15.extractly.v1.ProjectR\aproject\"\x15\n" +
	"\x13ListProjectsRequest\"I\n" +
	"\x14ListProjectsResponse\x121\n" +
	"\bprojects\x18\x01 \x03(\v2\x15.extractly.v1.ProjectR\bprojects\"\xd7\x01\n" +
	"\x0fAddFieldRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"field_type\x18\x03 \x01(\tR\tfieldType\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x18\n" +
	"\achoices\x18\x05 \x03(\tR\achoices\x12\x1a\n" +
	"\brequired\x18\x06 \x01(\bR\brequired\x12\x1a\n" +
	"\bposition\x18\a \x01(\x05R\bposition\"C\n" +
	"\x10AddFieldResponse\x12/\n" +
	"\x05field\x18\x01 \x01(\v2\x19.extractly.v1.SchemaFieldR\x05field\"k\n" +
	"\x14AddCollectionRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"Q\n" +
	"\x15AddCollectionResponse\x128\n" +
	"\n" +
	"collection\x18\x01 \x01(\v2\x18.extractly.v1.CollectionR\n" +
	"collection\"\xf0\x01\n" +
	"\x1cAddCollectionPropertyRequest\x12#\n" +
	"\rcollection_id\x18\x01 \x01(\tR\fcollectionId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rproperty_type\x18\x03 \x01(\tR\fpropertyType\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x18\n" +
	"\achoices\x18\x05 \x03(\tR\achoices\x12\x1a\n" +
	"\brequired\x18\x06 \x01(\bR\brequired\x12\x1a\n" +
	"\bposition\x18\a \x01(\x05R\bposition\"]\n" +
	"\x1dAddCollectionPropertyResponse\x12<\n" +
	"\bproperty\x18\x01 \x01(\v2 .extractly.v1.CollectionPropertyR\bproperty\"8\n" +
	"\x17GetProjectSchemaRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"\x89\x01\n" +
	"\x18GetProjectSchemaResponse\x121\n" +
	"\x06fields\x18\x01 \x03(\v2\x19.extractly.v1.SchemaFieldR\x06fields\x12:\n" +
	"\vcollections\x18\x02 \x03(\v2\x18.extractly.v1.CollectionR\vcollections\"\x9c\x01\n" +
	"\x18AddExtractionRuleRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1b\n" +
	"\trule_name\x18\x02 \x01(\tR\bruleName\x12!\n" +
	"\ftarget_field\x18\x03 \x01(\tR\vtargetField\x12!\n" +
	"\frule_content\x18\x04 \x01(\tR\vruleContent\"4\n" +
	"\x19AddExtractionRuleResponse\x12\x17\n" +
	"\arule_id\x18\x01 \x01(\tR\x06ruleId\"\x9c\x01\n" +
	"\x1bAddKnowledgeDocumentRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x12!\n" +
	"\ftarget_field\x18\x04 \x01(\tR\vtargetField\"A\n" +
	"\x1cAddKnowledgeDocumentResponse\x12!\n" +
	"\fknowledge_id\x18\x01 \x01(\tR\vknowledgeId\"I\n" +
	"\x14CreateSessionRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"H\n" +
	"\x15CreateSessionResponse\x12/\n" +
	"\asession\x18\x01 \x01(\v2\x15.extractly.v1.SessionR\asession\"2\n" +
	"\x11GetSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"E\n" +
	"\x12GetSessionResponse\x12/\n" +
	"\asession\x18\x01 \x01(\v2\x15.extractly.v1.SessionR\asession\"4\n" +
	"\x13ListSessionsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"I\n" +
	"\x14ListSessionsResponse\x121\n" +
	"\bsessions\x18\x01 \x03(\v2\x15.extractly.v1.SessionR\bsessions\"8\n" +
	"\x17GetSessionStatusRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\xc0\x01\n" +
	"\x18GetSessionStatusResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12)\n" +
	"\x10progress_message\x18\x03 \x01(\tR\x0fprogressMessage\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"7\n" +
	"\x16StartExtractionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"P\n" +
	"\x17StartExtractionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"3\n" +
	"\x12ListRecordsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"O\n" +
	"\x13ListRecordsResponse\x128\n" +
	"\arecords\x18\x01 \x03(\v2\x1e.extractly.v1.ValidationRecordR\arecords2\xe2\x06\n" +
	"\x0fProjectsService\x12X\n" +
	"\rCreateProject\x12\".extractly.v1.CreateProjectRequest\x1a#.extractly.v1.CreateProjectResponse\x12O\n" +
	"\n" +
	"GetProject\x12\x1f.extractly.v1.GetProjectRequest\x1a .extractly.v1.GetProjectResponse\x12U\n" +
	"\fListProjects\x12!.extractly.v1.ListProjectsRequest\x1a\".extractly.v1.ListProjectsResponse\x12I\n" +
	"\bAddField\x12\x1d.extractly.v1.AddFieldRequest\x1a\x1e.extractly.v1.AddFieldResponse\x12X\n" +
	"\rAddCollection\x12\".extractly.v1.AddCollectionRequest\x1a#.extractly.v1.AddCollectionResponse\x12p\n" +
	"\x15AddCollectionProperty\x12*.extractly.v1.AddCollectionPropertyRequest\x1a+.extractly.v1.AddCollectionPropertyResponse\x12a\n" +
	"\x10GetProjectSchema\x12%.extractly.v1.GetProjectSchemaRequest\x1a&.extractly.v1.GetProjectSchemaResponse\x12d\n" +
	"\x11AddExtractionRule\x12&.extractly.v1.AddExtractionRuleRequest\x1a'.extractly.v1.AddExtractionRuleResponse\x12m\n" +
	"\x14AddKnowledgeDocument\x12).extractly.v1.AddKnowledgeDocumentRequest\x1a*.extractly.v1.AddKnowledgeDocumentResponse2\xaa\x04\n" +
	"\x0fSessionsService\x12X\n" +
	"\rCreateSession\x12\".extractly.v1.CreateSessionRequest\x1a#.extractly.v1.CreateSessionResponse\x12O\n" +
	"\n" +
	"GetSession\x12\x1f.extractly.v1.GetSessionRequest\x1a .extractly.v1.GetSessionResponse\x12U\n" +
	"\fListSessions\x12!.extractly.v1.ListSessionsRequest\x1a\".extractly.v1.ListSessionsResponse\x12a\n" +
	"\x10GetSessionStatus\x12%.extractly.v1.GetSessionStatusRequest\x1a&.extractly.v1.GetSessionStatusResponse\x12^\n" +
	"\x0fStartExtraction\x12$.extractly.v1.StartExtractionRequest\x1a%.extractly.v1.StartExtractionResponse\x12R\n" +
	"\vListRecords\x12 .extractly.v1.ListRecordsRequest\x1a!.extractly.v1.ListRecordsResponseBFZDgithub.com/extractly-io/extractly/gen/proto/extractly/v1;extractlypbb\x06proto3"

var (
	file_extractly_v1_extractly_proto_rawDescOnce sync.Once
	file_extractly_v1_extractly_proto_rawDescData []byte
)

func file_extractly_v1_extractly_proto_rawDescGZIP() []byte {
	file_extractly_v1_extractly_proto_rawDescOnce.Do(func() {
		file_extractly_v1_extractly_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extractly_v1_extractly_proto_rawDesc), len(file_extractly_v1_extractly_proto_rawDesc)))
	})
	return file_extractly_v1_extractly_proto_rawDescData
}

var file_extractly_v1_extractly_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_extractly_v1_extractly_proto_goTypes = []any{
	(*Project)(nil),                       // 0: extractly.v1.Project
	(*SchemaField)(nil),                   // 1: extractly.v1.SchemaField
	(*CollectionProperty)(nil),            // 2: extractly.v1.CollectionProperty
	(*Collection)(nil),                    // 3: extractly.v1.Collection
	(*Session)(nil),                       // 4: extractly.v1.Session
	(*ValidationRecord)(nil),              // 5: extractly.v1.ValidationRecord
	(*CreateProjectRequest)(nil),          // 6: extractly.v1.CreateProjectRequest
	(*CreateProjectResponse)(nil),         // 7: extractly.v1.CreateProjectResponse
	(*GetProjectRequest)(nil),             // 8: extractly.v1.GetProjectRequest
	(*GetProjectResponse)(nil),            // 9: extractly.v1.GetProjectResponse
	(*ListProjectsRequest)(nil),           // 10: extractly.v1.ListProjectsRequest
	(*ListProjectsResponse)(nil),          // 11: extractly.v1.ListProjectsResponse
	(*AddFieldRequest)(nil),               // 12: extractly.v1.AddFieldRequest
	(*AddFieldResponse)(nil),              // 13: extractly.v1.AddFieldResponse
	(*AddCollectionRequest)(nil),          // 14: extractly.v1.AddCollectionRequest
	(*AddCollectionResponse)(nil),         // 15: extractly.v1.AddCollectionResponse
	(*AddCollectionPropertyRequest)(nil),  // 16: extractly.v1.AddCollectionPropertyRequest
	(*AddCollectionPropertyResponse)(nil), // 17: extractly.v1.AddCollectionPropertyResponse
	(*GetProjectSchemaRequest)(nil),       // 18: extractly.v1.GetProjectSchemaRequest
	(*GetProjectSchemaResponse)(nil),      // 19: extractly.v1.GetProjectSchemaResponse
	(*AddExtractionRuleRequest)(nil),      // 20: extractly.v1.AddExtractionRuleRequest
	(*AddExtractionRuleResponse)(nil),     // 21: extractly.v1.AddExtractionRuleResponse
	(*AddKnowledgeDocumentRequest)(nil),   // 22: extractly.v1.AddKnowledgeDocumentRequest
	(*AddKnowledgeDocumentResponse)(nil),  // 23: extractly.v1.AddKnowledgeDocumentResponse
	(*CreateSessionRequest)(nil),          // 24: extractly.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil),         // 25: extractly.v1.CreateSessionResponse
	(*GetSessionRequest)(nil),             // 26: extractly.v1.GetSessionRequest
	(*GetSessionResponse)(nil),            // 27: extractly.v1.GetSessionResponse
	(*ListSessionsRequest)(nil),           // 28: extractly.v1.ListSessionsRequest
	(*ListSessionsResponse)(nil),          // 29: extractly.v1.ListSessionsResponse
	(*GetSessionStatusRequest)(nil),       // 30: extractly.v1.GetSessionStatusRequest
	(*GetSessionStatusResponse)(nil),      // 31: extractly.v1.GetSessionStatusResponse
	(*StartExtractionRequest)(nil),        // 32: extractly.v1.StartExtractionRequest
	(*StartExtractionResponse)(nil),       // 33: extractly.v1.StartExtractionResponse
	(*ListRecordsRequest)(nil),            // 34: extractly.v1.ListRecordsRequest
	(*ListRecordsResponse)(nil),           // 35: extractly.v1.ListRecordsResponse
}
var file_extractly_v1_extractly_proto_depIdxs = []int32{
	2,  // 0: extractly.v1.Collection.properties:type_name -> extractly.v1.CollectionProperty
	0,  // 1: extractly.v1.CreateProjectResponse.project:type_name -> extractly.v1.Project
	0,  // 2: extractly.v1.GetProjectResponse.project:type_name -> extractly.v1.Project
	0,  // 3: extractly.v1.ListProjectsResponse.projects:type_name -> extractly.v1.Project
	1,  // 4: extractly.v1.AddFieldResponse.field:type_name -> extractly.v1.SchemaField
	3,  // 5: extractly.v1.AddCollectionResponse.collection:type_name -> extractly.v1.Collection
	2,  // 6: extractly.v1.AddCollectionPropertyResponse.property:type_name -> extractly.v1.CollectionProperty
	1,  // 7: extractly.v1.GetProjectSchemaResponse.fields:type_name -> extractly.v1.SchemaField
	3,  // 8: extractly.v1.GetProjectSchemaResponse.collections:type_name -> extractly.v1.Collection
	4,  // 9: extractly.v1.CreateSessionResponse.session:type_name -> extractly.v1.Session
	4,  // 10: extractly.v1.GetSessionResponse.session:type_name -> extractly.v1.Session
	4,  // 11: extractly.v1.ListSessionsResponse.sessions:type_name -> extractly.v1.Session
	5,  // 12: extractly.v1.ListRecordsResponse.records:type_name -> extractly.v1.ValidationRecord
	6,  // 13: extractly.v1.ProjectsService.CreateProject:input_type -> extractly.v1.CreateProjectRequest
	8,  // 14: extractly.v1.ProjectsService.GetProject:input_type -> extractly.v1.GetProjectRequest
	10, // 15: extractly.v1.ProjectsService.ListProjects:input_type -> extractly.v1.ListProjectsRequest
	12, // 16: extractly.v1.ProjectsService.AddField:input_type -> extractly.v1.AddFieldRequest
	14, // 17: extractly.v1.ProjectsService.AddCollection:input_type -> extractly.v1.AddCollectionRequest
	16, // 18: extractly.v1.ProjectsService.AddCollectionProperty:input_type -> extractly.v1.AddCollectionPropertyRequest
	18, // 19: extractly.v1.ProjectsService.GetProjectSchema:input_type -> extractly.v1.GetProjectSchemaRequest
	20, // 20: extractly.v1.ProjectsService.AddExtractionRule:input_type -> extractly.v1.AddExtractionRuleRequest
	22, // 21: extractly.v1.ProjectsService.AddKnowledgeDocument:input_type -> extractly.v1.AddKnowledgeDocumentRequest
	24, // 22: extractly.v1.SessionsService.CreateSession:input_type -> extractly.v1.CreateSessionRequest
	26, // 23: extractly.v1.SessionsService.GetSession:input_type -> extractly.v1.GetSessionRequest
	28, // 24: extractly.v1.SessionsService.ListSessions:input_type -> extractly.v1.ListSessionsRequest
	30, // 25: extractly.v1.SessionsService.GetSessionStatus:input_type -> extractly.v1.GetSessionStatusRequest
	32, // 26: extractly.v1.SessionsService.StartExtraction:input_type -> extractly.v1.StartExtractionRequest
	34, // 27: extractly.v1.SessionsService.ListRecords:input_type -> extractly.v1.ListRecordsRequest
	7,  // 28: extractly.v1.ProjectsService.CreateProject:output_type -> extractly.v1.CreateProjectResponse
	9,  // 29: extractly.v1.ProjectsService.GetProject:output_type -> extractly.v1.GetProjectResponse
	11, // 30: extractly.v1.ProjectsService.ListProjects:output_type -> extractly.v1.ListProjectsResponse
	13, // 31: extractly.v1.ProjectsService.AddField:output_type -> extractly.v1.AddFieldResponse
	15, // 32: extractly.v1.ProjectsService.AddCollection:output_type -> extractly.v1.AddCollectionResponse
	17, // 33: extractly.v1.ProjectsService.AddCollectionProperty:output_type -> extractly.v1.AddCollectionPropertyResponse
	19, // 34: extractly.v1.ProjectsService.GetProjectSchema:output_type -> extractly.v1.GetProjectSchemaResponse
	21, // 35: extractly.v1.ProjectsService.AddExtractionRule:output_type -> extractly.v1.AddExtractionRuleResponse
	23, // 36: extractly.v1.ProjectsService.AddKnowledgeDocument:output_type -> extractly.v1.AddKnowledgeDocumentResponse
	25, // 37: extractly.v1.SessionsService.CreateSession:output_type -> extractly.v1.CreateSessionResponse
	27, // 38: extractly.v1.SessionsService.GetSession:output_type -> extractly.v1.GetSessionResponse
	29, // 39: extractly.v1.SessionsService.ListSessions:output_type -> extractly.v1.ListSessionsResponse
	31, // 40: extractly.v1.SessionsService.GetSessionStatus:output_type -> extractly.v1.GetSessionStatusResponse
	33, // 41: extractly.v1.SessionsService.StartExtraction:output_type -> extractly.v1.StartExtractionResponse
	35, // 42: extractly.v1.SessionsService.ListRecords:output_type -> extractly.v1.ListRecordsResponse
	28, // [28:43] is the sub-list for method output_type
	13, // [13:28] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_extractly_v1_extractly_proto_init() }
func file_extractly_v1_extractly_proto_init() {
	if File_extractly_v1_extractly_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extractly_v1_extractly_proto_rawDesc), len(file_extractly_v1_extractly_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_extractly_v1_extractly_proto_goTypes,
		DependencyIndexes: file_extractly_v1_extractly_proto_depIdxs,
		MessageInfos:      file_extractly_v1_extractly_proto_msgTypes,
	}.Build()
	File_extractly_v1_extractly_proto = out.File
	file_extractly_v1_extractly_proto_goTypes = nil
	file_extractly_v1_extractly_proto_depIdxs = nil
}
