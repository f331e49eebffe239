// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/extractly-io/extractly/db/ent/schema"
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/schemafield"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	collectionFields := schema.Collection{}.Fields()
	_ = collectionFields
	// collectionDescName is the schema descriptor for name field.
	collectionDescName := collectionFields[2].Descriptor()
	// collection.NameValidator is a validator for the "name" field. It is called by the builders before save.
	collection.NameValidator = collectionDescName.Validators[0].(func(string) error)
	// collectionDescCreatedAt is the schema descriptor for created_at field.
	collectionDescCreatedAt := collectionFields[4].Descriptor()
	// collection.DefaultCreatedAt holds the default value on creation for the created_at field.
	collection.DefaultCreatedAt = collectionDescCreatedAt.Default.(func() time.Time)
	// collectionDescID is the schema descriptor for id field.
	collectionDescID := collectionFields[0].Descriptor()
	// collection.DefaultID holds the default value on creation for the id field.
	collection.DefaultID = collectionDescID.Default.(func() uuid.UUID)
	collectionpropertyFields := schema.CollectionProperty{}.Fields()
	_ = collectionpropertyFields
	// collectionpropertyDescName is the schema descriptor for name field.
	collectionpropertyDescName := collectionpropertyFields[2].Descriptor()
	// collectionproperty.NameValidator is a validator for the "name" field. It is called by the builders before save.
	collectionproperty.NameValidator = collectionpropertyDescName.Validators[0].(func(string) error)
	// collectionpropertyDescPropertyType is the schema descriptor for property_type field.
	collectionpropertyDescPropertyType := collectionpropertyFields[3].Descriptor()
	// collectionproperty.PropertyTypeValidator is a validator for the "property_type" field. It is called by the builders before save.
	collectionproperty.PropertyTypeValidator = func() func(string) error {
		validators := collectionpropertyDescPropertyType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_type string) error {
			for _, fn := range fns {
				if err := fn(property_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// collectionpropertyDescRequired is the schema descriptor for required field.
	collectionpropertyDescRequired := collectionpropertyFields[6].Descriptor()
	// collectionproperty.DefaultRequired holds the default value on creation for the required field.
	collectionproperty.DefaultRequired = collectionpropertyDescRequired.Default.(bool)
	// collectionpropertyDescPosition is the schema descriptor for position field.
	collectionpropertyDescPosition := collectionpropertyFields[7].Descriptor()
	// collectionproperty.DefaultPosition holds the default value on creation for the position field.
	collectionproperty.DefaultPosition = collectionpropertyDescPosition.Default.(int)
	// collectionproperty.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	collectionproperty.PositionValidator = collectionpropertyDescPosition.Validators[0].(func(int) error)
	// collectionpropertyDescID is the schema descriptor for id field.
	collectionpropertyDescID := collectionpropertyFields[0].Descriptor()
	// collectionproperty.DefaultID holds the default value on creation for the id field.
	collectionproperty.DefaultID = collectionpropertyDescID.Default.(func() uuid.UUID)
	extractionruleFields := schema.ExtractionRule{}.Fields()
	_ = extractionruleFields
	// extractionruleDescRuleName is the schema descriptor for rule_name field.
	extractionruleDescRuleName := extractionruleFields[2].Descriptor()
	// extractionrule.RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	extractionrule.RuleNameValidator = extractionruleDescRuleName.Validators[0].(func(string) error)
	// extractionruleDescRuleContent is the schema descriptor for rule_content field.
	extractionruleDescRuleContent := extractionruleFields[4].Descriptor()
	// extractionrule.RuleContentValidator is a validator for the "rule_content" field. It is called by the builders before save.
	extractionrule.RuleContentValidator = extractionruleDescRuleContent.Validators[0].(func(string) error)
	// extractionruleDescIsActive is the schema descriptor for is_active field.
	extractionruleDescIsActive := extractionruleFields[5].Descriptor()
	// extractionrule.DefaultIsActive holds the default value on creation for the is_active field.
	extractionrule.DefaultIsActive = extractionruleDescIsActive.Default.(bool)
	// extractionruleDescCreatedAt is the schema descriptor for created_at field.
	extractionruleDescCreatedAt := extractionruleFields[6].Descriptor()
	// extractionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrule.DefaultCreatedAt = extractionruleDescCreatedAt.Default.(func() time.Time)
	// extractionruleDescID is the schema descriptor for id field.
	extractionruleDescID := extractionruleFields[0].Descriptor()
	// extractionrule.DefaultID holds the default value on creation for the id field.
	extractionrule.DefaultID = extractionruleDescID.Default.(func() uuid.UUID)
	extractionsessionFields := schema.ExtractionSession{}.Fields()
	_ = extractionsessionFields
	// extractionsessionDescStatus is the schema descriptor for status field.
	extractionsessionDescStatus := extractionsessionFields[3].Descriptor()
	// extractionsession.DefaultStatus holds the default value on creation for the status field.
	extractionsession.DefaultStatus = extractionsessionDescStatus.Default.(string)
	// extractionsession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionsession.StatusValidator = func() func(string) error {
		validators := extractionsessionDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionsessionDescCreatedAt is the schema descriptor for created_at field.
	extractionsessionDescCreatedAt := extractionsessionFields[9].Descriptor()
	// extractionsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionsession.DefaultCreatedAt = extractionsessionDescCreatedAt.Default.(func() time.Time)
	// extractionsessionDescUpdatedAt is the schema descriptor for updated_at field.
	extractionsessionDescUpdatedAt := extractionsessionFields[10].Descriptor()
	// extractionsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionsession.DefaultUpdatedAt = extractionsessionDescUpdatedAt.Default.(func() time.Time)
	// extractionsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionsession.UpdateDefaultUpdatedAt = extractionsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionsessionDescID is the schema descriptor for id field.
	extractionsessionDescID := extractionsessionFields[0].Descriptor()
	// extractionsession.DefaultID holds the default value on creation for the id field.
	extractionsession.DefaultID = extractionsessionDescID.Default.(func() uuid.UUID)
	knowledgedocumentFields := schema.KnowledgeDocument{}.Fields()
	_ = knowledgedocumentFields
	// knowledgedocumentDescDisplayName is the schema descriptor for display_name field.
	knowledgedocumentDescDisplayName := knowledgedocumentFields[2].Descriptor()
	// knowledgedocument.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	knowledgedocument.DisplayNameValidator = knowledgedocumentDescDisplayName.Validators[0].(func(string) error)
	// knowledgedocumentDescContent is the schema descriptor for content field.
	knowledgedocumentDescContent := knowledgedocumentFields[3].Descriptor()
	// knowledgedocument.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	knowledgedocument.ContentValidator = knowledgedocumentDescContent.Validators[0].(func(string) error)
	// knowledgedocumentDescCreatedAt is the schema descriptor for created_at field.
	knowledgedocumentDescCreatedAt := knowledgedocumentFields[5].Descriptor()
	// knowledgedocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgedocument.DefaultCreatedAt = knowledgedocumentDescCreatedAt.Default.(func() time.Time)
	// knowledgedocumentDescID is the schema descriptor for id field.
	knowledgedocumentDescID := knowledgedocumentFields[0].Descriptor()
	// knowledgedocument.DefaultID holds the default value on creation for the id field.
	knowledgedocument.DefaultID = knowledgedocumentDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	schemafieldFields := schema.SchemaField{}.Fields()
	_ = schemafieldFields
	// schemafieldDescName is the schema descriptor for name field.
	schemafieldDescName := schemafieldFields[2].Descriptor()
	// schemafield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schemafield.NameValidator = schemafieldDescName.Validators[0].(func(string) error)
	// schemafieldDescFieldType is the schema descriptor for field_type field.
	schemafieldDescFieldType := schemafieldFields[3].Descriptor()
	// schemafield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	schemafield.FieldTypeValidator = func() func(string) error {
		validators := schemafieldDescFieldType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_type string) error {
			for _, fn := range fns {
				if err := fn(field_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schemafieldDescRequired is the schema descriptor for required field.
	schemafieldDescRequired := schemafieldFields[6].Descriptor()
	// schemafield.DefaultRequired holds the default value on creation for the required field.
	schemafield.DefaultRequired = schemafieldDescRequired.Default.(bool)
	// schemafieldDescPosition is the schema descriptor for position field.
	schemafieldDescPosition := schemafieldFields[7].Descriptor()
	// schemafield.DefaultPosition holds the default value on creation for the position field.
	schemafield.DefaultPosition = schemafieldDescPosition.Default.(int)
	// schemafield.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	schemafield.PositionValidator = schemafieldDescPosition.Validators[0].(func(int) error)
	// schemafieldDescCreatedAt is the schema descriptor for created_at field.
	schemafieldDescCreatedAt := schemafieldFields[8].Descriptor()
	// schemafield.DefaultCreatedAt holds the default value on creation for the created_at field.
	schemafield.DefaultCreatedAt = schemafieldDescCreatedAt.Default.(func() time.Time)
	// schemafieldDescID is the schema descriptor for id field.
	schemafieldDescID := schemafieldFields[0].Descriptor()
	// schemafield.DefaultID holds the default value on creation for the id field.
	schemafield.DefaultID = schemafieldDescID.Default.(func() uuid.UUID)
	sessiondocumentFields := schema.SessionDocument{}.Fields()
	_ = sessiondocumentFields
	// sessiondocumentDescFileName is the schema descriptor for file_name field.
	sessiondocumentDescFileName := sessiondocumentFields[2].Descriptor()
	// sessiondocument.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	sessiondocument.FileNameValidator = sessiondocumentDescFileName.Validators[0].(func(string) error)
	// sessiondocumentDescMimeType is the schema descriptor for mime_type field.
	sessiondocumentDescMimeType := sessiondocumentFields[3].Descriptor()
	// sessiondocument.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	sessiondocument.MimeTypeValidator = sessiondocumentDescMimeType.Validators[0].(func(string) error)
	// sessiondocumentDescFileSize is the schema descriptor for file_size field.
	sessiondocumentDescFileSize := sessiondocumentFields[4].Descriptor()
	// sessiondocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sessiondocument.FileSizeValidator = sessiondocumentDescFileSize.Validators[0].(func(int) error)
	// sessiondocumentDescContentHash is the schema descriptor for content_hash field.
	sessiondocumentDescContentHash := sessiondocumentFields[5].Descriptor()
	// sessiondocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sessiondocument.ContentHashValidator = sessiondocumentDescContentHash.Validators[0].(func([]byte) error)
	// sessiondocumentDescSource is the schema descriptor for source field.
	sessiondocumentDescSource := sessiondocumentFields[6].Descriptor()
	// sessiondocument.DefaultSource holds the default value on creation for the source field.
	sessiondocument.DefaultSource = sessiondocumentDescSource.Default.(string)
	// sessiondocument.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	sessiondocument.SourceValidator = func() func(string) error {
		validators := sessiondocumentDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessiondocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	sessiondocumentDescUploadedAt := sessiondocumentFields[8].Descriptor()
	// sessiondocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sessiondocument.DefaultUploadedAt = sessiondocumentDescUploadedAt.Default.(func() time.Time)
	// sessiondocumentDescID is the schema descriptor for id field.
	sessiondocumentDescID := sessiondocumentFields[0].Descriptor()
	// sessiondocument.DefaultID holds the default value on creation for the id field.
	sessiondocument.DefaultID = sessiondocumentDescID.Default.(func() uuid.UUID)
	validationrecordFields := schema.ValidationRecord{}.Fields()
	_ = validationrecordFields
	// validationrecordDescRecordIndex is the schema descriptor for record_index field.
	validationrecordDescRecordIndex := validationrecordFields[4].Descriptor()
	// validationrecord.DefaultRecordIndex holds the default value on creation for the record_index field.
	validationrecord.DefaultRecordIndex = validationrecordDescRecordIndex.Default.(int)
	// validationrecord.RecordIndexValidator is a validator for the "record_index" field. It is called by the builders before save.
	validationrecord.RecordIndexValidator = validationrecordDescRecordIndex.Validators[0].(func(int) error)
	// validationrecordDescFieldName is the schema descriptor for field_name field.
	validationrecordDescFieldName := validationrecordFields[5].Descriptor()
	// validationrecord.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	validationrecord.FieldNameValidator = validationrecordDescFieldName.Validators[0].(func(string) error)
	// validationrecordDescValidationStatus is the schema descriptor for validation_status field.
	validationrecordDescValidationStatus := validationrecordFields[7].Descriptor()
	// validationrecord.DefaultValidationStatus holds the default value on creation for the validation_status field.
	validationrecord.DefaultValidationStatus = validationrecordDescValidationStatus.Default.(string)
	// validationrecord.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	validationrecord.ValidationStatusValidator = func() func(string) error {
		validators := validationrecordDescValidationStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(validation_status string) error {
			for _, fn := range fns {
				if err := fn(validation_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationrecordDescConfidenceScore is the schema descriptor for confidence_score field.
	validationrecordDescConfidenceScore := validationrecordFields[8].Descriptor()
	// validationrecord.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	validationrecord.DefaultConfidenceScore = validationrecordDescConfidenceScore.Default.(int)
	// validationrecord.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	validationrecord.ConfidenceScoreValidator = validationrecordDescConfidenceScore.Validators[0].(func(int) error)
	// validationrecordDescCreatedAt is the schema descriptor for created_at field.
	validationrecordDescCreatedAt := validationrecordFields[10].Descriptor()
	// validationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationrecord.DefaultCreatedAt = validationrecordDescCreatedAt.Default.(func() time.Time)
	// validationrecordDescUpdatedAt is the schema descriptor for updated_at field.
	validationrecordDescUpdatedAt := validationrecordFields[11].Descriptor()
	// validationrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	validationrecord.DefaultUpdatedAt = validationrecordDescUpdatedAt.Default.(func() time.Time)
	// validationrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	validationrecord.UpdateDefaultUpdatedAt = validationrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// validationrecordDescID is the schema descriptor for id field.
	validationrecordDescID := validationrecordFields[0].Descriptor()
	// validationrecord.DefaultID holds the default value on creation for the id field.
	validationrecord.DefaultID = validationrecordDescID.Default.(func() uuid.UUID)
}
