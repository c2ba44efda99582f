// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/apikey"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/language"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/ent/realm"
	"lattice-cms.io/lattice/ent/schema"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actorFields := schema.Actor{}.Fields()
	_ = actorFields
	// actorDescStreamID is the schema descriptor for stream_id field.
	actorDescStreamID := actorFields[1].Descriptor()
	// actor.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	actor.StreamIDValidator = actorDescStreamID.Validators[0].(func(string) error)
	// actorDescIsDeleted is the schema descriptor for is_deleted field.
	actorDescIsDeleted := actorFields[4].Descriptor()
	// actor.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	actor.DefaultIsDeleted = actorDescIsDeleted.Default.(bool)
	// actorDescDisplayName is the schema descriptor for display_name field.
	actorDescDisplayName := actorFields[5].Descriptor()
	// actor.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	actor.DisplayNameValidator = actorDescDisplayName.Validators[0].(func(string) error)
	// actorDescID is the schema descriptor for id field.
	actorDescID := actorFields[0].Descriptor()
	// actor.IDValidator is a validator for the "id" field. It is called by the builders before save.
	actor.IDValidator = actorDescID.Validators[0].(func(string) error)
	apikeyMixin := schema.ApiKey{}.Mixin()
	apikeyMixinFields0 := apikeyMixin[0].Fields()
	_ = apikeyMixinFields0
	apikeyFields := schema.ApiKey{}.Fields()
	_ = apikeyFields
	// apikeyDescStreamID is the schema descriptor for stream_id field.
	apikeyDescStreamID := apikeyMixinFields0[0].Descriptor()
	// apikey.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	apikey.StreamIDValidator = apikeyDescStreamID.Validators[0].(func(string) error)
	// apikeyDescDisplayName is the schema descriptor for display_name field.
	apikeyDescDisplayName := apikeyFields[2].Descriptor()
	// apikey.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	apikey.DisplayNameValidator = apikeyDescDisplayName.Validators[0].(func(string) error)
	contentMixin := schema.Content{}.Mixin()
	contentMixinFields0 := contentMixin[0].Fields()
	_ = contentMixinFields0
	contentFields := schema.Content{}.Fields()
	_ = contentFields
	// contentDescStreamID is the schema descriptor for stream_id field.
	contentDescStreamID := contentMixinFields0[0].Descriptor()
	// content.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	content.StreamIDValidator = contentDescStreamID.Validators[0].(func(string) error)
	contentlocaleFields := schema.ContentLocale{}.Fields()
	_ = contentlocaleFields
	// contentlocaleDescUniqueName is the schema descriptor for unique_name field.
	contentlocaleDescUniqueName := contentlocaleFields[3].Descriptor()
	// contentlocale.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	contentlocale.UniqueNameValidator = contentlocaleDescUniqueName.Validators[0].(func(string) error)
	// contentlocaleDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	contentlocaleDescUniqueNameNormalized := contentlocaleFields[4].Descriptor()
	// contentlocale.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	contentlocale.UniqueNameNormalizedValidator = contentlocaleDescUniqueNameNormalized.Validators[0].(func(string) error)
	// contentlocaleDescIsPublished is the schema descriptor for is_published field.
	contentlocaleDescIsPublished := contentlocaleFields[8].Descriptor()
	// contentlocale.DefaultIsPublished holds the default value on creation for the is_published field.
	contentlocale.DefaultIsPublished = contentlocaleDescIsPublished.Default.(bool)
	contenttypeMixin := schema.ContentType{}.Mixin()
	contenttypeMixinFields0 := contenttypeMixin[0].Fields()
	_ = contenttypeMixinFields0
	contenttypeFields := schema.ContentType{}.Fields()
	_ = contenttypeFields
	// contenttypeDescStreamID is the schema descriptor for stream_id field.
	contenttypeDescStreamID := contenttypeMixinFields0[0].Descriptor()
	// contenttype.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	contenttype.StreamIDValidator = contenttypeDescStreamID.Validators[0].(func(string) error)
	// contenttypeDescIsInvariant is the schema descriptor for is_invariant field.
	contenttypeDescIsInvariant := contenttypeFields[2].Descriptor()
	// contenttype.DefaultIsInvariant holds the default value on creation for the is_invariant field.
	contenttype.DefaultIsInvariant = contenttypeDescIsInvariant.Default.(bool)
	// contenttypeDescUniqueName is the schema descriptor for unique_name field.
	contenttypeDescUniqueName := contenttypeFields[3].Descriptor()
	// contenttype.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	contenttype.UniqueNameValidator = contenttypeDescUniqueName.Validators[0].(func(string) error)
	// contenttypeDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	contenttypeDescUniqueNameNormalized := contenttypeFields[4].Descriptor()
	// contenttype.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	contenttype.UniqueNameNormalizedValidator = contenttypeDescUniqueNameNormalized.Validators[0].(func(string) error)
	// contenttypeDescFieldCount is the schema descriptor for field_count field.
	contenttypeDescFieldCount := contenttypeFields[7].Descriptor()
	// contenttype.DefaultFieldCount holds the default value on creation for the field_count field.
	contenttype.DefaultFieldCount = contenttypeDescFieldCount.Default.(int)
	fielddefinitionFields := schema.FieldDefinition{}.Fields()
	_ = fielddefinitionFields
	// fielddefinitionDescOrder is the schema descriptor for order field.
	fielddefinitionDescOrder := fielddefinitionFields[3].Descriptor()
	// fielddefinition.OrderValidator is a validator for the "order" field. It is called by the builders before save.
	fielddefinition.OrderValidator = fielddefinitionDescOrder.Validators[0].(func(int) error)
	// fielddefinitionDescIsInvariant is the schema descriptor for is_invariant field.
	fielddefinitionDescIsInvariant := fielddefinitionFields[4].Descriptor()
	// fielddefinition.DefaultIsInvariant holds the default value on creation for the is_invariant field.
	fielddefinition.DefaultIsInvariant = fielddefinitionDescIsInvariant.Default.(bool)
	// fielddefinitionDescIsRequired is the schema descriptor for is_required field.
	fielddefinitionDescIsRequired := fielddefinitionFields[5].Descriptor()
	// fielddefinition.DefaultIsRequired holds the default value on creation for the is_required field.
	fielddefinition.DefaultIsRequired = fielddefinitionDescIsRequired.Default.(bool)
	// fielddefinitionDescIsIndexed is the schema descriptor for is_indexed field.
	fielddefinitionDescIsIndexed := fielddefinitionFields[6].Descriptor()
	// fielddefinition.DefaultIsIndexed holds the default value on creation for the is_indexed field.
	fielddefinition.DefaultIsIndexed = fielddefinitionDescIsIndexed.Default.(bool)
	// fielddefinitionDescIsUnique is the schema descriptor for is_unique field.
	fielddefinitionDescIsUnique := fielddefinitionFields[7].Descriptor()
	// fielddefinition.DefaultIsUnique holds the default value on creation for the is_unique field.
	fielddefinition.DefaultIsUnique = fielddefinitionDescIsUnique.Default.(bool)
	// fielddefinitionDescUniqueName is the schema descriptor for unique_name field.
	fielddefinitionDescUniqueName := fielddefinitionFields[8].Descriptor()
	// fielddefinition.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	fielddefinition.UniqueNameValidator = fielddefinitionDescUniqueName.Validators[0].(func(string) error)
	// fielddefinitionDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	fielddefinitionDescUniqueNameNormalized := fielddefinitionFields[9].Descriptor()
	// fielddefinition.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	fielddefinition.UniqueNameNormalizedValidator = fielddefinitionDescUniqueNameNormalized.Validators[0].(func(string) error)
	fieldindexFields := schema.FieldIndex{}.Fields()
	_ = fieldindexFields
	// fieldindexDescContentTypeName is the schema descriptor for content_type_name field.
	fieldindexDescContentTypeName := fieldindexFields[4].Descriptor()
	// fieldindex.ContentTypeNameValidator is a validator for the "content_type_name" field. It is called by the builders before save.
	fieldindex.ContentTypeNameValidator = fieldindexDescContentTypeName.Validators[0].(func(string) error)
	// fieldindexDescLanguageIsDefault is the schema descriptor for language_is_default field.
	fieldindexDescLanguageIsDefault := fieldindexFields[7].Descriptor()
	// fieldindex.DefaultLanguageIsDefault holds the default value on creation for the language_is_default field.
	fieldindex.DefaultLanguageIsDefault = fieldindexDescLanguageIsDefault.Default.(bool)
	// fieldindexDescFieldTypeName is the schema descriptor for field_type_name field.
	fieldindexDescFieldTypeName := fieldindexFields[9].Descriptor()
	// fieldindex.FieldTypeNameValidator is a validator for the "field_type_name" field. It is called by the builders before save.
	fieldindex.FieldTypeNameValidator = fieldindexDescFieldTypeName.Validators[0].(func(string) error)
	// fieldindexDescFieldDefinitionName is the schema descriptor for field_definition_name field.
	fieldindexDescFieldDefinitionName := fieldindexFields[11].Descriptor()
	// fieldindex.FieldDefinitionNameValidator is a validator for the "field_definition_name" field. It is called by the builders before save.
	fieldindex.FieldDefinitionNameValidator = fieldindexDescFieldDefinitionName.Validators[0].(func(string) error)
	// fieldindexDescContentLocaleName is the schema descriptor for content_locale_name field.
	fieldindexDescContentLocaleName := fieldindexFields[14].Descriptor()
	// fieldindex.ContentLocaleNameValidator is a validator for the "content_locale_name" field. It is called by the builders before save.
	fieldindex.ContentLocaleNameValidator = fieldindexDescContentLocaleName.Validators[0].(func(string) error)
	// fieldindexDescID is the schema descriptor for id field.
	fieldindexDescID := fieldindexFields[0].Descriptor()
	// fieldindex.DefaultID holds the default value on creation for the id field.
	fieldindex.DefaultID = fieldindexDescID.Default.(func() uuid.UUID)
	fieldtypeMixin := schema.FieldType{}.Mixin()
	fieldtypeMixinFields0 := fieldtypeMixin[0].Fields()
	_ = fieldtypeMixinFields0
	fieldtypeFields := schema.FieldType{}.Fields()
	_ = fieldtypeFields
	// fieldtypeDescStreamID is the schema descriptor for stream_id field.
	fieldtypeDescStreamID := fieldtypeMixinFields0[0].Descriptor()
	// fieldtype.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	fieldtype.StreamIDValidator = fieldtypeDescStreamID.Validators[0].(func(string) error)
	// fieldtypeDescUniqueName is the schema descriptor for unique_name field.
	fieldtypeDescUniqueName := fieldtypeFields[2].Descriptor()
	// fieldtype.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	fieldtype.UniqueNameValidator = fieldtypeDescUniqueName.Validators[0].(func(string) error)
	// fieldtypeDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	fieldtypeDescUniqueNameNormalized := fieldtypeFields[3].Descriptor()
	// fieldtype.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	fieldtype.UniqueNameNormalizedValidator = fieldtypeDescUniqueNameNormalized.Validators[0].(func(string) error)
	languageMixin := schema.Language{}.Mixin()
	languageMixinFields0 := languageMixin[0].Fields()
	_ = languageMixinFields0
	languageFields := schema.Language{}.Fields()
	_ = languageFields
	// languageDescStreamID is the schema descriptor for stream_id field.
	languageDescStreamID := languageMixinFields0[0].Descriptor()
	// language.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	language.StreamIDValidator = languageDescStreamID.Validators[0].(func(string) error)
	// languageDescCode is the schema descriptor for code field.
	languageDescCode := languageFields[2].Descriptor()
	// language.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	language.CodeValidator = languageDescCode.Validators[0].(func(string) error)
	// languageDescCodeNormalized is the schema descriptor for code_normalized field.
	languageDescCodeNormalized := languageFields[3].Descriptor()
	// language.CodeNormalizedValidator is a validator for the "code_normalized" field. It is called by the builders before save.
	language.CodeNormalizedValidator = languageDescCodeNormalized.Validators[0].(func(string) error)
	// languageDescIsDefault is the schema descriptor for is_default field.
	languageDescIsDefault := languageFields[4].Descriptor()
	// language.DefaultIsDefault holds the default value on creation for the is_default field.
	language.DefaultIsDefault = languageDescIsDefault.Default.(bool)
	publishedcontentFields := schema.PublishedContent{}.Fields()
	_ = publishedcontentFields
	// publishedcontentDescUniqueName is the schema descriptor for unique_name field.
	publishedcontentDescUniqueName := publishedcontentFields[5].Descriptor()
	// publishedcontent.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	publishedcontent.UniqueNameValidator = publishedcontentDescUniqueName.Validators[0].(func(string) error)
	// publishedcontentDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	publishedcontentDescUniqueNameNormalized := publishedcontentFields[6].Descriptor()
	// publishedcontent.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	publishedcontent.UniqueNameNormalizedValidator = publishedcontentDescUniqueNameNormalized.Validators[0].(func(string) error)
	realmMixin := schema.Realm{}.Mixin()
	realmMixinFields0 := realmMixin[0].Fields()
	_ = realmMixinFields0
	realmFields := schema.Realm{}.Fields()
	_ = realmFields
	// realmDescStreamID is the schema descriptor for stream_id field.
	realmDescStreamID := realmMixinFields0[0].Descriptor()
	// realm.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	realm.StreamIDValidator = realmDescStreamID.Validators[0].(func(string) error)
	// realmDescUniqueSlug is the schema descriptor for unique_slug field.
	realmDescUniqueSlug := realmFields[1].Descriptor()
	// realm.UniqueSlugValidator is a validator for the "unique_slug" field. It is called by the builders before save.
	realm.UniqueSlugValidator = realmDescUniqueSlug.Validators[0].(func(string) error)
	// realmDescUniqueSlugNormalized is the schema descriptor for unique_slug_normalized field.
	realmDescUniqueSlugNormalized := realmFields[2].Descriptor()
	// realm.UniqueSlugNormalizedValidator is a validator for the "unique_slug_normalized" field. It is called by the builders before save.
	realm.UniqueSlugNormalizedValidator = realmDescUniqueSlugNormalized.Validators[0].(func(string) error)
	uniqueindexFields := schema.UniqueIndex{}.Fields()
	_ = uniqueindexFields
	// uniqueindexDescContentTypeName is the schema descriptor for content_type_name field.
	uniqueindexDescContentTypeName := uniqueindexFields[4].Descriptor()
	// uniqueindex.ContentTypeNameValidator is a validator for the "content_type_name" field. It is called by the builders before save.
	uniqueindex.ContentTypeNameValidator = uniqueindexDescContentTypeName.Validators[0].(func(string) error)
	// uniqueindexDescLanguageIsDefault is the schema descriptor for language_is_default field.
	uniqueindexDescLanguageIsDefault := uniqueindexFields[7].Descriptor()
	// uniqueindex.DefaultLanguageIsDefault holds the default value on creation for the language_is_default field.
	uniqueindex.DefaultLanguageIsDefault = uniqueindexDescLanguageIsDefault.Default.(bool)
	// uniqueindexDescFieldTypeName is the schema descriptor for field_type_name field.
	uniqueindexDescFieldTypeName := uniqueindexFields[9].Descriptor()
	// uniqueindex.FieldTypeNameValidator is a validator for the "field_type_name" field. It is called by the builders before save.
	uniqueindex.FieldTypeNameValidator = uniqueindexDescFieldTypeName.Validators[0].(func(string) error)
	// uniqueindexDescFieldDefinitionName is the schema descriptor for field_definition_name field.
	uniqueindexDescFieldDefinitionName := uniqueindexFields[11].Descriptor()
	// uniqueindex.FieldDefinitionNameValidator is a validator for the "field_definition_name" field. It is called by the builders before save.
	uniqueindex.FieldDefinitionNameValidator = uniqueindexDescFieldDefinitionName.Validators[0].(func(string) error)
	// uniqueindexDescContentLocaleName is the schema descriptor for content_locale_name field.
	uniqueindexDescContentLocaleName := uniqueindexFields[14].Descriptor()
	// uniqueindex.ContentLocaleNameValidator is a validator for the "content_locale_name" field. It is called by the builders before save.
	uniqueindex.ContentLocaleNameValidator = uniqueindexDescContentLocaleName.Validators[0].(func(string) error)
	// uniqueindexDescValue is the schema descriptor for value field.
	uniqueindexDescValue := uniqueindexFields[16].Descriptor()
	// uniqueindex.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	uniqueindex.ValueValidator = uniqueindexDescValue.Validators[0].(func(string) error)
	// uniqueindexDescKey is the schema descriptor for key field.
	uniqueindexDescKey := uniqueindexFields[17].Descriptor()
	// uniqueindex.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	uniqueindex.KeyValidator = uniqueindexDescKey.Validators[0].(func(string) error)
	// uniqueindexDescID is the schema descriptor for id field.
	uniqueindexDescID := uniqueindexFields[0].Descriptor()
	// uniqueindex.DefaultID holds the default value on creation for the id field.
	uniqueindex.DefaultID = uniqueindexDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescStreamID is the schema descriptor for stream_id field.
	userDescStreamID := userMixinFields0[0].Descriptor()
	// user.StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	user.StreamIDValidator = userDescStreamID.Validators[0].(func(string) error)
	// userDescUniqueName is the schema descriptor for unique_name field.
	userDescUniqueName := userFields[2].Descriptor()
	// user.UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	user.UniqueNameValidator = userDescUniqueName.Validators[0].(func(string) error)
	// userDescUniqueNameNormalized is the schema descriptor for unique_name_normalized field.
	userDescUniqueNameNormalized := userFields[3].Descriptor()
	// user.UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	user.UniqueNameNormalizedValidator = userDescUniqueNameNormalized.Validators[0].(func(string) error)
	// userDescIsDisabled is the schema descriptor for is_disabled field.
	userDescIsDisabled := userFields[7].Descriptor()
	// user.DefaultIsDisabled holds the default value on creation for the is_disabled field.
	user.DefaultIsDisabled = userDescIsDisabled.Default.(bool)
}
