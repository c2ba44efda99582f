// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActorsColumns holds the columns for the "actors" table.
	ActorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"user", "api_key"}},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "display_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "picture", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
	}
	// ActorsTable holds the schema information for the "actors" table.
	ActorsTable = &schema.Table{
		Name:       "actors",
		Columns:    ActorsColumns,
		PrimaryKey: []*schema.Column{ActorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actor_type",
				Unique:  false,
				Columns: []*schema.Column{ActorsColumns[3]},
			},
		},
	}
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "expires_on", Type: field.TypeTime, Nullable: true},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_realm_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[7]},
			},
		},
	}
	// ContentsColumns holds the columns for the "contents" table.
	ContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "content_type_id", Type: field.TypeUUID},
	}
	// ContentsTable holds the schema information for the "contents" table.
	ContentsTable = &schema.Table{
		Name:       "contents",
		Columns:    ContentsColumns,
		PrimaryKey: []*schema.Column{ContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contents_content_types_contents",
				Columns:    []*schema.Column{ContentsColumns[8]},
				RefColumns: []*schema.Column{ContentTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "content_realm_id",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[7]},
			},
			{
				Name:    "content_content_type_id",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[8]},
			},
		},
	}
	// ContentLocalesColumns holds the columns for the "content_locales" table.
	ContentLocalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "language_id", Type: field.TypeUUID, Nullable: true},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "field_values", Type: field.TypeJSON, Nullable: true},
		{Name: "is_published", Type: field.TypeBool, Default: false},
		{Name: "published_version", Type: field.TypeInt64, Nullable: true},
		{Name: "published_by", Type: field.TypeString, Nullable: true},
		{Name: "published_on", Type: field.TypeTime, Nullable: true},
		{Name: "content_id", Type: field.TypeUUID},
	}
	// ContentLocalesTable holds the schema information for the "content_locales" table.
	ContentLocalesTable = &schema.Table{
		Name:       "content_locales",
		Columns:    ContentLocalesColumns,
		PrimaryKey: []*schema.Column{ContentLocalesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_locales_contents_locales",
				Columns:    []*schema.Column{ContentLocalesColumns[16]},
				RefColumns: []*schema.Column{ContentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contentlocale_content_id_language_id",
				Unique:  false,
				Columns: []*schema.Column{ContentLocalesColumns[16], ContentLocalesColumns[6]},
			},
			{
				Name:    "contentlocale_language_id",
				Unique:  false,
				Columns: []*schema.Column{ContentLocalesColumns[6]},
			},
			{
				Name:    "contentlocale_unique_name_normalized",
				Unique:  false,
				Columns: []*schema.Column{ContentLocalesColumns[8]},
			},
		},
	}
	// ContentTypesColumns holds the columns for the "content_types" table.
	ContentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_invariant", Type: field.TypeBool, Default: false},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "field_count", Type: field.TypeInt, Default: 0},
	}
	// ContentTypesTable holds the schema information for the "content_types" table.
	ContentTypesTable = &schema.Table{
		Name:       "content_types",
		Columns:    ContentTypesColumns,
		PrimaryKey: []*schema.Column{ContentTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contenttype_realm_id_unique_name_normalized",
				Unique:  false,
				Columns: []*schema.Column{ContentTypesColumns[7], ContentTypesColumns[10]},
			},
		},
	}
	// FieldDefinitionsColumns holds the columns for the "field_definitions" table.
	FieldDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "order", Type: field.TypeInt},
		{Name: "is_invariant", Type: field.TypeBool, Default: false},
		{Name: "is_required", Type: field.TypeBool, Default: false},
		{Name: "is_indexed", Type: field.TypeBool, Default: false},
		{Name: "is_unique", Type: field.TypeBool, Default: false},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "placeholder", Type: field.TypeString, Nullable: true},
		{Name: "content_type_id", Type: field.TypeUUID},
		{Name: "field_type_id", Type: field.TypeUUID},
	}
	// FieldDefinitionsTable holds the schema information for the "field_definitions" table.
	FieldDefinitionsTable = &schema.Table{
		Name:       "field_definitions",
		Columns:    FieldDefinitionsColumns,
		PrimaryKey: []*schema.Column{FieldDefinitionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_definitions_content_types_field_definitions",
				Columns:    []*schema.Column{FieldDefinitionsColumns[11]},
				RefColumns: []*schema.Column{ContentTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "field_definitions_field_types_field_definitions",
				Columns:    []*schema.Column{FieldDefinitionsColumns[12]},
				RefColumns: []*schema.Column{FieldTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fielddefinition_content_type_id_unique_name_normalized",
				Unique:  true,
				Columns: []*schema.Column{FieldDefinitionsColumns[11], FieldDefinitionsColumns[7]},
			},
			{
				Name:    "fielddefinition_content_type_id_order",
				Unique:  false,
				Columns: []*schema.Column{FieldDefinitionsColumns[11], FieldDefinitionsColumns[1]},
			},
			{
				Name:    "fielddefinition_field_type_id",
				Unique:  false,
				Columns: []*schema.Column{FieldDefinitionsColumns[12]},
			},
		},
	}
	// FieldIndexesColumns holds the columns for the "field_indexes" table.
	FieldIndexesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"latest", "published"}},
		{Name: "content_type_id", Type: field.TypeUUID},
		{Name: "content_type_name", Type: field.TypeString},
		{Name: "language_id", Type: field.TypeUUID, Nullable: true},
		{Name: "language_code", Type: field.TypeString, Nullable: true},
		{Name: "language_is_default", Type: field.TypeBool, Default: false},
		{Name: "field_type_id", Type: field.TypeUUID},
		{Name: "field_type_name", Type: field.TypeString},
		{Name: "field_definition_id", Type: field.TypeUUID},
		{Name: "field_definition_name", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeUUID},
		{Name: "content_locale_id", Type: field.TypeUUID},
		{Name: "content_locale_name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64},
		{Name: "value_boolean", Type: field.TypeBool, Nullable: true},
		{Name: "value_datetime", Type: field.TypeTime, Nullable: true},
		{Name: "value_number", Type: field.TypeFloat64, Nullable: true},
		{Name: "value_related_content", Type: field.TypeString, Nullable: true},
		{Name: "value_rich_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "value_select", Type: field.TypeString, Nullable: true},
		{Name: "value_string", Type: field.TypeString, Nullable: true},
		{Name: "value_tags", Type: field.TypeString, Nullable: true},
	}
	// FieldIndexesTable holds the schema information for the "field_indexes" table.
	FieldIndexesTable = &schema.Table{
		Name:       "field_indexes",
		Columns:    FieldIndexesColumns,
		PrimaryKey: []*schema.Column{FieldIndexesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fieldindex_content_locale_id_status_field_definition_id",
				Unique:  true,
				Columns: []*schema.Column{FieldIndexesColumns[13], FieldIndexesColumns[2], FieldIndexesColumns[10]},
			},
			{
				Name:    "fieldindex_content_id",
				Unique:  false,
				Columns: []*schema.Column{FieldIndexesColumns[12]},
			},
			{
				Name:    "fieldindex_content_type_id_status",
				Unique:  false,
				Columns: []*schema.Column{FieldIndexesColumns[3], FieldIndexesColumns[2]},
			},
			{
				Name:    "fieldindex_field_definition_id",
				Unique:  false,
				Columns: []*schema.Column{FieldIndexesColumns[10]},
			},
			{
				Name:    "fieldindex_field_type_id",
				Unique:  false,
				Columns: []*schema.Column{FieldIndexesColumns[8]},
			},
			{
				Name:    "fieldindex_language_id",
				Unique:  false,
				Columns: []*schema.Column{FieldIndexesColumns[5]},
			},
		},
	}
	// FieldTypesColumns holds the columns for the "field_types" table.
	FieldTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "data_type", Type: field.TypeEnum, Enums: []string{"boolean", "datetime", "number", "related_content", "rich_text", "select", "string", "tags"}},
		{Name: "settings", Type: field.TypeBytes},
	}
	// FieldTypesTable holds the schema information for the "field_types" table.
	FieldTypesTable = &schema.Table{
		Name:       "field_types",
		Columns:    FieldTypesColumns,
		PrimaryKey: []*schema.Column{FieldTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fieldtype_realm_id_unique_name_normalized",
				Unique:  false,
				Columns: []*schema.Column{FieldTypesColumns[7], FieldTypesColumns[9]},
			},
		},
	}
	// LanguagesColumns holds the columns for the "languages" table.
	LanguagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "code", Type: field.TypeString},
		{Name: "code_normalized", Type: field.TypeString},
		{Name: "is_default", Type: field.TypeBool, Default: false},
	}
	// LanguagesTable holds the schema information for the "languages" table.
	LanguagesTable = &schema.Table{
		Name:       "languages",
		Columns:    LanguagesColumns,
		PrimaryKey: []*schema.Column{LanguagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "language_realm_id_code_normalized",
				Unique:  false,
				Columns: []*schema.Column{LanguagesColumns[7], LanguagesColumns[9]},
			},
			{
				Name:    "language_is_default",
				Unique:  false,
				Columns: []*schema.Column{LanguagesColumns[10]},
			},
		},
	}
	// PublishedContentsColumns holds the columns for the "published_contents" table.
	PublishedContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "content_id", Type: field.TypeUUID},
		{Name: "content_type_id", Type: field.TypeUUID},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "language_id", Type: field.TypeUUID, Nullable: true},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "field_values", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "published_by", Type: field.TypeString, Nullable: true},
		{Name: "published_on", Type: field.TypeTime},
	}
	// PublishedContentsTable holds the schema information for the "published_contents" table.
	PublishedContentsTable = &schema.Table{
		Name:       "published_contents",
		Columns:    PublishedContentsColumns,
		PrimaryKey: []*schema.Column{PublishedContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "publishedcontent_content_id_language_id",
				Unique:  false,
				Columns: []*schema.Column{PublishedContentsColumns[1], PublishedContentsColumns[4]},
			},
			{
				Name:    "publishedcontent_content_type_id",
				Unique:  false,
				Columns: []*schema.Column{PublishedContentsColumns[2]},
			},
			{
				Name:    "publishedcontent_realm_id",
				Unique:  false,
				Columns: []*schema.Column{PublishedContentsColumns[3]},
			},
		},
	}
	// RealmsColumns holds the columns for the "realms" table.
	RealmsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "unique_slug", Type: field.TypeString},
		{Name: "unique_slug_normalized", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
	}
	// RealmsTable holds the schema information for the "realms" table.
	RealmsTable = &schema.Table{
		Name:       "realms",
		Columns:    RealmsColumns,
		PrimaryKey: []*schema.Column{RealmsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "realm_unique_slug_normalized",
				Unique:  true,
				Columns: []*schema.Column{RealmsColumns[8]},
			},
		},
	}
	// UniqueIndexesColumns holds the columns for the "unique_indexes" table.
	UniqueIndexesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"latest", "published"}},
		{Name: "content_type_id", Type: field.TypeUUID},
		{Name: "content_type_name", Type: field.TypeString},
		{Name: "language_id", Type: field.TypeUUID, Nullable: true},
		{Name: "language_code", Type: field.TypeString, Nullable: true},
		{Name: "language_is_default", Type: field.TypeBool, Default: false},
		{Name: "field_type_id", Type: field.TypeUUID},
		{Name: "field_type_name", Type: field.TypeString},
		{Name: "field_definition_id", Type: field.TypeUUID},
		{Name: "field_definition_name", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeUUID},
		{Name: "content_locale_id", Type: field.TypeUUID},
		{Name: "content_locale_name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64},
		{Name: "value", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
	}
	// UniqueIndexesTable holds the schema information for the "unique_indexes" table.
	UniqueIndexesTable = &schema.Table{
		Name:       "unique_indexes",
		Columns:    UniqueIndexesColumns,
		PrimaryKey: []*schema.Column{UniqueIndexesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uniqueindex_content_locale_id_status_field_definition_id",
				Unique:  true,
				Columns: []*schema.Column{UniqueIndexesColumns[13], UniqueIndexesColumns[2], UniqueIndexesColumns[10]},
			},
			{
				Name:    "uniqueindex_content_type_id_language_id_status_key",
				Unique:  false,
				Columns: []*schema.Column{UniqueIndexesColumns[3], UniqueIndexesColumns[5], UniqueIndexesColumns[2], UniqueIndexesColumns[17]},
			},
			{
				Name:    "uniqueindex_content_id",
				Unique:  false,
				Columns: []*schema.Column{UniqueIndexesColumns[12]},
			},
			{
				Name:    "uniqueindex_field_definition_id",
				Unique:  false,
				Columns: []*schema.Column{UniqueIndexesColumns[10]},
			},
			{
				Name:    "uniqueindex_field_type_id",
				Unique:  false,
				Columns: []*schema.Column{UniqueIndexesColumns[8]},
			},
			{
				Name:    "uniqueindex_language_id",
				Unique:  false,
				Columns: []*schema.Column{UniqueIndexesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stream_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_on", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_on", Type: field.TypeTime},
		{Name: "realm_id", Type: field.TypeUUID, Nullable: true},
		{Name: "unique_name", Type: field.TypeString},
		{Name: "unique_name_normalized", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "picture", Type: field.TypeString, Nullable: true},
		{Name: "is_disabled", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_realm_id_unique_name_normalized",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7], UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActorsTable,
		APIKeysTable,
		ContentsTable,
		ContentLocalesTable,
		ContentTypesTable,
		FieldDefinitionsTable,
		FieldIndexesTable,
		FieldTypesTable,
		LanguagesTable,
		PublishedContentsTable,
		RealmsTable,
		UniqueIndexesTable,
		UsersTable,
	}
)

func init() {
	ContentsTable.ForeignKeys[0].RefTable = ContentTypesTable
	ContentLocalesTable.ForeignKeys[0].RefTable = ContentsTable
	FieldDefinitionsTable.ForeignKeys[0].RefTable = ContentTypesTable
	FieldDefinitionsTable.ForeignKeys[1].RefTable = FieldTypesTable
}
