package clienttype

// Field identifies a single configuration field of a download client.
// The string value doubles as the key used in persisted payloads and
// in additional_settings.
type Field string

const (
	// Universal fields present on every client type.
	FieldName           Field = "name"
	FieldClientType     Field = "client_type"
	FieldHost           Field = "host"
	FieldPort           Field = "port"
	FieldUseSSL         Field = "use_ssl"
	FieldUsername       Field = "username"
	FieldPassword       Field = "password"
	FieldPriority       Field = "priority"
	FieldTimeoutSeconds Field = "timeout_seconds"
	FieldEnabled        Field = "enabled"

	// Type-specific fields. Only some client types render each of
	// these; unrendered fields stay at their zero value and are never
	// persisted.
	FieldCategory            Field = "category"
	FieldURLBase             Field = "url_base"
	FieldAPIKey              Field = "api_key"
	FieldRPCPath             Field = "rpc_path"
	FieldSecretToken         Field = "secret_token"
	FieldAppID               Field = "app_id"
	FieldAppToken            Field = "app_token"
	FieldAPIURL              Field = "api_url"
	FieldTags                Field = "tags"
	FieldDestination         Field = "destination"
	FieldNzbFolder           Field = "nzb_folder"
	FieldStrmFolder          Field = "strm_folder"
	FieldTorrentFolder       Field = "torrent_folder"
	FieldWatchFolder         Field = "watch_folder"
	FieldSaveMagnetFiles     Field = "save_magnet_files"
	FieldMagnetFileExtension Field = "magnet_file_extension"
	FieldDirectory           Field = "directory"
	FieldDownloadPath        Field = "download_path"

	FieldPathMappings Field = "path_mappings"
)

// Kind describes how a field is entered.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindCheckbox Kind = "checkbox"
	KindPassword Kind = "password"
)

// Definition describes how a field is presented.
type Definition struct {
	Label       string
	Kind        Kind
	Placeholder string
}

// definitions is the field definition catalog. Every Field referenced
// by a descriptor must have an entry here.
var definitions = map[Field]Definition{
	FieldName:           {Label: "Name", Kind: KindText, Placeholder: "My download client"},
	FieldClientType:     {Label: "Client", Kind: KindText},
	FieldHost:           {Label: "Host", Kind: KindText, Placeholder: "localhost"},
	FieldPort:           {Label: "Port", Kind: KindNumber},
	FieldUseSSL:         {Label: "Use SSL", Kind: KindCheckbox},
	FieldUsername:       {Label: "Username", Kind: KindText},
	FieldPassword:       {Label: "Password", Kind: KindPassword},
	FieldPriority:       {Label: "Client Priority", Kind: KindNumber, Placeholder: "0"},
	FieldTimeoutSeconds: {Label: "Timeout", Kind: KindNumber, Placeholder: "30"},
	FieldEnabled:        {Label: "Enabled", Kind: KindCheckbox},

	FieldCategory:            {Label: "Category", Kind: KindText, Placeholder: "books"},
	FieldURLBase:             {Label: "Url Base", Kind: KindText, Placeholder: "/"},
	FieldAPIKey:              {Label: "API Key", Kind: KindPassword},
	FieldRPCPath:             {Label: "RPC Path", Kind: KindText},
	FieldSecretToken:         {Label: "Secret Token", Kind: KindPassword},
	FieldAppID:               {Label: "App ID", Kind: KindText},
	FieldAppToken:            {Label: "App Token", Kind: KindPassword},
	FieldAPIURL:              {Label: "API URL", Kind: KindText, Placeholder: "https://mafreebox.freebox.fr/api/v8"},
	FieldTags:                {Label: "Tags", Kind: KindText, Placeholder: "bookcard"},
	FieldDestination:         {Label: "Destination", Kind: KindText},
	FieldNzbFolder:           {Label: "Nzb Folder", Kind: KindText},
	FieldStrmFolder:          {Label: "Strm Folder", Kind: KindText},
	FieldTorrentFolder:       {Label: "Torrent Folder", Kind: KindText},
	FieldWatchFolder:         {Label: "Watch Folder", Kind: KindText},
	FieldSaveMagnetFiles:     {Label: "Save Magnet Files", Kind: KindCheckbox},
	FieldMagnetFileExtension: {Label: "Magnet File Extension", Kind: KindText, Placeholder: ".magnet"},
	FieldDirectory:           {Label: "Directory", Kind: KindText},
	FieldDownloadPath:        {Label: "Download Path", Kind: KindText},

	FieldPathMappings: {Label: "Path Mappings", Kind: KindText},
}

// Lookup returns the catalog definition for a field. The boolean is
// false for unknown fields; descriptors referencing unknown fields are
// configuration defects caught by the registry tests.
func Lookup(f Field) (Definition, bool) {
	def, ok := definitions[f]
	return def, ok
}
