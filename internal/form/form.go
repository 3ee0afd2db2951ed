// Package form owns the in-progress state of one download client
// create or edit session and turns it into the persisted payload
// shape.
package form

import (
	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

// Form is the single source of truth for one open create/edit
// session. A Form is created when the session opens and discarded when
// it closes; drafts are never persisted.
//
// Enabled and SaveMagnetFiles are pointers because absence and an
// explicit false mean different things: an absent Enabled defaults to
// true on save, and an absent SaveMagnetFiles means "use the server
// default" while false means "explicitly disabled".
type Form struct {
	Name           string
	ClientType     clienttype.ClientType
	Host           string
	Port           int
	UseSSL         bool
	Priority       int
	TimeoutSeconds int
	Enabled        *bool

	Username string
	Password string

	Category            string
	URLBase             string
	APIKey              string
	RPCPath             string
	SecretToken         string
	AppID               string
	AppToken            string
	APIURL              string
	Tags                string
	Destination         string
	NzbFolder           string
	StrmFolder          string
	TorrentFolder       string
	WatchFolder         string
	SaveMagnetFiles     *bool
	MagnetFileExtension string
	Directory           string
	DownloadPath        string

	PathMappings []api.PathMapping

	editing  bool
	clientID int64
}

// New returns a create-mode form seeded from the client type's
// descriptor defaults.
func New(ct clienttype.ClientType) *Form {
	desc := clienttype.Get(ct)
	return &Form{
		ClientType: ct,
		Port:       desc.DefaultPort,
		URLBase:    desc.DefaultURLBase,
		RPCPath:    desc.DefaultRPCPath,
	}
}

// FromClient returns an edit-mode form populated wholesale from a
// persisted client, mapping additional_settings back onto the named
// fields. The password is always blank regardless of what the server
// stores: credentials are write-only and only overwritten when the
// user types a new value.
func FromClient(dc *api.DownloadClient) *Form {
	settings := dc.AdditionalSettings

	f := &Form{
		Name:           dc.Name,
		ClientType:     dc.ClientType,
		Host:           dc.Host,
		Port:           dc.Port,
		UseSSL:         dc.UseSSL,
		Priority:       dc.Priority,
		TimeoutSeconds: dc.TimeoutSeconds,
		Enabled:        boolPtr(dc.Enabled),
		Username:       dc.Username,
		Password:       "",
		Category:       dc.Category,
		DownloadPath:   dc.DownloadPath,

		URLBase:             settingString(settings, clienttype.FieldURLBase),
		APIKey:              settingString(settings, clienttype.FieldAPIKey),
		RPCPath:             settingString(settings, clienttype.FieldRPCPath),
		SecretToken:         settingString(settings, clienttype.FieldSecretToken),
		AppID:               settingString(settings, clienttype.FieldAppID),
		AppToken:            settingString(settings, clienttype.FieldAppToken),
		APIURL:              settingString(settings, clienttype.FieldAPIURL),
		Tags:                settingString(settings, clienttype.FieldTags),
		Destination:         settingString(settings, clienttype.FieldDestination),
		NzbFolder:           settingString(settings, clienttype.FieldNzbFolder),
		StrmFolder:          settingString(settings, clienttype.FieldStrmFolder),
		TorrentFolder:       settingString(settings, clienttype.FieldTorrentFolder),
		WatchFolder:         settingString(settings, clienttype.FieldWatchFolder),
		SaveMagnetFiles:     settingBool(settings, clienttype.FieldSaveMagnetFiles),
		MagnetFileExtension: settingString(settings, clienttype.FieldMagnetFileExtension),
		Directory:           settingString(settings, clienttype.FieldDirectory),

		PathMappings: settingPathMappings(settings),

		editing:  true,
		clientID: dc.ID,
	}
	return f
}

// Editing reports whether the form was opened for a persisted client.
func (f *Form) Editing() bool {
	return f.editing
}

// ClientID returns the persisted client id in edit mode, 0 otherwise.
func (f *Form) ClientID() int64 {
	return f.clientID
}

// Set updates a single field. Changing the client type additionally
// resets port, url base and RPC path to the new type's descriptor
// defaults; every other field keeps what was already entered. No
// other field has side effects, and Set never fails: malformed values
// coerce to the field's zero value.
func (f *Form) Set(key clienttype.Field, value any) {
	switch key {
	case clienttype.FieldName:
		f.Name = asString(value)
	case clienttype.FieldClientType:
		ct, ok := value.(clienttype.ClientType)
		if !ok {
			ct = clienttype.ClientType(asString(value))
		}
		f.ClientType = ct
		desc := clienttype.Get(f.ClientType)
		f.Port = desc.DefaultPort
		f.URLBase = desc.DefaultURLBase
		f.RPCPath = desc.DefaultRPCPath
	case clienttype.FieldHost:
		f.Host = asString(value)
	case clienttype.FieldPort:
		f.Port = asInt(value)
	case clienttype.FieldUseSSL:
		f.UseSSL = asBool(value)
	case clienttype.FieldUsername:
		f.Username = asString(value)
	case clienttype.FieldPassword:
		f.Password = asString(value)
	case clienttype.FieldPriority:
		f.Priority = asInt(value)
	case clienttype.FieldTimeoutSeconds:
		f.TimeoutSeconds = asInt(value)
	case clienttype.FieldEnabled:
		f.Enabled = boolPtr(asBool(value))
	case clienttype.FieldCategory:
		f.Category = asString(value)
	case clienttype.FieldURLBase:
		f.URLBase = asString(value)
	case clienttype.FieldAPIKey:
		f.APIKey = asString(value)
	case clienttype.FieldRPCPath:
		f.RPCPath = asString(value)
	case clienttype.FieldSecretToken:
		f.SecretToken = asString(value)
	case clienttype.FieldAppID:
		f.AppID = asString(value)
	case clienttype.FieldAppToken:
		f.AppToken = asString(value)
	case clienttype.FieldAPIURL:
		f.APIURL = asString(value)
	case clienttype.FieldTags:
		f.Tags = asString(value)
	case clienttype.FieldDestination:
		f.Destination = asString(value)
	case clienttype.FieldNzbFolder:
		f.NzbFolder = asString(value)
	case clienttype.FieldStrmFolder:
		f.StrmFolder = asString(value)
	case clienttype.FieldTorrentFolder:
		f.TorrentFolder = asString(value)
	case clienttype.FieldWatchFolder:
		f.WatchFolder = asString(value)
	case clienttype.FieldSaveMagnetFiles:
		f.SaveMagnetFiles = boolPtr(asBool(value))
	case clienttype.FieldMagnetFileExtension:
		f.MagnetFileExtension = asString(value)
	case clienttype.FieldDirectory:
		f.Directory = asString(value)
	case clienttype.FieldDownloadPath:
		f.DownloadPath = asString(value)
	case clienttype.FieldPathMappings:
		if mappings, ok := value.([]api.PathMapping); ok {
			f.PathMappings = mappings
		}
	}
}

// Value returns the current value of a field for rendering. Tri-state
// booleans render as false while unset.
func (f *Form) Value(key clienttype.Field) any {
	switch key {
	case clienttype.FieldName:
		return f.Name
	case clienttype.FieldClientType:
		return string(f.ClientType)
	case clienttype.FieldHost:
		return f.Host
	case clienttype.FieldPort:
		return f.Port
	case clienttype.FieldUseSSL:
		return f.UseSSL
	case clienttype.FieldUsername:
		return f.Username
	case clienttype.FieldPassword:
		return f.Password
	case clienttype.FieldPriority:
		return f.Priority
	case clienttype.FieldTimeoutSeconds:
		return f.TimeoutSeconds
	case clienttype.FieldEnabled:
		return f.Enabled != nil && *f.Enabled
	case clienttype.FieldCategory:
		return f.Category
	case clienttype.FieldURLBase:
		return f.URLBase
	case clienttype.FieldAPIKey:
		return f.APIKey
	case clienttype.FieldRPCPath:
		return f.RPCPath
	case clienttype.FieldSecretToken:
		return f.SecretToken
	case clienttype.FieldAppID:
		return f.AppID
	case clienttype.FieldAppToken:
		return f.AppToken
	case clienttype.FieldAPIURL:
		return f.APIURL
	case clienttype.FieldTags:
		return f.Tags
	case clienttype.FieldDestination:
		return f.Destination
	case clienttype.FieldNzbFolder:
		return f.NzbFolder
	case clienttype.FieldStrmFolder:
		return f.StrmFolder
	case clienttype.FieldTorrentFolder:
		return f.TorrentFolder
	case clienttype.FieldWatchFolder:
		return f.WatchFolder
	case clienttype.FieldSaveMagnetFiles:
		return f.SaveMagnetFiles != nil && *f.SaveMagnetFiles
	case clienttype.FieldMagnetFileExtension:
		return f.MagnetFileExtension
	case clienttype.FieldDirectory:
		return f.Directory
	case clienttype.FieldDownloadPath:
		return f.DownloadPath
	case clienttype.FieldPathMappings:
		return f.PathMappings
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
