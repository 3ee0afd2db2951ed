package form

import (
	"strings"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

// BuildPayload transforms the flat form state into the persisted
// payload shape. It is pure and cannot fail: edge cases resolve
// through defaulting, never rejection, so the output is always safe
// to serialize as a create or update request body.
//
// Defaulting is falsy for host/port/priority/timeout (an explicit 0
// priority is indistinguishable from unset) but nullish for enabled,
// which only defaults to true while never set. Blank credentials are
// carried as empty strings and dropped by the JSON encoding, so an
// edit that leaves the password untouched sends no password key at
// all.
func BuildPayload(f *Form) api.Payload {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = string(f.ClientType)
	}

	host := f.Host
	if host == "" {
		host = "localhost"
	}

	timeout := f.TimeoutSeconds
	if timeout == 0 {
		timeout = 30
	}

	enabled := true
	if f.Enabled != nil {
		enabled = *f.Enabled
	}

	downloadPath := f.DownloadPath
	if f.Destination != "" {
		downloadPath = f.Destination
	}
	if f.Directory != "" {
		downloadPath = f.Directory
	}

	settings := map[string]any{}
	putString(settings, clienttype.FieldURLBase, f.URLBase)
	putString(settings, clienttype.FieldAPIKey, f.APIKey)
	putString(settings, clienttype.FieldRPCPath, f.RPCPath)
	putString(settings, clienttype.FieldSecretToken, f.SecretToken)
	putString(settings, clienttype.FieldAppID, f.AppID)
	putString(settings, clienttype.FieldAppToken, f.AppToken)
	putString(settings, clienttype.FieldAPIURL, f.APIURL)
	putString(settings, clienttype.FieldTags, f.Tags)
	putString(settings, clienttype.FieldDestination, f.Destination)
	putString(settings, clienttype.FieldNzbFolder, f.NzbFolder)
	putString(settings, clienttype.FieldStrmFolder, f.StrmFolder)
	putString(settings, clienttype.FieldTorrentFolder, f.TorrentFolder)
	putString(settings, clienttype.FieldWatchFolder, f.WatchFolder)
	putString(settings, clienttype.FieldMagnetFileExtension, f.MagnetFileExtension)
	putString(settings, clienttype.FieldDirectory, f.Directory)

	// Absence means "server default"; false means explicitly off.
	if f.SaveMagnetFiles != nil {
		settings[string(clienttype.FieldSaveMagnetFiles)] = *f.SaveMagnetFiles
	}

	if len(f.PathMappings) > 0 {
		settings[string(clienttype.FieldPathMappings)] = f.PathMappings
	}

	return api.Payload{
		Name:               name,
		ClientType:         f.ClientType,
		Host:               host,
		Port:               f.Port,
		UseSSL:             f.UseSSL,
		Username:           f.Username,
		Password:           f.Password,
		Priority:           f.Priority,
		TimeoutSeconds:     timeout,
		Enabled:            enabled,
		Category:           f.Category,
		DownloadPath:       downloadPath,
		AdditionalSettings: settings,
	}
}

// putString inserts a settings key only when the value is non-empty.
func putString(settings map[string]any, key clienttype.Field, value string) {
	if value == "" {
		return
	}
	settings[string(key)] = value
}
