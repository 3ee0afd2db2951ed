// Package clienttype holds the static registry of supported download
// client types and the catalog of configuration fields they use.
package clienttype

import "sort"

// ClientType identifies a supported download client backend.
type ClientType string

const (
	Aria2            ClientType = "aria2"
	Deluge           ClientType = "deluge"
	DownloadStation  ClientType = "download_station"
	Flood            ClientType = "flood"
	Freebox          ClientType = "freebox"
	Hadouken         ClientType = "hadouken"
	QBittorrent      ClientType = "qbittorrent"
	RTorrent         ClientType = "rtorrent"
	TorrentBlackhole ClientType = "torrent_blackhole"
	Transmission     ClientType = "transmission"
	UTorrent         ClientType = "utorrent"
	Vuze             ClientType = "vuze"
	NZBGet           ClientType = "nzbget"
	NZBVortex        ClientType = "nzbvortex"
	Pneumatic        ClientType = "pneumatic"
	SABnzbd          ClientType = "sabnzbd"
	UsenetBlackhole  ClientType = "usenet_blackhole"
)

// Protocol is the transfer protocol a client type speaks.
type Protocol string

const (
	ProtocolTorrent Protocol = "torrent"
	ProtocolUsenet  Protocol = "usenet"
)

// Descriptor describes the configuration shape of one client type.
// RequiredFields are rendered in the basic section, AdvancedFields
// behind the advanced toggle. Both lists are ordered for display.
type Descriptor struct {
	Protocol             Protocol
	DefaultPort          int
	RequiredFields       []Field
	AdvancedFields       []Field
	DefaultURLBase       string
	DefaultRPCPath       string
	SupportsPathMappings bool
}

var registry = map[ClientType]Descriptor{
	Aria2: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          6800,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldRPCPath, FieldSecretToken},
		AdvancedFields:       []Field{FieldDirectory},
		DefaultRPCPath:       "/jsonrpc",
		SupportsPathMappings: true,
	},
	Deluge: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          8112,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase, FieldDestination},
		SupportsPathMappings: true,
	},
	DownloadStation: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          5000,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword},
		AdvancedFields:       []Field{FieldDirectory},
		SupportsPathMappings: true,
	},
	Flood: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          3000,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword},
		AdvancedFields:       []Field{FieldDestination, FieldTags, FieldURLBase},
		SupportsPathMappings: true,
	},
	Freebox: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          443,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldAppID, FieldAppToken},
		AdvancedFields:       []Field{FieldAPIURL, FieldDestination, FieldCategory},
		SupportsPathMappings: true,
	},
	Hadouken: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          7070,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase},
		SupportsPathMappings: true,
	},
	QBittorrent: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          8080,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase, FieldTags},
		SupportsPathMappings: true,
	},
	RTorrent: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          8080,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase, FieldDestination},
		DefaultURLBase:       "RPC2",
		SupportsPathMappings: true,
	},
	TorrentBlackhole: {
		Protocol:       ProtocolTorrent,
		RequiredFields: []Field{FieldTorrentFolder, FieldWatchFolder},
		AdvancedFields: []Field{FieldSaveMagnetFiles, FieldMagnetFileExtension},
	},
	Transmission: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          9091,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword},
		AdvancedFields:       []Field{FieldURLBase, FieldCategory, FieldDirectory},
		DefaultURLBase:       "/transmission/",
		SupportsPathMappings: true,
	},
	UTorrent: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          8080,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase},
		SupportsPathMappings: true,
	},
	Vuze: {
		Protocol:             ProtocolTorrent,
		DefaultPort:          8080,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase, FieldDestination},
		SupportsPathMappings: true,
	},
	NZBGet: {
		Protocol:             ProtocolUsenet,
		DefaultPort:          6789,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldUsername, FieldPassword, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase},
		SupportsPathMappings: true,
	},
	NZBVortex: {
		Protocol:             ProtocolUsenet,
		DefaultPort:          4321,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldAPIKey, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase},
		SupportsPathMappings: true,
	},
	Pneumatic: {
		Protocol:       ProtocolUsenet,
		RequiredFields: []Field{FieldNzbFolder, FieldStrmFolder},
	},
	SABnzbd: {
		Protocol:             ProtocolUsenet,
		DefaultPort:          8080,
		RequiredFields:       []Field{FieldHost, FieldPort, FieldUseSSL, FieldAPIKey, FieldCategory},
		AdvancedFields:       []Field{FieldURLBase},
		SupportsPathMappings: true,
	},
	UsenetBlackhole: {
		Protocol:       ProtocolUsenet,
		RequiredFields: []Field{FieldNzbFolder, FieldWatchFolder},
	},
}

// Get returns the descriptor for a client type. Every supported type
// has an entry; the zero Descriptor is only returned for identifiers
// outside the registry.
func Get(ct ClientType) Descriptor {
	return registry[ct]
}

// Supported reports whether ct has a registry entry.
func Supported(ct ClientType) bool {
	_, ok := registry[ct]
	return ok
}

// All returns every supported client type in lexical order.
func All() []ClientType {
	types := make([]ClientType, 0, len(registry))
	for ct := range registry {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Fields returns the descriptor's basic and advanced fields in display
// order as a single list.
func (d Descriptor) Fields() []Field {
	fields := make([]Field, 0, len(d.RequiredFields)+len(d.AdvancedFields))
	fields = append(fields, d.RequiredFields...)
	fields = append(fields, d.AdvancedFields...)
	return fields
}

// HasField reports whether f is part of the descriptor's field lists.
func (d Descriptor) HasField(f Field) bool {
	for _, field := range d.Fields() {
		if field == f {
			return true
		}
	}
	return false
}
