package form

import (
	"strconv"
	"strings"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

// asString coerces a field value to a string. Non-string values
// coerce through their obvious text form; anything else is "".
func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// asInt coerces a field value to an integer, defaulting to 0 on
// parse failure.
func asInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// asBool coerces a field value to a boolean. Strings accept the
// strconv forms; unparseable input is false.
func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false
		}
		return b
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// settingString reads a string value out of a decoded
// additional_settings map, returning "" for absent or mistyped keys.
func settingString(settings map[string]any, key clienttype.Field) string {
	if settings == nil {
		return ""
	}
	value, ok := settings[string(key)]
	if !ok {
		return ""
	}
	return asString(value)
}

// settingBool reads a tri-state boolean out of additional_settings.
// Absent keys return nil so callers can distinguish "never set" from
// an explicit false.
func settingBool(settings map[string]any, key clienttype.Field) *bool {
	if settings == nil {
		return nil
	}
	value, ok := settings[string(key)]
	if !ok {
		return nil
	}
	b := asBool(value)
	return &b
}

// settingPathMappings rebuilds the path mapping list from
// additional_settings. JSON decoding hands the list back as []any of
// map[string]any; entries missing either side are dropped.
func settingPathMappings(settings map[string]any) []api.PathMapping {
	if settings == nil {
		return nil
	}
	raw, ok := settings[string(clienttype.FieldPathMappings)]
	if !ok {
		return nil
	}

	switch list := raw.(type) {
	case []api.PathMapping:
		return list
	case []any:
		mappings := make([]api.PathMapping, 0, len(list))
		for _, entry := range list {
			pair, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			remote := asString(pair["remote"])
			local := asString(pair["local"])
			if remote == "" && local == "" {
				continue
			}
			mappings = append(mappings, api.PathMapping{Remote: remote, Local: local})
		}
		if len(mappings) == 0 {
			return nil
		}
		return mappings
	}
	return nil
}
