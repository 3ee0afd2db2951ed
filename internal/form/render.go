package form

import "github.com/bookcard-io/bookcard-clients/internal/clienttype"

// Input is everything a consumer needs to render one configuration
// field: the catalog definition plus the form's current value.
type Input struct {
	Key         clienttype.Field
	Label       string
	Kind        clienttype.Kind
	Placeholder string
	Value       any
	Required    bool
}

const passwordKeepPlaceholder = "leave blank to keep unchanged"

// FieldInput resolves the rendering descriptor for one field of the
// form. Only host and port are marked required, and only when the
// active client type actually renders them; folder-based types never
// mark invisible fields required.
func FieldInput(f *Form, key clienttype.Field) Input {
	def, _ := clienttype.Lookup(key)
	desc := clienttype.Get(f.ClientType)

	input := Input{
		Key:         key,
		Label:       def.Label,
		Kind:        def.Kind,
		Placeholder: def.Placeholder,
		Value:       f.Value(key),
	}

	if (key == clienttype.FieldHost || key == clienttype.FieldPort) && desc.HasField(key) {
		input.Required = true
	}
	if key == clienttype.FieldPassword && f.Editing() {
		input.Placeholder = passwordKeepPlaceholder
	}
	return input
}

// BasicInputs returns the rendering descriptors for the active client
// type's basic section, in descriptor order.
func BasicInputs(f *Form) []Input {
	return inputs(f, clienttype.Get(f.ClientType).RequiredFields)
}

// AdvancedInputs returns the rendering descriptors for the advanced
// section. The list may be empty, in which case consumers hide the
// advanced toggle.
func AdvancedInputs(f *Form) []Input {
	return inputs(f, clienttype.Get(f.ClientType).AdvancedFields)
}

func inputs(f *Form, fields []clienttype.Field) []Input {
	result := make([]Input, 0, len(fields))
	for _, key := range fields {
		result = append(result, FieldInput(f, key))
	}
	return result
}
