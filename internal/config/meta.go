package config

import (
	"reflect"
	"strings"
)

// SettingsExample uses reflection to generate an example settings map.
// It stays in sync automatically when fields are added to Settings.
func SettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = exampleValue(field.Type, jsonName)
	}

	return example
}

// exampleValue creates an example value based on the field's type and name
func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		switch fieldName {
		case "hooks_enabled", "use_worktree":
			return true
		default:
			return false
		}
	case reflect.Int:
		switch fieldName {
		case "mainline_parent":
			return 1
		case "max_log_files":
			return 1000
		default:
			return 0
		}
	case reflect.String:
		switch fieldName {
		case "base_url":
			return "https://dev.azure.com/payments"
		case "organization":
			return "payments"
		case "output":
			return "text"
		case "project":
			return "platform"
		case "repository":
			return "checkout"
		case "work_item_state":
			return "Closed"
		default:
			return ""
		}
	default:
		return nil
	}
}
