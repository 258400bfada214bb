package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "headless"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "bulk_concurrency":
				return DefaultBulkConcurrency
			case "api_burst":
				return DefaultAPIBurst
			case "favicon_timeout_seconds":
				return DefaultFaviconTimeoutSeconds
			}
			return 10
		case reflect.Float64:
			return DefaultAPIRateLimit
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "listen_addr":
			return DefaultListenAddr
		case "user_data_dir":
			return "~/.tabrest/browser"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "start_urls" {
				return []string{"https://example.com", "https://news.ycombinator.com"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
