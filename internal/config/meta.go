package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

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
			return false
		case reflect.Int:
			switch fieldName {
			case "batch_size":
				return 0
			case "max_log_files":
				return 100
			case "poll_interval_seconds":
				return 60
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "archive_url":
			return "s3://bundle-stats-artifacts?region=eu-west-1"
		case "build_command":
			return "npm run -s env -- node --max_old_space_size=8192 ./node_modules/.bin/webpack --config webpack.config.js --profile --json"
		case "bundle_dir":
			return "/srv/app/public"
		case "clean_command":
			return "npm run clean"
		case "database":
			return "~/.bundlestats/state.db"
		case "install_command":
			return "npm install"
		case "log_format":
			return "json"
		case "metrics_addr":
			return ":9090"
		case "repo_dir":
			return "/srv/app"
		case "stats_dir":
			return "~/.bundlestats/stats"
		case "trunk_branch":
			return "master"
		case "trunk_ref":
			return "origin/master"
		default:
			return "example"
		}
	}

	return nil
}
