// Package main provides the CLI entrypoint for msgcode-generator.
//
// msgcode-generator is a build tool that turns message code tables (CSV
// lines of wire code, message name, and proto file base name) into Go
// modules exposing code-to-name, name-to-code, and code-to-decoder lookups.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"msgcode-generator/internal/cmd"
	"msgcode-generator/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("msgcode-generator"),
		kong.Description("Generate Go message code modules from CSV tables"),
		kong.UsageOnError(),
		// Flags and env override values loaded from JSON/YAML/TOML config files.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// findUserConfig extracts --config before kong parses, so the value can feed
// the configuration loaders that kong needs at parse time.
func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("MSGCODEGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}

// configCandidatePaths builds candidate config paths per format. A user
// supplied path routes to the loader matching its extension; working
// directory candidates follow.
func configCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".json":
			jsonPaths = append(jsonPaths, userPath)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	jsonPaths = append(jsonPaths, filepath.Join(wd, "msgcodegen.json"))
	yamlPaths = append(yamlPaths, filepath.Join(wd, "msgcodegen.yaml"), filepath.Join(wd, "msgcodegen.yml"))
	tomlPaths = append(tomlPaths, filepath.Join(wd, "msgcodegen.toml"))

	return
}
