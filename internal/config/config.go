package config

import (
	"errors"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const (
	DefaultBasePNG    = "assets/images/app_icon.png"
	DefaultBaseBase64 = "assets/images/app_icon.b64.txt"
)

type Options struct {
	ExportDir   string `long:"export-dir" env:"APPICON_EXPORT_DIR" default:"." description:"Directory where generated icons are written; platform assets are overwritten in place when omitted"`
	BasePNG     string `long:"base-png" env:"APPICON_BASE_PNG" default:"assets/images/app_icon.png" description:"Base icon PNG"`
	BaseBase64  string `long:"base-b64" env:"APPICON_BASE_B64" default:"assets/images/app_icon.b64.txt" description:"Base64 text twin of the base icon, used when the PNG is absent"`
	TargetsFile string `long:"targets" env:"APPICON_TARGETS" description:"JSON file mapping output paths to icon sizes; replaces the built-in table"`
	DumpTargets string `long:"dump-targets" description:"Write the built-in target table as JSON to this path and exit"`
	SkipICO     bool   `long:"skip-ico" env:"APPICON_SKIP_ICO" description:"Do not write the Windows .ico resource"`
	Debug       bool   `long:"debug" env:"APPICON_DEBUG" description:"Enable verbose debug output"`
	LogPersist  bool   `long:"log-persist" env:"APPICON_LOG_PERSIST" description:"Mirror log events to a JSONL file in the user cache directory"`
}

// ParseOptions loads an optional .env file and parses args, which must not
// include the program name.
func ParseOptions(args []string) (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "appicon"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return Options{}, err
	}
	if len(rest) > 0 {
		return Options{}, errors.New("unexpected arguments: " + strings.Join(rest, " "))
	}
	return opts, nil
}

func ValidateRequired(opts Options) error {
	if strings.TrimSpace(opts.ExportDir) == "" {
		return errors.New("export directory must not be empty")
	}
	if strings.TrimSpace(opts.BasePNG) == "" && strings.TrimSpace(opts.BaseBase64) == "" {
		return errors.New("set either a base PNG or a base64 source")
	}
	return nil
}
