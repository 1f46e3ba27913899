package icons

import "sort"

const (
	// ICOSize is the edge length of the single image embedded in the .ico.
	ICOSize        = 256
	DefaultICOPath = "windows/runner/resources/app_icon.ico"
)

// Target pairs a slash-separated output path, relative to the export
// directory, with a square edge length in pixels.
type Target struct {
	Path string
	Size int
}

var defaultTargets = []Target{
	// Android
	{"android/app/src/main/res/mipmap-mdpi/ic_launcher.png", 48},
	{"android/app/src/main/res/mipmap-hdpi/ic_launcher.png", 72},
	{"android/app/src/main/res/mipmap-xhdpi/ic_launcher.png", 96},
	{"android/app/src/main/res/mipmap-xxhdpi/ic_launcher.png", 144},
	{"android/app/src/main/res/mipmap-xxxhdpi/ic_launcher.png", 192},
	// iOS
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-20x20@1x.png", 20},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-20x20@2x.png", 40},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-20x20@3x.png", 60},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-29x29@1x.png", 29},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-29x29@2x.png", 58},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-29x29@3x.png", 87},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-40x40@1x.png", 40},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-40x40@2x.png", 80},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-40x40@3x.png", 120},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-60x60@2x.png", 120},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-60x60@3x.png", 180},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-76x76@1x.png", 76},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-76x76@2x.png", 152},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-83.5x83.5@2x.png", 167},
	{"ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-1024x1024@1x.png", 1024},
	// macOS
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_16.png", 16},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_32.png", 32},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_64.png", 64},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_128.png", 128},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_256.png", 256},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_512.png", 512},
	{"macos/Runner/Assets.xcassets/AppIcon.appiconset/app_icon_1024.png", 1024},
	// Web
	{"web/icons/Icon-192.png", 192},
	{"web/icons/Icon-512.png", 512},
	{"web/icons/Icon-maskable-192.png", 192},
	{"web/icons/Icon-maskable-512.png", 512},
	{"web/favicon.png", 48},
}

// DefaultTargets returns a copy of the built-in launcher icon table for
// Android, iOS, macOS and web.
func DefaultTargets() []Target {
	return append([]Target(nil), defaultTargets...)
}

// TargetsFromMap orders a path-to-size table by path.
func TargetsFromMap(m map[string]int) []Target {
	out := make([]Target, 0, len(m))
	for path, size := range m {
		out = append(out, Target{Path: path, Size: size})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// TargetMap is the inverse of TargetsFromMap.
func TargetMap(targets []Target) map[string]int {
	out := make(map[string]int, len(targets))
	for _, t := range targets {
		out[t.Path] = t.Size
	}
	return out
}
