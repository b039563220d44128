package config

import "image/color"

// Window
const (
	WindowWidth  = 1200
	WindowHeight = 900
	TPS          = 60
	WindowTitle  = "Avatar Pal"
)

// Files, relative to the working directory.
const (
	ConfigFile  = "config.json"
	PhrasesFile = "phrases.json"
	AssetsDir   = "assets"
	AvatarImage = AssetsDir + "/avatar.png"
	VoiceDir    = AssetsDir + "/voice"
)

// Avatar timing defaults, in seconds. Large values keep the avatar on screen.
const (
	DefaultShowInterval = 99999.0
	DefaultHideInterval = 99999.0
	DefaultVolume       = 0.5
	DefaultLanguage     = "en"
)

// Layout of the control panel.
const (
	ButtonWidth  = 140
	ButtonHeight = 35
	ButtonMargin = 10
	UIPadding    = 15
	FontScale    = 1.0
)

// MaxLanguages caps how many languages the menu shows.
const MaxLanguages = 10

// ShowFPS enables the frame-rate overlay at startup.
const ShowFPS = true

// AppVersion is shown in the bottom-left label.
const AppVersion = "1.0.0"

// Colors
var (
	BackgroundColor     = color.RGBA{240, 240, 240, 255}
	ButtonColor         = color.RGBA{200, 200, 200, 255}
	ButtonHoverColor    = color.RGBA{180, 180, 180, 255}
	ButtonTextColor     = color.RGBA{0, 0, 0, 255}
	LabelTextColor      = color.RGBA{20, 20, 20, 255}
	ActiveLanguageColor = color.RGBA{0, 100, 0, 255}
)
