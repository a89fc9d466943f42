package common

const (
	SrcFileExtension = ".mommy"
	CFileExtension   = ".c"
	ConfigFileName   = "mommy.toml"
	MommyVersion     = "0.1.0"
)
