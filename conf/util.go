package conf

import (
	"os"
)

const (
	envLD      = "LD"
	envProfile = "LDRV_PROFILE"
)

func getDefaultLD() string {
	ld := os.Getenv(envLD)
	if ld == "" {
		return "ld"
	}
	return ld
}

func getDefaultProfile() string {
	return os.Getenv(envProfile)
}
