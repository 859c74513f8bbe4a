package utils

import (
	"fmt"
)

const (
	Version = "0.1"
)

// Used for "User-Agent" in HTTP
var VersionString = fmt.Sprintf("Go-FontValues %s", Version)
