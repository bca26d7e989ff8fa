package cli

import "strings"

// Version and Date should be set at build time using ldflags, e.g.:
//
//  -ldflags "-X 'github.com/abbasmoosajee07/challenge-utils/cli.Version=1.2.3' -X 'github.com/abbasmoosajee07/challenge-utils/cli.Date=2026-08-27'"
var (
    Version string
    Date    string
)

// niceDate replaces dashes with spaces for nicer display.
var niceDate = strings.ReplaceAll(Date, "-", " ")

