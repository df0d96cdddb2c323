package configs

import _ "embed"

// Application holds the default application.yml shipped with the binary.
//
//go:embed application.yml
var Application []byte

// Messages holds the default messages.yml shipped with the binary.
//
//go:embed messages.yml
var Messages []byte
