package model

// Cfg is the root configuration for the vc-system process.
type Cfg struct {
	Common Common `yaml:"common"`
	API    API    `yaml:"api"`
}

// Common holds settings shared by every role.
type Common struct {
	Production bool `yaml:"production" default:"false"`
}

// API holds the HTTP facade's bind address and the on-disk key material
// path. Spec fixes the bind address to 127.0.0.1:8080; it is still a
// configuration field (not a literal in handler code) so deployments
// can override it the same way they override anything else in Cfg.
type API struct {
	Addr        string `yaml:"addr" default:"127.0.0.1:8080" validate:"required"`
	KeyFilePath string `yaml:"key_file_path" default:"keys/keys.json" validate:"required"`
}
