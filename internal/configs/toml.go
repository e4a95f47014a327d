package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data into a TOML file readable only by the owner, since
// settings may hold an API token.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML decodes a TOML file into data.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
