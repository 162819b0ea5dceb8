// Package flag provides accessors for persistent flags bound in viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of the --verbose flag.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of the --quiet flag.
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns the value of the --config flag.
func ConfigFile() string {
	return viper.GetString("config")
}
