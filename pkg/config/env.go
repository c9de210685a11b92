package config

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var once sync.Once

// InitEnv wires viper to the process environment. Safe to call from
// multiple init paths; only the first call does anything.
func InitEnv() {
	once.Do(func() {
		viper.AutomaticEnv()
		log.Info().Msg("Env initialized!")
	})
}
