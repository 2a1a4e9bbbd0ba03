package common

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	commonconfig "github.com/G-Research/aliasedqueue/internal/common/config"
)

// EnvPrefix is the prefix of environment variables that override configuration values,
// e.g., AQ_ORDERING overrides ordering.
const EnvPrefix = "AQ"

// LoadConfig reads the yaml or json file at path into config.
// Top-level values may be overridden by environment variables prefixed with EnvPrefix,
// whether or not the file sets them.
func LoadConfig(config interface{}, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v, config); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}
	log.Debugf("Read config from %s", v.ConfigFileUsed())

	if err := v.Unmarshal(config, commonconfig.CustomHooks...); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file %s", path)
	}
	return v, nil
}

// bindEnv registers an environment override for each top-level field of config.
// AutomaticEnv alone only applies to keys viper already knows about from the file.
func bindEnv(v *viper.Viper, config interface{}) error {
	fields := map[string]interface{}{}
	if err := mapstructure.Decode(config, &fields); err != nil {
		return errors.Wrap(err, "error listing config keys")
	}
	for key := range fields {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "error binding environment variable for %s", key)
		}
	}
	return nil
}

func ConfigureCommandLineLogging() {
	commandLineFormatter := new(log.TextFormatter)
	commandLineFormatter.DisableTimestamp = true
	commandLineFormatter.DisableLevelTruncation = true
	log.SetFormatter(commandLineFormatter)
	log.SetOutput(os.Stderr)
}
