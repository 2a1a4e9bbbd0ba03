package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// CustomHooks are the decode hooks applied when unmarshalling configuration.
var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(ScalarOrListHookFunc()),
}

// ScalarOrList is a configuration value that may be written either as a single scalar,
// e.g., `items: a`, or as a list, e.g., `items: [a, b]`.
// Single records which of the two forms was used.
type ScalarOrList struct {
	Values []string
	Single bool
}

func ScalarOrListHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// check that src and target types are valid
		if t != reflect.TypeOf(ScalarOrList{}) {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Slice, reflect.Array:
			values, err := cast.ToStringSliceE(data)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if len(values) == 0 {
				return ScalarOrList{}, nil
			}
			return ScalarOrList{Values: values}, nil
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			value, err := cast.ToStringE(data)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return ScalarOrList{Values: []string{value}, Single: true}, nil
		default:
			return data, nil
		}
	}
}
