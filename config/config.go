package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/luarray/fn"
	"github.com/a-peyrard/luarray/option"
	"github.com/a-peyrard/luarray/reflectutils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
		flags  *pflag.FlagSet
	}

	// WithDefault is implemented by configuration structs filling their own defaults
	// once environment and flags have been applied.
	WithDefault interface {
		ApplyDefault()
	}
)

// WithEnvPrefix prefixes every environment variable name, e.g. LUARRAY_TIMEOUT.
func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithFlags binds a parsed flag set. Flags explicitly set on the command line take
// precedence over environment variables, their defaults do not.
func WithFlags(flags *pflag.FlagSet) option.Option[Options] {
	return func(opts *Options) {
		opts.flags = flags
	}
}

// Load builds a T from the environment (and flags when bound). Keys are the
// mapstructure tags, or the field names, of T.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var conf T
	bindEnvs(v, options.prefix, reflect.TypeOf(conf))

	if options.flags != nil {
		if err := v.BindPFlags(options.flags); err != nil {
			return nil, fmt.Errorf("unable to bind flags:\n\t%w", err)
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config:\n\t%w", err)
	}

	withDefaultType := reflect.TypeOf((*WithDefault)(nil)).Elem()
	applyDefault := func(val reflect.Value, typ reflect.Type, _ []string) {
		if typ.Implements(withDefaultType) && val.IsValid() && (val.Kind() != reflect.Pointer || !val.IsNil()) {
			val.Interface().(WithDefault).ApplyDefault()
		}
	}
	reflectutils.WalkStruct(
		&conf,
		fn.AllTriConsumer(
			reflectutils.CreateNilStructs,
			applyDefault,
		),
	)

	return &conf, nil
}

func bindEnvs(v *viper.Viper, prefix string, typ reflect.Type, parts ...string) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct && fieldType.PkgPath() != "time" {
			bindEnvs(v, prefix, fieldType, append(parts, name)...)
			continue
		}

		key := strings.Join(append(parts, name), ".")
		_ = v.BindEnv(key, envName(prefix, append(parts, name)))
	}
}
