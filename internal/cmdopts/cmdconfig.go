package cmdopts

import (
	"fmt"
	"os"
	"reflect"

	flags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// configFile mirrors the option groups, e.g.
//
//	connection:
//	  hostname: db1
//	  user: monitor
//	output:
//	  scheme: prod.db1.postgresql
type configFile map[string]map[string]yaml.Node

// optionFields walks the option groups and returns fields by section and long name
func optionFields(v reflect.Value) map[string]map[string]reflect.Value {
	fields := make(map[string]map[string]reflect.Value)
	t := v.Type()
	for i := range t.NumField() {
		group := t.Field(i)
		if group.Tag.Get("group") == "" {
			continue
		}
		section := group.Tag.Get("yaml")
		fields[section] = make(map[string]reflect.Value)
		gv, gt := v.Field(i), group.Type
		for j := range gt.NumField() {
			if long := gt.Field(j).Tag.Get("long"); long != "" {
				fields[section][long] = gv.Field(j)
			}
		}
	}
	return fields
}

// isSetExplicitly reports whether the option was given on the command line or via environment.
// Defaults and environment values are both applied as defaults by the parser.
func isSetExplicitly(parser *flags.Parser, long string) bool {
	o := parser.FindOptionByLongName(long)
	if o == nil {
		return false
	}
	if o.IsSet() && !o.IsSetDefault() {
		return true
	}
	if key := o.EnvKeyWithNamespace(); key != "" {
		_, ok := os.LookupEnv(key)
		return ok
	}
	return false
}

// LoadConfigFile fills options not set on the command line or via environment
// with values from the YAML file.
func (c *Options) LoadConfigFile(parser *flags.Parser, fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	var cfg configFile
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", fname, err)
	}
	fields := optionFields(reflect.ValueOf(c).Elem())
	for section, values := range cfg {
		sectionFields, ok := fields[section]
		if !ok {
			return fmt.Errorf("unknown section %q in config file %s", section, fname)
		}
		for long, node := range values {
			field, ok := sectionFields[long]
			if !ok {
				return fmt.Errorf("unknown option %q in section %q of config file %s", long, section, fname)
			}
			if isSetExplicitly(parser, long) {
				continue
			}
			if err = node.Decode(field.Addr().Interface()); err != nil {
				return fmt.Errorf("invalid value of %s.%s in config file %s: %w", section, long, fname, err)
			}
		}
	}
	return nil
}
