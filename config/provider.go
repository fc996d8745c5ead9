package config

type Provider interface {
	LookupPath(selector string) (val *Value, ok bool)
	Data() Map
}
