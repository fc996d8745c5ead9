package viper

import (
	"github.com/spf13/viper"

	"github.com/vickyqiu/riak-pb/config"
)

type ViperProvider struct {
	v    *viper.Viper
	vals config.Map
}

// NewViperProvider creates a new ViperProvider instance.
func NewViperProvider(v *viper.Viper) *ViperProvider {
	return &ViperProvider{v: v}
}

// init initializes the ViperProvider.
func (vp *ViperProvider) init() {
	vp.vals = config.NewMap(vp.v.AllSettings())
}

// LookupPath retrieves a value from the Viper configuration.
func (vp *ViperProvider) LookupPath(selector string) (val *config.Value, ok bool) {
	if vp.vals == nil {
		vp.init()
	}

	v := vp.vals.Get(selector)
	if v.Data() == nil {
		return nil, false
	}
	return v, true
}

// Data returns the data of the provider.
func (vp *ViperProvider) Data() config.Map {
	if vp.vals == nil {
		vp.init()
	}
	return vp.vals
}
