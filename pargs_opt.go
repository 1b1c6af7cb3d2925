package pargs

// RegisterOpt configures a single RegisterOption call.
type RegisterOpt func(*registerCfg)

type registerCfg struct {
	group      string
	defaultVal *string
}

// WithGroup places the option into the named mutually exclusive group. The
// group must already exist.
func WithGroup(name string) RegisterOpt {
	return func(c *registerCfg) {
		c.group = name
	}
}

// WithDefault gives the option a default value. The option is considered set
// from registration onward.
func WithDefault(value string) RegisterOpt {
	return func(c *registerCfg) {
		c.defaultVal = &value
	}
}
