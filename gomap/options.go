package gomap

// MapOption is an option for controlling conversion from Go to Value.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling conversion from Value to Go.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// Option applies in both directions.
type Option interface {
	MapOption
	UnmapOption
}

type mapConfig struct {
	tagName string
}

type unmapConfig struct {
	tagName        string
	convertNumbers bool
	strictFields   bool
}

func newMapConfig(opts []MapOption) *mapConfig {
	cfg := &mapConfig{tagName: defaultTag}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts []UnmapOption) *unmapConfig {
	cfg := &unmapConfig{tagName: defaultTag}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

type tagNameOption string

func (o tagNameOption) applyMap(c *mapConfig)     { c.tagName = string(o) }
func (o tagNameOption) applyUnmap(c *unmapConfig) { c.tagName = string(o) }

// TagName selects the struct tag key read for field names. Fields
// without that tag fall back to their json tag.
func TagName(name string) Option {
	return tagNameOption(name)
}

type unmapFunc func(*unmapConfig)

func (f unmapFunc) applyUnmap(c *unmapConfig) { f(c) }

// AllowNumericConversion lets numbers of any kind fill numeric fields
// when the value fits, instead of requiring the field's exact kind.
func AllowNumericConversion() UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.convertNumbers = true })
}

// DisallowUnknownFields makes object keys without a matching struct
// field an error.
func DisallowUnknownFields() UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.strictFields = true })
}
