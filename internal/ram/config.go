package ram

// Config is a minimal map-backed indexing.GlobalConfig: an opaque
// key->string lookup, exactly as wide as the analysis needs. Populating it
// (from flags, a config file, environment variables, …) is a front-end
// concern left to the caller.
type Config map[string]string

// Get returns the value for key, or the empty string if unset.
func (c Config) Get(key string) string {
	return c[key]
}
