package exec

import "time"

// config separates global settings (fixed at New) from local settings
// (set through the fluent API and cleared after each Run).
// Local settings take precedence when set.
type config struct {
	// Global settings
	globalEnv           map[string]string
	globalDir           string
	globalInheritEnv    bool
	globalDisableColors bool
	globalTimeout       time.Duration

	// Local settings, cleared by resetLocal
	localEnv           map[string]string
	localDir           string
	localInheritEnv    *bool
	localDisableColors *bool
	localTimeout       *time.Duration
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone deep-copies both global and local settings.
func (c *config) clone() *config {
	out := &config{
		globalEnv:           make(map[string]string, len(c.globalEnv)),
		globalDir:           c.globalDir,
		globalInheritEnv:    c.globalInheritEnv,
		globalDisableColors: c.globalDisableColors,
		globalTimeout:       c.globalTimeout,
		localEnv:            make(map[string]string, len(c.localEnv)),
		localDir:            c.localDir,
		localInheritEnv:     copyPtr(c.localInheritEnv),
		localDisableColors:  copyPtr(c.localDisableColors),
		localTimeout:        copyPtr(c.localTimeout),
	}
	for k, v := range c.globalEnv {
		out.globalEnv[k] = v
	}
	for k, v := range c.localEnv {
		out.localEnv[k] = v
	}
	return out
}

// copyPtr returns a pointer to a copy of *p, or nil.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// effectiveEnv merges global and local variables, local winning.
// Disabling colors adds the variables common tools check.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}

	if c.effectiveDisableColors() {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
	}

	return env
}

// effectiveDir returns the local directory if set, otherwise the global one.
func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) effectiveDisableColors() bool {
	if c.localDisableColors != nil {
		return *c.localDisableColors
	}
	return c.globalDisableColors
}

func (c *config) effectiveTimeout() time.Duration {
	if c.localTimeout != nil {
		return *c.localTimeout
	}
	return c.globalTimeout
}

// resetLocal clears everything set through the fluent API.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localDisableColors = nil
	c.localTimeout = nil
}
