package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithColour enables or disables ANSI colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithUnicode enables figurine glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithShowMoves controls legal-move highlighting.
func (b *ConfigBuilder) WithShowMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithClearScreen controls clearing the terminal between redraws.
func (b *ConfigBuilder) WithClearScreen(enabled bool) *ConfigBuilder {
	b.cfg.Output.ClearScreen = enabled
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFile sets the log file path.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.LogFile = path
	return b
}
