package pipeline

import (
	"github.com/pchuan98/livecharts/pkg/cache"
	"github.com/pchuan98/livecharts/pkg/errors"
	"github.com/pchuan98/livecharts/pkg/source"
)

// Load reads the definition named by opts and applies the option
// overrides. It returns the definition and its content hash.
func Load(opts Options) (*source.Definition, string, error) {
	var d *source.Definition
	if opts.Path != "" {
		var err error
		if d, err = source.Load(opts.Path); err != nil {
			return nil, "", err
		}
	} else {
		var err error
		if d, err = source.Parse(opts.Definition, opts.DefinitionFormat); err != nil {
			return nil, "", err
		}
		if err := d.Resolve(""); err != nil {
			return nil, "", err
		}
		d.SetDefaults()
		if err := d.Validate(); err != nil {
			return nil, "", err
		}
	}

	if opts.Width > 0 {
		d.Width = opts.Width
	}
	if opts.Height > 0 {
		d.Height = opts.Height
	}
	if opts.Locale != "" {
		d.Locale = opts.Locale
	}

	data, err := d.Canonical()
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "encode definition")
	}
	return d, cache.Hash(data), nil
}

// sourceName names the definition in hooks and logs.
func sourceName(opts Options) string {
	if opts.Path != "" {
		return opts.Path
	}
	return "inline:" + string(opts.DefinitionFormat)
}
