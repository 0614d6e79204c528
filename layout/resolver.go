package layout

// Resolve turns a niche's optional layout document into the structure a page
// render walks. A nil config or an empty zone list falls back to the default
// layout. Sections whose id is not present in the registry are dropped
// silently; zones left without sections are dropped with them.
//
// Resolution is purely structural: condition fields ride along untouched and
// are evaluated per product by the section components themselves.
func Resolve(cfg *Config, registry *Registry) Config {
	source := DefaultConfig()
	if cfg != nil && len(cfg.Zones) > 0 {
		source = *cfg
	}

	if registry == nil {
		return source
	}

	resolved := Config{Zones: make([]Zone, 0, len(source.Zones))}
	for _, zone := range source.Zones {
		sections := make([]Section, 0, len(zone.Sections))
		for _, section := range zone.Sections {
			if !registry.Has(section.ID) {
				continue
			}
			sections = append(sections, section)
		}
		if len(sections) == 0 {
			continue
		}
		resolved.Zones = append(resolved.Zones, Zone{ID: zone.ID, Sections: sections})
	}
	return resolved
}
