package command

func BuildRegistry(providers ...Provider) (*Registry, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	r := NewRegistry(cfg.Options()...)

	for _, p := range providers {
		err = r.RegisterAll(p)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}
