package command

// Sources groups the remote backends used by the built-in commands.
type Sources struct {
	Weather    WeatherSource
	Meals      MealSource
	Fetcher    JSONFetcher
	DateLayout string
}

// Builtin returns a registry holding the standard command set.
func Builtin(src Sources) *Registry {
	r := NewRegistry()
	r.Register(&DateTime{Layout: src.DateLayout})
	r.Register(&Meteo{Source: src.Weather})
	r.Register(&Request{Fetcher: src.Fetcher})
	r.Register(&Cracco{Source: src.Meals})
	r.Register(Clear{})
	r.Register(&Help{Registry: r})
	return r
}
