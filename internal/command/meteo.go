package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/glo0ml34f/fauxterm/internal/session"
	"github.com/glo0ml34f/fauxterm/internal/weather"
)

const timeOfDay = "15:04:05"

// WeatherSource looks up current weather by city name.
type WeatherSource interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

// Meteo shows the weather for a city.
type Meteo struct {
	Source WeatherSource
}

func (m *Meteo) Info() Info {
	return Info{
		Name:   "meteo",
		Usage:  "meteo [city]",
		Desc:   "show the weather for the given city",
		Params: []Param{{Name: "city", Desc: "city name, may contain spaces"}},
		Remote: true,
	}
}

func (m *Meteo) Execute(ctx *Context) ([]session.Line, error) {
	if len(ctx.Args) == 0 {
		return []session.Line{session.Text("Please enter a city.")}, nil
	}
	city := strings.Join(ctx.Args, " ")
	rep, err := m.Source.Current(ctx, city)
	if err != nil {
		return nil, &Failure{Msg: "Error: city not found", Err: err}
	}
	return WeatherLines(ctx.Session, rep), nil
}

// WeatherLines renders a report as seven lines in fixed order.
func WeatherLines(s *session.Session, r *weather.Report) []session.Line {
	return []session.Line{
		session.Text(fmt.Sprintf("Location: %s, %s", r.Location, r.Country)),
		session.Text(fmt.Sprintf("Temperature: %s°C", formatNumber(r.Temperature))),
		session.Text(fmt.Sprintf("Weather: %s", r.Description)),
		session.Text(fmt.Sprintf("Wind speed: %s m/s", formatNumber(r.WindSpeed))),
		session.Text(fmt.Sprintf("Humidity: %s%%", formatNumber(r.Humidity))),
		session.Text("Sunrise: " + s.In(r.Sunrise).Format(timeOfDay)),
		session.Text("Sunset: " + s.In(r.Sunset).Format(timeOfDay)),
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
