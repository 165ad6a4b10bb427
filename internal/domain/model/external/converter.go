package external

import (
	"weather-widget/internal/domain/entity"
	"weather-widget/pkg/util/weatherutils"
)

// ToWeatherView maps a complete forecast response. Callers check Current and Forecast first.
func ToWeatherView(resp *ForecastResponse) *entity.WeatherView {
	view := &entity.WeatherView{
		Location: toLocation(resp.Location),
		Current:  toCurrentConditions(resp.Current),
		Days:     make([]entity.ForecastDay, 0, len(resp.Forecast.ForecastDay)),
	}
	for _, day := range resp.Forecast.ForecastDay {
		view.Days = append(view.Days, entity.ForecastDay{
			Date:      day.Date,
			MinTempC:  day.Day.MinTempC,
			MaxTempC:  day.Day.MaxTempC,
			Condition: toCondition(day.Day.Condition, true),
		})
	}
	return view
}

func toLocation(dto LocationDTO) entity.Location {
	return entity.Location{
		Name:      dto.Name,
		Region:    dto.Region,
		Country:   dto.Country,
		Lat:       dto.Lat,
		Lon:       dto.Lon,
		TimeZone:  dto.TzID,
		LocalTime: dto.LocalTime,
	}
}

func toCurrentConditions(dto *CurrentDTO) entity.CurrentConditions {
	isDay := dto.IsDay == 1
	return entity.CurrentConditions{
		TemperatureC: dto.TempC,
		FeelsLikeC:   dto.FeelsLikeC,
		Humidity:     dto.Humidity,
		WindKph:      dto.WindKph,
		UltraViolet:  dto.UV,
		IsDay:        isDay,
		LastUpdated:  dto.LastUpdated,
		Condition:    toCondition(dto.Condition, isDay),
	}
}

// toCondition falls back to the CDN icon for the condition code when the payload has none
func toCondition(dto ConditionDTO, isDay bool) entity.Condition {
	icon := weatherutils.IconURL(dto.Icon)
	if icon == "" {
		icon = weatherutils.IconURLForCondition(dto.Code, isDay)
	}
	return entity.Condition{Text: dto.Text, Icon: icon, Code: dto.Code}
}

func ToSuggestions(results []SearchResult) []entity.Suggestion {
	suggestions := make([]entity.Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, entity.Suggestion{Name: r.Name, Region: r.Region, Country: r.Country})
	}
	return suggestions
}

// ToCurrentWeather maps a current conditions response
func ToCurrentWeather(resp *CurrentResponse) *entity.CurrentWeather {
	return &entity.CurrentWeather{
		Location: toLocation(resp.Location),
		Current:  toCurrentConditions(resp.Current),
	}
}
