package entity

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TimeZone  string  `json:"timeZone"`
	LocalTime string  `json:"localTime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type CurrentConditions struct {
	TemperatureC float64   `json:"temperatureC"`
	FeelsLikeC   float64   `json:"feelsLikeC"`
	Humidity     int       `json:"humidity"`
	WindKph      float64   `json:"windKph"`
	UltraViolet  float64   `json:"ultraViolet"`
	IsDay        bool      `json:"isDay"`
	LastUpdated  string    `json:"lastUpdated"`
	Condition    Condition `json:"condition"`
}

type ForecastDay struct {
	Date      string    `json:"date"`
	MinTempC  float64   `json:"minTempC"`
	MaxTempC  float64   `json:"maxTempC"`
	Condition Condition `json:"condition"`
}

// WeatherView is the last successfully fetched forecast shown by the widget
type WeatherView struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Days     []ForecastDay     `json:"days"`
}

// CurrentWeather is the current conditions of a location without forecast
type CurrentWeather struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}
