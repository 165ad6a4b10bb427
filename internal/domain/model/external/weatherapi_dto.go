package external

// LocationDTO is the location block shared by the forecast and current endpoints
type LocationDTO struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	LocalTime string  `json:"localtime"`
}

// ConditionDTO describes a weather condition
type ConditionDTO struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentDTO represents the current conditions block
type CurrentDTO struct {
	LastUpdated string       `json:"last_updated"`
	TempC       float64      `json:"temp_c"`
	TempF       float64      `json:"temp_f"`
	IsDay       int          `json:"is_day"`
	Condition   ConditionDTO `json:"condition"`
	WindKph     float64      `json:"wind_kph"`
	WindDir     string       `json:"wind_dir"`
	Humidity    int          `json:"humidity"`
	FeelsLikeC  float64      `json:"feelslike_c"`
	UV          float64      `json:"uv"`
}

// DayDTO aggregates one forecast day
type DayDTO struct {
	MaxTempC  float64      `json:"maxtemp_c"`
	MinTempC  float64      `json:"mintemp_c"`
	AvgTempC  float64      `json:"avgtemp_c"`
	Condition ConditionDTO `json:"condition"`
	UV        float64      `json:"uv"`
}

// ForecastDayDTO is one entry of forecast.forecastday
type ForecastDayDTO struct {
	Date string `json:"date"`
	Day  DayDTO `json:"day"`
}

// ForecastDTO wraps the forecast days array
type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday"`
}

// ForecastResponse represents the response from /forecast.json
type ForecastResponse struct {
	Location LocationDTO  `json:"location"`
	Current  *CurrentDTO  `json:"current"`
	Forecast *ForecastDTO `json:"forecast"`
}

// CurrentResponse represents the response from /current.json
type CurrentResponse struct {
	Location LocationDTO `json:"location"`
	Current  *CurrentDTO `json:"current"`
}

// SearchResult is one match returned by /search.json
type SearchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// APIErrorResponse represents error responses from WeatherAPI
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
